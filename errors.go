package calculator

import (
	"strconv"
)

// ErrorKind classifies the ways an evaluation can fail.
type ErrorKind int8

const (
	// KindNone is the zero ErrorKind. No error has this kind.
	KindNone ErrorKind = iota
	// KindEmptyExpression is an empty or whitespace-only expression.
	KindEmptyExpression
	// KindInvalidCharacter is a character that cannot appear in an expression.
	KindInvalidCharacter
	// KindInvalidNumber is a run of digits and points that isn't a number.
	KindInvalidNumber
	// KindInvalidExpression is an expression that produced no tokens.
	KindInvalidExpression
	// KindDivisionByZero is a division by zero.
	KindDivisionByZero
	// KindInvalidExpressionFormat is an expression which did not reduce to a
	// single number, e.g. one with a trailing operator.
	KindInvalidExpressionFormat
	// KindUnknownOperator is an operator the reducer can't apply.
	KindUnknownOperator
)

var kindnames = [...]string{
	KindNone:                    "None",
	KindEmptyExpression:         "EmptyExpression",
	KindInvalidCharacter:        "InvalidCharacter",
	KindInvalidNumber:           "InvalidNumber",
	KindInvalidExpression:       "InvalidExpression",
	KindDivisionByZero:          "DivisionByZero",
	KindInvalidExpressionFormat: "InvalidExpressionFormat",
	KindUnknownOperator:         "UnknownOperator",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Error is implemented by every error returned from evaluation.
type Error interface {
	error
	// Kind returns the class of the error.
	Kind() ErrorKind
}

// InputError is an error with position information. Errors that can be traced
// to a particular place in the input implement InputError.
type InputError interface {
	Error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error.
	Pos() int
}

// EmptyExpressionError is an error indicating that the expression contains
// nothing but whitespace.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "expression cannot be empty"
}

func (err *EmptyExpressionError) Kind() ErrorKind { return KindEmptyExpression }

// CharError is an error indicating a character which is not a digit, decimal
// point, operator, or whitespace.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character in expression: "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Kind() ErrorKind { return KindInvalidCharacter }

func (err *CharError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a run of digits, decimal points, and
// possibly a leading sign that does not form a number, e.g. "1.2.3". It
// unwraps to the *strconv.NumError describing the failure.
type NumberError struct {
	// Col is the position of the first character of the number.
	Col int
	// Text is the text of the number.
	Text string
	// Err is the underlying parse error.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number: "+strconv.Quote(err.Text))
}

func (err *NumberError) Kind() ErrorKind { return KindInvalidNumber }

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// NoTokensError is an error indicating that the tokenizer produced no tokens.
type NoTokensError struct{}

func (err *NoTokensError) Error() string {
	return "invalid expression"
}

func (err *NoTokensError) Kind() ErrorKind { return KindInvalidExpression }

// DivisionByZeroError is an error indicating a division by a number too
// small to be distinguished from zero.
type DivisionByZeroError struct {
	// Dividend is the left operand of the division.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero: " + strconv.FormatFloat(err.Dividend, 'g', -1, 64) + " ÷ 0"
}

func (err *DivisionByZeroError) Kind() ErrorKind { return KindDivisionByZero }

// FormatError is an error indicating that an expression did not reduce to a
// single number, e.g. because it ends with an operator or has two operators
// in a row.
type FormatError struct {
	// Tokens is what remained after reduction.
	Tokens Tokens
}

func (err *FormatError) Error() string {
	return "invalid expression format: " + strconv.Quote(err.Tokens.String())
}

func (err *FormatError) Kind() ErrorKind { return KindInvalidExpressionFormat }

// OperatorError is an error indicating an operator token that the reducer
// does not understand. The tokenizer never produces such tokens.
type OperatorError struct {
	// Operator is the token that was not understood.
	Operator Operator
}

func (err *OperatorError) Error() string {
	return "unknown operator " + strconv.QuoteRune(rune(err.Operator))
}

func (err *OperatorError) Kind() ErrorKind { return KindUnknownOperator }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ Error = (*EmptyExpressionError)(nil)
	_ Error = (*NoTokensError)(nil)
	_ Error = (*DivisionByZeroError)(nil)
	_ Error = (*FormatError)(nil)
	_ Error = (*OperatorError)(nil)

	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
)
