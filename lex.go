package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression. The only implementations are
// Number and Operator.
type Token interface {
	String() string
	token()
}

// Number is a numeric literal. A minus sign in a position where no binary
// operator can appear is part of the literal.
type Number float64

// Operator is a binary operator.
type Operator rune

// Operators understood by the evaluator.
const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '×'
	Div Operator = '÷'
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-×÷"

func (Number) token()   {}
func (Operator) token() {}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (op Operator) String() string {
	return string(op)
}

// Tokens is a sequence of tokens. A well-formed sequence alternates between
// numbers and operators, starting and ending with a number.
type Tokens []Token

func (t Tokens) String() string {
	var b strings.Builder
	for i, tok := range t {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}

type lexer struct {
	src  io.RuneReader
	buf  strings.Builder
	toks Tokens
	// rune is the number of runes read so far.
	rune int
	// start is the column of the first rune in buf.
	start int
	// blank is whether every rune read so far was whitespace.
	blank bool
}

// Tokenize scans an expression into tokens. The result is not necessarily
// well-formed; e.g. "2+" produces the tokens 2 and +. An input that produces
// no tokens at all is a *NoTokensError.
func Tokenize(src io.RuneReader) (Tokens, error) {
	l := lexer{src: src, blank: true}
	return l.scan()
}

// TokenizeString is a shortcut to tokenize a string expression.
func TokenizeString(src string) (Tokens, error) {
	return Tokenize(strings.NewReader(src))
}

// scan reads the entire input, returning the first error encountered.
func (l *lexer) scan() (Tokens, error) {
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		l.rune++
		switch {
		case unicode.IsSpace(r):
			// Spaces never end a number.
			continue
		case unicode.IsDigit(r), r == '.':
			l.blank = false
			l.write(r)
		case strings.ContainsRune(Operators, r):
			l.blank = false
			if err := l.flush(); err != nil {
				return nil, err
			}
			if r == '-' && l.unary() {
				l.write(r)
				continue
			}
			l.toks = append(l.toks, Operator(r))
		default:
			return nil, &CharError{Col: l.rune, Char: r}
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	if len(l.toks) == 0 {
		return nil, &NoTokensError{}
	}
	return l.toks, nil
}

// write adds a rune to the current number.
func (l *lexer) write(r rune) {
	if l.buf.Len() == 0 {
		l.start = l.rune
	}
	l.buf.WriteRune(r)
}

// unary returns whether a minus sign at the current position is a sign
// rather than a subtraction.
func (l *lexer) unary() bool {
	if len(l.toks) == 0 {
		return true
	}
	_, ok := l.toks[len(l.toks)-1].(Operator)
	return ok
}

// flush parses the current number, if there is one, and appends it to the
// token list.
func (l *lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	s := l.buf.String()
	l.buf.Reset()
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Numbers too large for float64 become infinities rather than
		// errors; ParseFloat already returns the right one.
		if !errors.Is(err, strconv.ErrRange) {
			return &NumberError{Col: l.start, Text: s, Err: err}
		}
	}
	l.toks = append(l.toks, Number(f))
	return nil
}
