package calculator

import (
	"io"
	"strings"
)

// Eval evaluates an expression read from src. Multiplication and division are
// applied before addition and subtraction. Each precedence level is reduced by
// repeated left-to-right passes that fold non-overlapping number-operator-number
// triples. Evaluation reads src until EOF or the first error, and no partial
// result is ever returned alongside an error.
func Eval(src io.RuneReader) (float64, error) {
	l := lexer{src: src, blank: true}
	toks, err := l.scan()
	if _, ok := err.(*NoTokensError); ok && l.blank {
		return 0, &EmptyExpressionError{}
	}
	if err != nil {
		return 0, err
	}
	return evalTokens(toks)
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// evalTokens reduces a token sequence to its value.
func evalTokens(toks Tokens) (float64, error) {
	var err error
	for _, tier := range tiers {
		toks, err = reduce(toks, tier)
		if err != nil {
			return 0, err
		}
	}
	if len(toks) != 1 {
		return 0, &FormatError{Tokens: toks}
	}
	switch t := toks[0].(type) {
	case Number:
		return float64(t), nil
	case Operator:
		return 0, &FormatError{Tokens: toks}
	default:
		panic("calculator: invalid token " + t.String())
	}
}
