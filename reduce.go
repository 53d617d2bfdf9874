package calculator

import (
	"math"
	"strings"
)

// Precedence tiers, from highest to lowest.
var tiers = [...]string{
	string(Mul) + string(Div),
	string(Add) + string(Sub),
}

// reduce folds number-operator-number triples whose operator is in tier,
// repeating passes of fold until a pass no longer shortens the sequence.
// Tokens that never fold, such as operators from other tiers or a trailing
// operator, are carried through in order.
func reduce(toks Tokens, tier string) (Tokens, error) {
	for len(toks) >= 3 {
		r, err := fold(toks, tier)
		if err != nil {
			return nil, err
		}
		if len(r) == len(toks) {
			break
		}
		toks = r
	}
	return toks, nil
}

// fold makes one left-to-right pass over toks, replacing each
// non-overlapping triple with its result. A freshly folded number is not
// examined again in the same pass, so 2×3×4 becomes 6×4 and 1-2-3-4 becomes
// (1-2)-(3-4).
func fold(toks Tokens, tier string) (Tokens, error) {
	r := make(Tokens, 0, len(toks))
	for i := 0; i < len(toks); {
		x, op, y, ok := triple(toks, i, tier)
		if !ok {
			r = append(r, toks[i])
			i++
			continue
		}
		v, err := op.apply(x, y)
		if err != nil {
			return nil, err
		}
		r = append(r, v)
		i += 3
	}
	return r, nil
}

// triple returns the tokens starting at toks[i] if they are a number, an
// operator in tier, and a number.
func triple(toks Tokens, i int, tier string) (x Number, op Operator, y Number, ok bool) {
	if i+2 >= len(toks) {
		return 0, 0, 0, false
	}
	x, ok = toks[i].(Number)
	if !ok {
		return 0, 0, 0, false
	}
	op, ok = toks[i+1].(Operator)
	if !ok || !strings.ContainsRune(tier, rune(op)) {
		return 0, 0, 0, false
	}
	y, ok = toks[i+2].(Number)
	if !ok {
		return 0, 0, 0, false
	}
	return x, op, y, true
}

// apply computes x op y.
func (op Operator) apply(x, y Number) (Number, error) {
	switch op {
	case Add:
		return x + y, nil
	case Sub:
		return x - y, nil
	case Mul:
		return x * y, nil
	case Div:
		// Anything smaller in magnitude than the smallest denormal is zero.
		if math.Abs(float64(y)) < math.SmallestNonzeroFloat64 {
			return 0, &DivisionByZeroError{Dividend: float64(x)}
		}
		return x / y, nil
	default:
		return 0, &OperatorError{Operator: op}
	}
}
