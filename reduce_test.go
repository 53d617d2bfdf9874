package calculator

import (
	"math"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	high, low := tiers[0], tiers[1]
	cases := []struct {
		name string
		in   Tokens
		tier string
		want Tokens
	}{
		{"empty", nil, high, nil},
		{"single", Tokens{Number(1)}, high, Tokens{Number(1)}},
		{"short", Tokens{Number(1), Mul}, high, Tokens{Number(1), Mul}},
		{"mul", Tokens{Number(2), Mul, Number(3)}, high, Tokens{Number(6)}},
		{"chain", Tokens{Number(2), Mul, Number(3), Mul, Number(4)}, high, Tokens{Number(24)}},
		{"long-chain", Tokens{Number(2), Mul, Number(3), Mul, Number(4), Mul, Number(5)}, high, Tokens{Number(120)}},
		{"div-chain", Tokens{Number(8), Div, Number(4), Div, Number(2)}, high, Tokens{Number(1)}},
		{"div-pairs", Tokens{Number(64), Div, Number(4), Div, Number(4), Div, Number(2)}, high, Tokens{Number(8)}},
		{"split", Tokens{Number(2), Mul, Number(3), Add, Number(4), Mul, Number(5)}, high, Tokens{Number(6), Add, Number(20)}},
		{"skip-low", Tokens{Number(2), Add, Number(3), Mul, Number(4)}, high, Tokens{Number(2), Add, Number(12)}},
		{"low-untouched", Tokens{Number(2), Add, Number(3)}, high, Tokens{Number(2), Add, Number(3)}},
		{"low", Tokens{Number(5), Sub, Number(3), Sub, Number(1)}, low, Tokens{Number(1)}},
		{"sub-pairs", Tokens{Number(10), Sub, Number(1), Sub, Number(1), Sub, Number(1)}, low, Tokens{Number(9)}},
		{"sub-five", Tokens{Number(1), Sub, Number(2), Sub, Number(3), Sub, Number(4), Sub, Number(5)}, low, Tokens{Number(-5)}},
		{"high-untouched", Tokens{Number(2), Mul, Number(3)}, low, Tokens{Number(2), Mul, Number(3)}},
		{"trailing-op", Tokens{Number(2), Add, Number(3), Add}, low, Tokens{Number(5), Add}},
		{"double-op", Tokens{Number(2), Mul, Mul, Number(3), Add, Number(4)}, low, Tokens{Number(2), Mul, Mul, Number(7)}},
		{"leading-op", Tokens{Add, Number(2), Add, Number(3)}, low, Tokens{Add, Number(5)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := reduce(c.in, c.tier)
			require.NoError(t, err)
			if diff := pretty.Diff(c.want, got); len(diff) > 0 {
				t.Errorf("reducing %v: want %v, got %v\n%s", c.in, c.want, got, strings.Join(diff, "\n"))
			}
		})
	}
}

// TestReduceLongChain checks that a long chain reduces without recursion.
func TestReduceLongChain(t *testing.T) {
	const n = 20000
	toks := make(Tokens, 0, 2*n-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			toks = append(toks, Add)
		}
		toks = append(toks, Number(1))
	}
	got, err := reduce(toks, tiers[1])
	require.NoError(t, err)
	assert.Equal(t, Tokens{Number(n)}, got)
}

func TestReduceDivisionByZero(t *testing.T) {
	for _, zero := range []float64{0, math.Copysign(0, -1)} {
		_, err := reduce(Tokens{Number(7), Div, Number(zero)}, tiers[0])
		var derr *DivisionByZeroError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, 7.0, derr.Dividend)
		assert.Equal(t, KindDivisionByZero, derr.Kind())
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		op   Operator
		x, y Number
		want Number
	}{
		{Add, 2, 3, 5},
		{Sub, 2, 3, -1},
		{Mul, 2, 3, 6},
		{Div, 3, 2, 1.5},
		{Div, 1, math.SmallestNonzeroFloat64, Number(math.Inf(1))},
		{Div, 0, 4, 0},
	}
	for _, c := range cases {
		got, err := c.op.apply(c.x, c.y)
		if assert.NoError(t, err, "%v %v %v", c.x, c.op, c.y) {
			assert.Equal(t, c.want, got, "%v %v %v", c.x, c.op, c.y)
		}
	}
}

func TestApplyUnknownOperator(t *testing.T) {
	_, err := Operator('^').apply(2, 3)
	var oerr *OperatorError
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, Operator('^'), oerr.Operator)
	assert.Equal(t, KindUnknownOperator, oerr.Kind())
}

func TestFold(t *testing.T) {
	cases := []struct {
		name   string
		in     Tokens
		tier   string
		passes []Tokens
	}{
		{
			"mul-chain",
			Tokens{Number(2), Mul, Number(3), Mul, Number(4)},
			tiers[0],
			[]Tokens{
				{Number(6), Mul, Number(4)},
				{Number(24)},
			},
		},
		{
			"sub-chain",
			Tokens{Number(1), Sub, Number(2), Sub, Number(3), Sub, Number(4), Sub, Number(5)},
			tiers[1],
			[]Tokens{
				{Number(-1), Sub, Number(-1), Sub, Number(5)},
				{Number(0), Sub, Number(5)},
				{Number(-5)},
			},
		},
		{
			"other-tier",
			Tokens{Number(2), Add, Number(3), Mul, Number(4), Mul, Number(5)},
			tiers[0],
			[]Tokens{
				{Number(2), Add, Number(12), Mul, Number(5)},
				{Number(2), Add, Number(60)},
				{Number(2), Add, Number(60)},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks := c.in
			for i, want := range c.passes {
				got, err := fold(toks, c.tier)
				require.NoError(t, err)
				if diff := pretty.Diff(want, got); len(diff) > 0 {
					t.Fatalf("pass %d over %v: want %v, got %v\n%s", i+1, toks, want, got, strings.Join(diff, "\n"))
				}
				toks = got
			}
		})
	}
}
