package calculator

import (
	"math"
	"strconv"
)

// Digits is the number of significant digits Format keeps in a result with a
// fractional part.
const Digits = 10

// Format renders a result for display. Integers are written without a
// decimal point. Other values are rounded to Digits significant digits and
// written in plain decimal notation with no trailing zeros, so that the
// output of Format is always a valid expression when x is finite.
// Infinities and NaN are written as +Inf, -Inf, and NaN.
func Format(x float64) string {
	switch {
	case math.IsInf(x, 0), math.IsNaN(x):
		return strconv.FormatFloat(x, 'g', -1, 64)
	case x == 0:
		// Includes negative zero.
		return "0"
	case math.Trunc(x) == x:
		return strconv.FormatFloat(x, 'f', 0, 64)
	}
	// Round through the decimal representation so that the rounding is
	// decimal rather than binary, then print the shortest text for the
	// rounded value.
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'e', Digits-1, 64), 64)
	if err != nil {
		panic("calculator: cannot reparse " + strconv.FormatFloat(x, 'g', -1, 64) + ": " + err.Error())
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
