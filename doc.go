// Package calculator implements the evaluator behind a keypad calculator.
//
// An expression is what a user composes by pressing digits, a decimal point,
// and the four operators + - × ÷, e.g. "2+3×4". There are no brackets,
// functions, or exponents. Multiplication and division bind tighter than
// addition and subtraction. Within one precedence level, each pass from left
// to right folds non-overlapping pairs of numbers, and passes repeat until
// nothing more folds: "5-3-1" is (5-3)-1 = 1, but "10-1-1-1" is
// (10-1)-(1-1) = 9. A minus sign at the start of an expression or
// directly after another operator negates the number that follows it.
//
// Spaces may appear anywhere, even inside numbers: "1 2+3" is 15.
//
// Evaluation is a pure function of its input. Every failure is reported as an
// Error whose Kind identifies what went wrong, and no partial result is ever
// returned. Callers that display expressions are expected to leave the
// expression as it was when evaluation fails.
//
package calculator
