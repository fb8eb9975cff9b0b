// Package calc is a guarded arithmetic utility. Division, exponentiation and
// factorial refuse inputs outside their safe ranges instead of overflowing.
package calc

import (
	"math"

	"currency-ledger/internal/errors"
)

// MaxFactorial bounds the factorial input range to [0, MaxFactorial].
const MaxFactorial = 10

var (
	ErrDivisionByZero     = errors.NewAppError(errors.InvalidArgument, "division by zero")
	ErrNonIntegerExponent = errors.NewAppError(errors.TypeError, "exponent must be an integer")
	ErrFactorialNegative  = errors.NewAppError(errors.InvalidArgument, "factorial of a negative number is undefined")
	ErrFactorialTooLarge  = errors.NewAppError(errors.InvalidArgument, "number too large for the onboard computer")
)

type Calculator struct{}

func New() Calculator {
	return Calculator{}
}

func (Calculator) Add(a, b float64) float64 {
	return a + b
}

func (Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power raises a to an integer exponent. A fractional exponent is a type
// error, not a range error.
func (Calculator) Power(a, b float64) (float64, error) {
	if b != math.Trunc(b) {
		return 0, ErrNonIntegerExponent
	}
	return math.Pow(a, b), nil
}

// Factorial accepts only the closed range [0, MaxFactorial] and fails with
// distinct errors for negative and too-large inputs.
func (Calculator) Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, ErrFactorialNegative
	}
	if n > MaxFactorial {
		return 0, ErrFactorialTooLarge
	}
	result := int64(1)
	for i := 2; i <= n; i++ {
		result *= int64(i)
	}
	return result, nil
}
