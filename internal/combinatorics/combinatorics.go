// Package combinatorics has the exact integer arithmetic needed to count
// anagrams. Everything here is uint64 and fails loudly instead of wrapping.
package combinatorics

import (
	"errors"
	"math/bits"
)

// ErrOverflow is returned when a result does not fit in a uint64.
var ErrOverflow = errors.New("input too large")

// Factorial returns n!. Anything n <= 1 is 1.
func Factorial(n int) (uint64, error) {
	acc := uint64(1)
	for i := 2; i <= n; i++ {
		hi, lo := bits.Mul64(acc, uint64(i))
		if hi != 0 {
			return 0, ErrOverflow
		}
		acc = lo
	}
	return acc, nil
}

// Multinomial returns sum(counts)! / prod(counts[i]!), the number of distinct
// arrangements of a multiset with the given letter multiplicities.
func Multinomial(counts []int) (uint64, error) {
	total := 0
	denominator := uint64(1)
	for _, c := range counts {
		total += c
		f, err := Factorial(c)
		if err != nil {
			return 0, err
		}
		hi, lo := bits.Mul64(denominator, f)
		if hi != 0 {
			return 0, ErrOverflow
		}
		denominator = lo
	}
	numerator, err := Factorial(total)
	if err != nil {
		return 0, err
	}
	// Always exact; the multinomial coefficient is an integer.
	return numerator / denominator, nil
}

// MulDiv returns a*b/c without losing the high bits of a*b. c must not be 0.
func MulDiv(a, b, c uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi >= c {
		return 0, ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, c)
	return q, nil
}

// CheckedMul returns a*b, or ErrOverflow if it wraps.
func CheckedMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// CheckedAdd returns a+b, or ErrOverflow if it wraps.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}
