// Package basen converts non-negative integers to and from their base-n digits.
package basen

import "fmt"

// Digits returns the base-n digits of x, most significant digit first.
// Zero maps to the single digit [0]. It panics if x is negative or n < 2.
func Digits(x, n int64) []uint64 {
	if x < 0 {
		panic(fmt.Sprintf("basen: negative value %d", x))
	}
	if n < 2 {
		panic(fmt.Sprintf("basen: invalid base %d", n))
	}
	if x == 0 {
		return []uint64{0}
	}

	var digits []uint64
	for x > 0 {
		digits = append(digits, uint64(x%n))
		x /= n
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// Value is the inverse of Digits. Overflow is not checked.
func Value(digits []uint64, n int64) int64 {
	var x int64
	for _, d := range digits {
		x = x*n + int64(d)
	}
	return x
}
