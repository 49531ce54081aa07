package aoc

import (
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 if there are none.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit[T byte | rune](b T) bool {
	return b >= '0' && b <= '9'
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if !IsDigit(r) {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}
