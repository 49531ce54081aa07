// Package calibration recovers calibration values from lines of text: the
// first and last digit of a line form a two-digit number.
package calibration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gearworks/aoc"
)

// ErrNoDigits is returned for a line without any digit.
var ErrNoDigits = errors.New("no digits")

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at line[i]. With spelled, the words
// one through nine count as digits too.
func digitAt(line string, i int, spelled bool) (int, bool) {
	if aoc.IsDigit(line[i]) {
		return int(line[i] - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for d, w := range words {
		if strings.HasPrefix(line[i:], w) {
			return d + 1, true
		}
	}
	return 0, false
}

// LineValue returns the calibration value of line. Spelled digits may
// overlap, so "eightwo" reads as 8 then 2.
func LineValue(line string, spelled bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, spelled)
		if !ok {
			continue
		}
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		return 0, fmt.Errorf("%w in %q", ErrNoDigits, line)
	}
	return first*10 + last, nil
}

// Sum returns the sum of the calibration values of lines.
func Sum(lines []string, spelled bool) (int, error) {
	vals := make([]int, 0, len(lines))
	for _, line := range lines {
		v, err := LineValue(line, spelled)
		if err != nil {
			return 0, err
		}
		vals = append(vals, v)
	}
	return aoc.Sum(vals...), nil
}
