// Package schematic finds the part numbers in an engine schematic: the
// numbers in a grid of characters that touch a symbol, diagonals included.
package schematic

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"unicode"

	"github.com/gearworks/aoc"
	"golang.org/x/exp/maps"
)

// DefaultSymbols is the symbol alphabet used when none is configured.
const DefaultSymbols = `!"#$%&/()=?*+@`

// ErrMalformedNumber is returned when a digit run cannot be read as a
// number, either because it overflows or because it touches stray
// punctuation that is neither a separator nor a symbol.
var ErrMalformedNumber = errors.New("malformed number")

// Alphabet is an immutable set of symbol characters.
type Alphabet struct {
	set [256]bool
}

// NewAlphabet returns the alphabet made of the bytes in chars. Digits and
// '.' are never symbols and are ignored.
func NewAlphabet(chars string) Alphabet {
	var a Alphabet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c == '.' || aoc.IsDigit(c) {
			continue
		}
		a.set[c] = true
	}
	return a
}

var defaultAlphabet = NewAlphabet(DefaultSymbols)

// Default returns the alphabet of DefaultSymbols.
func Default() Alphabet { return defaultAlphabet }

// Contains reports whether c is a symbol.
func (a Alphabet) Contains(c byte) bool {
	return a.set[c]
}

// ParseSymbols returns the columns of line holding a symbol, ascending.
func (a Alphabet) ParseSymbols(line string) []int {
	var cols []int
	for i := 0; i < len(line); i++ {
		if a.Contains(line[i]) {
			cols = append(cols, i)
		}
	}
	return cols
}

// ParseSymbols is Default().ParseSymbols.
func ParseSymbols(line string) []int {
	return defaultAlphabet.ParseSymbols(line)
}

// Number is a maximal run of digits on one row. It covers columns
// Col through Col+Len-1.
type Number struct {
	Row   int
	Col   int
	Len   int
	Value int
}

// ParseNumbers returns the digit runs of line keyed by starting column. The
// returned numbers have Row 0.
func (a Alphabet) ParseNumbers(line string) (map[int]Number, error) {
	nums := make(map[int]Number)
	for i := 0; i < len(line); {
		if !aoc.IsDigit(line[i]) {
			i++
			continue
		}
		start := i
		for i < len(line) && aoc.IsDigit(line[i]) {
			i++
		}
		if a.isStray(line, start-1) || a.isStray(line, i) {
			return nil, fmt.Errorf("%w: %q at column %d", ErrMalformedNumber, strayRun(line, start, i), start)
		}
		v, err := strconv.Atoi(line[start:i])
		if err != nil {
			return nil, fmt.Errorf("%w: %q at column %d: %v", ErrMalformedNumber, line[start:i], start, err)
		}
		nums[start] = Number{Col: start, Len: i - start, Value: v}
	}
	return nums, nil
}

// ParseNumbers is Default().ParseNumbers.
func ParseNumbers(line string) (map[int]Number, error) {
	return defaultAlphabet.ParseNumbers(line)
}

// isStray reports whether line[i] is punctuation that is neither the '.'
// separator nor a symbol.
func (a Alphabet) isStray(line string, i int) bool {
	if i < 0 || i >= len(line) {
		return false
	}
	c := line[i]
	if c == '.' || a.Contains(c) || c >= unicode.MaxASCII {
		return false
	}
	r := rune(c)
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// strayRun returns the digits in [start, end) together with the byte on
// either side, for error messages.
func strayRun(line string, start, end int) string {
	start = max(start-1, 0)
	end = min(end+1, len(line))
	return line[start:end]
}

// Schematic is a parsed grid. It is not modified after Parse.
type Schematic struct {
	Rows    aoc.Grid[byte]
	Numbers map[int]map[int]Number // row -> starting column -> number
	Symbols aoc.Set[aoc.Pt]
}

// Parse indexes the numbers and symbols of lines.
func Parse(lines []string, alpha Alphabet) (*Schematic, error) {
	s := &Schematic{
		Rows:    aoc.ByteGrid(lines),
		Numbers: make(map[int]map[int]Number, len(lines)),
		Symbols: aoc.NewSet[aoc.Pt](),
	}
	for row, line := range lines {
		nums, err := alpha.ParseNumbers(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		for col, n := range nums {
			n.Row = row
			nums[col] = n
		}
		s.Numbers[row] = nums
		for _, col := range alpha.ParseSymbols(line) {
			s.Symbols.Add(aoc.Pt{X: col, Y: row})
		}
	}
	return s, nil
}

// adjacent reports whether any digit of n touches a symbol.
func (s *Schematic) adjacent(n Number) bool {
	found := false
	for cid := n.Col; cid < n.Col+n.Len && !found; cid++ {
		aoc.Pt{X: cid, Y: n.Row}.ForNonNegativeNeighbors(func(p aoc.Pt) bool {
			found = s.Symbols.Contains(p)
			return !found
		})
	}
	return found
}

// PartNumbers returns the numbers adjacent to at least one symbol, ordered
// by row then column.
func (s *Schematic) PartNumbers() []Number {
	var parts []Number
	seen := aoc.NewSet[Number]()
	rows := maps.Keys(s.Numbers)
	slices.Sort(rows)
	for _, row := range rows {
		cols := maps.Keys(s.Numbers[row])
		slices.Sort(cols)
		for _, col := range cols {
			n := s.Numbers[row][col]
			if s.adjacent(n) && seen.Add(n) {
				parts = append(parts, n)
			}
		}
	}
	return parts
}

// PartNumberSum returns the sum of the part numbers.
func (s *Schematic) PartNumberSum() int {
	var sum int
	for _, n := range s.PartNumbers() {
		sum += n.Value
	}
	return sum
}

// PartNumberSum parses lines with the default alphabet and returns the sum
// of their part numbers.
func PartNumberSum(lines []string) (int, error) {
	s, err := Parse(lines, defaultAlphabet)
	if err != nil {
		return 0, err
	}
	return s.PartNumberSum(), nil
}
