package schematic

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var sample = []string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}

func TestParseSymbols(t *testing.T) {
	tests := []struct {
		line string
		want []int
	}{
		{"467..114..", nil},
		{"467*.114..", []int{3}},
		{"...$.*....", []int{3, 5}},
		{`!"#$%&/()=?*+@`, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
		{"ab c-~", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseSymbols(tt.line)); diff != "" {
			t.Errorf("ParseSymbols(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestNewAlphabetIgnoresDigitsAndDots(t *testing.T) {
	a := NewAlphabet("*.5-")
	if got, want := a.ParseSymbols("5.*-"), []int{2, 3}; !cmp.Equal(got, want) {
		t.Errorf("ParseSymbols = %v; want %v", got, want)
	}
}

func TestParseNumbers(t *testing.T) {
	want := map[int]Number{
		0: {Col: 0, Len: 3, Value: 467},
		5: {Col: 5, Len: 3, Value: 114},
	}
	tests := []struct {
		line string
		want map[int]Number
	}{
		{"467..114..", want},
		{"467*.114..", want},
		{"...$.*....", map[int]Number{}},
		{"", map[int]Number{}},
		{"9", map[int]Number{0: {Col: 0, Len: 1, Value: 9}}},
		{"a12 b", map[int]Number{1: {Col: 1, Len: 2, Value: 12}}},
	}
	for _, tt := range tests {
		got, err := ParseNumbers(tt.line)
		if err != nil {
			t.Errorf("ParseNumbers(%q): %v", tt.line, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseNumbers(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

// The same numeral twice on a line used to be located at its first
// occurrence only. Each run now keeps its own column.
func TestParseNumbersRepeatedNumeral(t *testing.T) {
	got, err := ParseNumbers("12...12*")
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]Number{
		0: {Col: 0, Len: 2, Value: 12},
		5: {Col: 5, Len: 2, Value: 12},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	sum, err := PartNumberSum([]string{"12...12*"})
	if err != nil {
		t.Fatal(err)
	}
	if sum != 12 {
		t.Errorf("PartNumberSum = %d; want 12", sum)
	}
}

func TestParseNumbersMalformed(t *testing.T) {
	for _, line := range []string{
		"..12-..",
		"-12....",
		"..7~...",
		"99999999999999999999999",
	} {
		if _, err := ParseNumbers(line); !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("ParseNumbers(%q) error = %v; want ErrMalformedNumber", line, err)
		}
	}
}

func TestParseNumbersMinusAsSymbol(t *testing.T) {
	a := NewAlphabet(DefaultSymbols + "-")
	got, err := a.ParseNumbers("..12-..")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[int]Number{2: {Col: 2, Len: 2, Value: 12}}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPartNumberSum(t *testing.T) {
	got, err := PartNumberSum(sample)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4361 {
		t.Errorf("PartNumberSum = %d; want 4361", got)
	}
}

func TestPartNumbers(t *testing.T) {
	s, err := Parse(sample, Default())
	if err != nil {
		t.Fatal(err)
	}
	var got []int
	for _, n := range s.PartNumbers() {
		got = append(got, n.Value)
	}
	want := []int{467, 35, 633, 617, 592, 755, 664, 598}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PartNumbers mismatch (-want +got):\n%s", diff)
	}
}

func TestPartNumberSumIsPure(t *testing.T) {
	s, err := Parse(sample, Default())
	if err != nil {
		t.Fatal(err)
	}
	before := s.Rows.Hash()
	first := s.PartNumberSum()
	for n := 0; n < 3; n++ {
		if got := s.PartNumberSum(); got != first {
			t.Fatalf("PartNumberSum = %d; earlier run gave %d", got, first)
		}
	}
	if after := s.Rows.Hash(); after != before {
		t.Errorf("grid changed while evaluating")
	}
}

func TestPartNumberSumEdges(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"top left", []string{"1*"}, 1},
		{"bottom right", []string{"..", "*9"}, 9},
		{"below past last row", []string{"5.", ".."}, 0},
		{"right past last column", []string{".*", ".7"}, 7},
		{"diagonal", []string{"*..", ".42"}, 42},
		{"ragged rows", []string{"3", "...#", "10"}, 0},
		{"empty", nil, 0},
		{"no symbols", []string{"123", "456"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PartNumberSum(tt.lines)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("PartNumberSum = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestPartNumberCountedOnce(t *testing.T) {
	lines := []string{
		"*...*",
		".123.",
		"*.#.*",
	}
	got, err := PartNumberSum(lines)
	if err != nil {
		t.Fatal(err)
	}
	if got != 123 {
		t.Errorf("PartNumberSum = %d; want 123", got)
	}
}

func TestParseReportsRow(t *testing.T) {
	_, err := Parse([]string{"1..", "..2-"}, Default())
	if !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("Parse error = %v; want ErrMalformedNumber", err)
	}
	if want := "row 1: "; len(err.Error()) < len(want) || err.Error()[:len(want)] != want {
		t.Errorf("Parse error = %q; want prefix %q", err, want)
	}
}
