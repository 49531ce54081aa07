package aoc

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

// AtOk is like At but reports false for points outside the grid. Rows may
// have different lengths.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Size returns the width of the first row and the number of rows.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ByteGrid returns the lines as a grid of bytes. The lines are copied.
func ByteGrid(lines []string) Grid[byte] {
	g := make(Grid[byte], len(lines))
	for y, line := range lines {
		g[y] = []byte(line)
	}
	return g
}

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a fingerprint of the grid's contents.
func (g Grid[T]) Hash() deephash.Sum {
	hashersMu.Lock()
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ForNeighbors calls f for each of the 8 points around p until f returns
// false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// ForNonNegativeNeighbors is like ForNeighbors but skips points with a
// negative coordinate, so probes never leave the top or left edge.
func (p Pt2[T]) ForNonNegativeNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if n.X < 0 || n.Y < 0 {
			return true
		}
		return f(n)
	})
}
