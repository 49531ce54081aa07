package aoc

// Set is a set of comparable values.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](in ...T) Set[T] {
	s := make(Set[T], len(in))
	for _, v := range in {
		s.Add(v)
	}
	return s
}

// Add adds v and reports whether it was not already present.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}
