package geom

import (
	"fmt"
	"iter"
	"slices"
)

// PointSet is an immutable set of point identifiers.
//
// Identifiers keep the order they were given in. That order defines each
// identifier's position (Index), which solvers use for dense tables.
type PointSet struct {
	ids   []int
	index map[int]int
}

// NewPointSet builds a PointSet from ids.
// It returns ErrInvalidID for a non-positive id and ErrDuplicateID for a repeat.
//
// Complexity: O(n) time and space.
func NewPointSet(ids ...int) (PointSet, error) {
	s := PointSet{
		ids:   make([]int, 0, len(ids)),
		index: make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		if id <= 0 {
			return PointSet{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
		}
		if _, dup := s.index[id]; dup {
			return PointSet{}, fmt.Errorf("%w: %d", ErrDuplicateID, id)
		}
		s.index[id] = len(s.ids)
		s.ids = append(s.ids, id)
	}

	return s, nil
}

// Range returns the PointSet {1, 2, …, n}. Range(0) is empty.
func Range(n int) PointSet {
	s := PointSet{
		ids:   make([]int, n),
		index: make(map[int]int, n),
	}
	for i := 0; i < n; i++ {
		s.ids[i] = i + 1
		s.index[i+1] = i
	}

	return s
}

// Len returns the number of identifiers.
func (s PointSet) Len() int { return len(s.ids) }

// Contains reports whether id belongs to s.
func (s PointSet) Contains(id int) bool {
	_, ok := s.index[id]
	return ok
}

// Index returns the position of id in s.
func (s PointSet) Index(id int) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// At returns the identifier at position i.
func (s PointSet) At(i int) int { return s.ids[i] }

// IDs returns a copy of the identifiers in set order.
func (s PointSet) IDs() []int { return slices.Clone(s.ids) }

// All iterates identifiers in set order.
func (s PointSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, id := range s.ids {
			if !yield(id) {
				return
			}
		}
	}
}
