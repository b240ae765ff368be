package nearest

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/tourlen/geom"
)

// BucketIndex groups point identifiers that share an x-coordinate.
//
// Each bucket is keyed by the first identifier seen with its x-coordinate;
// Keys lists bucket keys in the order buckets were opened.
type BucketIndex struct {
	keys    []int
	buckets map[int][]int
	size    int
}

// NewBucketIndex walks order and opens a new bucket whenever the x-coordinate
// differs from the previous point's; otherwise the point joins the most
// recently opened bucket.
//
// order is expected to be sorted by x, then y (see geom.SortedByXY); this is
// not enforced. Unsorted input still yields a valid index, only with more
// buckets.
//
// Errors: geom.ErrUnknownPoint for an identifier without coordinates,
// geom.ErrDuplicateID for a repeated identifier.
//
// Complexity: O(n).
func NewBucketIndex(order []int, coords geom.CoordinateMap) (*BucketIndex, error) {
	idx := &BucketIndex{buckets: make(map[int][]int)}
	seen := make(map[int]struct{}, len(order))

	var (
		key   int
		prevX float64
	)
	for i, id := range order {
		p, err := coords.Lookup(id)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %d", geom.ErrDuplicateID, id)
		}
		seen[id] = struct{}{}

		if i == 0 || p.X() != prevX {
			key = id
			idx.keys = append(idx.keys, key)
		}
		idx.buckets[key] = append(idx.buckets[key], id)
		prevX = p.X()
	}
	idx.size = len(order)

	return idx, nil
}

// Keys returns the bucket keys in the order buckets were opened.
func (b *BucketIndex) Keys() []int { return slices.Clone(b.keys) }

// Bucket returns the members of the bucket keyed by key, in input order.
func (b *BucketIndex) Bucket(key int) []int { return slices.Clone(b.buckets[key]) }

// Buckets returns the number of buckets.
func (b *BucketIndex) Buckets() int { return len(b.keys) }

// Len returns the number of indexed identifiers.
func (b *BucketIndex) Len() int { return b.size }

// All iterates every member in scan order: buckets by key order, then members
// in input order.
func (b *BucketIndex) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, k := range b.keys {
			for _, id := range b.buckets[k] {
				if !yield(id) {
					return
				}
			}
		}
	}
}
