package heldkarp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourlen/geom"
)

// pair is an unordered pair of identifiers, stored lo ≤ hi.
type pair struct{ lo, hi int }

func makePair(a, b int) pair {
	if a > b {
		a, b = b, a
	}

	return pair{a, b}
}

// DistanceCache maps an unordered pair of point identifiers to the distance
// between them. The distance from a point to itself is always 0.
//
// A cache is owned by the caller; Solve only reads it.
type DistanceCache struct {
	d map[pair]float64
}

// NewEmptyCache returns a cache with no entries, to be filled with Set.
func NewEmptyCache() *DistanceCache {
	return &DistanceCache{d: make(map[pair]float64)}
}

// NewDistanceCache computes the Euclidean distance for every unordered pair of
// set, using coords. A point of set without coordinates yields ErrIncompleteGraph;
// a pair whose distance is not finite yields ErrInvalidDistance.
//
// Complexity: O(n²) time and space.
func NewDistanceCache(set geom.PointSet, coords geom.CoordinateMap) (*DistanceCache, error) {
	if err := coords.Covers(set); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIncompleteGraph, err)
	}
	n := set.Len()
	c := &DistanceCache{d: make(map[pair]float64, n*(n-1)/2)}
	for i := 0; i < n; i++ {
		a := set.At(i)
		pa := coords[a]
		for j := i + 1; j < n; j++ {
			b := set.At(j)
			d := geom.Distance(pa, coords[b])
			if math.IsInf(d, 0) || math.IsNaN(d) {
				return nil, fmt.Errorf("%w: d(%d,%d)=%v", ErrInvalidDistance, a, b, d)
			}
			c.d[makePair(a, b)] = d
		}
	}

	return c, nil
}

// Set records the distance between a and b.
// Distances must be finite and non-negative; a self pair must be 0.
func (c *DistanceCache) Set(a, b int, dist float64) error {
	if math.IsNaN(dist) || math.IsInf(dist, 0) || dist < 0 {
		return fmt.Errorf("%w: d(%d,%d)=%v", ErrInvalidDistance, a, b, dist)
	}
	if a == b {
		if dist != 0 {
			return fmt.Errorf("%w: d(%d,%d)=%v; self-distance must be 0", ErrInvalidDistance, a, b, dist)
		}
		return nil
	}
	c.d[makePair(a, b)] = dist

	return nil
}

// Lookup returns the distance between a and b and whether it is known.
// Lookup(a, a) is (0, true).
func (c *DistanceCache) Lookup(a, b int) (float64, bool) {
	if a == b {
		return 0, true
	}
	d, ok := c.d[makePair(a, b)]

	return d, ok
}

// Len returns the number of stored pairs.
func (c *DistanceCache) Len() int { return len(c.d) }

// matrix copies the distances of set into a dense row-major n×n slice indexed
// by set positions. Every pair must be present.
//
// Complexity: O(n²).
func (c *DistanceCache) matrix(set geom.PointSet) ([]float64, error) {
	n := set.Len()
	m := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := set.At(i), set.At(j)
			d, ok := c.Lookup(a, b)
			if !ok {
				return nil, fmt.Errorf("%w: no distance for pair (%d,%d)", ErrIncompleteGraph, a, b)
			}
			m[i*n+j] = d
			m[j*n+i] = d
		}
	}

	return m, nil
}
