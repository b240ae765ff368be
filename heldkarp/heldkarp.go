package heldkarp

import (
	"fmt"
	"math"
	"math/bits"
	"slices"

	"github.com/katalvlaran/tourlen/geom"
	"github.com/katalvlaran/tourlen/subset"
)

// Solve returns the exact minimum tour length over set, reading pairwise
// distances from cache. The tour starts and ends at Options.Source.
//
// Contracts:
//   - set has at least 2 points and contains the source.
//   - cache holds a distance for every unordered pair of set.
//
// Errors: ErrDegenerateInput, ErrIncompleteGraph, ErrTooManyPoints,
// ErrInvalidDistance, ErrOptionViolation, or the context error when Options.Ctx is done.
//
// Complexity: Θ(2ⁿ·n²) time, Θ(2ⁿ·n) memory.
func Solve(set geom.PointSet, cache *DistanceCache, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if cache == nil {
		return 0, fmt.Errorf("%w: nil distance cache", ErrIncompleteGraph)
	}

	n := set.Len()
	if n < 2 {
		return 0, fmt.Errorf("%w: %d point(s), need at least 2", ErrDegenerateInput, n)
	}
	if n > o.MaxPoints {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyPoints, n, o.MaxPoints)
	}
	if b := MemoBytes(n); b > MaxMemoBytes {
		return 0, fmt.Errorf("%w: memo needs %d bytes", ErrTooManyPoints, b)
	}
	src, ok := set.Index(o.Source)
	if !ok {
		return 0, fmt.Errorf("%w: source %d not in point set", ErrDegenerateInput, o.Source)
	}

	dist, err := cache.matrix(set)
	if err != nil {
		return 0, err
	}
	// +Inf marks an unpopulated memo entry, so no path sum may reach it.
	if bound := float64(n) * slices.Max(dist); math.IsInf(bound, 1) {
		return 0, fmt.Errorf("%w: tour length over %d points overflows", ErrInvalidDistance, n)
	}

	t := newTourMap(set)
	full := subset.Full(n)

	// Problem sizes in strictly increasing order: every subset of size p-1 is
	// final before the first subset of size p is relaxed.
	for p := 1; p <= n; p++ {
		if err = o.Ctx.Err(); err != nil {
			return 0, err
		}
		o.OnProblemSize(Progress{Size: p, Subsets: subset.Count(p, full)})

		switch p {
		case 1:
			t.put(subset.Of(src), src, 0)
		case 2:
			for v := 0; v < n; v++ {
				if v != src {
					t.put(subset.Of(src, v), v, dist[src*n+v])
				}
			}
		default:
			for s := range subset.All(p, full, src) {
				if err = t.relax(s, src, dist); err != nil {
					return 0, err
				}
			}
		}
	}

	// Close the cycle back to the source.
	best := math.Inf(1)
	for j := 0; j < n; j++ {
		if j == src {
			continue
		}
		c, err := t.get(full, j)
		if err != nil {
			return 0, err
		}
		if cand := c + dist[j*n+src]; cand < best {
			best = cand
		}
	}

	return best, nil
}

// SolveCoordinates builds a DistanceCache for set from coords and calls Solve.
func SolveCoordinates(set geom.PointSet, coords geom.CoordinateMap, opts ...Option) (float64, error) {
	cache, err := NewDistanceCache(set, coords)
	if err != nil {
		return 0, err
	}

	return Solve(set, cache, opts...)
}

// tourMap is the DP memo: cost of the shortest source-rooted path visiting
// exactly mask and ending at terminal, stored at mask*n + terminal.
type tourMap struct {
	n    int
	ids  []int
	cost []float64
}

func newTourMap(set geom.PointSet) *tourMap {
	n := set.Len()
	cost := make([]float64, (1<<n)*n)
	inf := math.Inf(1)
	for i := range cost {
		cost[i] = inf
	}

	return &tourMap{n: n, ids: set.IDs(), cost: cost}
}

func (t *tourMap) put(mask subset.Set, terminal int, c float64) {
	t.cost[int(mask)*t.n+terminal] = c
}

// get fails loudly on an entry that was never populated.
func (t *tourMap) get(mask subset.Set, terminal int) (float64, error) {
	c := t.cost[int(mask)*t.n+terminal]
	if math.IsInf(c, 1) {
		return 0, fmt.Errorf("%w: no entry for subset %v ending at %d",
			ErrIncompleteGraph, t.idsOf(mask), t.ids[terminal])
	}

	return c, nil
}

// relax fills cost(s, j) for every terminal j ∈ s∖{src}:
//
//	cost(s, j) = min over k ∈ s∖{src, j} of cost(s∖{j}, k) + d(k, j)
func (t *tourMap) relax(s subset.Set, src int, dist []float64) error {
	n := t.n
	body := s.Remove(src)
	for js := body; js != 0; js &= js - 1 {
		j := bits.TrailingZeros64(uint64(js))
		prev := s.Remove(j)

		best := math.Inf(1)
		for ks := body.Remove(j); ks != 0; ks &= ks - 1 {
			k := bits.TrailingZeros64(uint64(ks))
			c, err := t.get(prev, k)
			if err != nil {
				return err
			}
			if cand := c + dist[k*n+j]; cand < best {
				best = cand
			}
		}
		t.put(s, j, best)
	}

	return nil
}

func (t *tourMap) idsOf(mask subset.Set) []int {
	out := make([]int, 0, mask.Len())
	for _, p := range mask.Members() {
		out = append(out, t.ids[p])
	}

	return out
}
