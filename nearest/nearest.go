package nearest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourlen/geom"
)

// Solve builds a nearest-neighbour tour over set, scanning candidates through idx.
//
// Contracts:
//   - set is non-empty and contains the source.
//   - idx indexes exactly the identifiers of set, and coords covers set.
//
// Errors: ErrEmptyPointSet, ErrSourceNotFound, ErrIncompleteGraph,
// ErrInvalidDistance, ErrOptionViolation, or the context error when Options.Ctx is done.
//
// Complexity: O(n²) with ScanBuckets; SpatialIndex is typically close to
// O(n log n) on spread-out inputs.
func Solve(set geom.PointSet, coords geom.CoordinateMap, idx *BucketIndex, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if set.Len() == 0 {
		return Result{}, ErrEmptyPointSet
	}
	if !set.Contains(o.Source) {
		return Result{}, fmt.Errorf("%w: %d", ErrSourceNotFound, o.Source)
	}

	w, err := newWalk(set, coords, idx)
	if err != nil {
		return Result{}, err
	}

	var f finder
	switch {
	// The R-tree orders by squared distance, which overflows first.
	case o.Strategy == SpatialIndex && !math.IsInf(w.diam*w.diam, 1):
		f = newTreeFinder(w)
	default:
		f = scanFinder{w}
	}

	n := len(w.ids)
	cur := w.rank[o.Source]
	w.visit(cur)
	f.remove(cur)

	tour := make([]int, 1, n)
	tour[0] = o.Source
	total := 0.0

	for step := 1; step < n; step++ {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, err
		}
		next, d := f.nearest(cur)
		if next < 0 {
			return Result{}, fmt.Errorf("%w: no candidate reachable from %d", ErrIncompleteGraph, w.ids[cur])
		}
		w.visit(next)
		f.remove(next)
		total += d
		tour = append(tour, w.ids[next])
		o.OnStep(Step{N: step, From: w.ids[cur], To: w.ids[next], Distance: d, Total: total})
		cur = next
	}

	// Close the tour.
	total += geom.Distance(w.pts[cur], w.pts[w.rank[o.Source]])

	return Result{Tour: tour, Length: total}, nil
}

// TourLength is Solve reduced to the closed tour length.
func TourLength(set geom.PointSet, coords geom.CoordinateMap, idx *BucketIndex, opts ...Option) (float64, error) {
	res, err := Solve(set, coords, idx, opts...)
	if err != nil {
		return 0, err
	}

	return res.Length, nil
}

// walk is the per-solve state: points in scan order, their coordinates, and
// the visited flags. Positions in these slices are scan ranks.
type walk struct {
	ids     []int
	pts     []geom.Point
	rank    map[int]int
	visited []bool
	diam    float64
}

// newWalk lays set out in idx scan order and checks that idx and coords
// describe exactly the points of set, and that the tour length is finite.
func newWalk(set geom.PointSet, coords geom.CoordinateMap, idx *BucketIndex) (*walk, error) {
	if idx == nil {
		return nil, fmt.Errorf("%w: nil bucket index", ErrIncompleteGraph)
	}
	if idx.Len() != set.Len() {
		return nil, fmt.Errorf("%w: index holds %d points, set holds %d", ErrIncompleteGraph, idx.Len(), set.Len())
	}

	n := set.Len()
	w := &walk{
		ids:     make([]int, 0, n),
		pts:     make([]geom.Point, 0, n),
		rank:    make(map[int]int, n),
		visited: make([]bool, n),
	}
	for id := range idx.All() {
		if !set.Contains(id) {
			return nil, fmt.Errorf("%w: indexed id %d not in set", ErrIncompleteGraph, id)
		}
		p, err := coords.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIncompleteGraph, err)
		}
		w.rank[id] = len(w.ids)
		w.ids = append(w.ids, id)
		w.pts = append(w.pts, p)
	}
	// Every step and the closing edge are bounded by the diameter.
	w.diam = geom.Diameter(w.pts)
	if bound := float64(n) * w.diam; math.IsInf(bound, 0) || math.IsNaN(bound) {
		return nil, fmt.Errorf("%w: %d points span %v", ErrInvalidDistance, n, w.diam)
	}

	return w, nil
}

func (w *walk) visit(i int) { w.visited[i] = true }

// finder locates the closest unvisited point to the point at rank cur.
// nearest returns rank -1 when no candidate has a comparable distance.
type finder interface {
	nearest(cur int) (rank int, dist float64)
	remove(rank int)
}

// scanFinder scans every rank in order; the first strict minimum wins.
type scanFinder struct{ w *walk }

func (s scanFinder) nearest(cur int) (int, float64) {
	var (
		best  = -1
		bestD = math.Inf(1)
		from  = s.w.pts[cur]
	)
	for i, p := range s.w.pts {
		if i == cur || s.w.visited[i] {
			continue
		}
		if d := geom.Distance(from, p); d < bestD {
			best, bestD = i, d
		}
	}

	return best, bestD
}

func (scanFinder) remove(int) {}
