package nearest

import (
	"math"

	"github.com/katalvlaran/tourlen/geom"
	"github.com/tidwall/rtree"
)

// treeFinder keeps the unvisited points in an R-tree keyed by scan rank.
type treeFinder struct {
	w  *walk
	tr rtree.RTreeG[int]
}

func newTreeFinder(w *walk) *treeFinder {
	f := &treeFinder{w: w}
	for i, p := range w.pts {
		f.tr.Insert([2]float64(p), [2]float64(p), i)
	}

	return f
}

// nearest walks the tree outward from cur. Items arrive in non-decreasing
// distance, so the walk stops at the first point farther than the best one;
// among equal distances the lowest scan rank wins, matching scanFinder.
func (f *treeFinder) nearest(cur int) (int, float64) {
	var (
		best   = -1
		bestD  = math.Inf(1)
		target = [2]float64(f.w.pts[cur])
	)
	f.tr.Nearby(
		rtree.BoxDist[float64, int](target, target, nil),
		func(_, _ [2]float64, rank int, _ float64) bool {
			if rank == cur || f.w.visited[rank] {
				return true
			}
			d := geom.Distance(f.w.pts[cur], f.w.pts[rank])
			if math.IsNaN(d) {
				return true
			}
			switch {
			case d < bestD:
				best, bestD = rank, d
			case d == bestD:
				if best >= 0 && rank < best {
					best = rank
				}
			default:
				return false
			}
			return true
		},
	)

	return best, bestD
}

func (f *treeFinder) remove(rank int) {
	p := f.w.pts[rank]
	f.tr.Delete([2]float64(p), [2]float64(p), rank)
}
