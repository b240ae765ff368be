package geom

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/paulmach/orb"
)

// Point is an immutable pair of planar coordinates.
// Two points are equal only when both coordinates are exactly equal,
// so the built-in == operator is the equality test.
type Point orb.Point

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

// X returns the horizontal coordinate.
func (p Point) X() float64 { return p[0] }

// Y returns the vertical coordinate.
func (p Point) Y() float64 { return p[1] }

// Orb returns p as an orb.Point.
func (p Point) Orb() orb.Point { return orb.Point(p) }

// DistanceTo returns the Euclidean distance from p to q.
func (p Point) DistanceTo(q Point) float64 { return Distance(p, q) }

// String implements fmt.Stringer.
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p[0], p[1]) }

// Distance returns the Euclidean distance between a and b.
// It is symmetric and Distance(a, a) == 0. The result is finite whenever the
// true distance is representable, even for coordinates beyond 1e154.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}

// Diameter returns the diagonal of the bounding box of pts, an upper bound
// on the distance between any two of them. It is 0 for fewer than two points.
func Diameter(pts []Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	mp := make(orb.MultiPoint, len(pts))
	for i, p := range pts {
		mp[i] = orb.Point(p)
	}
	b := mp.Bound()

	return math.Hypot(b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y())
}

// CoordinateMap maps a point identifier to its coordinates.
// It is built once by the loader and must not be mutated during a solve.
type CoordinateMap map[int]Point

// Lookup returns the coordinates of id, or ErrUnknownPoint.
func (m CoordinateMap) Lookup(id int) (Point, error) {
	p, ok := m[id]
	if !ok {
		return Point{}, fmt.Errorf("%w: id %d", ErrUnknownPoint, id)
	}

	return p, nil
}

// Covers verifies that every identifier of set has coordinates.
// The error names the first missing identifier in set order.
//
// Complexity: O(n).
func (m CoordinateMap) Covers(set PointSet) error {
	for _, id := range set.ids {
		if _, ok := m[id]; !ok {
			return fmt.Errorf("%w: id %d", ErrUnknownPoint, id)
		}
	}

	return nil
}

// Between returns the distance between the points identified by a and b.
func (m CoordinateMap) Between(a, b int) (float64, error) {
	pa, err := m.Lookup(a)
	if err != nil {
		return 0, err
	}
	pb, err := m.Lookup(b)
	if err != nil {
		return 0, err
	}

	return Distance(pa, pb), nil
}

// CompareXY orders points by x, then by y.
func CompareXY(a, b Point) int {
	if c := cmp.Compare(a[0], b[0]); c != 0 {
		return c
	}

	return cmp.Compare(a[1], b[1])
}

// SortedByXY reports whether the identifiers in order are sorted by x, then y.
// Identifiers without coordinates make the order unsorted.
//
// Complexity: O(n).
func SortedByXY(order []int, coords CoordinateMap) bool {
	pts := make([]Point, 0, len(order))
	for _, id := range order {
		p, ok := coords[id]
		if !ok {
			return false
		}
		pts = append(pts, p)
	}

	return slices.IsSortedFunc(pts, CompareXY)
}
