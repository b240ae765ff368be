package pointfile

import (
	"errors"
	"slices"

	"github.com/katalvlaran/tourlen/geom"
	"github.com/katalvlaran/tourlen/nearest"
)

// ErrMalformedInput indicates missing or non-numeric fields in the input.
var ErrMalformedInput = errors.New("pointfile: malformed input")

// Instance is one loaded TSP instance.
type Instance struct {
	// Declared is the point count announced by the input (-1 when the format has none).
	Declared int

	// Points holds identifiers 1…n.
	Points geom.PointSet

	// Coords maps each identifier to its point.
	Coords geom.CoordinateMap

	// Order lists identifiers in input order (after WithSort, sorted order).
	Order []int

	// Buckets groups identifiers by x-coordinate, built from Order.
	Buckets *nearest.BucketIndex

	// Sorted reports whether Order is sorted by x, then y.
	Sorted bool
}

// Options configures the loaders.
type Options struct {
	// Sort stably sorts points by x, then y, before identifiers are assigned.
	Sort bool
}

// Option configures a loader via functional arguments.
type Option func(*Options)

// WithSort sorts points by x, then y, so the bucket index precondition holds.
func WithSort() Option {
	return func(o *Options) { o.Sort = true }
}

// newInstance assigns identifiers 1…n to pts and builds every derived structure.
func newInstance(declared int, pts []geom.Point, o Options) (*Instance, error) {
	if o.Sort {
		pts = slices.Clone(pts)
		slices.SortStableFunc(pts, geom.CompareXY)
	}

	coords := make(geom.CoordinateMap, len(pts))
	order := make([]int, len(pts))
	for i, p := range pts {
		coords[i+1] = p
		order[i] = i + 1
	}

	idx, err := nearest.NewBucketIndex(order, coords)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Declared: declared,
		Points:   geom.Range(len(pts)),
		Coords:   coords,
		Order:    order,
		Buckets:  idx,
		Sorted:   slices.IsSortedFunc(pts, geom.CompareXY),
	}, nil
}
