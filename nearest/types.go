package nearest

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the heuristic solver.
var (
	// ErrEmptyPointSet indicates that there is nothing to visit.
	ErrEmptyPointSet = errors.New("nearest: point set is empty")

	// ErrSourceNotFound indicates that the starting identifier is not in the PointSet.
	ErrSourceNotFound = errors.New("nearest: source point not in point set")

	// ErrIncompleteGraph indicates that the bucket index or coordinate map does
	// not describe exactly the points of the PointSet.
	ErrIncompleteGraph = errors.New("nearest: index does not cover point set")

	// ErrInvalidDistance indicates coordinates so far apart that a distance or
	// the tour length is not representable.
	ErrInvalidDistance = errors.New("nearest: distance overflows")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("nearest: invalid option supplied")
)

// DefaultSource is the identifier every tour starts from unless overridden.
const DefaultSource = 1

// Strategy selects how the closest unvisited point is found.
type Strategy int

const (
	// ScanBuckets scans all points in bucket index order on every step.
	ScanBuckets Strategy = iota

	// SpatialIndex queries an R-tree of unvisited points.
	SpatialIndex
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case ScanBuckets:
		return "buckets"
	case SpatialIndex:
		return "rtree"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "buckets" or "rtree" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buckets", "scan", "":
		return ScanBuckets, nil
	case "rtree", "spatial":
		return SpatialIndex, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Step describes one extension of the tour.
type Step struct {
	// N is the step number, 1…n−1.
	N int
	// From and To are the identifiers joined by this step.
	From, To int
	// Distance is the length of the new edge.
	Distance float64
	// Total is the running length after this step, before closing.
	Total float64
}

// Result is the outcome of Solve.
type Result struct {
	// Tour is the visited sequence, starting at the source. The closing edge
	// back to the source is implied and not repeated.
	Tour []int

	// Length is the closed tour length.
	Length float64
}

// Options configures Solve.
type Options struct {
	// Ctx is checked before every extension step.
	Ctx context.Context

	// Source is the identifier the tour starts and ends at.
	Source int

	// Strategy selects the candidate search.
	Strategy Strategy

	// OnStep is called after each extension step.
	OnStep func(Step)

	err error
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// DefaultOptions returns:
//   - context.Background()
//   - Source DefaultSource
//   - Strategy ScanBuckets
//   - a no-op OnStep.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Source:   DefaultSource,
		Strategy: ScanBuckets,
		OnStep:   func(Step) {},
	}
}

// WithContext sets the context checked before each step.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSource overrides the starting identifier.
func WithSource(id int) Option {
	return func(o *Options) {
		if id <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.Source = id
	}
}

// WithStrategy selects the candidate search.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != ScanBuckets && s != SpatialIndex {
			o.err = ErrOptionViolation
			return
		}
		o.Strategy = s
	}
}

// WithObserver registers fn to receive every extension Step.
func WithObserver(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
