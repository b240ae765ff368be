package heldkarp

import (
	"context"
	"errors"
)

// Sentinel errors returned by the Held–Karp solver.
var (
	// ErrDegenerateInput indicates that no cycle can be formed: fewer than two
	// points, or the source point is not part of the PointSet.
	ErrDegenerateInput = errors.New("heldkarp: degenerate input")

	// ErrIncompleteGraph indicates that a required pair distance or memo entry
	// is absent, which means the PointSet and its distances disagree.
	ErrIncompleteGraph = errors.New("heldkarp: incomplete distance graph")

	// ErrTooManyPoints indicates a PointSet larger than Options.MaxPoints.
	ErrTooManyPoints = errors.New("heldkarp: too many points for exact solver")

	// ErrInvalidDistance indicates a negative, NaN or infinite distance, or
	// distances so large that a tour length is not representable.
	ErrInvalidDistance = errors.New("heldkarp: invalid distance")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("heldkarp: invalid option supplied")
)

const (
	// DefaultSource is the identifier every tour starts from unless overridden.
	DefaultSource = 1

	// DefaultMaxPoints bounds instance size by default; 2²⁰·20 memo entries ≈ 160 MiB.
	DefaultMaxPoints = 20

	// HardMaxPoints is the largest instance accepted even with WithMaxPoints;
	// its memo takes 2²⁴·24 entries = 3 GiB.
	HardMaxPoints = 24

	// MaxMemoBytes bounds the memo allocation of a single Solve.
	MaxMemoBytes = 4 << 30
)

// MemoBytes returns the size in bytes of the memo Solve allocates for n points.
func MemoBytes(n int) uint64 {
	if n <= 0 {
		return 0
	}

	return uint64(1)<<n * uint64(n) * 8
}

// Progress describes one problem size of the dynamic program.
type Progress struct {
	// Size is the subset cardinality being computed.
	Size int
	// Subsets is the number of subsets of that size containing the source.
	Subsets uint64
}

// Options configures Solve.
type Options struct {
	// Ctx is checked between problem sizes.
	Ctx context.Context

	// Source is the identifier the tour starts and ends at.
	Source int

	// MaxPoints rejects larger instances with ErrTooManyPoints.
	MaxPoints int

	// OnProblemSize is called before each problem size is computed.
	OnProblemSize func(Progress)

	err error
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// DefaultOptions returns:
//   - context.Background()
//   - Source DefaultSource
//   - MaxPoints DefaultMaxPoints
//   - a no-op OnProblemSize.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Source:        DefaultSource,
		MaxPoints:     DefaultMaxPoints,
		OnProblemSize: func(Progress) {},
	}
}

// WithContext sets the context checked between problem sizes.
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

// WithMaxPoints changes the instance size limit; 2 ≤ n ≤ HardMaxPoints.
func WithMaxPoints(n int) Option {
	return func(o *Options) {
		if n < 2 || n > HardMaxPoints {
			o.err = ErrOptionViolation
			return
		}
		o.MaxPoints = n
	}
}

// WithObserver registers fn to receive a Progress event per problem size.
func WithObserver(fn func(Progress)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProblemSize = fn
		}
	}
}
