package nearest_test

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/katalvlaran/tourlen/geom"
	"github.com/katalvlaran/tourlen/heldkarp"
	"github.com/katalvlaran/tourlen/nearest"
	"github.com/stretchr/testify/require"
)

// fixture holds one heuristic instance with ids 1..n in input order.
type fixture struct {
	set    geom.PointSet
	coords geom.CoordinateMap
	idx    *nearest.BucketIndex
}

func newFixture(t testing.TB, pts ...geom.Point) fixture {
	t.Helper()
	coords := make(geom.CoordinateMap, len(pts))
	order := make([]int, len(pts))
	for i, p := range pts {
		coords[i+1] = p
		order[i] = i + 1
	}
	idx, err := nearest.NewBucketIndex(order, coords)
	require.NoError(t, err)

	return fixture{set: geom.Range(len(pts)), coords: coords, idx: idx}
}

// sortedRandom returns n random points sorted by x then y.
func sortedRandom(rng *rand.Rand, n int, grid bool) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		if grid {
			pts[i] = geom.Pt(float64(rng.IntN(5)), float64(rng.IntN(5)))
		} else {
			pts[i] = geom.Pt(rng.Float64()*100, rng.Float64()*100)
		}
	}
	slices.SortStableFunc(pts, geom.CompareXY)

	return pts
}

var strategies = []nearest.Strategy{nearest.ScanBuckets, nearest.SpatialIndex}

// ------------------------------------------------------------------------
// 1. Known tours.
// ------------------------------------------------------------------------

func TestSolve_UnitSquareTieBreak(t *testing.T) {
	// From 1, ids 2 and 3 are both at distance 1; 2 comes first in scan order.
	f := newFixture(t, geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0), geom.Pt(1, 1))
	for _, s := range strategies {
		res, err := nearest.Solve(f.set, f.coords, f.idx, nearest.WithStrategy(s))
		require.NoError(t, err, s.String())
		require.Equal(t, []int{1, 2, 4, 3}, res.Tour, s.String())
		require.InDelta(t, 4.0, res.Length, 1e-12, s.String())
	}
}

func TestSolve_Collinear(t *testing.T) {
	f := newFixture(t, geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(3, 0), geom.Pt(7, 0))
	got, err := nearest.TourLength(f.set, f.coords, f.idx)
	require.NoError(t, err)
	require.Equal(t, 14.0, got)
}

func TestSolve_GreedyIsNotOptimal(t *testing.T) {
	// Greedy zigzags 0 → 1 → -1.4 → 3.6; the optimum sweeps the line once each way.
	f := newFixture(t, geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(-1.4, 0), geom.Pt(3.6, 0))
	res, err := nearest.Solve(f.set, f.coords, f.idx)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, res.Tour)
	require.InDelta(t, 1+2.4+5+3.6, res.Length, 1e-9)

	opt, err := heldkarp.SolveCoordinates(f.set, f.coords)
	require.NoError(t, err)
	require.InDelta(t, 10.0, opt, 1e-9)
	require.Greater(t, res.Length, opt)
}

func TestSolve_SinglePoint(t *testing.T) {
	f := newFixture(t, geom.Pt(4, 2))
	res, err := nearest.Solve(f.set, f.coords, f.idx)
	require.NoError(t, err)
	require.Equal(t, []int{1}, res.Tour)
	require.Zero(t, res.Length)
}

func TestSolve_LargeCoordinates(t *testing.T) {
	f := newFixture(t, geom.Pt(0, 0), geom.Pt(1e200, 0), geom.Pt(1e200, 1e200))
	for _, s := range []nearest.Strategy{nearest.ScanBuckets, nearest.SpatialIndex} {
		res, err := nearest.Solve(f.set, f.coords, f.idx, nearest.WithStrategy(s))
		require.NoError(t, err, s)
		require.Equal(t, []int{1, 2, 3}, res.Tour, s)
		require.InEpsilon(t, (2+math.Sqrt2)*1e200, res.Length, 1e-12, s)
	}
}

func TestSolve_LengthOverflow(t *testing.T) {
	f := newFixture(t, geom.Pt(-1e308, 0), geom.Pt(1e308, 0))
	_, err := nearest.Solve(f.set, f.coords, f.idx)
	require.ErrorIs(t, err, nearest.ErrInvalidDistance)

	// Each distance is finite but three of them are not.
	f = newFixture(t, geom.Pt(0, 0), geom.Pt(1.5e308, 0), geom.Pt(1.5e308, 1))
	_, err = nearest.Solve(f.set, f.coords, f.idx)
	require.ErrorIs(t, err, nearest.ErrInvalidDistance)
}

func TestSolve_CustomSource(t *testing.T) {
	f := newFixture(t, geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(3, 0), geom.Pt(7, 0))
	res, err := nearest.Solve(f.set, f.coords, f.idx, nearest.WithSource(4))
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 2, 1}, res.Tour)
	require.Equal(t, 14.0, res.Length)
}

// ------------------------------------------------------------------------
// 2. Properties.
// ------------------------------------------------------------------------

func TestSolve_NeverBeatsExact(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for n := 2; n <= 9; n++ {
		f := newFixture(t, sortedRandom(rng, n, false)...)
		heur, err := nearest.TourLength(f.set, f.coords, f.idx)
		require.NoError(t, err)
		exact, err := heldkarp.SolveCoordinates(f.set, f.coords)
		require.NoError(t, err)
		require.GreaterOrEqual(t, heur, exact-1e-9, "n=%d", n)
	}
}

func TestSolve_VisitsEveryPointOnce(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	f := newFixture(t, sortedRandom(rng, 60, false)...)

	var steps []nearest.Step
	res, err := nearest.Solve(f.set, f.coords, f.idx, nearest.WithObserver(func(s nearest.Step) {
		steps = append(steps, s)
	}))
	require.NoError(t, err)
	require.Len(t, steps, 59)
	require.Equal(t, 1, res.Tour[0])

	sorted := slices.Clone(res.Tour)
	slices.Sort(sorted)
	require.Equal(t, f.set.IDs(), sorted)

	// Recompute the closed length from the tour.
	sum := 0.0
	for i := 1; i < len(res.Tour); i++ {
		sum += geom.Distance(f.coords[res.Tour[i-1]], f.coords[res.Tour[i]])
		require.Equal(t, res.Tour[i], steps[i-1].To)
		require.Equal(t, i, steps[i-1].N)
	}
	require.InDelta(t, sum, steps[len(steps)-1].Total, 1e-9)
	sum += geom.Distance(f.coords[res.Tour[len(res.Tour)-1]], f.coords[1])
	require.InDelta(t, sum, res.Length, 1e-9)
}

func TestSolve_StrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	for round := 0; round < 20; round++ {
		// Grid inputs produce many equal distances and coincident points.
		f := newFixture(t, sortedRandom(rng, 2+rng.IntN(40), round%2 == 0)...)

		scan, err := nearest.Solve(f.set, f.coords, f.idx)
		require.NoError(t, err)
		tree, err := nearest.Solve(f.set, f.coords, f.idx, nearest.WithStrategy(nearest.SpatialIndex))
		require.NoError(t, err)

		require.Equal(t, scan.Tour, tree.Tour, "round %d", round)
		require.Equal(t, math.Float64bits(scan.Length), math.Float64bits(tree.Length), "round %d", round)
	}
}

func TestSolve_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	f := newFixture(t, sortedRandom(rng, 30, false)...)
	for _, s := range strategies {
		a, err := nearest.Solve(f.set, f.coords, f.idx, nearest.WithStrategy(s))
		require.NoError(t, err)
		b, err := nearest.Solve(f.set, f.coords, f.idx, nearest.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

// ------------------------------------------------------------------------
// 3. Cancellation and errors.
// ------------------------------------------------------------------------

func TestSolve_ContextCanceled(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 3))
	f := newFixture(t, sortedRandom(rng, 10, false)...)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := nearest.Solve(f.set, f.coords, f.idx,
		nearest.WithContext(ctx),
		nearest.WithObserver(func(s nearest.Step) {
			if s.N == 3 {
				cancel()
			}
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_Errors(t *testing.T) {
	f := newFixture(t, geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2))

	_, err := nearest.Solve(geom.Range(0), geom.CoordinateMap{}, f.idx)
	require.ErrorIs(t, err, nearest.ErrEmptyPointSet)

	set, err := geom.NewPointSet(2, 3, 4)
	require.NoError(t, err)
	_, err = nearest.Solve(set, f.coords, f.idx)
	require.ErrorIs(t, err, nearest.ErrSourceNotFound)

	_, err = nearest.Solve(f.set, f.coords, nil)
	require.ErrorIs(t, err, nearest.ErrIncompleteGraph)

	// Index covers fewer points than the set.
	small := newFixture(t, geom.Pt(0, 0), geom.Pt(1, 1))
	_, err = nearest.Solve(f.set, f.coords, small.idx)
	require.ErrorIs(t, err, nearest.ErrIncompleteGraph)

	// Index with the right size but a foreign id.
	coords := geom.CoordinateMap{1: geom.Pt(0, 0), 2: geom.Pt(1, 1), 9: geom.Pt(2, 2)}
	foreign, err := nearest.NewBucketIndex([]int{1, 2, 9}, coords)
	require.NoError(t, err)
	_, err = nearest.Solve(f.set, f.coords, foreign)
	require.ErrorIs(t, err, nearest.ErrIncompleteGraph)

	// Coordinates dropped after indexing.
	partial := geom.CoordinateMap{1: geom.Pt(0, 0), 2: geom.Pt(1, 1)}
	_, err = nearest.Solve(f.set, partial, f.idx)
	require.ErrorIs(t, err, nearest.ErrIncompleteGraph)
	require.ErrorIs(t, err, geom.ErrUnknownPoint)

	_, err = nearest.Solve(f.set, f.coords, f.idx, nearest.WithSource(-1))
	require.ErrorIs(t, err, nearest.ErrOptionViolation)
	_, err = nearest.Solve(f.set, f.coords, f.idx, nearest.WithStrategy(nearest.Strategy(7)))
	require.ErrorIs(t, err, nearest.ErrOptionViolation)
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]nearest.Strategy{
		"buckets": nearest.ScanBuckets,
		"":        nearest.ScanBuckets,
		"RTree":   nearest.SpatialIndex,
		"spatial": nearest.SpatialIndex,
	} {
		got, err := nearest.ParseStrategy(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := nearest.ParseStrategy("kdtree")
	require.ErrorIs(t, err, nearest.ErrOptionViolation)

	require.Equal(t, "buckets", nearest.ScanBuckets.String())
	require.Equal(t, "rtree", nearest.SpatialIndex.String())
	require.Equal(t, "Strategy(9)", nearest.Strategy(9).String())
}
