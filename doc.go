// Package tourlen computes Travelling Salesman tour lengths over points in the
// plane, exactly or approximately.
//
// What is inside:
//
//	geom/       Point, Euclidean Distance, PointSet and CoordinateMap
//	subset/     bitmask sets and fixed-size subset enumeration around a source
//	heldkarp/   exact Held–Karp dynamic program (Θ(2ⁿ·n²), practical to n ≈ 20)
//	nearest/    x-coordinate bucket index and the nearest-neighbour heuristic
//	pointfile/  text and GeoJSON loaders, GeoJSON tour export
//	config/     YAML configuration for the command
//	cmd/tourlen command line front end
//
// The two solvers never interact; they share only the geometry. Both are
// synchronous, allocate their working state per call and keep no globals, so
// repeated calls on the same inputs return bit-identical results.
//
// Quick example:
//
//	set := geom.Range(3)
//	coords := geom.CoordinateMap{1: geom.Pt(0, 0), 2: geom.Pt(3, 4), 3: geom.Pt(12, 5)}
//	exact, _ := heldkarp.SolveCoordinates(set, coords) // 27.055…
//
//	go install github.com/katalvlaran/tourlen/cmd/tourlen@latest
package tourlen
