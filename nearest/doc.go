// Package nearest builds an approximate TSP tour with the greedy
// nearest-neighbour heuristic.
//
// Overview:
//
//   - The walk starts at the source (identifier 1 by default) and repeatedly
//     moves to the closest unvisited point, adding that distance to the running
//     total. After n−1 steps it returns to the source to close the tour.
//   - Candidates are scanned through a BucketIndex: points grouped by
//     x-coordinate, buckets in first-seen order, members in input order. The
//     index is built once from input that is pre-sorted by x, then y, and it
//     fixes the scan order without re-sorting on every step.
//   - Ties go to the candidate met first in scan order (strict <), which keeps
//     the tour deterministic.
//
// Strategies:
//
//   - ScanBuckets (default) scans every unvisited point each step: O(n²) total.
//   - SpatialIndex asks an R-tree (github.com/tidwall/rtree) for the nearest
//     unvisited points and removes points as they are visited. Equal-distance
//     candidates are still resolved by bucket scan order, so both strategies
//     produce the same tour.
//
// Guarantees: exactly n−1 extension steps and a valid Hamiltonian cycle. The
// result is only locally greedy; it is never shorter than the optimum.
//
// Errors (sentinel):
//
//   - ErrEmptyPointSet    if the PointSet is empty.
//   - ErrSourceNotFound   if the source is not in the PointSet.
//   - ErrIncompleteGraph  if the index or the coordinates do not cover the PointSet.
//   - ErrOptionViolation  if an Option carries an invalid value.
package nearest
