// Package heldkarp computes the exact minimum tour length of a planar TSP
// instance with the Held–Karp dynamic program.
//
// Overview:
//
//   - States are (S, j): S is a subset of visited points that contains the
//     source, j ∈ S is the terminal point. cost(S, j) is the shortest path that
//     starts at the source, visits exactly S and ends at j.
//   - Problem sizes p = |S| are processed in strictly increasing order:
//     p = 1 is the source alone (cost 0), p = 2 are direct distances, and for
//     p ≥ 3 every subset from the subset enumerator is relaxed with
//     cost(S, j) = min over k ∈ S∖{source, j} of cost(S∖{j}, k) + d(k, j).
//   - The tour closes with min over j ≠ source of cost(Full, j) + d(j, source).
//
// Representation:
//
//   - Subsets are bitmasks over PointSet positions (see package subset).
//   - The memo table (TourMap) is a flat []float64 addressed by mask*n + j.
//     +Inf marks an entry that was never populated; reading one is reported
//     as ErrIncompleteGraph instead of silently producing a wrong answer.
//   - Pairwise distances come from a DistanceCache built eagerly before the
//     DP starts.
//
// Complexity:
//
//   - Time:   Θ(2ⁿ · n²)
//   - Memory: Θ(2ⁿ · n)
//
// This growth is intrinsic to Held–Karp. It is practical up to roughly
// n ≈ 20, which is the default MaxPoints; callers can raise the limit with
// WithMaxPoints up to HardMaxPoints. Long solves can be bounded with
// WithContext, which is checked between problem sizes, and observed with
// WithObserver.
//
// Errors (sentinel):
//
//   - ErrDegenerateInput  if the PointSet has fewer than two points or lacks the source.
//   - ErrIncompleteGraph  if a pair distance or a memo entry is missing.
//   - ErrTooManyPoints    if the PointSet exceeds the configured MaxPoints.
//   - ErrInvalidDistance  if a cache entry is negative, NaN or infinite.
//   - ErrOptionViolation  if an Option carries an invalid value.
//
// Only the tour length is returned; the tour itself is not reconstructed.
package heldkarp
