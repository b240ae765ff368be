// Package geom holds the planar primitives shared by every solver in tourlen:
// a 2D Point, the Euclidean distance between two points, the PointSet of city
// identifiers and the CoordinateMap that places each identifier in the plane.
//
// Identifiers are 1-based integers assigned by the loader in input order.
// A PointSet is immutable once built, and a CoordinateMap is treated as
// read-only for the lifetime of a solve.
//
// Points are backed by github.com/paulmach/orb so they convert freely to
// orb geometries (GeoJSON export, spatial indexes) without copying.
//
// Errors (sentinel):
//
//   - ErrInvalidID    if an identifier is zero or negative.
//   - ErrDuplicateID  if an identifier appears twice.
//   - ErrUnknownPoint if an identifier has no coordinates.
package geom
