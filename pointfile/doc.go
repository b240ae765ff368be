// Package pointfile loads TSP instances and hands the solvers what they consume:
// a PointSet, a CoordinateMap and the x-coordinate BucketIndex.
//
// Text format:
//
//	<count>
//	<x> <y>
//	<id> <x> <y>
//	…
//
// The first non-blank line is a point count; it is kept in Instance.Declared
// for framing checks and otherwise ignored. Every following non-blank line is
// one point with either two fields (x y) or three (id x y, id ignored).
// Identifiers are assigned 1, 2, 3, … in line order.
//
// GeoJSON: a FeatureCollection whose features are Point or MultiPoint
// geometries, decoded with github.com/paulmach/orb/geojson. Identifiers follow
// feature order, each MultiPoint contributing its points in turn. GeoJSON
// carries no point count, so Instance.Declared is -1. TourFeature goes the other way and renders a tour as a
// closed LineString.
//
// The bucket index assumes points sorted by x, then y. Loaders do not enforce
// it; Instance.Sorted reports whether it holds, and WithSort sorts the points
// before identifiers are assigned.
//
// All parse failures wrap ErrMalformedInput and name the offending line or
// feature.
package pointfile
