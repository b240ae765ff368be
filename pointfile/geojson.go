package pointfile

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/tourlen/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// ReadGeoJSON parses a FeatureCollection of Point or MultiPoint features.
// Instance.Declared is -1: the format has no point count to check against.
func ReadGeoJSON(r io.Reader, opts ...Option) (*Instance, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	pts := make([]geom.Point, 0, len(fc.Features))
	for i, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Point:
			pts = append(pts, geom.Point(g))
		case orb.MultiPoint:
			for _, p := range g {
				pts = append(pts, geom.Point(p))
			}
		default:
			return nil, fmt.Errorf("%w: feature %d: unsupported geometry %T", ErrMalformedInput, i, f.Geometry)
		}
	}
	for i, p := range pts {
		if math.IsNaN(p.X()) || math.IsNaN(p.Y()) || math.IsInf(p.X(), 0) || math.IsInf(p.Y(), 0) {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrMalformedInput, i+1)
		}
	}

	return newInstance(-1, pts, o)
}

// TourFeature renders tour as a closed LineString feature. The feature
// carries the tour length in the "length" property and the visiting order in
// "tour".
func TourFeature(coords geom.CoordinateMap, tour []int) (*geojson.Feature, error) {
	if len(tour) == 0 {
		return nil, fmt.Errorf("%w: empty tour", ErrMalformedInput)
	}

	ls := make(orb.LineString, 0, len(tour)+1)
	for _, id := range tour {
		p, err := coords.Lookup(id)
		if err != nil {
			return nil, err
		}
		ls = append(ls, p.Orb())
	}
	// Close back to the start.
	ls = append(ls, ls[0])
	length := planar.Length(ls)

	f := geojson.NewFeature(ls)
	f.Properties["length"] = length
	f.Properties["tour"] = tour

	return f, nil
}
