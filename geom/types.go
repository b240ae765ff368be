package geom

import "errors"

// Sentinel errors returned by geom constructors and lookups.
var (
	// ErrInvalidID indicates an identifier that is not a positive integer.
	ErrInvalidID = errors.New("geom: point identifier must be positive")

	// ErrDuplicateID indicates an identifier listed more than once.
	ErrDuplicateID = errors.New("geom: duplicate point identifier")

	// ErrUnknownPoint indicates an identifier without an entry in the CoordinateMap.
	ErrUnknownPoint = errors.New("geom: point has no coordinates")
)
