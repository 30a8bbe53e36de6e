package preprocess

import "errors"

var (
	// ErrInvalidGeometry is returned when the region, after Validate's
	// dedup-and-reject pass, still cannot represent a usable polygon.
	ErrInvalidGeometry = errors.New("preprocess: region geometry is invalid or degenerate")
)
