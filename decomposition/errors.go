package decomposition

import "errors"

var (
	// ErrNilRegion is returned when Decompose is called with a nil or
	// empty top-level region; there is nothing to partition.
	ErrNilRegion = errors.New("decomposition: region is nil or empty")
)
