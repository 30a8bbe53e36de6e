package kdtree

import "errors"

var (
	// ErrNilRegion is returned when NaivePartition or HalfPerimeterPartition
	// is called with a nil or empty top-level region.
	ErrNilRegion = errors.New("kdtree: region is nil or empty")
)
