package divider

import "errors"

var (
	// ErrNoStripOfInterest is returned when the strip manager has no
	// strips at all (a region with no obstacle-induced or boundary
	// events), so no crossing strip can be identified.
	ErrNoStripOfInterest = errors.New("divider: no strip of interest found")

	// ErrDegenerateCut is returned by DivideRegion when the requested cut
	// coincides with a region bound, or clipping leaves either subregion
	// empty.
	ErrDegenerateCut = errors.New("divider: cut produces an empty or degenerate subregion")
)
