package strip

import "errors"

var (
	// ErrInvalidAxis is returned when New is called with an Axis value
	// other than AxisX or AxisY.
	ErrInvalidAxis = errors.New("strip: axis must be AxisX or AxisY")

	// ErrEmptyRegion is returned when region has no area, so no events or
	// strips can be defined.
	ErrEmptyRegion = errors.New("strip: region has no area")
)
