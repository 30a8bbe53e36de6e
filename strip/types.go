package strip

import "github.com/aerogrid/dronepart/geom"

// Axis selects the sweep direction: AxisX sweeps left-to-right (events
// are x-coordinates), AxisY sweeps bottom-to-top (events are
// y-coordinates).
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String implements fmt.Stringer for log-friendly output.
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Key identifies one strip by its bounding event coordinates.
type Key struct {
	Prev, Curr float64
}

// Record describes one strip: the event interval it spans and its
// axis-aligned bounding box (full region extent on the cross-axis).
type Record struct {
	Prev, Curr float64
	Box        geom.Box
}
