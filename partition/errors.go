package partition

import "errors"

var (
	// ErrNoPartitions is returned when a strategy produced zero leaves,
	// which should not happen for a non-empty validated region but is
	// guarded against defensively before the stats pass.
	ErrNoPartitions = errors.New("partition: strategy produced no partitions")
)
