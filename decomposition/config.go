package decomposition

import "github.com/aerogrid/dronepart/divider"

// Default tuning constants, matching HierarchicalDecomposition's defaults.
const (
	// DroneThreshold is the largest-connected-free-space area (in the
	// region's own units squared) below which a sub-region no longer
	// needs further splitting for single-drone dispatch to cover it.
	DroneThreshold = 5.0

	// CoverageRatioStop is the fraction of a sub-region's area that must
	// be covered by obstacles before the coverage stop is even considered.
	CoverageRatioStop = 0.90

	// DefaultMinDimensionThreshold is the smallest width or height a
	// sub-region's bounding box may have before recursion halts on it
	// regardless of coverage.
	DefaultMinDimensionThreshold = 1e-3

	// DefaultMaxDepth bounds recursion depth when no coverage stop is
	// reached first.
	DefaultMaxDepth = 3

	// DefaultTieThreshold is forwarded to axis.Select's NWCRT tie-break.
	DefaultTieThreshold = 1e-2
)

// Config parameterizes Decompose. Build one with DefaultConfig and the
// With* options rather than constructing it directly, so future fields
// get sensible zero-cost defaults.
type Config struct {
	MaxDepth              int
	Method                divider.Method
	MinDimensionThreshold float64
	CheckConnectivity     bool
	AllowFallbackAxis     bool
	TieThreshold          float64
	DroneThreshold        float64
	CoverageRatioStop     float64
}

// DefaultConfig mirrors HierarchicalDecomposition.__init__'s defaults:
// max_depth=3, numerical_method="newton", min_dimension_threshold=1e-3,
// check_connectivity=False, allow_fallback_axis=True.
func DefaultConfig() Config {
	return Config{
		MaxDepth:              DefaultMaxDepth,
		Method:                divider.MethodNewton,
		MinDimensionThreshold: DefaultMinDimensionThreshold,
		CheckConnectivity:     false,
		AllowFallbackAxis:     true,
		TieThreshold:          DefaultTieThreshold,
		DroneThreshold:        DroneThreshold,
		CoverageRatioStop:     CoverageRatioStop,
	}
}

// Option mutates a Config built from DefaultConfig.
type Option func(*Config)

// WithMaxDepth overrides the recursion depth limit. Panics if depth is
// negative: a negative depth bound is a programmer error, not a runtime
// condition Decompose should have to handle.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic("decomposition: WithMaxDepth: depth must be >= 0")
	}
	return func(c *Config) { c.MaxDepth = depth }
}

// WithNumericalMethod overrides the root-finding method the divider uses
// to locate each cut's division point.
func WithNumericalMethod(method divider.Method) Option {
	return func(c *Config) { c.Method = method }
}

// WithMinDimensionThreshold overrides the minimum bounding-box width or
// height below which recursion halts.
func WithMinDimensionThreshold(threshold float64) Option {
	return func(c *Config) { c.MinDimensionThreshold = threshold }
}

// WithCheckConnectivity enables the additional single-connected-free-
// space check in the validity guard (disabled by default, matching the
// original's check_connectivity=False).
func WithCheckConnectivity(check bool) Option {
	return func(c *Config) { c.CheckConnectivity = check }
}

// WithAllowFallbackAxis controls whether, after a failed partition
// attempt, axis selection is run once more and the attempt retried if it
// picks a different axis. axis.Select is deterministic, so the second run
// picks the same axis and no retry takes place.
func WithAllowFallbackAxis(allow bool) Option {
	return func(c *Config) { c.AllowFallbackAxis = allow }
}

// WithTieThreshold overrides the NWCRT tie-break threshold forwarded to
// axis.Select.
func WithTieThreshold(threshold float64) Option {
	return func(c *Config) { c.TieThreshold = threshold }
}

// WithDroneThreshold overrides the largest-free-space area below which
// the coverage stop accepts a sub-region as done.
func WithDroneThreshold(threshold float64) Option {
	return func(c *Config) { c.DroneThreshold = threshold }
}

// WithCoverageRatioStop overrides the minimum obstacle-covered fraction
// of a sub-region's area the coverage stop requires before it even
// checks DroneThreshold against the remaining free space.
func WithCoverageRatioStop(ratio float64) Option {
	if ratio < 0 || ratio > 1 {
		panic("decomposition: WithCoverageRatioStop: ratio must be in [0,1]")
	}
	return func(c *Config) { c.CoverageRatioStop = ratio }
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
