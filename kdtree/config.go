package kdtree

// Default tuning constants, matching both original classes' defaults.
const (
	DefaultMinDimensionThreshold = 1e-3
	DefaultDroneThreshold        = 5.0
	DefaultCoverageRatioStop     = 0.90
)

// Config parameterizes both NaivePartition and HalfPerimeterPartition.
// Build one with DefaultConfig and the With* options.
type Config struct {
	MaxDepth              int
	MinDimensionThreshold float64
	AdvancedChecks        bool
	CheckConnectivity     bool
	DroneThreshold        float64
	CoverageRatioStop     float64
}

// DefaultConfig mirrors both classes' __init__ defaults:
// min_area_threshold=1e-3, advanced_checks=False, check_connectivity=False.
// MaxDepth has no universal default in the original (it is a required
// constructor argument); 3 matches the hierarchical decomposition's own
// default so the baselines are comparable out of the box.
func DefaultConfig() Config {
	return Config{
		MaxDepth:              3,
		MinDimensionThreshold: DefaultMinDimensionThreshold,
		AdvancedChecks:        false,
		CheckConnectivity:     false,
		DroneThreshold:        DefaultDroneThreshold,
		CoverageRatioStop:     DefaultCoverageRatioStop,
	}
}

// Option mutates a Config built from DefaultConfig.
type Option func(*Config)

// WithMaxDepth overrides the recursion depth limit. Panics if depth is
// negative.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic("kdtree: WithMaxDepth: depth must be >= 0")
	}
	return func(c *Config) { c.MaxDepth = depth }
}

// WithMinDimensionThreshold overrides the minimum bounding-box width or
// height a child must have to be recursed into. The same value is also
// the region area below which a node is stored without being split.
func WithMinDimensionThreshold(threshold float64) Option {
	return func(c *Config) { c.MinDimensionThreshold = threshold }
}

// WithAdvancedChecks enables the coverage-and-stop and subregion-validity
// checks (disabled by default, matching advanced_checks=False).
func WithAdvancedChecks(enabled bool) Option {
	return func(c *Config) { c.AdvancedChecks = enabled }
}

// WithCheckConnectivity enables the additional single-connected-free-
// space check within the advanced subregion-validity check. Has no
// effect unless AdvancedChecks is also enabled.
func WithCheckConnectivity(enabled bool) Option {
	return func(c *Config) { c.CheckConnectivity = enabled }
}

// WithDroneThreshold overrides the largest-free-space area below which
// the coverage stop (when AdvancedChecks is enabled) accepts a
// sub-region as done.
func WithDroneThreshold(threshold float64) Option {
	return func(c *Config) { c.DroneThreshold = threshold }
}

// WithCoverageRatioStop overrides the minimum obstacle-coverage fraction
// the coverage stop requires before it even checks DroneThreshold.
func WithCoverageRatioStop(ratio float64) Option {
	if ratio < 0 || ratio > 1 {
		panic("kdtree: WithCoverageRatioStop: ratio must be in [0,1]")
	}
	return func(c *Config) { c.CoverageRatioStop = ratio }
}

func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
