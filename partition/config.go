package partition

import (
	"log"

	"github.com/aerogrid/dronepart/decomposition"
	"github.com/aerogrid/dronepart/kdtree"
)

// Strategy selects which partitioning engine Run uses.
type Strategy int

const (
	// StrategyHierarchical runs the obstacle-aware recursive decomposition.
	StrategyHierarchical Strategy = iota
	// StrategyKDNaive runs the midpoint-split KD-tree baseline.
	StrategyKDNaive
	// StrategyKDHalfPerimeter runs the half-perimeter-crossing KD-tree baseline.
	StrategyKDHalfPerimeter
)

// String names the strategy for logging and CSV output.
func (s Strategy) String() string {
	switch s {
	case StrategyKDNaive:
		return "kd_naive"
	case StrategyKDHalfPerimeter:
		return "kd_half_perimeter"
	default:
		return "hierarchical"
	}
}

// Config parameterizes Run. Build one with DefaultConfig and the With*
// options.
type Config struct {
	Strategy             Strategy
	DecompositionOptions []decomposition.Option
	KDTreeOptions        []kdtree.Option
	DebugLogger          *log.Logger
}

// DefaultConfig selects the obstacle-aware hierarchical decomposition
// with every sub-package's own defaults.
func DefaultConfig() Config {
	return Config{Strategy: StrategyHierarchical}
}

// Option mutates a Config built from DefaultConfig.
type Option func(*Config)

// WithStrategy selects which partitioning engine Run uses.
func WithStrategy(s Strategy) Option {
	return func(c *Config) { c.Strategy = s }
}

// WithDecompositionOptions forwards opts to decomposition.Decompose when
// Strategy is StrategyHierarchical. Has no effect for the KD-tree
// strategies.
func WithDecompositionOptions(opts ...decomposition.Option) Option {
	return func(c *Config) { c.DecompositionOptions = opts }
}

// WithKDTreeOptions forwards opts to kdtree.NaivePartition or
// kdtree.HalfPerimeterPartition when Strategy selects one of them. Has
// no effect for StrategyHierarchical.
func WithKDTreeOptions(opts ...kdtree.Option) Option {
	return func(c *Config) { c.KDTreeOptions = opts }
}

// WithDebugLogger attaches a logger Run uses to report which strategy it
// ran and how many leaf partitions it produced. Library packages below
// the façade never log; this is the one outermost edge where it is
// appropriate to do so, and it is nil (silent) by default.
func WithDebugLogger(logger *log.Logger) Option {
	return func(c *Config) { c.DebugLogger = logger }
}

func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
