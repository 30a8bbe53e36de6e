// Package partition is the thin public facade over the whole engine: it
// wires preprocess.New's validated input into one of the three
// partitioning strategies (the obstacle-aware hierarchical
// decomposition, or either KD-tree baseline), then summarizes each
// resulting partition's worst-case round-trip time.
//
// Grounded on core/api.go's role as a deterministic constructor-and-
// getter facade with no algorithmic logic of its own: Run does nothing
// but sequence calls into preprocess, the chosen strategy package, strip,
// and stats.
package partition
