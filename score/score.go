// Package score maps a region-graph edge's statistic to the scalar score
// the merge engine's priority queue orders on. The engine pops entries in
// ascending score order; this package fixes the polarity once (score = 1 -
// statistic, so a high affinity produces a low score) so that the
// ascending pop order merges the strongest affinities first, and applies
// it consistently everywhere a score is derived.
package score

import "github.com/katalvlaran/agglo/stats"

// Func maps a statistic to the scalar the priority queue orders on, at the
// caller-selected quantile q (ignored by statistics that don't use one).
type Func func(s stats.Statistic) float64

// Ascending returns the fixed-polarity scoring function: score = 1 -
// value(q). Higher affinity therefore yields a lower score, and the merge
// engine's min-heap/bin-queue realizations both pop ascending by score, so
// the strongest affinities merge first.
func Ascending(q float64) Func {
	return func(s stats.Statistic) float64 {
		return 1 - s.Value(q)
	}
}
