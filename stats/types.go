// Package stats provides pluggable per-edge affinity statistic accumulators
// for the region-merging engine. A Statistic observes the affinities that
// cross a region-graph edge and exposes a scalar Value consumed by a
// scoring function; Combine merges two statistics when their edges are
// unified during a merge.
package stats

import "errors"

// Sentinel errors for statistic construction and evaluation.
var (
	// ErrEmptyAffinities indicates Init was called with no contributing affinities.
	ErrEmptyAffinities = errors.New("stats: no contributing affinities")

	// ErrBadQuantile indicates a quantile outside [0,1] was requested.
	ErrBadQuantile = errors.New("stats: quantile must be within [0,1]")

	// ErrBadBinCount indicates a non-positive histogram bin count.
	ErrBadBinCount = errors.New("stats: bin count must be positive")

	// ErrCapacityExceeded indicates a vector-backed statistic exceeded its
	// configured cap without a fallback mode selected.
	ErrCapacityExceeded = errors.New("stats: vector capacity exceeded")

	// ErrKindMismatch indicates Combine was called with a statistic of a
	// different concrete kind than the receiver.
	ErrKindMismatch = errors.New("stats: combine called with mismatched statistic kind")
)

// Statistic accumulates affinities contributed to a single region-graph
// edge and answers scalar queries against that accumulation.
//
// Implementations must make Combine commutative and associative: the
// region graph may combine statistics from either direction when two
// edges are unified, and the result must not depend on call order.
type Statistic interface {
	// Init resets the statistic from a fresh set of contributing affinities.
	Init(affinities []float32) error

	// Combine folds src into the receiver in place. src is left unmodified.
	Combine(src Statistic) error

	// Value returns the scalar the scoring function consumes. q is the
	// requested quantile in [0,1] for quantile-backed statistics and is
	// ignored by Max and Mean.
	Value(q float64) float64

	// Clone returns an independent copy with the same accumulated state.
	Clone() Statistic
}

// Kind names a concrete Statistic family, passed to New (and to
// watershed.BuildRegionGraph) to select which provider to instantiate for
// every edge.
type Kind int

const (
	// KindMax selects MaxStat.
	KindMax Kind = iota
	// KindMean selects MeanStat.
	KindMean
	// KindHistogramQuantile selects HistogramQuantileStat.
	KindHistogramQuantile
	// KindVectorQuantile selects VectorQuantileStat.
	KindVectorQuantile
)

// Fallback controls what a vector-backed statistic does when its configured
// capacity would be exceeded. Selected up front at construction time, never
// switched dynamically mid-run: resource exhaustion is a configuration
// choice, not a runtime surprise.
type Fallback int

const (
	// FallbackNone selects no degradation: with a positive VectorCap,
	// exceeding it makes Init or Combine return ErrCapacityExceeded.
	FallbackNone Fallback = iota
	// FallbackHistogram degrades to a histogram-backed approximation once
	// the cap is reached.
	FallbackHistogram
)

// Options configures construction of a Statistic via New.
type Options struct {
	// Quantile is the q-th quantile reported by Value for quantile kinds.
	Quantile float64
	// Bins is the histogram bin count for KindHistogramQuantile, and for
	// the fallback histogram a vector-backed statistic degrades to.
	Bins int
	// Range bounds the histogram domain; affinities are expected within it.
	RangeMin, RangeMax float64
	// VectorCap bounds the multiset size for KindVectorQuantile; 0 means
	// unbounded. Fallback decides what happens when it is exceeded.
	VectorCap int
	// Fallback selects degrade-on-overflow behavior for KindVectorQuantile.
	Fallback Fallback
}

// DefaultOptions returns sensible defaults: median quantile, 256 histogram
// bins over [0,1], and an unbounded vector statistic.
func DefaultOptions() Options {
	return Options{
		Quantile: 0.5,
		Bins:     256,
		RangeMin: 0,
		RangeMax: 1,
		Fallback: FallbackNone,
	}
}

// New constructs a Statistic of the given kind from its options.
func New(kind Kind, opts Options) (Statistic, error) {
	switch kind {
	case KindMax:
		return &MaxStat{}, nil
	case KindMean:
		return &MeanStat{}, nil
	case KindHistogramQuantile:
		return newHistogramQuantile(opts)
	case KindVectorQuantile:
		return newVectorQuantile(opts)
	default:
		return nil, errors.New("stats: unknown statistic kind")
	}
}
