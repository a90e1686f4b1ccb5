package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// VectorQuantileStat stores the exact multiset of contributing affinities
// and reports the exact q-th order statistic. Combine concatenates the two
// multisets. Preferred over HistogramQuantileStat when memory permits
// exactness; degrades to a histogram once cap is exceeded if
// Fallback is FallbackHistogram.
type VectorQuantileStat struct {
	values   []float64
	q        float64
	cap      int
	fallback Fallback
	opts     Options // retained so a histogram fallback can be constructed

	degraded *HistogramQuantileStat
}

func newVectorQuantile(opts Options) (*VectorQuantileStat, error) {
	if opts.Quantile < 0 || opts.Quantile > 1 {
		return nil, ErrBadQuantile
	}

	return &VectorQuantileStat{q: opts.Quantile, cap: opts.VectorCap, fallback: opts.Fallback, opts: opts}, nil
}

// Init replaces the stored multiset with affinities, converted to float64
// for gonum's stat package.
func (s *VectorQuantileStat) Init(affinities []float32) error {
	if len(affinities) == 0 {
		return ErrEmptyAffinities
	}
	s.values = s.values[:0]
	for _, a := range affinities {
		s.values = append(s.values, float64(a))
	}

	return s.enforceCap()
}

// enforceCap degrades the receiver to a histogram once its vector exceeds
// the configured capacity, per the up-front Fallback selection.
func (s *VectorQuantileStat) enforceCap() error {
	if s.cap <= 0 || len(s.values) <= s.cap {
		return nil
	}
	if s.fallback != FallbackHistogram {
		return ErrCapacityExceeded
	}
	h, err := newHistogramQuantile(s.opts)
	if err != nil {
		return err
	}
	buf := make([]float32, len(s.values))
	for i, v := range s.values {
		buf[i] = float32(v)
	}
	if err := h.Init(buf); err != nil {
		return err
	}
	s.degraded = h
	s.values = nil

	return nil
}

// Combine concatenates src's multiset onto the receiver's, or merges two
// degraded histograms when either side has fallen back.
func (s *VectorQuantileStat) Combine(src Statistic) error {
	o, ok := src.(*VectorQuantileStat)
	if !ok {
		return ErrKindMismatch
	}
	if s.degraded == nil && o.degraded == nil {
		s.values = append(s.values, o.values...)

		return s.enforceCap()
	}
	if s.degraded == nil {
		// src has already degraded; force the receiver to degrade too,
		// seeding the histogram with the receiver's own values so none
		// of its accumulated affinities are lost.
		h, err := newHistogramQuantile(s.opts)
		if err != nil {
			return err
		}
		if len(s.values) > 0 {
			buf := make([]float32, len(s.values))
			for i, v := range s.values {
				buf[i] = float32(v)
			}
			if err := h.Init(buf); err != nil {
				return err
			}
		}
		s.degraded = h
		s.values = nil
	}
	if o.degraded != nil {
		return s.degraded.Combine(o.degraded)
	}
	// o is still exact; add its values into the receiver's existing
	// histogram rather than reinitializing over it, so the receiver's
	// accumulated counts survive.
	buf := make([]float32, len(o.values))
	for i, v := range o.values {
		buf[i] = float32(v)
	}
	s.degraded.addValues(buf)

	return nil
}

// Value returns the exact q-th order statistic via gonum's stat.Quantile,
// or the degraded histogram's interpolated quantile once capacity has been
// exceeded. q overrides the statistic's configured quantile when
// non-negative.
func (s *VectorQuantileStat) Value(q float64) float64 {
	if q < 0 {
		q = s.q
	}
	if s.degraded != nil {
		return s.degraded.Value(q)
	}
	if len(s.values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.values))
	copy(sorted, s.values)
	sort.Float64s(sorted)

	return stat.Quantile(q, stat.Empirical, sorted, nil)
}

// Clone returns an independent copy.
func (s *VectorQuantileStat) Clone() Statistic {
	c := &VectorQuantileStat{q: s.q, cap: s.cap, fallback: s.fallback, opts: s.opts}
	if s.values != nil {
		c.values = append([]float64(nil), s.values...)
	}
	if s.degraded != nil {
		c.degraded = s.degraded.Clone().(*HistogramQuantileStat)
	}

	return c
}
