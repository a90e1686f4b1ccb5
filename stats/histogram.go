package stats

// HistogramQuantileStat accumulates affinities into a fixed-bin histogram
// over [rangeMin, rangeMax] and reports an interpolated q-th quantile.
// Combine sums bin counts, which is exact for the histogram representation
// (no precision is lost relative to two separately-built histograms merged
// bin-for-bin).
type HistogramQuantileStat struct {
	bins               []uint64
	rangeMin, rangeMax float64
	q                  float64
}

func newHistogramQuantile(opts Options) (*HistogramQuantileStat, error) {
	if opts.Bins <= 0 {
		return nil, ErrBadBinCount
	}
	if opts.Quantile < 0 || opts.Quantile > 1 {
		return nil, ErrBadQuantile
	}

	return &HistogramQuantileStat{
		bins:     make([]uint64, opts.Bins),
		rangeMin: opts.RangeMin,
		rangeMax: opts.RangeMax,
		q:        opts.Quantile,
	}, nil
}

// binOf maps an affinity to its bin index, clamped to [0, len(bins)-1].
func (s *HistogramQuantileStat) binOf(a float32) int {
	span := s.rangeMax - s.rangeMin
	if span <= 0 {
		return 0
	}
	frac := (float64(a) - s.rangeMin) / span
	idx := int(frac * float64(len(s.bins)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.bins) {
		idx = len(s.bins) - 1
	}

	return idx
}

// Init clears the histogram and buckets every contributing affinity.
func (s *HistogramQuantileStat) Init(affinities []float32) error {
	if len(affinities) == 0 {
		return ErrEmptyAffinities
	}
	for i := range s.bins {
		s.bins[i] = 0
	}
	s.addValues(affinities)

	return nil
}

// addValues buckets affinities into the existing histogram without
// clearing counts already accumulated.
func (s *HistogramQuantileStat) addValues(affinities []float32) {
	for _, a := range affinities {
		s.bins[s.binOf(a)]++
	}
}

// Combine sums src's bin counts into the receiver, bin by bin.
func (s *HistogramQuantileStat) Combine(src Statistic) error {
	o, ok := src.(*HistogramQuantileStat)
	if !ok {
		return ErrKindMismatch
	}
	for i := range s.bins {
		s.bins[i] += o.bins[i]
	}

	return nil
}

// Value returns the linearly-interpolated q-th quantile over the histogram.
// q overrides the statistic's configured quantile when non-negative.
func (s *HistogramQuantileStat) Value(q float64) float64 {
	if q < 0 {
		q = s.q
	}
	var total uint64
	for _, c := range s.bins {
		total += c
	}
	if total == 0 {
		return 0
	}
	target := q * float64(total)
	var cum uint64
	binWidth := (s.rangeMax - s.rangeMin) / float64(len(s.bins))
	for i, c := range s.bins {
		next := cum + c
		if float64(next) >= target {
			// Interpolate within this bin by the fraction of target that
			// falls past the cumulative count entering the bin.
			var frac float64
			if c > 0 {
				frac = (target - float64(cum)) / float64(c)
			}
			lo := s.rangeMin + float64(i)*binWidth
			return lo + frac*binWidth
		}
		cum = next
	}

	return s.rangeMax
}

// Clone returns an independent copy.
func (s *HistogramQuantileStat) Clone() Statistic {
	bins := make([]uint64, len(s.bins))
	copy(bins, s.bins)

	return &HistogramQuantileStat{bins: bins, rangeMin: s.rangeMin, rangeMax: s.rangeMax, q: s.q}
}
