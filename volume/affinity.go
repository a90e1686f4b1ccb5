package volume

import "math"

// NewAffinity validates and wraps data as a W*H*D, 3-channel affinity
// volume. data is not copied; callers must not mutate it while the volume
// is in use by a merge run.
func NewAffinity(w, h, d int, data []float32) (*Affinity, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, ErrEmptyDims
	}
	if len(data) != 3*w*h*d {
		return nil, ErrBadAffinityLength
	}
	for _, a := range data {
		if math.IsNaN(float64(a)) || a < 0 || a > 1 {
			return nil, ErrNonFinite
		}
	}

	return &Affinity{W: w, H: h, D: d, Data: data}, nil
}

// index computes the flattened offset for (x, y, z) within one channel.
func (a *Affinity) index(x, y, z int) int {
	return z*a.W*a.H + y*a.W + x
}

// InBounds reports whether (x, y, z) lies within the volume.
func (a *Affinity) InBounds(x, y, z int) bool {
	return x >= 0 && x < a.W && y >= 0 && y < a.H && z >= 0 && z < a.D
}

// At returns the affinity for channel c (0=x, 1=y, 2=z axis direction) at
// (x, y, z). Returns ErrOutOfBounds for an invalid coordinate or channel.
func (a *Affinity) At(c, x, y, z int) (float32, error) {
	if c < 0 || c > 2 || !a.InBounds(x, y, z) {
		return 0, ErrOutOfBounds
	}

	return a.Data[c*a.W*a.H*a.D+a.index(x, y, z)], nil
}
