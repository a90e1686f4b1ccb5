package volume

// NewSeg validates and wraps labels as a W*H*D segmentation volume,
// computing each label's voxel count into Sizes. labels is not copied.
func NewSeg(w, h, d int, labels []uint32) (*Seg, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, ErrEmptyDims
	}
	if len(labels) != w*h*d {
		return nil, ErrBadSegLength
	}

	var maxID uint32
	for _, id := range labels {
		if id > maxID {
			maxID = id
		}
	}
	sizes := make([]uint64, maxID+1)
	for _, id := range labels {
		sizes[id]++
	}

	return &Seg{W: w, H: h, D: d, Labels: labels, Sizes: sizes}, nil
}

// index computes the flattened offset for (x, y, z).
func (s *Seg) index(x, y, z int) int {
	return z*s.W*s.H + y*s.W + x
}

// InBounds reports whether (x, y, z) lies within the volume.
func (s *Seg) InBounds(x, y, z int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H && z >= 0 && z < s.D
}

// At returns the label at (x, y, z). Returns ErrOutOfBounds otherwise.
func (s *Seg) At(x, y, z int) (uint32, error) {
	if !s.InBounds(x, y, z) {
		return 0, ErrOutOfBounds
	}

	return s.Labels[s.index(x, y, z)], nil
}

// NumIDs returns the largest seed id present (ids run 1..NumIDs; 0 is
// background).
func (s *Seg) NumIDs() int {
	return len(s.Sizes) - 1
}
