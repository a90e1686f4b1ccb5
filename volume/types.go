package volume

import "errors"

// Sentinel errors for volume construction and indexing.
var (
	// ErrEmptyDims indicates a zero width, height, or depth.
	ErrEmptyDims = errors.New("volume: width, height, and depth must all be positive")

	// ErrBadAffinityLength indicates the affinity slice does not hold
	// exactly 3*W*H*D elements.
	ErrBadAffinityLength = errors.New("volume: affinity data length must equal 3*W*H*D")

	// ErrBadSegLength indicates a segmentation slice does not hold
	// exactly W*H*D elements.
	ErrBadSegLength = errors.New("volume: segmentation data length must equal W*H*D")

	// ErrNonFinite indicates a NaN or out-of-[0,1] affinity value.
	ErrNonFinite = errors.New("volume: affinity values must be finite and within [0,1]")

	// ErrOutOfBounds indicates a coordinate access outside the volume.
	ErrOutOfBounds = errors.New("volume: coordinate out of bounds")
)

// Affinity wraps a dense W*H*D volume of 3-channel affinities in [0,1],
// flattened row-major per channel: Data[c*W*H*D + z*W*H + y*W + x].
type Affinity struct {
	W, H, D int
	Data    []float32
}

// Seg wraps a dense W*H*D volume of seed/region ids, flattened row-major:
// Labels[z*W*H + y*W + x]. Sizes[id] gives id's voxel count; Sizes[0]
// counts background (id 0) voxels.
type Seg struct {
	W, H, D int
	Labels  []uint32
	Sizes   []uint64
}
