// Package watershed builds an initial oversegmentation and region graph
// from a raw affinity volume, the way gridgraph.ConnectedComponents groups
// grid cells into islands, generalized from 2-D 4/8-connectivity to 3-D
// 6-connectivity across three affinity channels.
package watershed

import "errors"

// Sentinel errors for seeding and region-graph construction.
var (
	// ErrNilAffinity indicates a nil affinity volume was supplied.
	ErrNilAffinity = errors.New("watershed: affinity volume must not be nil")

	// ErrBadThresholds indicates Low/High are out of [0,1] or Low > High.
	ErrBadThresholds = errors.New("watershed: thresholds must satisfy 0 <= Low <= High <= 1")

	// ErrNilSeg indicates a nil segmentation was supplied to BuildRegionGraph.
	ErrNilSeg = errors.New("watershed: segmentation volume must not be nil")

	// ErrDimMismatch indicates the affinity and segmentation volumes disagree
	// on dimensions.
	ErrDimMismatch = errors.New("watershed: affinity and segmentation dimensions must match")
)

// Options configures basin extraction.
type Options struct {
	// Low is the cut threshold: affinities at or below Low never connect
	// two voxels.
	Low float32
	// High is the definite-merge threshold: affinities at or above High
	// always connect two voxels, regardless of basin size.
	High float32
}

// DefaultOptions returns conservative thresholds: cut at or below 0.1,
// merge unconditionally at or above 0.9, grow basins for everything in
// between.
func DefaultOptions() Options {
	return Options{Low: 0.1, High: 0.9}
}
