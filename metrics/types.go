// Package metrics scores a finished segmentation against ground truth
// using pairwise Rand and Variation-of-Information indices, decomposed
// into split and merge components, independent of the merge engine that
// produced the segmentation.
package metrics

import "errors"

// Sentinel errors for evaluation input validation.
var (
	// ErrNilSeg indicates a nil predicted or ground-truth volume.
	ErrNilSeg = errors.New("metrics: predicted and ground-truth volumes must not be nil")

	// ErrDimMismatch indicates the two volumes disagree on shape.
	ErrDimMismatch = errors.New("metrics: predicted and ground-truth volumes must share dimensions")
)

// Result holds the four standard split/merge error components. Split
// measures a single ground-truth object spread across multiple predicted
// regions; Merge measures multiple ground-truth objects folded into one
// predicted region.
type Result struct {
	RandSplit float64
	RandMerge float64
	VOISplit  float64
	VOIMerge  float64
}
