// Package agglo is the root of a hierarchical region-agglomeration
// pipeline for 3-D affinity-based image segmentation, as used in
// connectomics.
//
// Given a dense affinity volume, it:
//
//   - seeds an initial oversegmentation via thresholded watershed (package
//     watershed, over package volume's dense arrays)
//   - builds a region adjacency graph whose edges carry a pluggable
//     statistic over contributing affinities (packages region and stats)
//   - iteratively merges adjacent regions in best-first order, honoring
//     optional anti-merge constraints, until the best remaining edge's
//     score exceeds a caller-supplied threshold (packages engine, score,
//     pqueue, unmerge, and visitor)
//   - optionally evaluates the result against ground truth using Rand and
//     Variation-of-Information split/merge indices (package metrics)
//
// Package session binds these pieces to caller-issued handles; cmd/agglo-cli
// is a thin command-line driver over that binding.
//
// Each concern lives in its own top-level package rather than nested under
// this one, so a caller can depend on, say, region or stats directly
// without pulling in the watershed or CLI layers.
package agglo
