// Package volume wraps dense 3-D affinity and segmentation arrays the way
// gridgraph wraps a 2-D grid, generalized from row-major 2-D indexing to a
// 3-channel, 3-spatial-dimension flattened layout consumed by watershed,
// metrics, and cmd/agglo-cli.
package volume
