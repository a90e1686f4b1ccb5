// Package region implements the dynamically maintained region graph: the
// node/edge store the merge engine mutates on every iteration. Nodes are
// dense integer ids in [1, N]; id 0 is reserved for
// background/unassigned. Merging is the hot path, so incidence is
// redirected in place rather than re-keyed, and parent links support path
// compression for near-linear segmentation extraction.
package region

import (
	"errors"

	"github.com/katalvlaran/agglo/stats"
)

// Sentinel errors for region graph operations.
var (
	// ErrSelfEdge indicates AddEdge was called with u == v.
	ErrSelfEdge = errors.New("region: self-loop edges are not allowed")

	// ErrNodeNotLive indicates an operation referenced a dead or
	// out-of-range node id.
	ErrNodeNotLive = errors.New("region: node is not live")

	// ErrEdgeExists indicates AddEdge was called for a pair that already
	// has a live edge between them.
	ErrEdgeExists = errors.New("region: edge already exists between these nodes")

	// ErrEdgeNotFound indicates a reference to an unknown or deleted edge id.
	ErrEdgeNotFound = errors.New("region: edge not found")
)

// Node is a region-graph vertex: a live region or a dead region absorbed
// by a prior merge.
type Node struct {
	// Live reports whether this node is still a root (has not been
	// absorbed by a merge).
	Live bool
	// Parent is the live node that absorbed this node, valid only when
	// !Live. Chains are compressed lazily by Resolve.
	Parent uint32
	// Size is the node's voxel count. MergeNodes adds the loser's size to
	// the survivor's.
	Size uint64
}

// Edge is an undirected connection between two live node ids, carrying a
// caller-owned Stat and a cached Score. Edges exist only between currently
// live nodes; Deleted marks an edge that has been absorbed into a parallel
// edge, removed as a survivor-loser self-loop, or removed via DeleteEdge
// (a redirected edge stays live). Deleted edges stay in the graph's edge
// map so stale references (e.g. queue entries) can recognize them.
type Edge struct {
	ID      uint64
	U, V    uint32
	Stat    stats.Statistic
	Score   float64
	Deleted bool
}
