// Package visitor defines the capability-set hook the merge engine calls
// on every queue pop, merge, and constraint check, generalizing the
// bfs package's OnEnqueue/OnVisit callback fields into a swappable
// interface: the engine needs more than one concrete implementation
// (plain history recording vs. constrained recording), so a capability-set
// interface fits better here than a single options struct of callback
// fields.
package visitor

// Visitor observes the merge engine's best-first loop. Every method is
// called synchronously on the engine's single thread; none may block.
type Visitor interface {
	// OnPop is called immediately after a candidate entry is popped from
	// the priority queue, before it is validated.
	OnPop(edgeID uint64, snapshotScore float64)

	// OnDeletedEdgeFound is called when a popped entry refers to an edge
	// that has since been deleted.
	OnDeletedEdgeFound(edgeID uint64)

	// OnStaleEdgeFound is called when a popped entry's snapshot score no
	// longer matches the edge's current score.
	OnStaleEdgeFound(edgeID uint64, snapshotScore, currentScore float64)

	// IsValidMerge is consulted after transitive-merge resolution and
	// before MergeNodes is invoked; returning false permanently vetoes
	// this edge.
	IsValidMerge(u, v uint32) bool

	// OnMerge is called after a successful merge, with the score the
	// edge held at the instant of merging.
	OnMerge(u, v, survivor uint32, scoreAtMerge float64)
}

// MergeEvent records one completed merge in the order it happened.
type MergeEvent struct {
	A, B, Survivor uint32
	Score          float64
}

// HistoryVisitor appends every merge to an ordered history and otherwise
// imposes no constraints (IsValidMerge always true).
type HistoryVisitor struct {
	History []MergeEvent
}

// NewHistoryVisitor returns an empty HistoryVisitor.
func NewHistoryVisitor() *HistoryVisitor {
	return &HistoryVisitor{}
}

func (v *HistoryVisitor) OnPop(uint64, float64) {}

func (v *HistoryVisitor) OnDeletedEdgeFound(uint64) {}

func (v *HistoryVisitor) OnStaleEdgeFound(uint64, float64, float64) {}

func (v *HistoryVisitor) IsValidMerge(uint32, uint32) bool { return true }

func (v *HistoryVisitor) OnMerge(u, b, survivor uint32, score float64) {
	v.History = append(v.History, MergeEvent{A: u, B: b, Survivor: survivor, Score: score})
}
