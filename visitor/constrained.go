package visitor

import "github.com/katalvlaran/agglo/unmerge"

// ConstrainedVisitor wraps a HistoryVisitor and delegates IsValidMerge and
// OnMerge's bookkeeping to an unmerge.Tracker, so the engine's anti-merge
// enforcement and history recording compose without the engine knowing
// about either concern directly.
type ConstrainedVisitor struct {
	*HistoryVisitor
	Tracker *unmerge.Tracker
}

// NewConstrainedVisitor wraps tracker around a fresh HistoryVisitor.
func NewConstrainedVisitor(tracker *unmerge.Tracker) *ConstrainedVisitor {
	return &ConstrainedVisitor{HistoryVisitor: NewHistoryVisitor(), Tracker: tracker}
}

// IsValidMerge defers to the wrapped tracker.
func (v *ConstrainedVisitor) IsValidMerge(u, b uint32) bool {
	return v.Tracker.IsValidMerge(u, b)
}

// OnMerge records the merge in history and updates the tracker's group
// bookkeeping for the survivor.
func (v *ConstrainedVisitor) OnMerge(u, b, survivor uint32, score float64) {
	v.HistoryVisitor.OnMerge(u, b, survivor, score)
	v.Tracker.OnMerge(u, b, survivor)
}
