// Package engine orchestrates the region graph (region), the priority
// queue (pqueue), the statistics-driven scoring function (score/stats),
// and the visitor hook (visitor) into the best-first merge loop: pop,
// validate, merge, update, repeat until the queue drains or the best
// remaining edge is worse than the caller's threshold.
package engine

import (
	"errors"

	"github.com/katalvlaran/agglo/pqueue"
)

// Sentinel errors for engine construction and execution.
var (
	// ErrNilGraph indicates a nil *region.Graph was passed to New.
	ErrNilGraph = errors.New("engine: graph is nil")

	// ErrNilScoring indicates a nil score.Func was passed to New.
	ErrNilScoring = errors.New("engine: scoring function is nil")

	// ErrBadBinCount indicates a non-positive bin count for QueueBinning.
	ErrBadBinCount = errors.New("engine: bin count must be positive for binning queue")
)

// QueueKind selects which pqueue.Queue realization the engine uses.
type QueueKind int

const (
	// QueueHeap selects pqueue.HeapQueue: exact ordering, O(log n) ops.
	QueueHeap QueueKind = iota
	// QueueBinning selects pqueue.BinQueue: O(1) amortized ops at the
	// cost of score-quantization error bounded by the bin width.
	QueueBinning
)

// Options configures Engine construction.
type Options struct {
	// Queue selects the priority-queue realization.
	Queue QueueKind
	// Bins, ScoreMin, ScoreMax configure QueueBinning; ignored for
	// QueueHeap.
	Bins               int
	ScoreMin, ScoreMax float64
	// Verbose enables one-line progress logging of each merge.
	Verbose bool
}

// DefaultOptions returns a heap-backed engine configuration.
func DefaultOptions() Options {
	return Options{Queue: QueueHeap, Bins: 256, ScoreMin: 0, ScoreMax: 1}
}

func (o Options) newQueue() (pqueue.Queue, error) {
	switch o.Queue {
	case QueueBinning:
		if o.Bins <= 0 {
			return nil, ErrBadBinCount
		}

		return pqueue.NewBinQueue(o.Bins, o.ScoreMin, o.ScoreMax), nil
	default:
		return pqueue.NewHeapQueue(), nil
	}
}
