package engine

import (
	"fmt"
	"log"

	"github.com/katalvlaran/agglo/pqueue"
	"github.com/katalvlaran/agglo/region"
	"github.com/katalvlaran/agglo/score"
	"github.com/katalvlaran/agglo/visitor"
)

// ScoredEdge is one live edge with its freshly-recomputed score, returned
// by ExtractRegionGraph.
type ScoredEdge struct {
	U, V  uint32
	Score float64
}

// Engine owns a region graph, its scoring function, and a priority queue
// for its lifetime. It is not
// safe for concurrent use.
type Engine struct {
	graph   *region.Graph
	scoring score.Func
	queue   pqueue.Queue
	opts    Options
	seeded  bool
}

// New constructs an Engine over g using scoring to derive queue
// priorities. The engine does not seed the queue until Seed is called (or
// the first MergeUntil seeds it), letting callers build the graph
// incrementally before then.
func New(g *region.Graph, scoring score.Func, opts Options) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if scoring == nil {
		return nil, ErrNilScoring
	}
	q, err := opts.newQueue()
	if err != nil {
		return nil, err
	}

	return &Engine{graph: g, scoring: scoring, queue: q, opts: opts}, nil
}

// Seed computes every live edge's initial score and pushes one entry per
// edge into the queue. Call it at most once, after the graph's initial
// edges are built; MergeUntil calls it itself if it has not run yet.
func (e *Engine) Seed() {
	for _, edge := range e.graph.LiveEdges() {
		s := e.scoring(edge.Stat)
		edge.Score = s
		e.queue.Push(pqueue.Entry{Score: s, EdgeID: edge.ID})
	}
	e.seeded = true
}

func combineEdgeStats(dst, src *region.Edge) error {
	return dst.Stat.Combine(src.Stat)
}

// MergeUntil runs the best-first merge loop until either the queue
// drains or the best remaining live edge's score exceeds threshold, in
// which case its entry is pushed back so a later call with a larger
// threshold resumes exactly where this one stopped.
// Returns the number of merges performed during this call.
func (e *Engine) MergeUntil(threshold float64, v visitor.Visitor) (int, error) {
	if !e.seeded {
		e.Seed()
	}

	merges := 0
	for {
		if e.queue.Len() == 0 {
			return merges, nil
		}

		entry, err := e.queue.Pop()
		if err != nil {
			return merges, nil // queue reported empty between the Len check and Pop; treat as drained
		}
		v.OnPop(entry.EdgeID, entry.Score)

		edge := e.graph.Edge(entry.EdgeID)
		if edge == nil {
			v.OnDeletedEdgeFound(entry.EdgeID)
			continue
		}

		current := e.scoring(edge.Stat)
		if current != entry.Score {
			v.OnStaleEdgeFound(entry.EdgeID, entry.Score, current)
			edge.Score = current
			e.queue.Push(pqueue.Entry{Score: current, EdgeID: edge.ID})
			continue
		}

		if current > threshold {
			// Best remaining live edge is worse than the limit: push the
			// entry back untouched and stop for this call.
			e.queue.Push(entry)
			if e.opts.Verbose {
				log.Printf("engine: stopping at threshold %g, best remaining score %g", threshold, current)
			}

			return merges, nil
		}

		ru := e.graph.Resolve(edge.U)
		rv := e.graph.Resolve(edge.V)
		if ru == rv {
			// Already merged transitively via another edge; this entry is
			// now moot.
			if derr := e.deleteEdge(edge.ID); derr != nil {
				return merges, derr
			}

			continue
		}

		if !v.IsValidMerge(ru, rv) {
			if derr := e.deleteEdge(edge.ID); derr != nil {
				return merges, derr
			}

			continue
		}

		survivor, err := e.graph.MergeNodes(ru, rv, combineEdgeStats)
		if err != nil {
			return merges, err
		}

		for _, incident := range e.graph.IterIncident(survivor) {
			newScore := e.scoring(incident.Stat)
			if newScore < incident.Score {
				incident.Score = newScore
				e.queue.Push(pqueue.Entry{Score: newScore, EdgeID: incident.ID})
			}
		}

		v.OnMerge(ru, rv, survivor, current)
		merges++
		if e.opts.Verbose {
			log.Printf("engine: merged %d,%d -> %d at score %g", ru, rv, survivor, current)
		}
	}
}

// deleteEdge removes an edge that will never be retried (already merged
// transitively, or vetoed by the visitor). Wrapped for a clearer error
// message than region's bare ErrEdgeNotFound would give here.
func (e *Engine) deleteEdge(id uint64) error {
	if err := e.graph.DeleteEdge(id); err != nil {
		return fmt.Errorf("engine: deleting moot edge %d: %w", id, err)
	}

	return nil
}

// ExtractSegmentation remaps every seed id in seeds through the region
// graph's parent-link forest, producing the final voxel labeling in one
// O(V) sweep. Seed id 0 (background) passes through unchanged.
func (e *Engine) ExtractSegmentation(seeds []uint32) []uint32 {
	out := make([]uint32, len(seeds))
	for i, s := range seeds {
		if s == 0 {
			continue
		}
		out[i] = e.graph.Resolve(s)
	}

	return out
}

// ExtractRegionGraph returns every currently live edge with a freshly
// recomputed score, in no specified order beyond the underlying graph's
// edge-id order.
func (e *Engine) ExtractRegionGraph() []ScoredEdge {
	live := e.graph.LiveEdges()
	out := make([]ScoredEdge, len(live))
	for i, edge := range live {
		out[i] = ScoredEdge{U: edge.U, V: edge.V, Score: e.scoring(edge.Stat)}
	}

	return out
}
