package region_test

import (
	"testing"

	"github.com/katalvlaran/agglo/region"
	"github.com/katalvlaran/agglo/stats"
)

func newMax(t *testing.T, v float32) stats.Statistic {
	t.Helper()
	s := &stats.MaxStat{}
	if err := s.Init([]float32{v}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	return s
}

func combine(dst, src *region.Edge) error {
	return dst.Stat.Combine(src.Stat)
}

func TestAddEdge_SelfLoopRejected(t *testing.T) {
	g := region.NewGraph(2)
	if _, err := g.AddEdge(1, 1, newMax(t, 0.5)); err != region.ErrSelfEdge {
		t.Fatalf("expected ErrSelfEdge, got %v", err)
	}
}

func TestAddEdge_DuplicateRejected(t *testing.T) {
	g := region.NewGraph(2)
	if _, err := g.AddEdge(1, 2, newMax(t, 0.5)); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge(1, 2, newMax(t, 0.5)); err != region.ErrEdgeExists {
		t.Fatalf("expected ErrEdgeExists, got %v", err)
	}
}

func TestMergeNodes_RedirectsAndDeletesSelfLoop(t *testing.T) {
	// Triangle 1-2, 2-3, 1-3. Merging 1 and 2 must delete the 1-2 self-loop
	// and leave edges to 3 redirected/combined onto survivor 1.
	g := region.NewGraph(3)
	if _, err := g.AddEdge(1, 2, newMax(t, 0.2)); err != nil {
		t.Fatalf("AddEdge 1-2: %v", err)
	}
	if _, err := g.AddEdge(2, 3, newMax(t, 0.4)); err != nil {
		t.Fatalf("AddEdge 2-3: %v", err)
	}
	if _, err := g.AddEdge(1, 3, newMax(t, 0.6)); err != nil {
		t.Fatalf("AddEdge 1-3: %v", err)
	}

	survivor, err := g.MergeNodes(1, 2, combine)
	if err != nil {
		t.Fatalf("MergeNodes: %v", err)
	}
	if survivor != 1 {
		t.Fatalf("survivor = %d, want 1 (smaller id)", survivor)
	}
	if g.IsLive(2) {
		t.Fatalf("node 2 should be dead after merge")
	}

	live := g.LiveEdges()
	if len(live) != 1 {
		t.Fatalf("expected exactly one surviving edge, got %d", len(live))
	}
	e := live[0]
	if (e.U != 1 || e.V != 3) && (e.U != 3 || e.V != 1) {
		t.Fatalf("surviving edge should connect 1 and 3, got %d-%d", e.U, e.V)
	}
	// 1-3 was max(0.6) combined with 2-3's max(0.4) => still 0.6.
	if got := e.Stat.Value(0); got != float64(float32(0.6)) {
		t.Fatalf("combined stat = %v, want 0.6", got)
	}
}

func TestMergeNodes_CombinesParallelEdges(t *testing.T) {
	// Star: 1-2, 1-3, 2-3. Merging 2 and 3 should combine the edges to 1
	// into a single parallel edge rather than leaving two.
	g := region.NewGraph(3)
	_, _ = g.AddEdge(1, 2, newMax(t, 0.3))
	_, _ = g.AddEdge(1, 3, newMax(t, 0.7))
	_, _ = g.AddEdge(2, 3, newMax(t, 0.1))

	survivor, err := g.MergeNodes(2, 3, combine)
	if err != nil {
		t.Fatalf("MergeNodes: %v", err)
	}
	if survivor != 2 {
		t.Fatalf("survivor = %d, want 2", survivor)
	}

	live := g.LiveEdges()
	if len(live) != 1 {
		t.Fatalf("expected one combined edge, got %d", len(live))
	}
	if got := live[0].Stat.Value(0); got != float64(float32(0.7)) {
		t.Fatalf("combined value = %v, want 0.7 (max of 0.3, 0.7)", got)
	}
}

func TestResolve_PathCompression(t *testing.T) {
	g := region.NewGraph(4)
	_, _ = g.AddEdge(1, 2, newMax(t, 0.1))
	_, _ = g.AddEdge(2, 3, newMax(t, 0.1))
	_, _ = g.AddEdge(3, 4, newMax(t, 0.1))

	// Chain merges: (3,4)->3, (2,3)->2, (1,2)->1.
	if _, err := g.MergeNodes(3, 4, combine); err != nil {
		t.Fatalf("merge 3,4: %v", err)
	}
	if _, err := g.MergeNodes(2, 3, combine); err != nil {
		t.Fatalf("merge 2,3: %v", err)
	}
	if _, err := g.MergeNodes(1, 2, combine); err != nil {
		t.Fatalf("merge 1,2: %v", err)
	}

	for id := uint32(1); id <= 4; id++ {
		if root := g.Resolve(id); root != 1 {
			t.Fatalf("Resolve(%d) = %d, want 1", id, root)
		}
	}
}

func TestMergeNodes_NotLive(t *testing.T) {
	g := region.NewGraph(2)
	if _, err := g.MergeNodes(1, 5, combine); err != region.ErrNodeNotLive {
		t.Fatalf("expected ErrNodeNotLive, got %v", err)
	}
}
