package engine_test

import (
	"testing"

	"github.com/katalvlaran/agglo/region"
	"github.com/katalvlaran/agglo/stats"
)

// edgeSpec is a simple (u, v, affinity) triple used to build small region
// graphs in tests; each edge carries a single-sample MaxStat so its value
// equals the given affinity verbatim.
type edgeSpec struct {
	u, v uint32
	aff  float32
}

func buildGraph(t *testing.T, n int, specs []edgeSpec) *region.Graph {
	t.Helper()
	g := region.NewGraph(n)
	for _, sp := range specs {
		st := &stats.MaxStat{}
		if err := st.Init([]float32{sp.aff}); err != nil {
			t.Fatalf("Init stat: %v", err)
		}
		if _, err := g.AddEdge(sp.u, sp.v, st); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", sp.u, sp.v, err)
		}
	}

	return g
}
