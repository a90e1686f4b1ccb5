package watershed_test

import (
	"testing"

	"github.com/katalvlaran/agglo/stats"
	"github.com/katalvlaran/agglo/volume"
	"github.com/katalvlaran/agglo/watershed"
)

// chanData builds a 3*w*h*d affinity slice with the given channel-0 values
// and zeroes elsewhere, for tests that only exercise x-direction adjacency.
func chanData(w, h, d int, ch0 []float32) []float32 {
	data := make([]float32, 3*w*h*d)
	copy(data, ch0)

	return data
}

func TestSeedRejectsNilAffinity(t *testing.T) {
	if _, err := watershed.Seed(nil, watershed.DefaultOptions()); err != watershed.ErrNilAffinity {
		t.Fatalf("expected ErrNilAffinity, got %v", err)
	}
}

func TestSeedRejectsBadThresholds(t *testing.T) {
	aff, err := volume.NewAffinity(1, 1, 1, make([]float32, 3))
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}
	_, err = watershed.Seed(aff, watershed.Options{Low: 0.9, High: 0.1})
	if err != watershed.ErrBadThresholds {
		t.Fatalf("expected ErrBadThresholds, got %v", err)
	}
}

func TestSeedCutsWeakAffinity(t *testing.T) {
	// Two voxels along x; interfacial affinity 0.05 is at or below Low.
	aff, err := volume.NewAffinity(2, 1, 1, chanData(2, 1, 1, []float32{0.05}))
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}

	seg, err := watershed.Seed(aff, watershed.DefaultOptions())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if seg.NumIDs() != 2 {
		t.Fatalf("expected 2 basins, got %d", seg.NumIDs())
	}
	if seg.Labels[0] == seg.Labels[1] {
		t.Fatalf("expected distinct labels, got %v", seg.Labels)
	}
}

func TestSeedMergesStrongAffinity(t *testing.T) {
	aff, err := volume.NewAffinity(2, 1, 1, chanData(2, 1, 1, []float32{0.95}))
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}

	seg, err := watershed.Seed(aff, watershed.DefaultOptions())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if seg.NumIDs() != 1 {
		t.Fatalf("expected 1 basin, got %d", seg.NumIDs())
	}
	if seg.Sizes[1] != 2 {
		t.Fatalf("expected basin size 2, got %d", seg.Sizes[1])
	}
}

func TestSeedGrowsBasinIntoSingleton(t *testing.T) {
	// Three voxels along x, both interfacial affinities mid-range: the
	// basin grows voxel-by-voxel into each undecided singleton.
	aff, err := volume.NewAffinity(3, 1, 1, chanData(3, 1, 1, []float32{0.5, 0.5}))
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}

	seg, err := watershed.Seed(aff, watershed.DefaultOptions())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if seg.NumIDs() != 1 {
		t.Fatalf("expected 1 basin, got %d", seg.NumIDs())
	}
}

func TestSeedDoesNotBridgeTwoGrownBasins(t *testing.T) {
	// Four voxels along x: 0-1 and 2-3 merge definitely (>=High); the
	// ambiguous 1-2 edge must not bridge the two already-grown basins.
	aff, err := volume.NewAffinity(4, 1, 1, chanData(4, 1, 1, []float32{0.95, 0.5, 0.95}))
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}

	seg, err := watershed.Seed(aff, watershed.DefaultOptions())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if seg.NumIDs() != 2 {
		t.Fatalf("expected 2 basins, got %d", seg.NumIDs())
	}
	if seg.Labels[0] != seg.Labels[1] || seg.Labels[2] != seg.Labels[3] {
		t.Fatalf("expected {0,1} and {2,3} grouped together, got %v", seg.Labels)
	}
	if seg.Labels[1] == seg.Labels[2] {
		t.Fatalf("expected the two basins to remain distinct, got %v", seg.Labels)
	}
}

func TestBuildRegionGraphRoutesInterfacialAffinities(t *testing.T) {
	aff, err := volume.NewAffinity(4, 1, 1, chanData(4, 1, 1, []float32{0.95, 0.5, 0.95}))
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}
	seg, err := watershed.Seed(aff, watershed.DefaultOptions())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	g, err := watershed.BuildRegionGraph(aff, seg, stats.KindMax, stats.DefaultOptions())
	if err != nil {
		t.Fatalf("BuildRegionGraph: %v", err)
	}
	if g.NumNodes() != 2 {
		t.Fatalf("expected 2 nodes, got %d", g.NumNodes())
	}
	if g.Size(1) != 2 || g.Size(2) != 2 {
		t.Fatalf("expected both basins to report size 2, got %d/%d", g.Size(1), g.Size(2))
	}

	live := g.LiveEdges()
	if len(live) != 1 {
		t.Fatalf("expected 1 edge between the two basins, got %d", len(live))
	}
	if v := live[0].Stat.Value(0); v != 0.5 {
		t.Fatalf("expected the interfacial edge to carry affinity 0.5, got %v", v)
	}
}

func TestBuildRegionGraphRejectsDimMismatch(t *testing.T) {
	aff, err := volume.NewAffinity(2, 1, 1, chanData(2, 1, 1, []float32{0.5}))
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}
	seg, err := volume.NewSeg(3, 1, 1, []uint32{1, 1, 2})
	if err != nil {
		t.Fatalf("NewSeg: %v", err)
	}

	_, err = watershed.BuildRegionGraph(aff, seg, stats.KindMax, stats.DefaultOptions())
	if err != watershed.ErrDimMismatch {
		t.Fatalf("expected ErrDimMismatch, got %v", err)
	}
}
