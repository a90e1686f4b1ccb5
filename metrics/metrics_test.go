package metrics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/agglo/metrics"
	"github.com/katalvlaran/agglo/volume"
)

func mustSeg(t *testing.T, w, h, d int, labels []uint32) *volume.Seg {
	t.Helper()
	s, err := volume.NewSeg(w, h, d, labels)
	if err != nil {
		t.Fatalf("NewSeg: %v", err)
	}

	return s
}

func TestEvaluateIdenticalSegmentationsScoreZero(t *testing.T) {
	pred := mustSeg(t, 4, 1, 1, []uint32{1, 1, 1, 1})
	gt := mustSeg(t, 4, 1, 1, []uint32{1, 1, 1, 1})

	res, err := metrics.Evaluate(pred, gt)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for name, v := range map[string]float64{
		"RandSplit": res.RandSplit, "RandMerge": res.RandMerge,
		"VOISplit": res.VOISplit, "VOIMerge": res.VOIMerge,
	} {
		if math.Abs(v) > 1e-9 {
			t.Fatalf("expected %s == 0 for identical segmentations, got %v", name, v)
		}
	}
}

func TestEvaluateOversegmentationIsSplitNotMerge(t *testing.T) {
	// Ground truth labels all four voxels as one object; the prediction
	// cuts it into two, a pure split error with no merge error.
	gt := mustSeg(t, 4, 1, 1, []uint32{1, 1, 1, 1})
	pred := mustSeg(t, 4, 1, 1, []uint32{1, 1, 2, 2})

	res, err := metrics.Evaluate(pred, gt)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.RandMerge != 0 {
		t.Fatalf("expected RandMerge 0, got %v", res.RandMerge)
	}
	if res.VOIMerge > 1e-9 {
		t.Fatalf("expected VOIMerge ~0, got %v", res.VOIMerge)
	}
	if res.RandSplit <= 0 {
		t.Fatalf("expected RandSplit > 0, got %v", res.RandSplit)
	}
	if res.VOISplit <= 0 {
		t.Fatalf("expected VOISplit > 0, got %v", res.VOISplit)
	}
}

func TestEvaluateUndersegmentationIsMergeNotSplit(t *testing.T) {
	// Ground truth labels two distinct objects; the prediction folds
	// them into one, a pure merge error with no split error.
	gt := mustSeg(t, 4, 1, 1, []uint32{1, 1, 2, 2})
	pred := mustSeg(t, 4, 1, 1, []uint32{1, 1, 1, 1})

	res, err := metrics.Evaluate(pred, gt)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.RandSplit != 0 {
		t.Fatalf("expected RandSplit 0, got %v", res.RandSplit)
	}
	if res.VOISplit > 1e-9 {
		t.Fatalf("expected VOISplit ~0, got %v", res.VOISplit)
	}
	if res.RandMerge <= 0 {
		t.Fatalf("expected RandMerge > 0, got %v", res.RandMerge)
	}
	if res.VOIMerge <= 0 {
		t.Fatalf("expected VOIMerge > 0, got %v", res.VOIMerge)
	}
}

func TestEvaluateRejectsNilAndMismatchedDims(t *testing.T) {
	gt := mustSeg(t, 2, 1, 1, []uint32{1, 1})

	if _, err := metrics.Evaluate(nil, gt); err != metrics.ErrNilSeg {
		t.Fatalf("expected ErrNilSeg, got %v", err)
	}

	other := mustSeg(t, 4, 1, 1, []uint32{1, 1, 1, 1})
	if _, err := metrics.Evaluate(other, gt); err != metrics.ErrDimMismatch {
		t.Fatalf("expected ErrDimMismatch, got %v", err)
	}
}
