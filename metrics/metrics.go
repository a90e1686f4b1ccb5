package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/agglo/volume"
)

// Evaluate scores pred against gt via contingency-table construction.
// Split components condition on the ground-truth label (how many
// predicted regions a single true object was spread across); merge
// components condition on the predicted label (how many true objects a
// single predicted region folded together).
func Evaluate(pred, gt *volume.Seg) (Result, error) {
	if pred == nil || gt == nil {
		return Result{}, ErrNilSeg
	}
	if pred.W != gt.W || pred.H != gt.H || pred.D != gt.D {
		return Result{}, ErrDimMismatch
	}

	contingency := make(map[[2]uint32]uint64)
	for i, a := range pred.Labels {
		b := gt.Labels[i]
		contingency[[2]uint32{a, b}]++
	}

	n := float64(len(pred.Labels))

	var sumAB, sumA, sumB float64
	for _, size := range pred.Sizes {
		sumA += comb2(size)
	}
	for _, size := range gt.Sizes {
		sumB += comb2(size)
	}
	pAB := make([]float64, 0, len(contingency))
	for _, nij := range contingency {
		sumAB += comb2(nij)
		pAB = append(pAB, float64(nij)/n)
	}

	pA := make([]float64, len(pred.Sizes))
	for i, size := range pred.Sizes {
		pA[i] = float64(size) / n
	}
	pB := make([]float64, len(gt.Sizes))
	for i, size := range gt.Sizes {
		pB[i] = float64(size) / n
	}

	hA := stat.Entropy(pA)
	hB := stat.Entropy(pB)
	hAB := stat.Entropy(pAB)

	res := Result{
		VOISplit: hAB - hB,
		VOIMerge: hAB - hA,
	}
	if sumB > 0 {
		res.RandSplit = 1 - sumAB/sumB
	}
	if sumA > 0 {
		res.RandMerge = 1 - sumAB/sumA
	}

	return res, nil
}

// comb2 returns the number of unordered pairs among n items, n*(n-1)/2.
func comb2(n uint64) float64 {
	f := float64(n)

	return f * (f - 1) / 2
}
