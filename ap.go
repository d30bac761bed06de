package detmetrics

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ComputeAP converts accumulated statistics into a precision-recall curve
// and integrates it into a scalar Average Precision using the VOC-2010
// interpolated envelope rule.  The returned recall and precision sequences
// are the smoothed curves including the 0/0 and 1/0 sentinel points.
//
// When globalSort is true all accumulated predictions are re-ranked by
// score across the whole dataset before forming the curve, score ties keep
// their accumulated order.  When false the existing per frame concatenated
// order is kept.
//
// With zero accumulated ground truth recall is defined as 0.0 rather than
// dividing by zero, giving an AP of 0.0.  The statistics are not modified,
// repeated calls on the same statistics return identical results
func ComputeAP(stats *ResultStatistics, globalSort bool) (float64, []float64, []float64) {

	n := stats.Len()

	order := make([]int, n)

	for i := range order {
		order[i] = i
	}

	if globalSort {
		sort.SliceStable(order, func(i, j int) bool {
			return stats.Scores[order[i]] > stats.Scores[order[j]]
		})
	}

	tp := make([]float64, n)
	fp := make([]float64, n)

	for i, idx := range order {
		tp[i] = float64(stats.TP[idx])
		fp[i] = float64(stats.FP[idx])
	}

	cumTP := make([]float64, n)
	cumFP := make([]float64, n)

	floats.CumSum(cumTP, tp)
	floats.CumSum(cumFP, fp)

	rec := make([]float64, n)
	prec := make([]float64, n)

	for i := 0; i < n; i++ {
		if stats.GroundTruth > 0 {
			rec[i] = cumTP[i] / float64(stats.GroundTruth)
		}

		prec[i] = cumTP[i] / (cumTP[i] + cumFP[i])
	}

	return vocAP(rec, prec)
}

// vocAP applies VOC-2010 interpolated Average Precision to a raw
// precision-recall curve.  Sentinel points at recall 0.0 and 1.0 with
// precision 0.0 bound the curve, each precision is replaced by the maximum
// precision at equal or greater recall index scanning backwards, and AP is
// the sum of the envelope precision over every recall step
func vocAP(rec, prec []float64) (float64, []float64, []float64) {

	mrec := make([]float64, 0, len(rec)+2)
	mrec = append(mrec, 0.0)
	mrec = append(mrec, rec...)
	mrec = append(mrec, 1.0)

	mpre := make([]float64, 0, len(prec)+2)
	mpre = append(mpre, 0.0)
	mpre = append(mpre, prec...)
	mpre = append(mpre, 0.0)

	for i := len(mpre) - 2; i >= 0; i-- {
		if mpre[i+1] > mpre[i] {
			mpre[i] = mpre[i+1]
		}
	}

	ap := 0.0

	for i := 1; i < len(mrec); i++ {
		if mrec[i] != mrec[i-1] {
			ap += (mrec[i] - mrec[i-1]) * mpre[i]
		}
	}

	return ap, mrec, mpre
}
