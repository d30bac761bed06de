package detmetrics

import (
	"sort"
)

// FrameMatch is the outcome of matching one frame of detections against the
// frame's ground truth at a single IoU threshold.  TP, FP and Scores are
// index aligned in descending score order, every prediction is flagged 1 in
// exactly one of TP or FP.  GroundTruth is the number of ground truth boxes
// in the frame regardless of how many were matched
type FrameMatch struct {
	TP          []int
	FP          []int
	Scores      []float64
	GroundTruth int
}

// MatchFrame greedily assigns each prediction, in descending confidence
// order, to the unclaimed ground truth box it overlaps best, labelling the
// prediction true positive when that best IoU reaches threshold and false
// positive otherwise.  Each ground truth box can be claimed by at most one
// prediction per frame.
//
// Score ties keep their original input order and exact IoU ties claim the
// lowest index ground truth box, so the procedure is deterministic.  Boxes
// and scores in dets must be index aligned, use NewFrameDetections
func MatchFrame(dets FrameDetections, gt FrameGroundTruth, threshold float64) FrameMatch {

	n := len(dets.Boxes)

	m := FrameMatch{
		TP:          make([]int, 0, n),
		FP:          make([]int, 0, n),
		Scores:      make([]float64, 0, n),
		GroundTruth: len(gt),
	}

	// sort detection indices by score from high to low, stable so equal
	// scores keep input order
	order := make([]int, n)

	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return dets.Scores[order[i]] > dets.Scores[order[j]]
	})

	// ground truth boxes are never removed, a claimed flag per index keeps
	// the remaining candidate set and preserves stable indices for the
	// tie break
	claimed := make([]bool, len(gt))
	remaining := len(gt)

	for _, di := range order {
		m.Scores = append(m.Scores, dets.Scores[di])

		if remaining == 0 {
			m.TP = append(m.TP, 0)
			m.FP = append(m.FP, 1)
			continue
		}

		ious := OverlapRatio(dets.Boxes[di], gt)

		// best unclaimed ground truth box, strict greater keeps the lowest
		// index on exact IoU ties
		best := -1
		bestIoU := 0.0

		for j, iou := range ious {
			if claimed[j] {
				continue
			}

			if best == -1 || iou > bestIoU {
				best = j
				bestIoU = iou
			}
		}

		if bestIoU < threshold {
			m.TP = append(m.TP, 0)
			m.FP = append(m.FP, 1)
			continue
		}

		m.TP = append(m.TP, 1)
		m.FP = append(m.FP, 0)
		claimed[best] = true
		remaining--
	}

	return m
}
