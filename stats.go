package detmetrics

// ResultStatistics accumulates per prediction outcomes across all frames
// processed so far for one IoU threshold.  Scores, TP and FP are parallel
// sequences of equal length that grow by one entry per prediction as frames
// are accumulated, GroundTruth is the running total of ground truth boxes
// seen.  The statistics are owned by the caller, created empty before the
// first frame, mutated only by Accumulate and read only by ComputeAP
type ResultStatistics struct {
	Scores      []float64
	TP          []int
	FP          []int
	GroundTruth int
}

// Accumulate appends one frame's match results onto the statistics.  The
// per frame entries stay in their descending score order and frames are
// simply concatenated, no global re-sort happens at this stage.  Call once
// per frame per threshold
func (s *ResultStatistics) Accumulate(m FrameMatch) {
	s.Scores = append(s.Scores, m.Scores...)
	s.TP = append(s.TP, m.TP...)
	s.FP = append(s.FP, m.FP...)
	s.GroundTruth += m.GroundTruth
}

// Len returns the number of predictions accumulated so far
func (s *ResultStatistics) Len() int {
	return len(s.Scores)
}
