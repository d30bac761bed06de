package detmetrics

import (
	"fmt"
	"sync"
)

// DefaultThresholds are the IoU thresholds commonly used for bird's eye
// view detection evaluation
var DefaultThresholds = []float64{0.30, 0.50, 0.70}

// Evaluator accumulates detection results against ground truth over a
// dataset and computes Average Precision at a set of IoU thresholds.  Each
// threshold owns an independent ResultStatistics, so thresholds are
// processed concurrently within a frame while frames themselves stay in
// strict caller supplied order
type Evaluator struct {
	thresholds []float64
	stats      map[float64]*ResultStatistics
}

// ThresholdResult packages the evaluation outcome at a single IoU
// threshold.  Recall and Precision are the smoothed curves including
// sentinel points, for reporting or plotting by the caller
type ThresholdResult struct {
	Threshold   float64
	AP          float64
	Recall      []float64
	Precision   []float64
	GroundTruth int
}

// Report holds one ThresholdResult per configured threshold, in the order
// the thresholds were given
type Report struct {
	Results []ThresholdResult
}

// NewEvaluator creates an Evaluator with empty statistics for each given
// IoU threshold.  Duplicate threshold values are ignored so each threshold
// owns exactly one statistics object.  With no thresholds given
// DefaultThresholds is used
func NewEvaluator(thresholds ...float64) *Evaluator {

	if len(thresholds) == 0 {
		thresholds = DefaultThresholds
	}

	e := &Evaluator{
		thresholds: make([]float64, 0, len(thresholds)),
		stats:      make(map[float64]*ResultStatistics, len(thresholds)),
	}

	for _, t := range thresholds {
		if _, ok := e.stats[t]; ok {
			continue
		}

		e.thresholds = append(e.thresholds, t)
		e.stats[t] = &ResultStatistics{}
	}

	return e
}

// Stats returns the statistics accumulated for the given threshold, or nil
// if the threshold is not configured
func (e *Evaluator) Stats(threshold float64) *ResultStatistics {
	return e.stats[threshold]
}

// AddFrame matches one frame of detections against the frame's ground
// truth and accumulates the outcome into every threshold's statistics.
// Frames must be added one at a time in dataset order
func (e *Evaluator) AddFrame(dets FrameDetections, gt FrameGroundTruth) error {

	if len(dets.Boxes) != len(dets.Scores) {
		return fmt.Errorf("box count %d does not match score count %d",
			len(dets.Boxes), len(dets.Scores))
	}

	var wg sync.WaitGroup

	for _, t := range e.thresholds {
		wg.Add(1)

		go func(t float64) {
			defer wg.Done()
			e.stats[t].Accumulate(MatchFrame(dets, gt, t))
		}(t)
	}

	wg.Wait()

	return nil
}

// Results runs the AP computation once per configured threshold and
// packages the scalar APs and smoothed curves into a Report.  globalSort
// re-ranks all accumulated predictions by score across the whole dataset
// instead of keeping per frame order, see ComputeAP.  The accumulated
// statistics are left unmodified so further frames can still be added
func (e *Evaluator) Results(globalSort bool) *Report {

	report := &Report{
		Results: make([]ThresholdResult, len(e.thresholds)),
	}

	var wg sync.WaitGroup

	for i, t := range e.thresholds {
		wg.Add(1)

		go func(i int, t float64) {
			defer wg.Done()

			stats := e.stats[t]
			ap, rec, prec := ComputeAP(stats, globalSort)

			report.Results[i] = ThresholdResult{
				Threshold:   t,
				AP:          ap,
				Recall:      rec,
				Precision:   prec,
				GroundTruth: stats.GroundTruth,
			}
		}(i, t)
	}

	wg.Wait()

	return report
}
