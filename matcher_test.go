package detmetrics

import (
	"sort"
	"testing"
)

func TestMatchFrameSimple(t *testing.T) {

	gt := FrameGroundTruth{axisBox(0, 0, 2, 2)}

	dets, err := NewFrameDetections([]Box{axisBox(0, 0, 2, 2)}, []float64{0.9})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := MatchFrame(dets, gt, 0.5)

	if !intsEqual(m.TP, []int{1}) || !intsEqual(m.FP, []int{0}) {
		t.Errorf("expected TP=[1] FP=[0], got TP=%v FP=%v", m.TP, m.FP)
	}

	if m.GroundTruth != 1 {
		t.Errorf("expected ground truth count 1, got %d", m.GroundTruth)
	}
}

func TestMatchFrameBelowThreshold(t *testing.T) {

	gt := FrameGroundTruth{axisBox(0, 0, 2, 2)}

	// IoU of 1/3 sits below the 0.5 threshold
	dets, _ := NewFrameDetections([]Box{axisBox(1, 0, 2, 2)}, []float64{0.9})

	m := MatchFrame(dets, gt, 0.5)

	if !intsEqual(m.TP, []int{0}) || !intsEqual(m.FP, []int{1}) {
		t.Errorf("expected TP=[0] FP=[1], got TP=%v FP=%v", m.TP, m.FP)
	}
}

func TestMatchFrameEmptyGroundTruth(t *testing.T) {

	dets, _ := NewFrameDetections(
		[]Box{axisBox(0, 0, 2, 2), axisBox(5, 5, 2, 2)},
		[]float64{0.9, 0.8},
	)

	m := MatchFrame(dets, FrameGroundTruth{}, 0.5)

	if !intsEqual(m.TP, []int{0, 0}) || !intsEqual(m.FP, []int{1, 1}) {
		t.Errorf("expected all false positives, got TP=%v FP=%v", m.TP, m.FP)
	}

	if m.GroundTruth != 0 {
		t.Errorf("expected ground truth count 0, got %d", m.GroundTruth)
	}
}

func TestMatchFrameScoreOrdering(t *testing.T) {

	gt := FrameGroundTruth{axisBox(0, 0, 2, 2)}

	// input is not score ordered, the matcher must process the 0.9
	// detection first so it claims the ground truth box and the weaker
	// overlapping detection becomes a false positive
	dets, _ := NewFrameDetections(
		[]Box{axisBox(0, 0, 2, 2), axisBox(0, 0, 2, 2)},
		[]float64{0.4, 0.9},
	)

	m := MatchFrame(dets, gt, 0.5)

	expected := []float64{0.9, 0.4}

	if !floatsEqual(m.Scores, expected, 0) {
		t.Errorf("expected scores %v, got %v", expected, m.Scores)
	}

	if !intsEqual(m.TP, []int{1, 0}) || !intsEqual(m.FP, []int{0, 1}) {
		t.Errorf("expected TP=[1 0] FP=[0 1], got TP=%v FP=%v", m.TP, m.FP)
	}
}

func TestMatchFrameScoreTieStable(t *testing.T) {

	gt := FrameGroundTruth{axisBox(10, 10, 2, 2)}

	// equal scores keep input order, so the non overlapping first
	// detection is labelled before the matching second one
	dets, _ := NewFrameDetections(
		[]Box{axisBox(0, 0, 2, 2), axisBox(10, 10, 2, 2)},
		[]float64{0.5, 0.5},
	)

	m := MatchFrame(dets, gt, 0.5)

	if !intsEqual(m.TP, []int{0, 1}) || !intsEqual(m.FP, []int{1, 0}) {
		t.Errorf("expected TP=[0 1] FP=[1 0], got TP=%v FP=%v", m.TP, m.FP)
	}
}

func TestMatchFrameGroundTruthTieLowestIndex(t *testing.T) {

	// two identical ground truth boxes tie exactly at the maximum IoU,
	// each detection must claim the lowest unclaimed index so both end up
	// matched
	gt := FrameGroundTruth{axisBox(0, 0, 2, 2), axisBox(0, 0, 2, 2)}

	dets, _ := NewFrameDetections(
		[]Box{axisBox(0, 0, 2, 2), axisBox(0, 0, 2, 2)},
		[]float64{0.9, 0.8},
	)

	m := MatchFrame(dets, gt, 0.5)

	if !intsEqual(m.TP, []int{1, 1}) {
		t.Errorf("expected both detections matched, got TP=%v", m.TP)
	}
}

func TestMatchFrameOneToOne(t *testing.T) {

	// three detections chase a single ground truth box, only one may
	// claim it
	gt := FrameGroundTruth{axisBox(0, 0, 2, 2)}

	dets, _ := NewFrameDetections(
		[]Box{axisBox(0, 0, 2, 2), axisBox(0, 0, 2, 2), axisBox(0, 0, 2, 2)},
		[]float64{0.9, 0.8, 0.7},
	)

	m := MatchFrame(dets, gt, 0.5)

	sumTP := 0
	for i := range m.TP {
		sumTP += m.TP[i]

		if m.TP[i]+m.FP[i] != 1 {
			t.Errorf("prediction %d must be exactly one of TP or FP", i)
		}
	}

	if sumTP != 1 {
		t.Errorf("expected exactly 1 true positive, got %d", sumTP)
	}

	if sumTP > m.GroundTruth {
		t.Errorf("matched more ground truth than exists")
	}
}

func TestMatchFrameProperties(t *testing.T) {

	// frame level properties over a mixed scenario
	gt := FrameGroundTruth{
		orientedBox(10, 10, 4, 2, 0.4),
		orientedBox(30, 30, 5, 3, -0.2),
		orientedBox(50, 10, 4, 4, 1.0),
	}

	dets, _ := NewFrameDetections(
		[]Box{
			orientedBox(10.2, 10.1, 4, 2, 0.4),
			orientedBox(80, 80, 3, 3, 0),
			orientedBox(30.5, 29.8, 5, 3, -0.2),
		},
		[]float64{0.95, 0.70, 0.88},
	)

	m := MatchFrame(dets, gt, 0.5)

	if len(m.TP) != 3 || len(m.FP) != 3 || len(m.Scores) != 3 {
		t.Fatalf("expected 3 entries per sequence, got %d/%d/%d",
			len(m.TP), len(m.FP), len(m.Scores))
	}

	if !sort.IsSorted(sort.Reverse(sort.Float64Slice(m.Scores))) {
		t.Errorf("scores not in descending order: %v", m.Scores)
	}

	sumTP, sumFP := 0, 0
	for i := range m.TP {
		sumTP += m.TP[i]
		sumFP += m.FP[i]
	}

	if sumTP > len(gt) {
		t.Errorf("sum TP %d exceeds ground truth %d", sumTP, len(gt))
	}

	if sumTP+sumFP != 3 {
		t.Errorf("every detection must be labelled, TP+FP=%d", sumTP+sumFP)
	}
}

func TestMatchFrameDegenerateDetection(t *testing.T) {

	// a zero area detection box inside a ground truth box overlaps it
	// with IoU 0.0 and must be labelled false positive, not matched
	gt := FrameGroundTruth{axisBox(0, 0, 2, 2)}

	point := Box{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}

	dets, _ := NewFrameDetections([]Box{point}, []float64{0.9})

	m := MatchFrame(dets, gt, 0.5)

	if !intsEqual(m.TP, []int{0}) || !intsEqual(m.FP, []int{1}) {
		t.Errorf("expected TP=[0] FP=[1] for zero area detection, got TP=%v FP=%v",
			m.TP, m.FP)
	}
}

func TestNewFrameDetectionsMismatch(t *testing.T) {

	_, err := NewFrameDetections([]Box{axisBox(0, 0, 2, 2)}, []float64{0.9, 0.8})

	if err == nil {
		t.Error("expected error for mismatched box and score counts")
	}
}
