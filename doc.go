/*
go-detmetrics scores object detection output against ground truth for
oriented bounding boxes (2D quadrilaterals or 3D cuboids projected to their
ground plane) and produces standard detection quality metrics: precision,
recall, and Average Precision (AP) at a configurable set of IoU thresholds.

Detections and ground truth are fed in one frame at a time.  Each frame's
predictions are greedily matched against the frame's ground truth boxes in
descending confidence order and labelled true positive or false positive.
The per prediction labels and scores accumulate across frames into one
ResultStatistics per threshold, which is then converted into a
precision-recall curve and integrated into a scalar AP using the VOC-2010
interpolated envelope rule.

Basic usage:

	eval := detmetrics.NewEvaluator(0.30, 0.50, 0.70)

	for _, frame := range frames {
		dets, err := detmetrics.NewFrameDetections(frame.Boxes, frame.Scores)

		if err != nil {
			return err
		}

		err = eval.AddFrame(dets, frame.GroundTruth)

		if err != nil {
			return err
		}
	}

	report := eval.Results(false)

The engine performs no I/O and does not render or persist anything, see the
render subpackage for drawing boxes on a gocv.Mat and the example directory
for runnable programs.
*/
package detmetrics
