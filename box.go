package detmetrics

import (
	"fmt"
)

// Point is a single box corner in 2D or 3D space.  Z is ignored for flat
// quadrilaterals
type Point struct {
	X float64
	Y float64
	Z float64
}

// Box is an oriented bounding volume represented as an ordered sequence of
// corner points, either 4 corners for a flat quadrilateral or 8 corners for
// a cuboid.  The first four corners form the ground plane polygon used for
// overlap computation, following the producer convention that the first
// face of every box is its evaluation face.  A Box is never modified once
// created
type Box []Point

// FrameDetections is one frame of predicted boxes paired with their
// confidence scores.  Boxes and Scores are index aligned and must be the
// same length, use NewFrameDetections to enforce this.  Input order carries
// no meaning, the matcher imposes descending score order internally
type FrameDetections struct {
	Boxes  []Box
	Scores []float64
}

// FrameGroundTruth is one frame of ground truth boxes.  Each box is a
// candidate for at most one match per frame
type FrameGroundTruth []Box

// NewFrameDetections pairs predicted boxes with their confidence scores,
// returning an error if the counts differ
func NewFrameDetections(boxes []Box, scores []float64) (FrameDetections, error) {

	if len(boxes) != len(scores) {
		return FrameDetections{}, fmt.Errorf("box count %d does not match score count %d",
			len(boxes), len(scores))
	}

	return FrameDetections{
		Boxes:  boxes,
		Scores: scores,
	}, nil
}

// groundQuad projects the box onto its ground plane polygon, returning the
// first four corners as a flat array of x and y pairs
func (b Box) groundQuad() quad {

	var q quad

	for i := 0; i < 4 && i < len(b); i++ {
		q[2*i] = b[i].X
		q[2*i+1] = b[i].Y
	}

	return q
}
