package render

import (
	"image"
	"image/color"

	"github.com/swdee/go-detmetrics"
	"gocv.io/x/gocv"
)

// Boxes3D renders the wireframe of each 8 corner bounding box onto the
// image by drawing its 12 edges, the front face from the first four
// corners, the back face from the last four, and the four edges connecting
// them.  Corner X and Y coordinates are taken as pixel positions on the
// target surface.  Empty entries and boxes with fewer than 8 corners are
// skipped
func Boxes3D(img *gocv.Mat, boxes []detmetrics.Box, clr color.RGBA, thickness int) {

	for _, box := range boxes {

		if len(box) < 8 {
			continue
		}

		pts := cornerPoints(box, 8)

		// draw front face
		for i := 0; i < 4; i++ {
			gocv.Line(img, pts[i], pts[(i+1)%4], clr, thickness)
		}

		// draw back face
		for i := 0; i < 4; i++ {
			gocv.Line(img, pts[4+i], pts[4+(i+1)%4], clr, thickness)
		}

		// draw edges connecting front and back faces
		for i := 0; i < 4; i++ {
			gocv.Line(img, pts[i], pts[i+4], clr, thickness)
		}
	}
}

// BEVBoxes renders the closed ground plane outline of each box from its
// first four corners, for bird's eye view surfaces.  Empty entries and
// boxes with fewer than 4 corners are skipped
func BEVBoxes(img *gocv.Mat, boxes []detmetrics.Box, clr color.RGBA, thickness int) {

	for _, box := range boxes {

		if len(box) < 4 {
			continue
		}

		pts := cornerPoints(box, 4)

		for i := 0; i < 4; i++ {
			gocv.Line(img, pts[i], pts[(i+1)%4], clr, thickness)
		}
	}
}

// cornerPoints converts the first n box corners to integer image points
func cornerPoints(box detmetrics.Box, n int) []image.Point {

	pts := make([]image.Point, n)

	for i := 0; i < n; i++ {
		pts[i] = image.Pt(int(box[i].X), int(box[i].Y))
	}

	return pts
}
