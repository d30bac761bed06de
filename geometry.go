package detmetrics

import (
	"math"
	"sort"
)

// quad is a convex quadrilateral as a flat array of 4 corner x and y pairs
type quad [8]float64

// OverlapRatio calculates the Intersection over Union (IoU) between box and
// each candidate box, returned in candidate order.  Boxes are compared on
// their ground plane polygons.  A zero area union is defined as IoU 0.0.
// Callers are expected to supply well formed convex quadrilateral corners,
// degenerate corner orderings are not validated
func OverlapRatio(box Box, candidates []Box) []float64 {

	ratios := make([]float64, len(candidates))

	q := box.groundQuad()
	area := quadArea(q)

	// a zero area polygon defeats the point in quad test, every cross
	// product is zero so every point reads as inside.  the overlap with
	// such a polygon is defined as 0.0, so skip the intersection entirely
	if area == 0 {
		return ratios
	}

	for i, c := range candidates {
		cq := c.groundQuad()
		cArea := quadArea(cq)

		if cArea == 0 {
			continue
		}

		inter := intersectionArea(q, cq)
		union := area + cArea - inter

		if union <= 0 {
			ratios[i] = 0.0
			continue
		}

		ratios[i] = inter / union
	}

	return ratios
}

// intersectionArea calculates the area of the intersection polygon of two
// convex quadrilaterals.  The intersection vertices are the corners of each
// box contained in the other plus all edge crossing points, sorted into
// convex polygon order and summed as a triangle fan
func intersectionArea(q1, q2 quad) float64 {

	var pts []vertex

	// corners of the first box inside the second box
	for i := 0; i < 4; i++ {
		if pointInQuad(q1[2*i], q1[2*i+1], q2) {
			pts = append(pts, vertex{q1[2*i], q1[2*i+1]})
		}
	}

	// corners of the second box inside the first box
	for i := 0; i < 4; i++ {
		if pointInQuad(q2[2*i], q2[2*i+1], q1) {
			pts = append(pts, vertex{q2[2*i], q2[2*i+1]})
		}
	}

	// crossing points of the boxes edge segments
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			x, y, ok := segmentIntersection(q1, q2, i, j)

			if ok {
				pts = append(pts, vertex{x, y})
			}
		}
	}

	sortVertexInConvexPolygon(pts)

	return polygonArea(pts)
}

// vertex is a single 2D polygon vertex
type vertex struct {
	x, y float64
}

// quadArea calculates the area of a quadrilateral using the shoelace formula
func quadArea(q quad) float64 {

	area := 0.0

	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		area += q[2*i]*q[2*j+1] - q[2*j]*q[2*i+1]
	}

	return math.Abs(area) / 2.0
}

// pointInQuad checks if a point is inside a convex quadrilateral, boundary
// points count as inside.  Works for either corner winding direction
func pointInQuad(ptX, ptY float64, q quad) bool {

	sign := 0

	for i := 0; i < 4; i++ {
		j := (i + 1) % 4

		cross := (q[2*j]-q[2*i])*(ptY-q[2*i+1]) -
			(q[2*j+1]-q[2*i+1])*(ptX-q[2*i])

		if cross > 0 {
			if sign < 0 {
				return false
			}
			sign = 1
		} else if cross < 0 {
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}

	return true
}

// segmentIntersection checks edge i of the first quadrilateral against edge
// j of the second for a proper crossing and calculates the crossing point.
// i and j index a corner, the edge runs from that corner to the next one
func segmentIntersection(q1, q2 quad, i, j int) (float64, float64, bool) {

	aX := q1[2*i]
	aY := q1[2*i+1]
	bX := q1[2*((i+1)%4)]
	bY := q1[2*((i+1)%4)+1]
	cX := q2[2*j]
	cY := q2[2*j+1]
	dX := q2[2*((j+1)%4)]
	dY := q2[2*((j+1)%4)+1]

	ba0 := bX - aX
	ba1 := bY - aY
	da0 := dX - aX
	ca0 := cX - aX
	da1 := dY - aY
	ca1 := cY - aY

	// check segment endpoint orientations using cross products
	acd := da1*ca0 > ca1*da0
	bcd := (dY-bY)*(cX-bX) > (cY-bY)*(dX-bX)

	if acd == bcd {
		return 0, 0, false
	}

	abc := ca1*ba0 > ba1*ca0
	abd := da1*ba0 > ba1*da0

	if abc == abd {
		return 0, 0, false
	}

	dc0 := dX - cX
	dc1 := dY - cY
	abba := aX*bY - bX*aY
	cddc := cX*dY - dX*cY
	dh := ba1*dc0 - ba0*dc1

	return (abba*dc0 - ba0*cddc) / dh, (abba*dc1 - ba1*cddc) / dh, true
}

// sortVertexInConvexPolygon sorts the vertices of a convex polygon into
// angular order around their centroid
func sortVertexInConvexPolygon(pts []vertex) {

	if len(pts) == 0 {
		return
	}

	var center vertex

	for _, pt := range pts {
		center.x += pt.x
		center.y += pt.y
	}

	center.x /= float64(len(pts))
	center.y /= float64(len(pts))

	sort.Slice(pts, func(i, j int) bool {
		return comparePoints(pts[i], pts[j], center)
	})
}

// comparePoints is a comparison function used for sorting polygon vertices
// by angle around the center point
func comparePoints(pt1, pt2, center vertex) bool {

	vx1 := pt1.x - center.x
	vy1 := pt1.y - center.y
	vx2 := pt2.x - center.x
	vy2 := pt2.y - center.y

	d1 := math.Sqrt(vx1*vx1 + vy1*vy1)
	d2 := math.Sqrt(vx2*vx2 + vy2*vy2)

	vx1 /= d1
	vy1 /= d1
	vx2 /= d2
	vy2 /= d2

	if vy1 < 0 {
		vx1 = -2 - vx1
	}

	if vy2 < 0 {
		vx2 = -2 - vx2
	}

	return vx1 < vx2
}

// triangleArea calculates the area of a triangle
func triangleArea(a, b, c vertex) float64 {
	return math.Abs((a.x-c.x)*(b.y-c.y)-(a.y-c.y)*(b.x-c.x)) / 2.0
}

// polygonArea calculates the area of a sorted convex polygon by decomposing
// it into a fan of triangles
func polygonArea(pts []vertex) float64 {

	area := 0.0

	for i := 1; i < len(pts)-1; i++ {
		area += triangleArea(pts[0], pts[i], pts[i+1])
	}

	return area
}
