package primitives

import (
	"agg_go/internal/basics"
	"agg_go/surface"
)

// RoundRectCorners holds the four corner radii of a rounded rectangle, one
// per corner. A negative radius is resolved by the caller to a shared
// default before reaching DrawRoundRectFilled or DrawRoundRectStroked;
// this type only carries the final,
// already-resolved values.
type RoundRectCorners struct {
	TopLeft     int
	TopRight    int
	BottomLeft  int
	BottomRight int
}

// clampRadii scales down all four radii by the same factor if any pair
// along an edge would overlap, preserving their relative proportions
// rather than clamping each independently.
func clampRadii(w, h int, c RoundRectCorners) RoundRectCorners {
	q := 1.0
	if f := float64(w) / float64(c.TopLeft+c.TopRight); c.TopLeft+c.TopRight > 0 && f < q {
		q = f
	}
	if f := float64(w) / float64(c.BottomLeft+c.BottomRight); c.BottomLeft+c.BottomRight > 0 && f < q {
		q = f
	}
	if f := float64(h) / float64(c.TopLeft+c.BottomLeft); c.TopLeft+c.BottomLeft > 0 && f < q {
		q = f
	}
	if f := float64(h) / float64(c.TopRight+c.BottomRight); c.TopRight+c.BottomRight > 0 && f < q {
		q = f
	}
	if q >= 1.0 {
		return c
	}
	return RoundRectCorners{
		TopLeft:     int(float64(c.TopLeft) * q),
		TopRight:    int(float64(c.TopRight) * q),
		BottomLeft:  int(float64(c.BottomLeft) * q),
		BottomRight: int(float64(c.BottomRight) * q),
	}
}

// DrawRoundRectFilled fills a rectangle [x1,y1]-[x2,y2] whose four corners
// are rounded by the radii in corners. It composes an 8-vertex polygon for
// the straight edges and center rectangle with four quadrant arcs for the
// rounded corners.
func DrawRoundRectFilled(t surface.Target, color uint32, x1, y1, x2, y2 int, corners RoundRectCorners, bb *basics.BBox) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	w, h := x2-x1+1, y2-y1+1
	corners = clampRadii(w, h, corners)

	px := []int{
		x1 + corners.TopLeft, x2 - corners.TopRight,
		x2, x2,
		x2 - corners.BottomRight, x1 + corners.BottomLeft,
		x1, x1,
	}
	py := []int{
		y1, y1,
		y1 + corners.TopRight, y2 - corners.BottomRight,
		y2, y2,
		y2 - corners.BottomLeft, y1 + corners.TopLeft,
	}
	FillPolygon(t, color, px, py, bb)

	if corners.TopLeft > 0 {
		DrawCircleQuadrant(t, color, x1+corners.TopLeft, y1+corners.TopLeft, corners.TopLeft, 0,
			QuadrantMask{TopLeft: true}, bb)
	}
	if corners.TopRight > 0 {
		DrawCircleQuadrant(t, color, x2-corners.TopRight+1, y1+corners.TopRight, corners.TopRight, 0,
			QuadrantMask{TopRight: true}, bb)
	}
	if corners.BottomLeft > 0 {
		DrawCircleQuadrant(t, color, x1+corners.BottomLeft, y2-corners.BottomLeft+1, corners.BottomLeft, 0,
			QuadrantMask{BottomLeft: true}, bb)
	}
	if corners.BottomRight > 0 {
		DrawCircleQuadrant(t, color, x2-corners.BottomRight+1, y2-corners.BottomRight+1, corners.BottomRight, 0,
			QuadrantMask{BottomRight: true}, bb)
	}
}

// DrawRoundRectStroked outlines a rounded rectangle with the given stroke
// thickness: four thick straight edges, parity-compensated so they meet
// the rounded corners without a gap, plus four stroked quadrant arcs.
// Where a side's corner radii leave no straight run (its start lies past
// its end), a single pixel is written at that side's start instead of a
// line; no stroke-wide patch is drawn there.
func DrawRoundRectStroked(t surface.Target, color uint32, x1, y1, x2, y2, thickness int, corners RoundRectCorners, bb *basics.BBox) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	w, h := x2-x1+1, y2-y1+1
	corners = clampRadii(w, h, corners)

	off := thickness/2 - 1 + thickness%2

	top1, top2 := x1+corners.TopLeft, x2-corners.TopRight
	if top1 > top2 {
		WritePixel(t, x1+corners.TopLeft, y1+off, color, bb)
	} else {
		DrawLineWidth(t, color, thickness, top1, y1+off, top2, y1+off, bb)
	}
	bot1, bot2 := x1+corners.BottomLeft, x2-corners.BottomRight
	if bot1 > bot2 {
		WritePixel(t, x1+corners.BottomLeft, y2-off, color, bb)
	} else {
		DrawLineWidth(t, color, thickness, bot1, y2-off, bot2, y2-off, bb)
	}
	left1, left2 := y1+corners.TopLeft, y2-corners.BottomLeft
	if left1 > left2 {
		WritePixel(t, x1+off, y1+corners.TopLeft, color, bb)
	} else {
		DrawLineWidth(t, color, thickness, x1+off, left1, x1+off, left2, bb)
	}
	right1, right2 := y1+corners.TopRight, y2-corners.BottomRight
	if right1 > right2 {
		WritePixel(t, x2-off, y1+corners.TopRight, color, bb)
	} else {
		DrawLineWidth(t, color, thickness, x2-off, right1, x2-off, right2, bb)
	}

	if corners.TopLeft > 0 {
		DrawCircleQuadrant(t, color, x1+corners.TopLeft, y1+corners.TopLeft, corners.TopLeft, thickness,
			QuadrantMask{TopLeft: true}, bb)
	}
	if corners.TopRight > 0 {
		DrawCircleQuadrant(t, color, x2-corners.TopRight+1, y1+corners.TopRight, corners.TopRight, thickness,
			QuadrantMask{TopRight: true}, bb)
	}
	if corners.BottomLeft > 0 {
		DrawCircleQuadrant(t, color, x1+corners.BottomLeft, y2-corners.BottomLeft+1, corners.BottomLeft, thickness,
			QuadrantMask{BottomLeft: true}, bb)
	}
	if corners.BottomRight > 0 {
		DrawCircleQuadrant(t, color, x2-corners.BottomRight+1, y2-corners.BottomRight+1, corners.BottomRight, thickness,
			QuadrantMask{BottomRight: true}, bb)
	}
}
