package primitives

import (
	"agg_go/internal/basics"
	"agg_go/surface"
)

// DrawLineWidth draws a thick line as a central Bresenham line plus
// parallel offset copies, alternating the offset direction (+k, then -k)
// until width lines have been drawn. The thickening axis is whichever axis
// is minor for the line's slope, so a diagonal stroke ends flat along that
// axis; a tie (|dx| == |dy|) thickens in x.
func DrawLineWidth(t surface.Target, color uint32, width int, x1, y1, x2, y2 int, bb *basics.BBox) {
	xInc, yInc := 0, 0
	if abs(x1-x2) > abs(y1-y2) {
		yInc = 1
	} else {
		xInc = 1
	}

	ox1, oy1, ox2, oy2 := x1, y1, x2, y2
	DrawLine(t, color, ox1, oy1, ox2, oy2, bb)

	if width == 1 {
		return
	}
	for loop := 1; loop < width; loop += 2 {
		k := loop/2 + 1
		DrawLine(t, color, ox1+xInc*k, oy1+yInc*k, ox2+xInc*k, oy2+yInc*k, bb)
		if loop+1 < width {
			DrawLine(t, color, ox1-xInc*k, oy1-yInc*k, ox2-xInc*k, oy2-yInc*k, bb)
		}
	}
}
