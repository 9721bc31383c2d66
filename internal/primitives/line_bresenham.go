package primitives

import (
	"agg_go/internal/basics"
	"agg_go/surface"
)

// DrawLine draws an integer Bresenham line from (x1, y1) to (x2, y2),
// writing both endpoints and exactly one pixel per column (or row,
// whichever axis is major). Horizontal, vertical, and single-point inputs
// take dedicated fast paths.
func DrawLine(t surface.Target, color uint32, x1, y1, x2, y2 int, bb *basics.BBox) {
	if x1 == x2 && y1 == y2 {
		WritePixel(t, x1, y1, color, bb)
		return
	}

	if y1 == y2 {
		step := 1
		if x2 < x1 {
			step = -1
		}
		for x := x1; ; x += step {
			WritePixel(t, x, y1, color, bb)
			if x == x2 {
				break
			}
		}
		return
	}

	if x1 == x2 {
		step := 1
		if y2 < y1 {
			step = -1
		}
		for y := y1; ; y += step {
			WritePixel(t, x1, y, color, bb)
			if y == y2 {
				break
			}
		}
		return
	}

	// Always step from the left endpoint so that A->B and B->A write the
	// same pixel set.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx := abs(x2 - x1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	dy := abs(y2 - y1)
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx
	if dy > dx {
		err = -dy
	}
	err /= 2

	for x1 != x2 || y1 != y2 {
		WritePixel(t, x1, y1, color, bb)
		e2 := err
		if e2 > -dx {
			err -= dy
			x1 += sx
		}
		if e2 < dy {
			err += dx
			y1 += sy
		}
	}
	WritePixel(t, x2, y2, color, bb)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
