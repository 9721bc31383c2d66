package primitives

import (
	"agg_go/internal/basics"
	"agg_go/surface"
)

// DrawCircleFilled fills a disk of the given radius centered at (x0, y0)
// using a Bresenham circle driver: each step fills two vertical spans that
// together sweep out the full disk.
func DrawCircleFilled(t surface.Target, color uint32, x0, y0, radius int, bb *basics.BBox) {
	f := 1 - radius
	ddFx := 0
	ddFy := -2 * radius
	x := 0
	y := radius

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx + 1

		for y1 := y0 - x; y1 < y0+x; y1++ {
			WritePixel(t, x0+y-1, y1, color, bb)
			WritePixel(t, x0-y, y1, color, bb)
		}
		for y1 := y0 - y; y1 < y0+y; y1++ {
			WritePixel(t, x0+x-1, y1, color, bb)
			WritePixel(t, x0-x, y1, color, bb)
		}
	}
}

// DrawCircleBresenham draws a circle outline of the given radius with the
// given thickness band, advancing an outer and inner Bresenham driver in
// lockstep and emitting thickness pixels radially at each of eight octant
// positions. The four guard conditions avoid double-drawing the pixels
// where adjacent octants meet.
func DrawCircleBresenham(t surface.Target, color uint32, x0, y0, radius, thickness int, bb *basics.BBox) {
	f := 1 - radius
	ddFx := 0
	ddFy := -2 * radius
	x := 0
	y := radius

	iY := radius - thickness
	iF := 1 - iY
	iDdFx := 0
	iDdFy := -2 * iY

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		if iF >= 0 {
			iY--
			iDdFy += 2
			iF += iDdFy
		}
		x++
		ddFx += 2
		f += ddFx + 1

		iDdFx += 2
		iF += iDdFx + 1

		th := thickness
		if th > 1 {
			th = y - iY
		}

		for i := 0; i < th; i++ {
			y1 := y - i
			if (y0+y1-1) >= (y0+x-1) {
				WritePixel(t, x0+x-1, y0+y1-1, color, bb) // 7
				WritePixel(t, x0-x, y0+y1-1, color, bb)   // 6
			}
			if (y0 - y1) <= (y0 - x) {
				WritePixel(t, x0+x-1, y0-y1, color, bb) // 2
				WritePixel(t, x0-x, y0-y1, color, bb)   // 3
			}
			if (x0+y1-1) >= (x0+x-1) {
				WritePixel(t, x0+y1-1, y0+x-1, color, bb) // 8
				WritePixel(t, x0+y1-1, y0-x, color, bb)   // 1
			}
			if (x0 - y1) <= (x0 - x) {
				WritePixel(t, x0-y1, y0+x-1, color, bb) // 5
				WritePixel(t, x0-y1, y0-x, color, bb)   // 4
			}
		}
	}
}

// QuadrantMask selects which of the four circle quadrants DrawCircleQuadrant
// draws. Quadrants are named by their position relative to the center.
type QuadrantMask struct {
	TopRight    bool
	TopLeft     bool
	BottomLeft  bool
	BottomRight bool
}

// DrawCircleQuadrant draws the subset of a circle's octants selected by
// mask. thickness == 0 fills the quadrant solidly via vertical spans;
// radius == 1 is a dedicated special case writing the 1-4 selected corner
// pixels directly.
func DrawCircleQuadrant(t surface.Target, color uint32, x0, y0, radius, thickness int, mask QuadrantMask, bb *basics.BBox) {
	if radius == 1 {
		if mask.TopRight {
			WritePixel(t, x0, y0-1, color, bb)
		}
		if mask.TopLeft {
			WritePixel(t, x0-1, y0-1, color, bb)
		}
		if mask.BottomLeft {
			WritePixel(t, x0-1, y0, color, bb)
		}
		if mask.BottomRight {
			WritePixel(t, x0, y0, color, bb)
		}
		return
	}

	f := 1 - radius
	ddFx := 0
	ddFy := -2 * radius
	x := 0
	y := radius

	if thickness != 0 {
		iY := radius - thickness
		iF := 1 - iY
		iDdFx := 0
		iDdFy := -2 * iY

		for x < y {
			if f >= 0 {
				y--
				ddFy += 2
				f += ddFy
			}
			if iF >= 0 {
				iY--
				iDdFy += 2
				iF += iDdFy
			}
			x++
			ddFx += 2
			f += ddFx + 1

			iDdFx += 2
			iF += iDdFx + 1

			th := thickness
			if th > 1 {
				th = y - iY
			}

			if mask.TopRight {
				for i := 0; i < th; i++ {
					y1 := y - i
					if (y0 - y1) < (y0 - x) {
						WritePixel(t, x0+x-1, y0-y1, color, bb) // 2
					}
					if (x0+y1-1) >= (x0+x-1) {
						WritePixel(t, x0+y1-1, y0-x, color, bb) // 1
					}
				}
			}
			if mask.TopLeft {
				for i := 0; i < th; i++ {
					y1 := y - i
					if (y0 - y1) <= (y0 - x) {
						WritePixel(t, x0-x, y0-y1, color, bb) // 3
					}
					if (x0 - y1) < (x0 - x) {
						WritePixel(t, x0-y1, y0-x, color, bb) // 4
					}
				}
			}
			if mask.BottomLeft {
				for i := 0; i < th; i++ {
					y1 := y - i
					if (x0 - y1) <= (x0 - x) {
						WritePixel(t, x0-y1, y0+x-1, color, bb) // 5
					}
					if (y0+y1-1) > (y0+x-1) {
						WritePixel(t, x0-x, y0+y1-1, color, bb) // 6
					}
				}
			}
			if mask.BottomRight {
				for i := 0; i < th; i++ {
					y1 := y - i
					if (y0+y1-1) >= (y0+x-1) {
						WritePixel(t, x0+x-1, y0+y1-1, color, bb) // 7
					}
					if (x0+y1-1) > (x0+x-1) {
						WritePixel(t, x0+y1-1, y0+x-1, color, bb) // 8
					}
				}
			}
		}
		return
	}

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx + 1

		if mask.TopRight {
			for y1 := y0 - x; y1 <= y0; y1++ {
				WritePixel(t, x0+y-1, y1, color, bb) // 1
			}
			for y1 := y0 - y; y1 <= y0; y1++ {
				WritePixel(t, x0+x-1, y1, color, bb) // 2
			}
		}
		if mask.TopLeft {
			for y1 := y0 - x; y1 <= y0; y1++ {
				WritePixel(t, x0-y, y1, color, bb) // 4
			}
			for y1 := y0 - y; y1 <= y0; y1++ {
				WritePixel(t, x0-x, y1, color, bb) // 3
			}
		}
		if mask.BottomLeft {
			for y1 := y0; y1 < y0+x; y1++ {
				WritePixel(t, x0-y, y1, color, bb) // 5
			}
			for y1 := y0; y1 < y0+y; y1++ {
				WritePixel(t, x0-x, y1, color, bb) // 6
			}
		}
		if mask.BottomRight {
			for y1 := y0; y1 < y0+x; y1++ {
				WritePixel(t, x0+y-1, y1, color, bb) // 8
			}
			for y1 := y0; y1 < y0+y; y1++ {
				WritePixel(t, x0+x-1, y1, color, bb) // 7
			}
		}
	}
}
