package primitives

import (
	"agg_go/internal/basics"
	"agg_go/surface"
)

// DrawAALine draws a Xiaolin-Wu-style antialiased line from (fromX, fromY)
// to (toX, toY), writing two vertically (or, when steep, horizontally)
// adjacent pixels per column with coverage proportional to how close the
// ideal line passes to each.
func DrawAALine(t surface.Target, color uint32, fromX, fromY, toX, toY float64, blend bool, bb *basics.BBox) {
	steep := fabs(toX-fromX) < fabs(toY-fromY)
	if steep {
		fromX, fromY = fromY, fromX
		toX, toY = toY, toX
	}
	if fromX > toX {
		fromX, toX = toX, fromX
		fromY, toY = toY, fromY
	}

	dx := toX - fromX
	dy := toY - fromY
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	xPixelStart := ifloor(fromX)
	xPixelEnd := ifloor(toX)
	intersectY := fromY + gradient*(float64(xPixelStart)+0.5-fromX)

	for x := xPixelStart; x <= xPixelEnd; x++ {
		yFloor := ifloor(intersectY)
		brightness := 1 - (intersectY - float64(yFloor))

		if steep {
			c := SampleAAColor(t, yFloor, x, color, brightness, blend)
			WritePixel(t, yFloor, x, c, bb)
			if float64(yFloor) < toY || (x == xPixelEnd && fromY != toY) {
				brightness2 := intersectY - float64(yFloor)
				c2 := SampleAAColor(t, yFloor+1, x, color, brightness2, blend)
				WritePixel(t, yFloor+1, x, c2, bb)
			}
		} else {
			c := SampleAAColor(t, x, yFloor, color, brightness, blend)
			WritePixel(t, x, yFloor, c, bb)
			if float64(yFloor) < toY || (x == xPixelEnd && fromY != toY) {
				brightness2 := intersectY - float64(yFloor)
				c2 := SampleAAColor(t, x, yFloor+1, color, brightness2, blend)
				WritePixel(t, x, yFloor+1, c2, bb)
			}
		}

		intersectY += gradient
	}
}

func fabs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func ifloor(v float64) int {
	i := int(v)
	if v < float64(i) {
		i--
	}
	return i
}
