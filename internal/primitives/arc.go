package primitives

import (
	"math"

	"agg_go/internal/basics"
	"agg_go/surface"
)

// DrawArc approximates the parametric arc
// {(x + rx*cos(theta), y - ry*sin(theta)) : theta in [start, stop]} as a
// polyline, joining consecutive samples with DrawLine. The angular step is
// derived from the smaller radius so the chord error stays small. Every
// sample angle is <= stop: since the step rarely divides the range exactly,
// the polyline ends at the last sample before stop and may fall short of
// the requested endpoint by up to one step.
func DrawArc(t surface.Target, color uint32, x, y, rx, ry int, start, stop float64, bb *basics.BBox) {
	minRadius := float64(rx)
	if ry < rx {
		minRadius = float64(ry)
	}

	step := 1.0
	if minRadius >= 1.0e-4 {
		step = math.Asin(2.0 / minRadius)
	}
	if step < 0.05 {
		step = 0.05
	}

	if stop < start {
		stop += 2 * math.Pi
	}

	lastX := x + int(math.Cos(start)*float64(rx))
	lastY := y - int(math.Sin(start)*float64(ry))

	for a := start + step; a <= stop; a += step {
		nextX := x + int(math.Cos(a)*float64(rx))
		nextY := y - int(math.Sin(a)*float64(ry))
		DrawLine(t, color, lastX, lastY, nextX, nextY, bb)
		lastX, lastY = nextX, nextY
	}
}
