// Package agg implements a 2D software rasterizer: lines, antialiased
// lines, thick lines, circles, ellipses, arcs, polygons, and rounded
// rectangles, drawn directly into a caller-supplied pixel buffer.
//
// Every exported operation follows the same orchestration contract:
// validate inputs, short-circuit degenerate-but-valid geometry to a
// zero-size rect at the primitive's anchor, lock the surface, rasterize,
// unlock, and return the tight bounding rect of pixels actually written.
package agg

import (
	"agg_go/internal/basics"
	"agg_go/internal/primitives"
	"agg_go/surface"
)

func validateSurface(t surface.Target) error {
	bpp := t.Format().BytesPerPixel
	if bpp < 1 || bpp > 4 {
		return &UnsupportedSurfaceError{BytesPerPixel: bpp}
	}
	return nil
}

func lock(op string, t surface.Target) error {
	if !t.Lock() {
		err := &ResourceFailureError{Op: op, Reason: "surface lock failed"}
		Logger().Error("resource failure", "op", op, "error", err)
		return err
	}
	return nil
}

func unlock(op string, t surface.Target) error {
	if !t.Unlock() {
		err := &ResourceFailureError{Op: op, Reason: "surface unlock failed"}
		Logger().Error("resource failure", "op", op, "error", err)
		return err
	}
	return nil
}

func zeroRect(x, y int) basics.RectWH { return basics.RectWH{X: x, Y: y, W: 0, H: 0} }

// Line draws a straight line from start to end. width <= 1 draws a single
// Bresenham line; width > 1 thickens it via DrawLineWidth.
func Line(t surface.Target, color uint32, start, end basics.PointI, width int) (basics.RectWH, error) {
	if err := validateSurface(t); err != nil {
		return zeroRect(start.X, start.Y), err
	}
	if width < 0 {
		return zeroRect(start.X, start.Y), nil
	}
	if err := lock("line", t); err != nil {
		return zeroRect(start.X, start.Y), err
	}
	bb := basics.NewBBox()
	if width <= 1 {
		primitives.DrawLine(t, color, start.X, start.Y, end.X, end.Y, &bb)
	} else {
		primitives.DrawLineWidth(t, color, width, start.X, start.Y, end.X, end.Y, &bb)
	}
	if err := unlock("line", t); err != nil {
		return zeroRect(start.X, start.Y), err
	}
	return bb.Rect(start.X, start.Y), nil
}

// AALine draws an antialiased line between two floating-point endpoints,
// blending source coverage against the destination when blend is true and
// scaling toward black otherwise.
func AALine(t surface.Target, color uint32, start, end basics.Point[float64], blend bool) (basics.RectWH, error) {
	anchorX, anchorY := int(start.X), int(start.Y)
	if err := validateSurface(t); err != nil {
		return zeroRect(anchorX, anchorY), err
	}
	if err := lock("aaline", t); err != nil {
		return zeroRect(anchorX, anchorY), err
	}
	bb := basics.NewBBox()
	primitives.DrawAALine(t, color, start.X, start.Y, end.X, end.Y, blend, &bb)
	if err := unlock("aaline", t); err != nil {
		return zeroRect(anchorX, anchorY), err
	}
	return bb.Rect(anchorX, anchorY), nil
}

// Lines draws a polyline through points, connecting the last point back to
// the first when closed is true. Requires at least 2 points.
func Lines(t surface.Target, color uint32, closed bool, points []basics.PointI, width int) (basics.RectWH, error) {
	if len(points) < 2 {
		return basics.RectWH{}, &InvalidArgumentError{Op: "lines", Reason: "fewer than 2 points"}
	}
	anchor := points[0]
	if err := validateSurface(t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	if width < 0 {
		return zeroRect(anchor.X, anchor.Y), nil
	}
	if err := lock("lines", t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	bb := basics.NewBBox()
	drawSeg := func(a, b basics.PointI) {
		if width <= 1 {
			primitives.DrawLine(t, color, a.X, a.Y, b.X, b.Y, &bb)
		} else {
			primitives.DrawLineWidth(t, color, width, a.X, a.Y, b.X, b.Y, &bb)
		}
	}
	for i := 1; i < len(points); i++ {
		drawSeg(points[i-1], points[i])
	}
	if closed {
		drawSeg(points[len(points)-1], points[0])
	}
	if err := unlock("lines", t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	return bb.Rect(anchor.X, anchor.Y), nil
}

// AALines draws an antialiased polyline through points, connecting the
// last point back to the first when closed is true. Requires at least 2
// points.
func AALines(t surface.Target, color uint32, closed bool, points []basics.Point[float64], blend bool) (basics.RectWH, error) {
	if len(points) < 2 {
		return basics.RectWH{}, &InvalidArgumentError{Op: "aalines", Reason: "fewer than 2 points"}
	}
	anchorX, anchorY := int(points[0].X), int(points[0].Y)
	if err := validateSurface(t); err != nil {
		return zeroRect(anchorX, anchorY), err
	}
	if err := lock("aalines", t); err != nil {
		return zeroRect(anchorX, anchorY), err
	}
	bb := basics.NewBBox()
	drawSeg := func(a, b basics.Point[float64]) {
		primitives.DrawAALine(t, color, a.X, a.Y, b.X, b.Y, blend, &bb)
	}
	for i := 1; i < len(points); i++ {
		drawSeg(points[i-1], points[i])
	}
	if closed {
		drawSeg(points[len(points)-1], points[0])
	}
	if err := unlock("aalines", t); err != nil {
		return zeroRect(anchorX, anchorY), err
	}
	return bb.Rect(anchorX, anchorY), nil
}

// Arc draws a polyline approximation of an elliptical arc inscribed in
// rect, from thetaStart to thetaStop radians. width > 1 draws nested arcs
// of shrinking radius to thicken the stroke, clamped to min(rect.W,
// rect.H)/2.
func Arc(t surface.Target, color uint32, rect basics.RectWH, thetaStart, thetaStop float64, width int) (basics.RectWH, error) {
	anchor := basics.PointI{X: rect.X, Y: rect.Y}
	if err := validateSurface(t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	cx, cy, rx, ry := rect.CenterRadii()
	if rx < 1 || ry < 1 || width < 0 {
		return zeroRect(anchor.X, anchor.Y), nil
	}
	if width == 0 {
		width = 1
	}
	maxWidth := basics.IMin(rect.W, rect.H) / 2
	if width > maxWidth {
		width = maxWidth
	}
	if err := lock("arc", t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	bb := basics.NewBBox()
	for k := 0; k < width; k++ {
		krx, kry := rx-k, ry-k
		if krx < 1 || kry < 1 {
			break
		}
		primitives.DrawArc(t, color, cx, cy, krx, kry, thetaStart, thetaStop, &bb)
	}
	if err := unlock("arc", t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	return bb.Rect(anchor.X, anchor.Y), nil
}

// Ellipse draws an axis-aligned ellipse inscribed in rect. width == 0
// fills the interior; width > 0 draws nested outline ellipses of shrinking
// size to thicken the stroke, clamped to min(rect.W, rect.H)/2.
func Ellipse(t surface.Target, color uint32, rect basics.RectWH, width int) (basics.RectWH, error) {
	anchor := basics.PointI{X: rect.X, Y: rect.Y}
	if err := validateSurface(t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	if rect.W < 1 || rect.H < 1 || width < 0 {
		return zeroRect(anchor.X, anchor.Y), nil
	}
	cx, cy, _, _ := rect.CenterRadii()
	if err := lock("ellipse", t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	bb := basics.NewBBox()
	if width == 0 {
		primitives.DrawEllipse(t, color, cx, cy, rect.W, rect.H, true, &bb)
	} else {
		maxWidth := basics.IMin(rect.W, rect.H) / 2
		if width > maxWidth {
			width = maxWidth
		}
		for k := 0; k < width; k++ {
			w, h := rect.W-2*k, rect.H-2*k
			if w < 1 || h < 1 {
				break
			}
			primitives.DrawEllipse(t, color, cx, cy, w, h, false, &bb)
		}
	}
	if err := unlock("ellipse", t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	return bb.Rect(anchor.X, anchor.Y), nil
}

// CircleQuadrants selects which quarters of a circle Circle draws. The
// zero value means "all four" (a full circle).
type CircleQuadrants struct {
	TopRight    bool
	TopLeft     bool
	BottomLeft  bool
	BottomRight bool
}

func (q CircleQuadrants) any() bool {
	return q.TopRight || q.TopLeft || q.BottomLeft || q.BottomRight
}

// Circle draws a circle of the given radius centered at center. width == 0
// fills the disk; width > 0 draws an outline band of that thickness,
// clamped to radius. If quadrants selects fewer than all four quarters,
// only those quarters are drawn.
func Circle(t surface.Target, color uint32, center basics.PointI, radius, width int, quadrants CircleQuadrants) (basics.RectWH, error) {
	if err := validateSurface(t); err != nil {
		return zeroRect(center.X, center.Y), err
	}
	if radius < 1 || width < 0 {
		return zeroRect(center.X, center.Y), nil
	}
	if width > radius {
		width = radius
	}
	if err := lock("circle", t); err != nil {
		return zeroRect(center.X, center.Y), err
	}
	bb := basics.NewBBox()
	full := !quadrants.any()
	switch {
	case full && width == 0:
		primitives.DrawCircleFilled(t, color, center.X, center.Y, radius, &bb)
	case full:
		primitives.DrawCircleBresenham(t, color, center.X, center.Y, radius, width, &bb)
	default:
		mask := primitives.QuadrantMask{
			TopRight:    quadrants.TopRight,
			TopLeft:     quadrants.TopLeft,
			BottomLeft:  quadrants.BottomLeft,
			BottomRight: quadrants.BottomRight,
		}
		primitives.DrawCircleQuadrant(t, color, center.X, center.Y, radius, width, mask, &bb)
	}
	if err := unlock("circle", t); err != nil {
		return zeroRect(center.X, center.Y), err
	}
	return bb.Rect(center.X, center.Y), nil
}

// Polygon fills (width == 0) or outlines (width > 0, equivalent to
// Lines(closed=true)) the polygon described by points. Requires at least 3
// points.
func Polygon(t surface.Target, color uint32, points []basics.PointI, width int) (basics.RectWH, error) {
	if len(points) < 3 {
		return basics.RectWH{}, &InvalidArgumentError{Op: "polygon", Reason: "fewer than 3 points"}
	}
	if width > 0 {
		return Lines(t, color, true, points, width)
	}
	anchor := points[0]
	if err := validateSurface(t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	if width < 0 {
		return zeroRect(anchor.X, anchor.Y), nil
	}
	if err := lock("polygon", t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	px := make([]int, len(points))
	py := make([]int, len(points))
	for i, p := range points {
		px[i], py[i] = p.X, p.Y
	}
	bb := basics.NewBBox()
	if err := primitives.FillPolygon(t, color, px, py, &bb); err != nil {
		unlock("polygon", t)
		rfErr := &ResourceFailureError{Op: "polygon", Reason: err.Error()}
		Logger().Error("resource failure", "op", "polygon", "error", rfErr)
		return zeroRect(anchor.X, anchor.Y), rfErr
	}
	if err := unlock("polygon", t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	return bb.Rect(anchor.X, anchor.Y), nil
}

// RoundRectCorners names the four corner radii of a rounded rectangle, in
// the same order as primitives.RoundRectCorners. A negative radius means
// "use the shared border radius".
type RoundRectCorners struct {
	TopLeft     int
	TopRight    int
	BottomLeft  int
	BottomRight int
}

// RoundRect draws a rectangle inscribed in rect with rounded corners.
// borderRadius is the default corner radius; corners, if non-nil,
// overrides individual corners (a negative entry falls back to
// borderRadius). width == 0 fills the shape; width > 0 strokes it. When
// all four resolved radii are <= 0, this is equivalent to Polygon on the
// rect's four corners.
func RoundRect(t surface.Target, color uint32, rect basics.RectWH, width, borderRadius int, corners *RoundRectCorners) (basics.RectWH, error) {
	anchor := basics.PointI{X: rect.X, Y: rect.Y}
	if err := validateSurface(t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	if rect.W < 1 || rect.H < 1 || width < 0 {
		return zeroRect(anchor.X, anchor.Y), nil
	}

	resolved := primitives.RoundRectCorners{
		TopLeft: borderRadius, TopRight: borderRadius,
		BottomLeft: borderRadius, BottomRight: borderRadius,
	}
	if corners != nil {
		if corners.TopLeft >= 0 {
			resolved.TopLeft = corners.TopLeft
		}
		if corners.TopRight >= 0 {
			resolved.TopRight = corners.TopRight
		}
		if corners.BottomLeft >= 0 {
			resolved.BottomLeft = corners.BottomLeft
		}
		if corners.BottomRight >= 0 {
			resolved.BottomRight = corners.BottomRight
		}
	}

	x1, y1, x2, y2 := rect.Corners()

	if resolved.TopLeft <= 0 && resolved.TopRight <= 0 && resolved.BottomLeft <= 0 && resolved.BottomRight <= 0 {
		pts := []basics.PointI{{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2}}
		return Polygon(t, color, pts, width)
	}

	if err := lock("rect", t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	bb := basics.NewBBox()
	if width == 0 {
		primitives.DrawRoundRectFilled(t, color, x1, y1, x2, y2, resolved, &bb)
	} else {
		maxWidth := basics.IMin(rect.W, rect.H) / 2
		if width > maxWidth {
			width = maxWidth
		}
		primitives.DrawRoundRectStroked(t, color, x1, y1, x2, y2, width, resolved, &bb)
	}
	if err := unlock("rect", t); err != nil {
		return zeroRect(anchor.X, anchor.Y), err
	}
	return bb.Rect(anchor.X, anchor.Y), nil
}
