// Package basics provides the core geometric value types shared by every
// rasterizer in this module.
package basics

// CoordType is satisfied by any numeric type usable as a coordinate.
type CoordType interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Point is a generic 2D coordinate pair.
type Point[T CoordType] struct {
	X, Y T
}

// Rect is a generic axis-aligned rectangle stored as two corners, X1Y1
// inclusive and X2Y2 inclusive. Use Normalize after constructing one from
// unordered input.
type Rect[T CoordType] struct {
	X1, Y1, X2, Y2 T
}

// Normalize ensures X1 <= X2 and Y1 <= Y2 by swapping values if needed.
func (r *Rect[T]) Normalize() {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
}

// Clip intersects this rectangle with clipBox in place, returning false
// (and leaving r unmodified) if they do not overlap.
func (r *Rect[T]) Clip(clipBox Rect[T]) bool {
	if r.X2 >= clipBox.X1 && r.Y2 >= clipBox.Y1 && r.X1 <= clipBox.X2 && r.Y1 <= clipBox.Y2 {
		if r.X1 < clipBox.X1 {
			r.X1 = clipBox.X1
		}
		if r.Y1 < clipBox.Y1 {
			r.Y1 = clipBox.Y1
		}
		if r.X2 > clipBox.X2 {
			r.X2 = clipBox.X2
		}
		if r.Y2 > clipBox.Y2 {
			r.Y2 = clipBox.Y2
		}
		return true
	}
	return false
}

// IMin returns the smaller of two ints.
func IMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IMax returns the larger of two ints.
func IMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Commonly used instantiations, matching the teacher's alias conventions.
type (
	PointI = Point[int]
	PointF = Point[float64]
	RectI  = Rect[int]
)

// RectWH is an axis-aligned rectangle expressed the way callers at the API
// boundary pass it: top-left corner plus width/height, pygame.Rect style.
type RectWH struct {
	X, Y, W, H int
}

// Corners returns the inclusive (x1,y1)-(x2,y2) form used internally by the
// rasterizers. An empty RectWH (W<=0 or H<=0) yields a degenerate rect.
func (r RectWH) Corners() (x1, y1, x2, y2 int) {
	return r.X, r.Y, r.X + r.W - 1, r.Y + r.H - 1
}

// CenterRadii returns the ellipse/arc center and half-extents implied by the
// bounding RectWH, matching how pygame positions an inscribed ellipse.
func (r RectWH) CenterRadii() (cx, cy, rx, ry int) {
	return r.X + r.W/2, r.Y + r.H/2, r.W / 2, r.H / 2
}
