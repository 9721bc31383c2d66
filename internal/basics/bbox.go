package basics

import "math"

// BBox is the running (min_x, min_y, max_x, max_y) accumulator every
// primitive threads through its rasterization call. A freshly constructed
// BBox is empty; Add narrows it to the pixels actually touched.
type BBox struct {
	minX, minY int
	maxX, maxY int
}

// NewBBox returns an empty accumulator.
func NewBBox() BBox {
	return BBox{minX: math.MaxInt, minY: math.MaxInt, maxX: math.MinInt, maxY: math.MinInt}
}

// Add records that the pixel (x, y) was written.
func (b *BBox) Add(x, y int) {
	if x < b.minX {
		b.minX = x
	}
	if y < b.minY {
		b.minY = y
	}
	if x > b.maxX {
		b.maxX = x
	}
	if y > b.maxY {
		b.maxY = y
	}
}

// Empty reports whether no pixel has been recorded yet.
func (b BBox) Empty() bool {
	return b.minX == math.MaxInt || b.minY == math.MaxInt || b.maxX == math.MinInt || b.maxY == math.MinInt
}

// Rect returns the tight bounding rectangle of every recorded pixel, or
// a zero-size rect anchored at (ax, ay) if nothing was recorded.
func (b BBox) Rect(ax, ay int) RectWH {
	if b.Empty() {
		return RectWH{X: ax, Y: ay, W: 0, H: 0}
	}
	return RectWH{
		X: b.minX,
		Y: b.minY,
		W: b.maxX - b.minX + 1,
		H: b.maxY - b.minY + 1,
	}
}
