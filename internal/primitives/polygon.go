package primitives

import (
	"errors"
	"sort"

	"agg_go/internal/basics"
	"agg_go/surface"
)

// ErrOutOfMemory is returned by FillPolygon when the scratch
// intersection buffer cannot be allocated.
var ErrOutOfMemory = errors.New("primitives: out of memory allocating scanline scratch buffer")

// FillPolygon fills the polygon described by px/py (both length n >= 3)
// using an even-odd scanline sweep, plus a horizontal-edge fixup pass that
// explicitly redraws any border edge sharing a y with its predecessor —
// without it, certain concave polygons leave 1-pixel gaps.
func FillPolygon(t surface.Target, color uint32, px, py []int, bb *basics.BBox) error {
	n := len(px)

	minY, maxY := py[0], py[0]
	for i := 1; i < n; i++ {
		if py[i] < minY {
			minY = py[i]
		}
		if py[i] > maxY {
			maxY = py[i]
		}
	}

	if minY == maxY {
		minX, maxX := px[0], px[0]
		for i := 1; i < n; i++ {
			if px[i] < minX {
				minX = px[i]
			}
			if px[i] > maxX {
				maxX = px[i]
			}
		}
		DrawLine(t, color, minX, minY, maxX, minY, bb)
		return nil
	}

	xIntersect := make([]int, n)
	if xIntersect == nil {
		return ErrOutOfMemory
	}

	for y := minY; y <= maxY; y++ {
		count := 0
		for i := 0; i < n; i++ {
			prev := n - 1
			if i != 0 {
				prev = i - 1
			}

			y1, y2 := py[prev], py[i]
			x1, x2 := px[prev], px[i]
			if y1 > y2 {
				y1, y2 = y2, y1
				x1, x2 = x2, x1
			} else if y1 == y2 {
				continue
			}

			if (y >= y1 && y < y2) || (y == maxY && y2 == maxY) {
				xIntersect[count] = (y-y1)*(x2-x1)/(y2-y1) + x1
				count++
			}
		}

		xs := xIntersect[:count]
		sort.Ints(xs)

		for i := 0; i+1 < count; i += 2 {
			DrawLine(t, color, xs[i], y, xs[i+1], y, bb)
		}
	}

	for i := 0; i < n; i++ {
		prev := n - 1
		if i != 0 {
			prev = i - 1
		}
		y := py[i]
		if minY < y && py[prev] == y && y < maxY {
			DrawLine(t, color, px[i], y, px[prev], y, bb)
		}
	}

	return nil
}
