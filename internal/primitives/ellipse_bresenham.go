package primitives

import (
	"agg_go/internal/basics"
	"agg_go/surface"
)

// DrawEllipse draws an axis-aligned ellipse centered at (x, y) with full
// width w and full height h, solid (filled) or outline, using a midpoint
// stepper driven by a x64 fixed-point accumulator so the result is
// deterministic across platforms.
//
// Degenerate inputs take dedicated paths: a 0x0 box is a single pixel, a
// zero-width box is a vertical line, a zero-height box is a horizontal
// line. Even-sized boxes get a one-pixel parity offset (xoff/yoff) so the
// ellipse fits inside the requested bounding box; solid mode additionally
// grows ry by 1 - yoff, i.e. by one pixel when h is odd and not at all
// when h is even.
func DrawEllipse(t surface.Target, color uint32, x, y, w, h int, solid bool, bb *basics.BBox) {
	xoff := 1 - (w & 1)
	yoff := 1 - (h & 1)
	rx := w >> 1
	ry := h >> 1

	if rx == 0 && ry == 0 {
		WritePixel(t, x, y, color, bb)
		return
	}
	if rx == 0 {
		DrawLine(t, color, x, y-ry, x, y+ry+(h&1), bb)
		return
	}
	if ry == 0 {
		DrawLine(t, color, x-rx, y, x+rx+(w&1), y, bb)
		return
	}

	if solid {
		ry += 1 - yoff
	}

	const unset = 0xFFFF
	oh, oi, oj, ok := unset, unset, unset, unset

	if rx >= ry {
		ix := 0
		iy := rx * 64
		for {
			h1 := (ix + 8) >> 6
			i1 := (iy + 8) >> 6
			j1 := (h1 * ry) / rx
			k1 := (i1 * ry) / rx

			if (ok != k1 && oj != k1 && k1 < ry) || !solid {
				if solid {
					DrawLine(t, color, x-h1, y-k1-yoff, x+h1-xoff, y-k1-yoff, bb)
					DrawLine(t, color, x-h1, y+k1, x+h1-xoff, y+k1, bb)
				} else {
					WritePixel(t, x-h1, y-k1-yoff, color, bb)
					WritePixel(t, x+h1-xoff, y-k1-yoff, color, bb)
					WritePixel(t, x-h1, y+k1, color, bb)
					WritePixel(t, x+h1-xoff, y+k1, color, bb)
				}
				ok = k1
			}
			if (oj != j1 && ok != j1 && k1 != j1) || !solid {
				if solid {
					DrawLine(t, color, x-i1, y+j1, x+i1-xoff, y+j1, bb)
					DrawLine(t, color, x-i1, y-j1-yoff, x+i1-xoff, y-j1-yoff, bb)
				} else {
					WritePixel(t, x-i1, y+j1, color, bb)
					WritePixel(t, x+i1-xoff, y+j1, color, bb)
					WritePixel(t, x-i1, y-j1-yoff, color, bb)
					WritePixel(t, x+i1-xoff, y-j1-yoff, color, bb)
				}
				oj = j1
			}

			ix = ix + iy/rx
			iy = iy - ix/rx

			if i1 <= h1 {
				break
			}
		}
		return
	}

	ix := 0
	iy := ry * 64
	for {
		h1 := (ix + 8) >> 6
		i1 := (iy + 8) >> 6
		j1 := (h1 * rx) / ry
		k1 := (i1 * rx) / ry

		if (oi != i1 && oh != i1 && i1 < ry) || !solid {
			if solid {
				DrawLine(t, color, x-j1, y+i1, x+j1-xoff, y+i1, bb)
				DrawLine(t, color, x-j1, y-i1-yoff, x+j1-xoff, y-i1-yoff, bb)
			} else {
				WritePixel(t, x-j1, y+i1, color, bb)
				WritePixel(t, x+j1-xoff, y+i1, color, bb)
				WritePixel(t, x-j1, y-i1-yoff, color, bb)
				WritePixel(t, x+j1-xoff, y-i1-yoff, color, bb)
			}
			oi = i1
		}
		if (oh != h1 && oi != h1 && i1 != h1) || !solid {
			if solid {
				DrawLine(t, color, x-k1, y+h1, x+k1-xoff, y+h1, bb)
				DrawLine(t, color, x-k1, y-h1-yoff, x+k1-xoff, y-h1-yoff, bb)
			} else {
				WritePixel(t, x-k1, y+h1, color, bb)
				WritePixel(t, x+k1-xoff, y+h1, color, bb)
				WritePixel(t, x-k1, y-h1-yoff, color, bb)
				WritePixel(t, x+k1-xoff, y-h1-yoff, color, bb)
			}
			oh = h1
		}

		ix = ix + iy/ry
		iy = iy - ix/ry

		if i1 <= h1 {
			break
		}
	}
}
