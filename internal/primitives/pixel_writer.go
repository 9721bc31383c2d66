// Package primitives implements the pixel-exact rasterization algorithms
// that back every drawing primitive: clip-aware pixel writes, Bresenham and
// Wu-style line drawing, midpoint circle and ellipse stepping, scanline
// polygon fill, and the thick-stroke and rounded-rect composition built on
// top of them.
package primitives

import (
	"encoding/binary"

	"agg_go/internal/basics"
	"agg_go/surface"
)

// WritePixel stores color at (x, y) on t if it falls inside the clip rect,
// records the write in bb, and reports whether anything was written. A
// miss is a silent no-op, per the surface contract.
func WritePixel(t surface.Target, x, y int, color uint32, bb *basics.BBox) bool {
	clip := t.ClipRect()
	if !clip.Contains(x, y) {
		return false
	}

	pitch := t.Pitch()
	bpp := t.Format().BytesPerPixel
	pixels := t.Pixels()
	off := y*pitch + x*bpp

	switch bpp {
	case 1:
		pixels[off] = byte(color)
	case 2:
		binary.LittleEndian.PutUint16(pixels[off:], uint16(color))
	case 4:
		binary.LittleEndian.PutUint32(pixels[off:], color)
	case 3:
		format := t.Format()
		r, g, b, _ := DecomposeRGBA(color, format)
		rIdx, gIdx, bIdx := format.RShift>>3, format.GShift>>3, format.BShift>>3
		if format.BigEndian {
			rIdx, gIdx, bIdx = 2-rIdx, 2-gIdx, 2-bIdx
		}
		pixels[off+rIdx] = r
		pixels[off+gIdx] = g
		pixels[off+bIdx] = b
	default:
		return false
	}

	bb.Add(x, y)
	return true
}
