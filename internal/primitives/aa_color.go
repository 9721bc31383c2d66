package primitives

import "agg_go/surface"

// SampleAAColor computes the color to write for an antialiased pixel at
// (x, y): src blended against the destination pixel when blend is true and
// (x, y) is inside the clip rect, or src scaled toward black when blend is
// false. coverage is the fractional pixel coverage in [0, 1].
//
// When blend is requested but (x, y) lies outside the clip rect, src is
// returned unchanged — the subsequent write will be dropped by the clip
// check anyway, so no destination read is attempted.
func SampleAAColor(t surface.Target, x, y int, src uint32, coverage float64, blend bool) uint32 {
	format := t.Format()
	sr, sg, sb, sa := DecomposeRGBA(src, format)

	if !blend {
		return ComposeRGBA(
			scaleChannel(sr, coverage),
			scaleChannel(sg, coverage),
			scaleChannel(sb, coverage),
			scaleChannel(sa, coverage),
			format,
		)
	}

	clip := t.ClipRect()
	if !clip.Contains(x, y) {
		return src
	}

	dst := readPixel(t, x, y)
	dr, dg, db, da := DecomposeRGBA(dst, format)

	return ComposeRGBA(
		blendChannel(sr, dr, coverage),
		blendChannel(sg, dg, coverage),
		blendChannel(sb, db, coverage),
		blendChannel(sa, da, coverage),
		format,
	)
}

func scaleChannel(c byte, coverage float64) byte {
	return byte(coverage * float64(c))
}

func blendChannel(src, dst byte, coverage float64) byte {
	return byte(coverage*float64(src) + (1-coverage)*float64(dst))
}

// readPixel reads back the raw color currently stored at (x, y). Callers
// must have already verified (x, y) is inside the clip rect.
func readPixel(t surface.Target, x, y int) uint32 {
	pitch := t.Pitch()
	bpp := t.Format().BytesPerPixel
	pixels := t.Pixels()
	off := y*pitch + x*bpp

	switch bpp {
	case 1:
		return uint32(pixels[off])
	case 2:
		return uint32(pixels[off]) | uint32(pixels[off+1])<<8
	case 4:
		return uint32(pixels[off]) | uint32(pixels[off+1])<<8 |
			uint32(pixels[off+2])<<16 | uint32(pixels[off+3])<<24
	case 3:
		format := t.Format()
		rIdx, gIdx, bIdx := format.RShift>>3, format.GShift>>3, format.BShift>>3
		if format.BigEndian {
			rIdx, gIdx, bIdx = 2-rIdx, 2-gIdx, 2-bIdx
		}
		return ComposeRGBA(pixels[off+rIdx], pixels[off+gIdx], pixels[off+bIdx], 0xFF, format)
	default:
		return 0
	}
}
