package primitives

import "agg_go/surface"

// DecomposeRGBA splits an opaque, already-mapped 32-bit color into its
// per-channel bytes according to format's bit shifts.
func DecomposeRGBA(color uint32, format surface.Format) (r, g, b, a byte) {
	r = byte(color >> uint(format.RShift))
	g = byte(color >> uint(format.GShift))
	b = byte(color >> uint(format.BShift))
	a = byte(color >> uint(format.AShift))
	return
}

// ComposeRGBA packs per-channel bytes back into a 32-bit color according to
// format's bit shifts.
func ComposeRGBA(r, g, b, a byte, format surface.Format) uint32 {
	return uint32(r)<<uint(format.RShift) |
		uint32(g)<<uint(format.GShift) |
		uint32(b)<<uint(format.BShift) |
		uint32(a)<<uint(format.AShift)
}
