// Package surface defines the target-surface contract the rasterizer core
// consumes. The core never constructs a Target itself — a binding layer
// (an SDL2 window surface, an in-memory image buffer, a test fixture)
// implements it and hands it to the agg package for the duration of one
// call.
package surface

// Format describes how a 32-bit color value is packed into the bytes of
// one pixel. Shift is the bit position of each channel's low bit within the
// packed pixel value, mirroring SDL_PixelFormat's Rshift/Gshift/Bshift/Ashift.
type Format struct {
	BytesPerPixel int // 1, 2, 3, or 4; any other value is rejected
	RShift        int
	GShift        int
	BShift        int
	AShift        int
	BigEndian     bool // byte order for the 3 BPP case only
}

// Valid reports whether BytesPerPixel names a supported pixel depth.
func (f Format) Valid() bool {
	return f.BytesPerPixel >= 1 && f.BytesPerPixel <= 4
}

// ClipRect is the axis-aligned region within the surface outside of which
// no pixel may be read or written.
type ClipRect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside the clip rectangle.
func (c ClipRect) Contains(x, y int) bool {
	return x >= c.X && x < c.X+c.W && y >= c.Y && y < c.Y+c.H
}

// Target is the pixel-addressable surface the rasterizer core draws into.
// Implementations own the backing memory; the core only ever borrows it for
// the duration of one primitive call, bracketed by Lock/Unlock.
type Target interface {
	// Width and Height are the surface dimensions in pixels.
	Width() int
	Height() int

	// Pitch is the number of bytes between the start of one scanline and
	// the next. It must be >= Width() * Format().BytesPerPixel.
	Pitch() int

	// Format describes the pixel layout used by Pixels.
	Format() Format

	// Pixels returns the raw backing buffer. Byte 0 is the top-left pixel.
	Pixels() []byte

	// ClipRect returns the current clip rectangle, already intersected
	// with the surface bounds.
	ClipRect() ClipRect

	// Lock and Unlock bracket exclusive mutable access to Pixels for the
	// duration of one rasterization call. Both report success; a false
	// return from either is a resource failure the caller must surface.
	Lock() bool
	Unlock() bool
}
