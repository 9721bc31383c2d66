// Package sdl2surface adapts an SDL2 window surface to the surface.Target
// contract so the rasterizers in internal/primitives can draw directly into
// an on-screen window.
package sdl2surface

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"agg_go/surface"
)

// Target wraps the window surface returned by sdl.Window.GetSurface. It
// satisfies surface.Target: Lock/Unlock bracket SDL2's own surface lock,
// and Pixels/Pitch/Format expose the surface's native layout directly, with
// no intermediate copy.
type Target struct {
	window  *sdl.Window
	surf    *sdl.Surface
	format  surface.Format
	clip    surface.ClipRect
	flipY   bool
}

// NewWindow creates an SDL2 window of the given size and wraps its surface
// as a Target. Callers must call sdl.Init(sdl.INIT_VIDEO) beforehand and
// Destroy the returned Target when done.
func NewWindow(title string, width, height int, flipY bool) (*Target, error) {
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdl2surface: create window: %w", err)
	}

	winSurf, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("sdl2surface: get window surface: %w", err)
	}

	t := &Target{
		window: window,
		surf:   winSurf,
		format: formatFromSDL(winSurf.Format),
		clip:   surface.ClipRect{X: 0, Y: 0, W: width, H: height},
		flipY:  flipY,
	}
	return t, nil
}

// formatFromSDL derives the channel-shift descriptor this module's
// PixelWriter needs from an SDL pixel format. SDL masks are contiguous bit
// fields; the shift is the position of the mask's lowest set bit.
func formatFromSDL(f *sdl.PixelFormat) surface.Format {
	return surface.Format{
		BytesPerPixel: int(f.BytesPerPixel),
		RShift:        shiftOf(f.Rmask),
		GShift:        shiftOf(f.Gmask),
		BShift:        shiftOf(f.Bmask),
		AShift:        shiftOf(f.Amask),
		BigEndian:     false,
	}
}

func shiftOf(mask uint32) int {
	if mask == 0 {
		return 0
	}
	shift := 0
	for mask&1 == 0 {
		mask >>= 1
		shift++
	}
	return shift
}

func (t *Target) Width() int  { return int(t.surf.W) }
func (t *Target) Height() int { return int(t.surf.H) }
func (t *Target) Pitch() int  { return int(t.surf.Pitch) }

func (t *Target) Format() surface.Format { return t.format }

func (t *Target) Pixels() []byte { return t.surf.Pixels() }

func (t *Target) ClipRect() surface.ClipRect { return t.clip }

// SetClipRect installs a new clip rect, intersected with the surface bounds.
func (t *Target) SetClipRect(c surface.ClipRect) {
	if c.X < 0 {
		c.W += c.X
		c.X = 0
	}
	if c.Y < 0 {
		c.H += c.Y
		c.Y = 0
	}
	if c.X+c.W > int(t.surf.W) {
		c.W = int(t.surf.W) - c.X
	}
	if c.Y+c.H > int(t.surf.H) {
		c.H = int(t.surf.H) - c.Y
	}
	t.clip = c
}

func (t *Target) Lock() bool {
	return t.surf.Lock() == nil
}

func (t *Target) Unlock() bool {
	t.surf.Unlock()
	return true
}

// Flip presents the window surface's current pixel contents.
func (t *Target) Flip() error {
	return t.window.UpdateSurface()
}

// Destroy releases the underlying SDL2 window.
func (t *Target) Destroy() {
	t.window.Destroy()
}
