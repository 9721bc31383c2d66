package surface

// Memory is a plain in-process Target backed by a byte slice, intended for
// tests and headless use. It owns its pixel storage and its lock is a no-op
// that always succeeds, matching how callers without a real windowing
// surface are expected to behave.
type Memory struct {
	width, height int
	pitch         int
	format        Format
	pixels        []byte
	clip          ClipRect
}

// NewMemory allocates a zeroed buffer sized for width x height pixels in
// the given format, with pitch set to the tightest packing
// (width * format.BytesPerPixel) and the clip rect defaulted to the full
// surface.
func NewMemory(width, height int, format Format) *Memory {
	pitch := width * format.BytesPerPixel
	return &Memory{
		width:  width,
		height: height,
		pitch:  pitch,
		format: format,
		pixels: make([]byte, pitch*height),
		clip:   ClipRect{X: 0, Y: 0, W: width, H: height},
	}
}

func (m *Memory) Width() int  { return m.width }
func (m *Memory) Height() int { return m.height }
func (m *Memory) Pitch() int  { return m.pitch }

func (m *Memory) Format() Format { return m.format }

func (m *Memory) Pixels() []byte { return m.pixels }

func (m *Memory) ClipRect() ClipRect { return m.clip }

// SetClipRect intersects the requested rect with the surface bounds and
// installs it as the active clip rect.
func (m *Memory) SetClipRect(c ClipRect) {
	if c.X < 0 {
		c.W += c.X
		c.X = 0
	}
	if c.Y < 0 {
		c.H += c.Y
		c.Y = 0
	}
	if c.X+c.W > m.width {
		c.W = m.width - c.X
	}
	if c.Y+c.H > m.height {
		c.H = m.height - c.Y
	}
	if c.W < 0 {
		c.W = 0
	}
	if c.H < 0 {
		c.H = 0
	}
	m.clip = c
}

func (m *Memory) Lock() bool   { return true }
func (m *Memory) Unlock() bool { return true }
