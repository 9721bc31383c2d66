package surface

import (
	"testing"

	"agg_go/internal/order"
)

func TestMemoryDefaultClipIsFullSurface(t *testing.T) {
	m := NewMemory(8, 6, Format{BytesPerPixel: 4})
	c := m.ClipRect()
	if c != (ClipRect{X: 0, Y: 0, W: 8, H: 6}) {
		t.Fatalf("default clip = %+v, want full surface", c)
	}
}

func TestMemorySetClipRectIntersectsBounds(t *testing.T) {
	m := NewMemory(10, 10, Format{BytesPerPixel: 4})
	m.SetClipRect(ClipRect{X: -2, Y: 3, W: 5, H: 100})
	c := m.ClipRect()
	if c.X != 0 || c.Y != 3 || c.W != 3 || c.H != 7 {
		t.Fatalf("clipped rect = %+v, want (0,3,3,7)", c)
	}
}

func TestMemoryPitchMatchesWidthTimesBPP(t *testing.T) {
	m := NewMemory(5, 2, Format{BytesPerPixel: 3})
	if m.Pitch() != 15 {
		t.Fatalf("pitch = %d, want 15", m.Pitch())
	}
	if len(m.Pixels()) != 30 {
		t.Fatalf("buffer length = %d, want 30", len(m.Pixels()))
	}
}

func TestFormatFromOrder32(t *testing.T) {
	f := FormatFromOrder32(order.RGBA{})
	if f.BytesPerPixel != 4 || f.RShift != 0 || f.GShift != 8 || f.BShift != 16 || f.AShift != 24 {
		t.Fatalf("FormatFromOrder32(RGBA) = %+v", f)
	}
}
