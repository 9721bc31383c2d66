package agg

import (
	"testing"

	"agg_go/internal/basics"
	"agg_go/surface"
)

var testFormat = surface.Format{BytesPerPixel: 4, RShift: 0, GShift: 8, BShift: 16, AShift: 24}

const red = uint32(0x000000FF) // R byte set, matching RShift=0

func newTestSurface(w, h int) *surface.Memory {
	return surface.NewMemory(w, h, testFormat)
}

func pixelAt(t *surface.Memory, x, y int) uint32 {
	off := y*t.Pitch() + x*4
	p := t.Pixels()
	return uint32(p[off]) | uint32(p[off+1])<<8 | uint32(p[off+2])<<16 | uint32(p[off+3])<<24
}

// S1: 10x1 surface, line((0,0),(9,0), red, width=1).
func TestS1LineAcrossRow(t *testing.T) {
	s := newTestSurface(10, 1)
	r, err := Line(s, red, basics.PointI{X: 0, Y: 0}, basics.PointI{X: 9, Y: 0}, 1)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	for x := 0; x < 10; x++ {
		if pixelAt(s, x, 0) != red {
			t.Fatalf("pixel (%d,0) not red", x)
		}
	}
	if r != (basics.RectWH{X: 0, Y: 0, W: 10, H: 1}) {
		t.Fatalf("rect = %+v, want (0,0,10,1)", r)
	}
}

// S2: 10x10 surface, line((0,0),(9,9), red) -> exactly 10 pixels on the
// main diagonal.
func TestS2DiagonalLine(t *testing.T) {
	s := newTestSurface(10, 10)
	_, err := Line(s, red, basics.PointI{X: 0, Y: 0}, basics.PointI{X: 9, Y: 9}, 1)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	count := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if pixelAt(s, x, y) == red {
				count++
				if x != y {
					t.Fatalf("off-diagonal pixel (%d,%d) set", x, y)
				}
			}
		}
	}
	if count != 10 {
		t.Fatalf("diagonal pixel count = %d, want 10", count)
	}
}

// S3: 20x20 surface, circle((10,10), r=5, width=0) filled disk.
func TestS3CircleFilled(t *testing.T) {
	s := newTestSurface(20, 20)
	r, err := Circle(s, red, basics.PointI{X: 10, Y: 10}, 5, 0, CircleQuadrants{})
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}
	if pixelAt(s, 10, 10) != red {
		t.Fatalf("center pixel should be red")
	}
	if pixelAt(s, 10, 15) != red {
		t.Fatalf("pixel (10,15) should be red")
	}
	if pixelAt(s, 10, 16) == red {
		t.Fatalf("pixel (10,16) should be unchanged")
	}
	if r.W != 10 || r.H != 10 {
		t.Fatalf("rect = %+v, want width/height 10", r)
	}
}

// S4: circle(r=5, width=1) and circle(r=5, width=0) agree at the outermost
// ring (checked here via matching bounding rects, the documented proxy for
// "outermost ring" since BBox reports pixel extent, not membership).
func TestS4CircleOutlineFilledAgreement(t *testing.T) {
	filled := newTestSurface(20, 20)
	outline := newTestSurface(20, 20)

	rf, err := Circle(filled, red, basics.PointI{X: 10, Y: 10}, 5, 0, CircleQuadrants{})
	if err != nil {
		t.Fatalf("Circle filled: %v", err)
	}
	ro, err := Circle(outline, red, basics.PointI{X: 10, Y: 10}, 5, 1, CircleQuadrants{})
	if err != nil {
		t.Fatalf("Circle outline: %v", err)
	}
	if rf != ro {
		t.Fatalf("filled rect %+v != outline rect %+v", rf, ro)
	}
}

// S5: 10x10 surface, polygon square -> 64 red pixels, rect (1,1,8,8).
func TestS5PolygonFill(t *testing.T) {
	s := newTestSurface(10, 10)
	pts := []basics.PointI{{X: 1, Y: 1}, {X: 8, Y: 1}, {X: 8, Y: 8}, {X: 1, Y: 8}}
	r, err := Polygon(s, red, pts, 0)
	if err != nil {
		t.Fatalf("Polygon: %v", err)
	}
	count := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if pixelAt(s, x, y) == red {
				count++
			}
		}
	}
	if count != 64 {
		t.Fatalf("red pixel count = %d, want 64", count)
	}
	if r != (basics.RectWH{X: 1, Y: 1, W: 8, H: 8}) {
		t.Fatalf("rect = %+v, want (1,1,8,8)", r)
	}
}

// S6: 10x10 surface, rect(0,0,10,10, border_radius=3, width=0) -> corners
// unchanged, center red, rect (0,0,10,10).
func TestS6RoundRectFilled(t *testing.T) {
	s := newTestSurface(10, 10)
	r, err := RoundRect(s, red, basics.RectWH{X: 0, Y: 0, W: 10, H: 10}, 0, 3, nil)
	if err != nil {
		t.Fatalf("RoundRect: %v", err)
	}
	corners := [][2]int{{0, 0}, {9, 0}, {0, 9}, {9, 9}}
	for _, c := range corners {
		if pixelAt(s, c[0], c[1]) == red {
			t.Fatalf("corner (%d,%d) should be unchanged", c[0], c[1])
		}
	}
	if pixelAt(s, 5, 5) != red {
		t.Fatalf("center pixel should be red")
	}
	if r != (basics.RectWH{X: 0, Y: 0, W: 10, H: 10}) {
		t.Fatalf("rect = %+v, want (0,0,10,10)", r)
	}
}

// S7: aaline with blend=true drawn over a background already equal to the
// source color leaves the surface unchanged.
func TestS7AALineBlendIdempotence(t *testing.T) {
	s := newTestSurface(20, 20)
	// Pre-fill the whole surface with fully opaque red.
	px := s.Pixels()
	for i := 0; i < len(px); i += 4 {
		px[i], px[i+1], px[i+2], px[i+3] = 0xFF, 0x00, 0x00, 0xFF
	}
	before := append([]byte(nil), px...)

	_, err := AALine(s, 0xFF0000FF, basics.PointF{X: 2, Y: 2}, basics.PointF{X: 17, Y: 2}, true)
	if err != nil {
		t.Fatalf("AALine: %v", err)
	}

	after := s.Pixels()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("byte %d changed: %d -> %d", i, before[i], after[i])
		}
	}
}

func TestIdempotenceOfEmptyPrimitives(t *testing.T) {
	s := newTestSurface(10, 10)

	r, err := Line(s, red, basics.PointI{X: 3, Y: 3}, basics.PointI{X: 5, Y: 5}, -1)
	if err != nil {
		t.Fatalf("Line width<0: %v", err)
	}
	if r != (basics.RectWH{X: 3, Y: 3, W: 0, H: 0}) {
		t.Fatalf("rect = %+v, want zero-size at (3,3)", r)
	}

	r, err = Circle(s, red, basics.PointI{X: 5, Y: 5}, 0, 0, CircleQuadrants{})
	if err != nil {
		t.Fatalf("Circle radius<1: %v", err)
	}
	if r.W != 0 || r.H != 0 {
		t.Fatalf("rect = %+v, want zero-size", r)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if pixelAt(s, x, y) != 0 {
				t.Fatalf("surface should be untouched by degenerate calls")
			}
		}
	}
}

func TestClipSafety(t *testing.T) {
	s := newTestSurface(20, 20)
	s.SetClipRect(surface.ClipRect{X: 5, Y: 5, W: 5, H: 5})

	_, err := Line(s, red, basics.PointI{X: 0, Y: 0}, basics.PointI{X: 19, Y: 19}, 1)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inClip := x >= 5 && x < 10 && y >= 5 && y < 10
			if !inClip && pixelAt(s, x, y) != 0 {
				t.Fatalf("pixel (%d,%d) outside clip rect was written", x, y)
			}
		}
	}
}

func TestUnsupportedSurfaceError(t *testing.T) {
	s := surface.NewMemory(10, 10, surface.Format{BytesPerPixel: 5})
	_, err := Line(s, red, basics.PointI{}, basics.PointI{X: 1}, 1)
	if _, ok := err.(*UnsupportedSurfaceError); !ok {
		t.Fatalf("expected *UnsupportedSurfaceError, got %v", err)
	}
}

func TestPolygonTooFewPointsIsInvalidArgument(t *testing.T) {
	s := newTestSurface(10, 10)
	_, err := Polygon(s, red, []basics.PointI{{X: 0, Y: 0}, {X: 1, Y: 1}}, 0)
	if _, ok := err.(*InvalidArgumentError); !ok {
		t.Fatalf("expected *InvalidArgumentError, got %v", err)
	}
}
