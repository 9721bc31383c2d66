package primitives

import (
	"testing"

	"agg_go/internal/basics"
	"agg_go/surface"
)

// rgbaFormat is a 32 BPP R,G,B,A byte-aligned format used throughout these
// tests, matching a typical software-rendered RGBA8888 surface.
var rgbaFormat = surface.Format{BytesPerPixel: 4, RShift: 0, GShift: 8, BShift: 16, AShift: 24}

func newTarget(w, h int) *surface.Memory {
	return surface.NewMemory(w, h, rgbaFormat)
}

func pixelAt(t *surface.Memory, x, y int) uint32 {
	off := y*t.Pitch() + x*t.Format().BytesPerPixel
	p := t.Pixels()
	return uint32(p[off]) | uint32(p[off+1])<<8 | uint32(p[off+2])<<16 | uint32(p[off+3])<<24
}

func TestWritePixelClipSafety(t *testing.T) {
	tgt := newTarget(10, 10)
	tgt.SetClipRect(surface.ClipRect{X: 2, Y: 2, W: 4, H: 4})

	bb := basics.NewBBox()
	if ok := WritePixel(tgt, 0, 0, 0xFFFFFFFF, &bb); ok {
		t.Fatalf("WritePixel outside clip rect should return false")
	}
	if pixelAt(tgt, 0, 0) != 0 {
		t.Fatalf("pixel outside clip rect must not be written")
	}
	if !bb.Empty() {
		t.Fatalf("bbox should stay empty when nothing was written")
	}

	if ok := WritePixel(tgt, 3, 3, 0xFFFFFFFF, &bb); !ok {
		t.Fatalf("WritePixel inside clip rect should return true")
	}
	if pixelAt(tgt, 3, 3) != 0xFFFFFFFF {
		t.Fatalf("pixel inside clip rect must be written")
	}
}

func TestDrawLineEndpointInclusion(t *testing.T) {
	tgt := newTarget(10, 1)
	bb := basics.NewBBox()
	DrawLine(tgt, 0xFF0000FF, 0, 0, 9, 0, &bb)

	for x := 0; x < 10; x++ {
		if pixelAt(tgt, x, 0) != 0xFF0000FF {
			t.Fatalf("pixel (%d,0) not written", x)
		}
	}
	r := bb.Rect(0, 0)
	if r != (basics.RectWH{X: 0, Y: 0, W: 10, H: 1}) {
		t.Fatalf("bbox = %+v, want (0,0,10,1)", r)
	}
}

func TestDrawLineSymmetry(t *testing.T) {
	a := newTarget(20, 20)
	b := newTarget(20, 20)
	bbA := basics.NewBBox()
	bbB := basics.NewBBox()

	DrawLine(a, 0xABCDEF11, 2, 17, 15, 3, &bbA)
	DrawLine(b, 0xABCDEF11, 15, 3, 2, 17, &bbB)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if pixelAt(a, x, y) != pixelAt(b, x, y) {
				t.Fatalf("pixel (%d,%d) differs between A->B and B->A draws", x, y)
			}
		}
	}
}

func TestDrawLineWidthMonotonicity(t *testing.T) {
	counts := make([]int, 0, 4)
	for width := 1; width <= 4; width++ {
		tgt := newTarget(30, 30)
		bb := basics.NewBBox()
		DrawLineWidth(tgt, 0xFF0000FF, width, 5, 5, 20, 5, &bb)

		set := map[[2]int]bool{}
		px := tgt.Pixels()
		for y := 0; y < 30; y++ {
			for x := 0; x < 30; x++ {
				off := y*tgt.Pitch() + x*4
				if px[off+3] != 0 {
					set[[2]int{x, y}] = true
				}
			}
		}
		counts = append(counts, len(set))
	}
	for i := 1; i < len(counts); i++ {
		if counts[i] < counts[i-1] {
			t.Fatalf("pixel count should be non-decreasing with width: %v", counts)
		}
	}
}

func TestCircleFilledOutlineAgreement(t *testing.T) {
	filled := newTarget(30, 30)
	outline := newTarget(30, 30)
	bbF := basics.NewBBox()
	bbO := basics.NewBBox()

	DrawCircleFilled(filled, 0xFF0000FF, 15, 15, 10, &bbF)
	DrawCircleBresenham(outline, 0xFF0000FF, 15, 15, 10, 10, &bbO)

	rF := bbF.Rect(0, 0)
	rO := bbO.Rect(0, 0)
	if rF != rO {
		t.Fatalf("filled bbox %+v != outline bbox %+v", rF, rO)
	}
}

func TestFillPolygonRectEquivalence(t *testing.T) {
	tgt := newTarget(10, 10)
	bb := basics.NewBBox()
	px := []int{1, 8, 8, 1}
	py := []int{1, 1, 8, 8}
	if err := FillPolygon(tgt, 0xFF0000FF, px, py, &bb); err != nil {
		t.Fatalf("FillPolygon: %v", err)
	}

	r := bb.Rect(0, 0)
	if r != (basics.RectWH{X: 1, Y: 1, W: 8, H: 8}) {
		t.Fatalf("bbox = %+v, want (1,1,8,8)", r)
	}

	count := 0
	px2 := tgt.Pixels()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			off := y*tgt.Pitch() + x*4
			if px2[off+3] != 0 {
				count++
			}
		}
	}
	if count != 64 {
		t.Fatalf("filled pixel count = %d, want 64", count)
	}
}

func TestDrawEllipseDegenerateSinglePixel(t *testing.T) {
	tgt := newTarget(10, 10)
	bb := basics.NewBBox()
	DrawEllipse(tgt, 0xFF0000FF, 5, 5, 0, 0, true, &bb)
	if pixelAt(tgt, 5, 5) != 0xFF0000FF {
		t.Fatalf("degenerate 0x0 ellipse should write a single pixel at center")
	}
}

func TestDrawArcWritesPixels(t *testing.T) {
	tgt := newTarget(40, 40)
	bb := basics.NewBBox()
	DrawArc(tgt, 0xFF0000FF, 20, 20, 10, 10, 0, 3.14159/2, &bb)
	if bb.Empty() {
		t.Fatalf("arc should write at least one pixel")
	}
}
