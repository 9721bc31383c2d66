package basics

import "testing"

func TestBBoxEmptyByDefault(t *testing.T) {
	bb := NewBBox()
	if !bb.Empty() {
		t.Fatalf("fresh BBox should be empty")
	}
}

func TestBBoxAddTightensRect(t *testing.T) {
	bb := NewBBox()
	bb.Add(3, 4)
	bb.Add(1, 9)
	bb.Add(5, 2)

	if bb.Empty() {
		t.Fatalf("BBox should not be empty after Add")
	}

	r := bb.Rect(0, 0)
	want := RectWH{X: 1, Y: 2, W: 5 - 1 + 1, H: 9 - 2 + 1}
	if r != want {
		t.Fatalf("Rect() = %+v, want %+v", r, want)
	}
}

func TestBBoxRectAnchorsWhenEmpty(t *testing.T) {
	bb := NewBBox()
	r := bb.Rect(7, 8)
	want := RectWH{X: 7, Y: 8, W: 0, H: 0}
	if r != want {
		t.Fatalf("Rect() on empty BBox = %+v, want %+v", r, want)
	}
}

func TestRectWHCorners(t *testing.T) {
	r := RectWH{X: 2, Y: 3, W: 4, H: 5}
	x1, y1, x2, y2 := r.Corners()
	if x1 != 2 || y1 != 3 || x2 != 5 || y2 != 7 {
		t.Fatalf("Corners() = (%d,%d)-(%d,%d), want (2,3)-(5,7)", x1, y1, x2, y2)
	}
}

func TestRectWHCenterRadii(t *testing.T) {
	r := RectWH{X: 0, Y: 0, W: 10, H: 6}
	cx, cy, rx, ry := r.CenterRadii()
	if cx != 5 || cy != 3 || rx != 5 || ry != 3 {
		t.Fatalf("CenterRadii() = (%d,%d,%d,%d), want (5,3,5,3)", cx, cy, rx, ry)
	}
}

func TestRectNormalizeAndClip(t *testing.T) {
	r := Rect[int]{X1: 10, Y1: 10, X2: 0, Y2: 0}
	r.Normalize()
	if r.X1 != 0 || r.Y1 != 0 || r.X2 != 10 || r.Y2 != 10 {
		t.Fatalf("Normalize() = %+v", r)
	}

	ok := r.Clip(Rect[int]{X1: 2, Y1: 2, X2: 4, Y2: 4})
	if !ok {
		t.Fatalf("Clip() should intersect")
	}
	if r != (Rect[int]{X1: 2, Y1: 2, X2: 4, Y2: 4}) {
		t.Fatalf("Clip() = %+v", r)
	}

	r2 := Rect[int]{X1: 0, Y1: 0, X2: 1, Y2: 1}
	if r2.Clip(Rect[int]{X1: 5, Y1: 5, X2: 6, Y2: 6}) {
		t.Fatalf("Clip() should report no overlap")
	}
}
