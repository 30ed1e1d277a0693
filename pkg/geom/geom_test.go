package geom

import "testing"

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	if got.X != 4 || got.Y != 6 {
		t.Errorf("expected (4, 6), got (%f, %f)", got.X, got.Y)
	}
}

func TestVec2MulAdd(t *testing.T) {
	uv := Vec2{0.5, 0.5}
	scale := Vec2{0.25, 0.25}
	offset := Vec2{0.5, 0.0}
	got := uv.MulAdd(scale, offset)
	if got.X != 0.625 || got.Y != 0.125 {
		t.Errorf("expected (0.625, 0.125), got (%f, %f)", got.X, got.Y)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if v.Length() != 5 {
		t.Errorf("expected length 5, got %f", v.Length())
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	b := RectXYWH(5, 5, 10, 10)
	got := a.Intersect(b)
	want := RectXYWH(5, 5, 5, 5)
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRectIntersectDisjoint(t *testing.T) {
	a := RectXYWH(0, 0, 4, 4)
	b := RectXYWH(8, 8, 4, 4)
	if !a.Intersect(b).Empty() {
		t.Error("expected empty intersection for disjoint rects")
	}
	if a.Overlaps(b) {
		t.Error("expected no overlap for disjoint rects")
	}
}

func TestRectEdgeTouchingDoesNotOverlap(t *testing.T) {
	a := RectXYWH(0, 0, 4, 4)
	b := RectXYWH(4, 0, 4, 4)
	if a.Overlaps(b) {
		t.Error("rects sharing only an edge must not overlap")
	}
}

func TestRectIn(t *testing.T) {
	outer := RectXYWH(0, 0, 16, 16)
	if !RectXYWH(4, 4, 8, 8).In(outer) {
		t.Error("inner rect should be contained")
	}
	if RectXYWH(12, 12, 8, 8).In(outer) {
		t.Error("overhanging rect should not be contained")
	}
}
