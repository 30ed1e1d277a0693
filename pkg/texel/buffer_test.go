package texel

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewInvalidDimensions(t *testing.T) {
	if _, err := New(0, 16); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions for zero width, got %v", err)
	}
	if _, err := New(16, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions for negative height, got %v", err)
	}
}

func TestFill(t *testing.T) {
	b, err := NewFilled(4, 4, [4]float32{0.5, 0.5, 1.0, 1.0})
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	got := b.At(3, 3)
	if got != [4]float32{0.5, 0.5, 1.0, 1.0} {
		t.Errorf("unexpected texel value %v", got)
	}
}

func TestSetAt(t *testing.T) {
	b, _ := New(4, 4)
	b.Set(1, 2, [4]float32{0.1, 0.2, 0.3, 0.4})
	got := b.At(1, 2)
	if got != [4]float32{0.1, 0.2, 0.3, 0.4} {
		t.Errorf("unexpected texel value %v", got)
	}
	// Out-of-range access must be a no-op / zero value.
	b.Set(7, 7, [4]float32{1, 1, 1, 1})
	if b.At(7, 7) != [4]float32{} {
		t.Error("expected zero value for out-of-range read")
	}
}

func TestCopyRegion(t *testing.T) {
	dst, _ := NewFilled(8, 8, [4]float32{0, 0, 0, 1})
	src, _ := NewFilled(4, 4, [4]float32{1, 0, 0, 1})

	dst.CopyRegion(src, 2, 2)

	if dst.At(2, 2) != [4]float32{1, 0, 0, 1} {
		t.Error("top-left of pasted region not copied")
	}
	if dst.At(5, 5) != [4]float32{1, 0, 0, 1} {
		t.Error("bottom-right of pasted region not copied")
	}
	if dst.At(1, 2) != [4]float32{0, 0, 0, 1} {
		t.Error("texel outside pasted region was modified")
	}
	if dst.At(6, 6) != [4]float32{0, 0, 0, 1} {
		t.Error("texel outside pasted region was modified")
	}
}

func TestCopyRegionClipped(t *testing.T) {
	dst, _ := New(8, 8)
	src, _ := NewFilled(4, 4, [4]float32{0, 1, 0, 1})

	// Overhangs the right and bottom edges by two texels.
	dst.CopyRegion(src, 6, 6)

	if dst.At(7, 7) != [4]float32{0, 1, 0, 1} {
		t.Error("in-bounds part of clipped paste not copied")
	}
	if dst.At(5, 5) != [4]float32{} {
		t.Error("texel outside clipped paste was modified")
	}

	// Entirely out of bounds: must be a no-op, not a panic.
	dst.CopyRegion(src, 100, 100)
	dst.CopyRegion(src, -100, -100)
}

func TestCopyRegionNegativeOrigin(t *testing.T) {
	dst, _ := New(8, 8)
	src, _ := New(4, 4)
	src.Set(3, 3, [4]float32{1, 1, 1, 1})
	src.Set(0, 0, [4]float32{0.5, 0.5, 0.5, 1})

	dst.CopyRegion(src, -2, -2)

	if dst.At(1, 1) != [4]float32{1, 1, 1, 1} {
		t.Error("visible part of negative-origin paste not copied")
	}
	if dst.At(0, 0) == [4]float32{0.5, 0.5, 0.5, 1} {
		t.Error("clipped source texel leaked into destination")
	}
}

func TestCopyChannel(t *testing.T) {
	dst, _ := NewFilled(4, 4, [4]float32{1, 1, 1, 1})
	src, _ := NewFilled(4, 4, [4]float32{0, 0, 0, 0.25})

	if err := dst.CopyChannel(src, 3, 3); err != nil {
		t.Fatalf("copy channel failed: %v", err)
	}
	got := dst.At(2, 2)
	if got != [4]float32{1, 1, 1, 0.25} {
		t.Errorf("expected alpha 0.25 with RGB intact, got %v", got)
	}

	small, _ := New(2, 2)
	if err := dst.CopyChannel(small, 3, 3); err != ErrDimensionMismatch {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestBroadcastChannel(t *testing.T) {
	b, _ := NewFilled(2, 2, [4]float32{0.1, 0.2, 0.3, 0.75})
	b.BroadcastChannel(3)
	got := b.At(0, 0)
	if got != [4]float32{0.75, 0.75, 0.75, 0.75} {
		t.Errorf("expected alpha broadcast into RGB, got %v", got)
	}
}

func TestImageRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{R: 0, G: 128, B: 255, A: 64})

	buf := FromImage(img)
	if buf.Width() != 3 || buf.Height() != 2 {
		t.Fatalf("expected 3x2 buffer, got %dx%d", buf.Width(), buf.Height())
	}
	if buf.At(0, 0) != [4]float32{1, 0, 0, 1} {
		t.Errorf("unexpected texel at (0,0): %v", buf.At(0, 0))
	}

	back := buf.ToImage()
	if got := back.NRGBAAt(2, 1); got != (color.NRGBA{R: 0, G: 128, B: 255, A: 64}) {
		t.Errorf("round trip mismatch at (2,1): %v", got)
	}
}

func TestToImageClamps(t *testing.T) {
	b, _ := New(1, 1)
	b.Set(0, 0, [4]float32{-0.5, 2.0, 0.5, 1.0})
	img := b.ToImage()
	got := img.NRGBAAt(0, 0)
	if got.R != 0 || got.G != 255 {
		t.Errorf("expected clamped components, got %v", got)
	}
}
