// Package texel provides float32 RGBA pixel buffers and bilinear resampling.
package texel

import (
	"fmt"

	"github.com/Faultbox/atlaskit/pkg/geom"
)

// Channels is the number of components per texel (RGBA).
const Channels = 4

// Buffer is a row-major float32 RGBA pixel buffer of shape (H, W, 4).
// Row 0 is the top image row, matching the host image convention.
// Component values are expected to lie in [0, 1].
type Buffer struct {
	width  int
	height int
	data   []float32
}

// ErrDimensionMismatch is returned when two buffers that must share
// dimensions do not.
var ErrDimensionMismatch = fmt.Errorf("texel: buffer dimensions do not match")

// ErrInvalidDimensions is returned when a requested width or height is
// not positive.
var ErrInvalidDimensions = fmt.Errorf("texel: invalid dimensions")

// New creates a zero-filled buffer with the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]float32, width*height*Channels),
	}, nil
}

// NewFilled creates a buffer filled with a single RGBA color.
func NewFilled(width, height int, rgba [4]float32) (*Buffer, error) {
	b, err := New(width, height)
	if err != nil {
		return nil, err
	}
	b.Fill(rgba)
	return b, nil
}

// Width returns the buffer width in texels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in texels.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the buffer extent as a rectangle at the origin.
func (b *Buffer) Bounds() geom.Rect {
	return geom.RectXYWH(0, 0, b.width, b.height)
}

// Data returns the raw flat texel data (RGBARGBA..., row-major).
func (b *Buffer) Data() []float32 {
	return b.data
}

// At returns the RGBA value at (x, y). Out-of-range coordinates return zero.
func (b *Buffer) At(x, y int) [4]float32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return [4]float32{}
	}
	i := (y*b.width + x) * Channels
	return [4]float32{b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]}
}

// Set writes the RGBA value at (x, y). Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, rgba [4]float32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * Channels
	b.data[i] = rgba[0]
	b.data[i+1] = rgba[1]
	b.data[i+2] = rgba[2]
	b.data[i+3] = rgba[3]
}

// Fill sets every texel to the given RGBA color.
func (b *Buffer) Fill(rgba [4]float32) {
	for i := 0; i < len(b.data); i += Channels {
		b.data[i] = rgba[0]
		b.data[i+1] = rgba[1]
		b.data[i+2] = rgba[2]
		b.data[i+3] = rgba[3]
	}
}

// FillChannel sets one component of every texel to v.
func (b *Buffer) FillChannel(ch int, v float32) {
	for i := ch; i < len(b.data); i += Channels {
		b.data[i] = v
	}
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]float32, len(b.data))
	copy(data, b.data)
	return &Buffer{width: b.width, height: b.height, data: data}
}

// CopyRegion pastes src into b with its top-left corner at (dstX, dstY).
// The pasted region is clipped against b's bounds; source texels falling
// outside are dropped. Painting nothing is not an error.
func (b *Buffer) CopyRegion(src *Buffer, dstX, dstY int) {
	target := geom.RectXYWH(dstX, dstY, src.width, src.height).Intersect(b.Bounds())
	if target.Empty() {
		return
	}
	sx0 := target.MinX - dstX
	sy0 := target.MinY - dstY
	rowLen := target.Width() * Channels
	for y := target.MinY; y < target.MaxY; y++ {
		sy := sy0 + (y - target.MinY)
		di := (y*b.width + target.MinX) * Channels
		si := (sy*src.width + sx0) * Channels
		copy(b.data[di:di+rowLen], src.data[si:si+rowLen])
	}
}

// CopyChannel copies one component plane from src into b. Both buffers
// must have identical dimensions.
func (b *Buffer) CopyChannel(src *Buffer, srcCh, dstCh int) error {
	if src.width != b.width || src.height != b.height {
		return ErrDimensionMismatch
	}
	n := b.width * b.height
	for i := 0; i < n; i++ {
		b.data[i*Channels+dstCh] = src.data[i*Channels+srcCh]
	}
	return nil
}

// BroadcastChannel copies one component into all three color components
// of every texel, leaving alpha untouched.
func (b *Buffer) BroadcastChannel(ch int) {
	n := b.width * b.height
	for i := 0; i < n; i++ {
		v := b.data[i*Channels+ch]
		b.data[i*Channels] = v
		b.data[i*Channels+1] = v
		b.data[i*Channels+2] = v
	}
}
