package texel

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Resize scales src to the given dimensions using bilinear interpolation.
// Upscaling and downscaling share the same sampling path; heavy
// minification can alias because no pre-filtering is applied. When the
// requested dimensions equal the source dimensions, src itself is
// returned unchanged.
func Resize(src *Buffer, dstWidth, dstHeight int) (*Buffer, error) {
	if dstWidth <= 0 || dstHeight <= 0 {
		return nil, fmt.Errorf("%w: resize to %dx%d", ErrInvalidDimensions, dstWidth, dstHeight)
	}
	if dstWidth == src.width && dstHeight == src.height {
		return src, nil
	}

	dst := &Buffer{
		width:  dstWidth,
		height: dstHeight,
		data:   make([]float32, dstWidth*dstHeight*Channels),
	}

	xRatio := float32(src.width) / float32(dstWidth)
	yRatio := float32(src.height) / float32(dstHeight)

	// Per-column sampling positions are shared by every row.
	x0 := make([]int, dstWidth)
	x1 := make([]int, dstWidth)
	wx := make([]float32, dstWidth)
	for x := 0; x < dstWidth; x++ {
		sx := float32(x) * xRatio
		x0[x] = int(math32.Floor(sx))
		x1[x] = clampIndex(x0[x]+1, src.width-1)
		wx[x] = sx - float32(x0[x])
	}

	for y := 0; y < dstHeight; y++ {
		sy := float32(y) * yRatio
		y0 := int(math32.Floor(sy))
		y1 := clampIndex(y0+1, src.height-1)
		wy := sy - float32(y0)

		topRow := src.data[y0*src.width*Channels:]
		botRow := src.data[y1*src.width*Channels:]
		di := y * dstWidth * Channels

		for x := 0; x < dstWidth; x++ {
			ti := x0[x] * Channels
			ui := x1[x] * Channels
			fx := wx[x]
			for c := 0; c < Channels; c++ {
				top := topRow[ti+c]*(1-fx) + topRow[ui+c]*fx
				bot := botRow[ti+c]*(1-fx) + botRow[ui+c]*fx
				dst.data[di+x*Channels+c] = top*(1-wy) + bot*wy
			}
		}
	}
	return dst, nil
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
