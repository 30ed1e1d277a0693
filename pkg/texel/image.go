package texel

import (
	"image"
	"image/color"
)

// FromImage converts a decoded image into a float32 RGBA buffer.
// Components are normalized from 16-bit color values to [0, 1].
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	buf := &Buffer{
		width:  w,
		height: h,
		data:   make([]float32, w*h*Channels),
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
			di := y * w * Channels
			for x := 0; x < w; x++ {
				buf.data[di+x*4] = float32(row[x*4]) / 255
				buf.data[di+x*4+1] = float32(row[x*4+1]) / 255
				buf.data[di+x*4+2] = float32(row[x*4+2]) / 255
				buf.data[di+x*4+3] = float32(row[x*4+3]) / 255
			}
		}
		return buf
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA64Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA64)
			i := (y*w + x) * Channels
			buf.data[i] = float32(c.R) / 65535
			buf.data[i+1] = float32(c.G) / 65535
			buf.data[i+2] = float32(c.B) / 65535
			buf.data[i+3] = float32(c.A) / 65535
		}
	}
	return buf
}

// ToImage converts the buffer to an 8-bit NRGBA image, clamping
// components to [0, 1].
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.width*4]
		si := y * b.width * Channels
		for x := 0; x < b.width*4; x++ {
			row[x] = quantize(b.data[si+x])
		}
	}
	return img
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
