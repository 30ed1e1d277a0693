package provider

import (
	"fmt"

	"github.com/Faultbox/atlaskit/pkg/texel"
)

// DecodeTGA decodes TGA image data into a texel buffer.
// Supports uncompressed true-color (type 2) and RLE compressed (type 10)
// files, the variants source textures commonly come in.
func DecodeTGA(data []byte) (*texel.Buffer, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != 2 && imageType != 10 {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}
	pixelData := data[offset:]

	buf, err := texel.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("invalid TGA dimensions %dx%d", width, height)
	}
	bytesPerPixel := bpp / 8

	// Bit 5 of the descriptor means rows are stored top-to-bottom; the
	// buffer convention is top-to-bottom, so bottom-stored files flip.
	topToBottom := (descriptor & 0x20) != 0

	if imageType == 2 {
		expectedSize := width * height * bytesPerPixel
		if len(pixelData) < expectedSize {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}

		for y := 0; y < height; y++ {
			destY := y
			if !topToBottom {
				destY = height - 1 - y
			}
			for x := 0; x < width; x++ {
				i := (y*width + x) * bytesPerPixel
				buf.Set(x, destY, texelFromBGRA(pixelData[i:], bytesPerPixel))
			}
		}
		return buf, nil
	}

	if err := decodeTGARLE(buf, pixelData, width, height, bytesPerPixel, topToBottom); err != nil {
		return nil, err
	}
	return buf, nil
}

// decodeTGARLE decodes type 10 run-length encoded pixel data.
func decodeTGARLE(buf *texel.Buffer, data []byte, width, height, bytesPerPixel int, topToBottom bool) error {
	pos := 0
	total := width * height
	written := 0

	setPixel := func(index int, rgba [4]float32) {
		x := index % width
		y := index / width
		if !topToBottom {
			y = height - 1 - y
		}
		buf.Set(x, y, rgba)
	}

	for written < total {
		if pos >= len(data) {
			return fmt.Errorf("TGA RLE data truncated")
		}
		packet := data[pos]
		pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run-length packet: one pixel value repeated.
			if pos+bytesPerPixel > len(data) {
				return fmt.Errorf("TGA RLE data truncated")
			}
			rgba := texelFromBGRA(data[pos:], bytesPerPixel)
			pos += bytesPerPixel
			for i := 0; i < count && written < total; i++ {
				setPixel(written, rgba)
				written++
			}
		} else {
			// Raw packet: count literal pixels.
			if pos+count*bytesPerPixel > len(data) {
				return fmt.Errorf("TGA RLE data truncated")
			}
			for i := 0; i < count && written < total; i++ {
				setPixel(written, texelFromBGRA(data[pos:], bytesPerPixel))
				pos += bytesPerPixel
				written++
			}
		}
	}
	return nil
}

// texelFromBGRA converts one BGR(A) byte pixel to normalized RGBA.
func texelFromBGRA(p []byte, bytesPerPixel int) [4]float32 {
	rgba := [4]float32{
		float32(p[2]) / 255,
		float32(p[1]) / 255,
		float32(p[0]) / 255,
		1,
	}
	if bytesPerPixel == 4 {
		rgba[3] = float32(p[3]) / 255
	}
	return rgba
}
