package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("TGA data truncated")

// tgaLayout describes where decoded pixels land in the destination image.
type tgaLayout struct {
	width, height int
	bytesPerPixel int
	topToBottom   bool
}

// put stores the n-th pixel in file order, flipping rows for bottom-up files.
func (l tgaLayout) put(img *image.RGBA, n int, c color.RGBA) {
	x := n % l.width
	y := n / l.width
	if !l.topToBottom {
		y = l.height - 1 - y
	}
	img.SetRGBA(x, y, c)
}

// pixel reads one BGR(A) pixel.
func (l tgaLayout) pixel(p []byte) color.RGBA {
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if l.bytesPerPixel == 4 {
		c.A = p[3]
	}
	return c
}

// DecodeTGA decodes a TGA image file.
// Supports uncompressed (type 2) and RLE compressed (type 10) true-color
// images at 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
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
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	l := tgaLayout{
		width:         width,
		height:        height,
		bytesPerPixel: bpp / 8,
		// Bit 5 of the descriptor marks top-to-bottom row order.
		topToBottom: descriptor&0x20 != 0,
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	var err error
	if imageType == TGATypeUncompressed {
		err = decodeTGARaw(img, data[offset:], l)
	} else {
		err = decodeTGARLE(img, data[offset:], l)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

func decodeTGARaw(img *image.RGBA, src []byte, l tgaLayout) error {
	count := l.width * l.height
	if len(src) < count*l.bytesPerPixel {
		return errTGATruncated
	}
	for n := 0; n < count; n++ {
		i := n * l.bytesPerPixel
		l.put(img, n, l.pixel(src[i:i+l.bytesPerPixel]))
	}
	return nil
}

// decodeTGARLE expands run-length packets. A short stream leaves the
// remaining pixels transparent.
func decodeTGARLE(img *image.RGBA, src []byte, l tgaLayout) error {
	total := l.width * l.height
	n := 0
	i := 0
	for n < total && i < len(src) {
		packet := src[i]
		i++
		run := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if i+l.bytesPerPixel > len(src) {
				break
			}
			c := l.pixel(src[i : i+l.bytesPerPixel])
			i += l.bytesPerPixel
			for k := 0; k < run && n < total; k++ {
				l.put(img, n, c)
				n++
			}
			continue
		}

		for k := 0; k < run && n < total; k++ {
			if i+l.bytesPerPixel > len(src) {
				break
			}
			l.put(img, n, l.pixel(src[i:i+l.bytesPerPixel]))
			i += l.bytesPerPixel
			n++
		}
	}
	return nil
}
