// Package texture decodes sprite atlas images.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"
)

// Decode decodes image data, choosing the decoder from the file name for TGA
// and by sniffing for everything else. Empty images are rejected.
func Decode(data []byte, name string) (*image.RGBA, error) {
	var img *image.RGBA
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		var err error
		if img, err = DecodeTGA(data); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	} else {
		src, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		img = ToRGBA(src)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image %s is empty", name)
	}
	return img, nil
}

// ToRGBA converts any image to *image.RGBA with its origin at (0, 0).
// RGBA images already at the origin are returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
