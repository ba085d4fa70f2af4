// Package texture decodes images and prepares pixel data for GPU upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// MaxSize is the largest edge, in pixels, an uploaded texture keeps.
// Larger images are downscaled preserving aspect ratio.
const MaxSize = 2048

// Decode decodes PNG, JPEG, BMP or WebP data and returns the image and its
// format name.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, format, nil
}

// ToRGBA converts any image to tightly packed RGBA with its origin at (0,0),
// downscaling so neither edge exceeds maxSize (0 disables the limit).
func ToRGBA(img image.Image, maxSize int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			h = max(1, h*maxSize/w)
			w = maxSize
		} else {
			w = max(1, w*maxSize/h)
			h = maxSize
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return dst
}

// FlipVertical mirrors img top to bottom in place. OpenGL expects the first
// row of pixel data to be the bottom of the image.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// Checker returns a size x size checkerboard of cells x cells squares.
func Checker(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(1, size/max(1, cells))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
