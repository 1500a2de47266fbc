// Package imageutil provides the image plumbing around the quantizer:
// decoding and encoding files, resizing, comparison sheets and test
// images.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to an opaque RGBAImage whose
// bounds start at the origin. Alpha is dropped, not composited: a pixel
// keeps its straight color channels whatever its opacity. This holds for
// *RGBAImage inputs too, whose premultiplied pixels are converted back.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rgba.SetRGB(x-bounds.Min.X, y-bounds.Min.Y, RGB{R: n.R, G: n.G, B: n.B})
		}
	}
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Clone creates a deep copy of the image with bounds starting at the
// origin. Sub-images are copied row by row.
func (img *RGBAImage) Clone() *RGBAImage {
	bounds := img.Bounds()
	clone := NewRGBAImage(bounds.Dx(), bounds.Dy())
	rowLen := bounds.Dx() * 4
	for y := 0; y < bounds.Dy(); y++ {
		src := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(clone.Pix[y*clone.Stride:y*clone.Stride+rowLen], img.Pix[src:src+rowLen])
	}
	return clone
}
