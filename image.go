package kquant

import (
	"image"

	"github.com/wbrown/kquant/imageutil"
)

// Image is a decoded raster handed to and returned by the quantizer: a
// width x height grid of colors stored row-major in Pix.
type Image struct {
	Width, Height int
	Pix           []RGB
}

// NewImage allocates a black image of the given size.
func NewImage(width, height int) Image {
	return Image{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// At returns the color at (x, y).
func (img Image) At(x, y int) RGB {
	return img.Pix[y*img.Width+x]
}

// Set sets the color at (x, y).
func (img Image) Set(x, y int, c RGB) {
	img.Pix[y*img.Width+x] = c
}

// Validate checks that the dimensions are positive and match the pixel
// slice.
func (img Image) Validate() error {
	if img.Width <= 0 {
		return invalidParameter("width", img.Width, "must be positive")
	}
	if img.Height <= 0 {
		return invalidParameter("height", img.Height, "must be positive")
	}
	// Divide first: width*height may overflow.
	if img.Width > len(img.Pix)/img.Height || len(img.Pix) != img.Width*img.Height {
		return invalidParameter("pixels", len(img.Pix), "must equal width*height")
	}
	return nil
}

// FromRGBAImage copies an imageutil.RGBAImage into an Image. Alpha is
// dropped and sub-images are read from their own bounds.
func FromRGBAImage(src *imageutil.RGBAImage) Image {
	return FromImage(src)
}

// FromImage converts any image.Image into an Image, ignoring alpha.
// Translucent pixels keep their straight colors.
func FromImage(src image.Image) Image {
	rgba := imageutil.RGBAImageFromImage(src)
	width, height := rgba.Width(), rgba.Height()
	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Pix[y*width+x] = RGB(rgba.GetRGB(x, y))
		}
	}
	return img
}

// ToRGBAImage copies the image into an opaque imageutil.RGBAImage.
func (img Image) ToRGBAImage() *imageutil.RGBAImage {
	dst := imageutil.NewRGBAImage(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			dst.SetRGB(x, y, imageutil.RGB(img.Pix[y*img.Width+x]))
		}
	}
	return dst
}
