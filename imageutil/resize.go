package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality scaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation. It is the
	// only method that introduces no new colors, which matters when
	// scaling a quantized image.
	InterpolationNearest
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	scalerFor(interp).Scale(dst.RGBA, dst.Bounds(), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeToWidth resizes an image to the specified width while maintaining
// aspect ratio.
func ResizeToWidth(img *RGBAImage, width int, interp Interpolation) *RGBAImage {
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := max(1, int(float64(width)/aspectRatio))
	return Resize(img, width, height, interp)
}

// FitRect returns the largest rectangle with the aspect ratio of src that
// fits inside a box of the given size, centered in that box.
func FitRect(src image.Rectangle, boxWidth, boxHeight int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 || boxWidth <= 0 || boxHeight <= 0 {
		return image.Rectangle{}
	}
	w, h := boxWidth, boxWidth*sh/sw
	if h > boxHeight {
		w, h = boxHeight*sw/sh, boxHeight
	}
	w, h = max(w, 1), max(h, 1)
	x0 := (boxWidth - w) / 2
	y0 := (boxHeight - h) / 2
	return image.Rect(x0, y0, x0+w, y0+h)
}
