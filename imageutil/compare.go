package imageutil

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// DefaultSheetWidth and DefaultSheetHeight size a comparison sheet
	// when CompareOptions leaves them zero.
	DefaultSheetWidth  = 800
	DefaultSheetHeight = 600

	defaultLabelSize = 14.0
)

// CompareOptions configures SideBySide.
type CompareOptions struct {
	// Width and Height of the whole sheet. Zero uses the defaults.
	Width, Height int
	// Labels are drawn under the left and right panels. Empty labels
	// reserve no space.
	Labels [2]string
	// LabelSize is the font size in points. Zero means 14.
	LabelSize float64
	// Background fills the area around the panels.
	Background RGB
}

var labelFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// SideBySide draws left and right next to each other on one sheet, each
// scaled to fit half of it with its aspect ratio kept. The left panel is
// smoothed, the right panel uses nearest-neighbor scaling so that a
// quantized image keeps exactly its own colors.
func SideBySide(left, right *RGBAImage, opts CompareOptions) (*RGBAImage, error) {
	if opts.Width == 0 {
		opts.Width = DefaultSheetWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultSheetHeight
	}
	if opts.LabelSize == 0 {
		opts.LabelSize = defaultLabelSize
	}
	if opts.Width < 2 || opts.Height < 1 {
		return nil, fmt.Errorf("sheet too small: %dx%d", opts.Width, opts.Height)
	}

	labelBand := 0
	if opts.Labels[0] != "" || opts.Labels[1] != "" {
		labelBand = int(opts.LabelSize * 2)
	}
	panelW := opts.Width / 2
	panelH := opts.Height - labelBand
	if panelH < 1 {
		return nil, fmt.Errorf("sheet height %d leaves no room for images", opts.Height)
	}

	sheet := NewRGBAImage(opts.Width, opts.Height)
	draw.Draw(sheet.RGBA, sheet.Bounds(), image.NewUniform(opts.Background.ToColor()), image.Point{}, draw.Src)

	panels := [2]struct {
		img    *RGBAImage
		scaler draw.Scaler
	}{
		{left, draw.CatmullRom},
		{right, draw.NearestNeighbor},
	}
	for i, p := range panels {
		r := FitRect(p.img.Bounds(), panelW, panelH).Add(image.Pt(i*panelW, 0))
		p.scaler.Scale(sheet.RGBA, r, p.img.RGBA, p.img.Bounds(), draw.Src, nil)
	}

	if labelBand == 0 {
		return sheet, nil
	}
	ttf, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}
	for i, label := range opts.Labels {
		if label == "" {
			continue
		}
		if err := drawLabel(sheet, ttf, label, opts, i*panelW, panelW, panelH); err != nil {
			return nil, err
		}
	}
	return sheet, nil
}

// drawLabel centers text horizontally in the panel starting at x0 and
// places its baseline in the band below the panel.
func drawLabel(sheet *RGBAImage, ttf *truetype.Font, text string, opts CompareOptions, x0, panelW, panelH int) error {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	width := font.MeasureString(face, text).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	x := x0 + max(0, (panelW-width)/2)
	y := panelH + (opts.Height-panelH+ascent)/2

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(opts.LabelSize)
	ctx.SetClip(sheet.Bounds())
	ctx.SetDst(sheet.RGBA)
	ctx.SetSrc(image.NewUniform(labelColor(opts.Background)))
	ctx.SetHinting(font.HintingFull)

	if _, err := ctx.DrawString(text, freetype.Pt(x, y)); err != nil {
		return fmt.Errorf("failed to draw label %q: %w", text, err)
	}
	return nil
}

// labelColor picks black or white, whichever contrasts more with bg
// (BT.601 luma).
func labelColor(bg RGB) color.Color {
	lum := (299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)) / 1000
	if lum > 127 {
		return color.Black
	}
	return color.White
}
