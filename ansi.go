package kquant

import (
	"fmt"
	"strings"
)

const (
	ESC = "\u001b"

	upperHalfBlock = '▀'
)

// RenderANSI renders img for a 24-bit color terminal. Each text cell shows
// two vertically adjacent pixels: the upper one as the foreground of an
// upper half block, the lower one as the background. An odd last row is
// drawn over the terminal's default background.
//
// Escape codes are only emitted when a cell's colors differ from the
// previous cell in the row, which keeps quantized images, with their few
// distinct colors, compact.
func RenderANSI(img Image) string {
	var sb strings.Builder
	for y := 0; y < img.Height; y += 2 {
		var prevFg, prevBg string
		for x := 0; x < img.Width; x++ {
			fg := fgCode(img.At(x, y))
			bg := "49" // default background
			if y+1 < img.Height {
				bg = bgCode(img.At(x, y+1))
			}
			if fg != prevFg || bg != prevBg {
				sb.WriteString(formatANSICode(fg, bg))
				prevFg, prevBg = fg, bg
			}
			sb.WriteRune(upperHalfBlock)
		}
		// Reset colors at the end of each line and add a newline
		sb.WriteString(ESC + "[0m\n")
	}
	return sb.String()
}

func fgCode(c RGB) string {
	return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B)
}

func bgCode(c RGB) string {
	return fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B)
}

// formatANSICode formats a select-graphic-rendition sequence setting both
// foreground and background.
func formatANSICode(fg, bg string) string {
	var code strings.Builder
	code.WriteString(ESC)
	code.WriteByte('[')
	code.WriteString(fg)
	code.WriteByte(';')
	code.WriteString(bg)
	code.WriteByte('m')
	return code.String()
}
