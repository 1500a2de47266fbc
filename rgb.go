package kquant

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. There is no alpha channel;
// callers strip it before handing pixels to the quantizer.
type RGB struct {
	R, G, B uint8
}

// ToUint32 packs an RGB color into a 32-bit unsigned integer laid out as
// 0x00RRGGBB.
func (c RGB) ToUint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBFromUint32 unpacks a 0x00RRGGBB integer into an RGB color. The top
// byte is ignored.
func RGBFromUint32(color uint32) RGB {
	return RGB{
		R: uint8(color >> 16),
		G: uint8(color >> 8),
		B: uint8(color),
	}
}

// String returns the color as a lowercase #rrggbb hex string.
func (c RGB) String() string {
	return fmt.Sprintf("#%06x", c.ToUint32())
}

// ParseHex parses a color in #rrggbb or rrggbb form.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("error parsing color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("error parsing color %q: %w", s, err)
	}
	return RGBFromUint32(uint32(v)), nil
}

// DistanceSquared returns the squared Euclidean distance between two colors
// on the 0-255 scale. The square root is never taken since only the ordering
// of distances matters to the quantizer. The result is at most 3*255*255.
func DistanceSquared(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
