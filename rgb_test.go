package kquant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBPacking(t *testing.T) {
	c := RGB{R: 0x12, G: 0x34, B: 0x56}
	assert.Equal(t, uint32(0x123456), c.ToUint32())
	assert.Equal(t, c, RGBFromUint32(0xff123456))
	assert.Equal(t, "#123456", c.String())
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 128, B: 0}, c)

	c, err = ParseHex(" 0a0b0c ")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 10, G: 11, B: 12}, c)

	for _, bad := range []string{"", "#fff", "#12345g", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestDistanceSquared(t *testing.T) {
	tests := []struct {
		a, b RGB
		want int
	}{
		{RGB{}, RGB{}, 0},
		{RGB{R: 255}, RGB{G: 255}, 2 * 255 * 255},
		{RGB{}, RGB{R: 255, G: 255, B: 255}, 3 * 255 * 255},
		{RGB{R: 10, G: 20, B: 30}, RGB{R: 13, G: 16, B: 30}, 9 + 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DistanceSquared(tt.a, tt.b), "%v vs %v", tt.a, tt.b)
		assert.Equal(t, tt.want, DistanceSquared(tt.b, tt.a), "symmetry %v vs %v", tt.a, tt.b)
	}
}
