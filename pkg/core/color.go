package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidHex is returned when a colour string is not of the form #RRGGBB
var ErrInvalidHex = errors.New("invalid hex color")

// Color is a linear RGB colour. Channels are nominally in [0, 1] but are
// left unclamped until converted to bytes.
type Color struct {
	R, G, B float64
}

// Named colours
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses a "#RRGGBB" string, mapping each byte to [0, 1]
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		channels[i] = float64(v) / 255
	}
	return Color{channels[0], channels[1], channels[2]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for colour literals in scene definitions.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Add returns the sum of two colours
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the colour scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Bytes converts the colour to 8-bit channels: round(v*255) clamped to [0, 255].
// NaN channels convert to 0.
func (c Color) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	scaled := math.RoundToEven(v * 255)
	return uint8(max(0, min(255, scaled)))
}
