package core

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit packed color in 3-3-2 layout: bits 7..5 red, 4..2 green,
// 1..0 blue. This is the raw value the design drives onto its color pins.
type Color uint8

// Colors used by the design.
const (
	ColorBlack  Color = 0x00
	ColorRed    Color = 0xE0 // 111 000 00
	ColorGreen  Color = 0x1C // 000 111 00
	ColorBlue   Color = 0x03 // 000 000 11
	ColorYellow Color = 0xFC // 111 111 00
	ColorWhite  Color = 0xFF
)

// R returns the 3-bit red group.
func (c Color) R() uint8 {
	return uint8(c) >> 5
}

// G returns the 3-bit green group.
func (c Color) G() uint8 {
	return (uint8(c) >> 2) & 0x07
}

// B returns the 2-bit blue group.
func (c Color) B() uint8 {
	return uint8(c) & 0x03
}

// Pack builds a Color from raw channel groups. Out-of-range bits are masked off.
func Pack(r, g, b uint8) Color {
	return Color((r&0x07)<<5 | (g&0x07)<<2 | b&0x03)
}

// NRGBA expands the channel groups to full 8-bit channels.
// Used by host renderers only; the design itself never widens channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: expand(c.R(), 7),
		G: expand(c.G(), 7),
		B: expand(c.B(), 3),
		A: 0xFF,
	}
}

// expand scales a channel group with the given maximum to 0..255.
func expand(v, max uint8) uint8 {
	return uint8(uint16(v) * 255 / uint16(max))
}

// Hex returns the expanded color as "#rrggbb" for terminal styling.
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
