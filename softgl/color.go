package softgl

import "image/color"

// RGB returns an opaque color.
func RGB(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

// Common colors.
var (
	White  = RGB(0xFF, 0xFF, 0xFF)
	Black  = RGB(0, 0, 0)
	Yellow = RGB(0xFF, 0xFF, 0)
)

// Modulate multiplies c by tint channel-wise, as a fixed-function
// texture environment would.
func Modulate(c, tint color.RGBA) color.RGBA {
	mul := func(a, b uint8) uint8 {
		return uint8((uint32(a)*uint32(b) + 127) / 255)
	}
	return color.RGBA{R: mul(c.R, tint.R), G: mul(c.G, tint.G), B: mul(c.B, tint.B), A: mul(c.A, tint.A)}
}
