package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color used by the cell buffer
type RGB struct {
	R, G, B uint8
}

// Blend linearly interpolates from dst toward src by alpha in [0, 1]
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return RGB{
		R: clamp(float64(dst.R) + (float64(src.R)-float64(dst.R))*alpha),
		G: clamp(float64(dst.G) + (float64(src.G)-float64(dst.G))*alpha),
		B: clamp(float64(dst.B) + (float64(src.B)-float64(dst.B))*alpha),
	}
}

// Scale multiplies each channel by f
func Scale(c RGB, f float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * f),
		G: clamp(float64(c.G) * f),
		B: clamp(float64(c.B) * f),
	}
}

// Tcell converts to a tcell true color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}
