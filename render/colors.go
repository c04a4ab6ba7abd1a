package render

import "github.com/lixenwraith/lines/engine"

// Palette
var (
	RgbBackground  = RGB{26, 27, 38} // Tokyo Night background
	RgbOuterMarker = RGB{52, 54, 74}
	RgbInnerMarker = RGB{16, 16, 22}
	RgbPickup      = RGB{0, 255, 0}
	RgbHazard      = RGB{255, 255, 0}
	RgbBlue        = RGB{0, 0, 255}
	RgbRed         = RGB{255, 0, 0}
	RgbText        = RGB{255, 255, 255}
	RgbDead        = RGB{120, 120, 120}
)

// playerColor maps an engine color tag to the palette
func playerColor(c engine.Color) RGB {
	return RGB{c.R, c.G, c.B}
}

// trailColor is the player color dimmed so heads stand out
func trailColor(c engine.Color) RGB {
	return Blend(RgbBackground, playerColor(c), 0.75)
}
