package led

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is a straight (non-premultiplied) RGBA colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// HSLA builds a colour from hue in degrees, saturation and lightness in
// percent, and alpha in [0, 1].
func HSLA(hue, saturation, lightness, alpha float64) Color {
	c := colorful.Hsl(hue, clamp(saturation/100, 0, 1), clamp(lightness/100, 0, 1)).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: clamp(alpha, 0, 1)}
}

// cellColor is the paint colour for a cell of the given hue and intensity.
func cellColor(hue, intensity float64) Color {
	return HSLA(hue, 70+intensity*30, 30+intensity*50, min(intensity, 1))
}

// glowColor is the halo colour drawn around bright cells.
func glowColor(hue float64) Color {
	return HSLA(hue, 100, 60, 1)
}
