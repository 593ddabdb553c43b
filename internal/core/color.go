package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// HealthColor picks the nearest terminal color on the green-to-red ramp for
// a health fraction in [0, 1].
func HealthColor(fraction float32) Color {
	switch {
	case fraction >= 0.75:
		return ColorBrightGreen
	case fraction >= 0.5:
		return ColorYellow
	case fraction >= 0.25:
		return ColorOrange
	default:
		return ColorBrightRed
	}
}

// HealthRGB returns the continuous ship tint for a health fraction:
// red rises as health falls, green tracks health.
func HealthRGB(fraction float32) (r, g, b float32) {
	fraction = ClampF(fraction, 0, 1)
	return 1 - fraction, fraction, 0
}
