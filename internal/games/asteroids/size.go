package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/config"

// SizeClass is an asteroid size. Ordering Small < Medium < Large drives splitting.
type SizeClass uint8

const (
	Small SizeClass = iota
	Medium
	Large
)

// String returns the lowercase class name.
func (s SizeClass) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

// Smaller returns the class children of a split get.
// The second result is false for the minimal class.
func (s SizeClass) Smaller() (SizeClass, bool) {
	switch s {
	case Large:
		return Medium, true
	case Medium:
		return Small, true
	default:
		return Small, false
	}
}

// Params looks up the class's row in the size table.
func (s SizeClass) Params(t config.SizeTable) config.SizeParams {
	switch s {
	case Medium:
		return t.Medium
	case Large:
		return t.Large
	default:
		return t.Small
	}
}

// Radius is the fixed nominal radius of the class, independent of the
// generated outline.
func (s SizeClass) Radius(t config.SizeTable) float32 {
	return s.Params(t).MaxRadius
}

// Damage is the health a ship loses when it collides with the class.
func (s SizeClass) Damage(t config.SizeTable) int {
	return s.Params(t).Damage
}
