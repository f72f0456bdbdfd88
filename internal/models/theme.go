package models

// Theme is the two-valued presentation theme.
type Theme int

const (
	// Light is the default theme.
	Light Theme = iota
	// Dark is the alternate theme.
	Dark
)

// String returns the persisted form of the theme.
func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme maps a persisted value back to a Theme. Anything other
// than "dark" (unset or unknown values included) resolves to Light.
func ParseTheme(s string) Theme {
	if s == "dark" {
		return Dark
	}
	return Light
}
