package session

import "github.com/praveen/legalbot/internal/models"

// themeStore is the persistence seam for the theme value. Backed by
// config.Prefs in production.
type themeStore interface {
	Get(key string) string
	Set(key, value string) error
}

const themeKey = "theme"

// ThemeController owns the two-valued presentation theme. The persisted
// value is read once at construction and written on every toggle.
type ThemeController struct {
	store   themeStore
	current models.Theme
}

// NewThemeController reads the persisted theme (default Light if unset).
// A nil store means the theme is session-only.
func NewThemeController(store themeStore) *ThemeController {
	t := &ThemeController{store: store, current: models.Light}
	if store != nil {
		t.current = models.ParseTheme(store.Get(themeKey))
	}
	return t
}

// Current returns the active theme.
func (t *ThemeController) Current() models.Theme {
	return t.current
}

// Toggle flips the theme and persists the new value. The persisted write
// failing does not prevent the in-memory switch.
func (t *ThemeController) Toggle() models.Theme {
	t.current = t.current.Toggle()
	if t.store != nil {
		_ = t.store.Set(themeKey, t.current.String())
	}
	return t.current
}
