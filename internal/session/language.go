package session

import "github.com/praveen/legalbot/internal/models"

// LanguageSelector tracks the selected recognition language over the
// fixed catalog. The selection is never empty after initialization.
type LanguageSelector struct {
	selected models.LanguageOption
}

// NewLanguageSelector creates a selector with the catalog default. When
// code names a catalog member, that entry is selected instead.
func NewLanguageSelector(code string) *LanguageSelector {
	sel := &LanguageSelector{selected: models.DefaultLanguage()}
	if lang, ok := models.LanguageByCode(code); ok {
		sel.selected = lang
	}
	return sel
}

// Selected returns the current language.
func (l *LanguageSelector) Selected() models.LanguageOption {
	return l.selected
}

// Select switches to the catalog entry with the given code. Codes outside
// the catalog are ignored and the selection is kept.
func (l *LanguageSelector) Select(code string) bool {
	lang, ok := models.LanguageByCode(code)
	if !ok {
		return false
	}
	l.selected = lang
	return true
}

// Next cycles to the following catalog entry, wrapping around.
func (l *LanguageSelector) Next() models.LanguageOption {
	langs := models.Languages()
	for i, lang := range langs {
		if lang.Code == l.selected.Code {
			l.selected = langs[(i+1)%len(langs)]
			return l.selected
		}
	}
	l.selected = langs[0]
	return l.selected
}
