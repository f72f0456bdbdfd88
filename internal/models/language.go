package models

// LanguageOption is one entry of the fixed speech language catalog.
type LanguageOption struct {
	// Code is the BCP-47 tag passed to the recognition engine.
	Code string
	// Label is the display name, in the language's own script where it
	// has one.
	Label string
	// Short is the compact badge shown in the header.
	Short string
}

// languageCatalog is the fixed set of recognition languages. Order is
// part of the contract: the first entry is the default and cycling
// follows declaration order.
var languageCatalog = []LanguageOption{
	{Code: "en-IN", Label: "English", Short: "EN"},
	{Code: "ta-IN", Label: "தமிழ்", Short: "TA"},
	{Code: "hi-IN", Label: "हिन्दी", Short: "HI"},
	{Code: "bn-IN", Label: "বাংলা", Short: "BN"},
	{Code: "ml-IN", Label: "മലയാളം", Short: "ML"},
	{Code: "te-IN", Label: "తెలుగు", Short: "TE"},
	{Code: "kn-IN", Label: "ಕನ್ನಡ", Short: "KN"},
}

// Languages returns a copy of the catalog.
func Languages() []LanguageOption {
	out := make([]LanguageOption, len(languageCatalog))
	copy(out, languageCatalog)
	return out
}

// DefaultLanguage returns the catalog head.
func DefaultLanguage() LanguageOption {
	return languageCatalog[0]
}

// LanguageByCode looks up a catalog entry by its BCP-47 tag.
func LanguageByCode(code string) (LanguageOption, bool) {
	for _, lang := range languageCatalog {
		if lang.Code == code {
			return lang, true
		}
	}
	return LanguageOption{}, false
}
