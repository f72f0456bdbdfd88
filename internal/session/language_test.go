package session

import "testing"

func TestLanguageSelector_Default(t *testing.T) {
	sel := NewLanguageSelector("")
	if sel.Selected().Code != "en-IN" {
		t.Errorf("default = %s, want en-IN", sel.Selected().Code)
	}
}

func TestLanguageSelector_InitialFromConfig(t *testing.T) {
	sel := NewLanguageSelector("hi-IN")
	if sel.Selected().Short != "HI" {
		t.Errorf("selected = %+v, want hi-IN", sel.Selected())
	}
}

func TestLanguageSelector_Select(t *testing.T) {
	sel := NewLanguageSelector("")

	if !sel.Select("ta-IN") {
		t.Fatal("Select(ta-IN) = false")
	}
	if sel.Selected().Code != "ta-IN" {
		t.Errorf("selected = %s", sel.Selected().Code)
	}

	// Non-catalog code is rejected and the selection kept
	if sel.Select("fr-FR") {
		t.Error("Select(fr-FR) = true, want false")
	}
	if sel.Selected().Code != "ta-IN" {
		t.Error("rejected Select changed the selection")
	}
}

func TestLanguageSelector_NextWrapsAround(t *testing.T) {
	sel := NewLanguageSelector("kn-IN") // last catalog entry

	if got := sel.Next(); got.Code != "en-IN" {
		t.Errorf("Next after last = %s, want en-IN", got.Code)
	}
}
