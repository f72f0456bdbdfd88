package format

import (
	"strings"
	"testing"
)

func TestFormat_Bold(t *testing.T) {
	got := Format("call a **lawyer** now")
	want := Markup("call a <strong>lawyer</strong> now")
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_Italic(t *testing.T) {
	got := Format("act *immediately* please")
	want := Markup("act <em>immediately</em> please")
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_BoldBeforeItalic(t *testing.T) {
	// A "**" pair must be consumed by the bold rule first, not split
	// into two single "*" italic matches.
	got := Format("**bold** and *italic*")
	want := Markup("<strong>bold</strong> and <em>italic</em>")
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_NewlinesAndBullets(t *testing.T) {
	got := Format("first\n- second\n- third")
	want := Markup("first<br>• second<br>• third")
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_SampleRoundTrip(t *testing.T) {
	got := string(Format("**Note:** call *immediately* and\n- file a report"))

	if !strings.Contains(got, "<strong>Note:</strong>") {
		t.Errorf("missing strong span wrapping Note:, got %q", got)
	}
	if !strings.Contains(got, "<em>immediately</em>") {
		t.Errorf("missing em span wrapping immediately, got %q", got)
	}
	if !strings.Contains(got, "<br>• file a report") {
		t.Errorf("missing line break and bullet before report item, got %q", got)
	}
}

func TestFormat_PlainTextUnchanged(t *testing.T) {
	const raw = "plain answer with no markers"
	if got := Format(raw); got != Markup(raw) {
		t.Errorf("Format changed plain text: %q", got)
	}
}

func TestFormat_Empty(t *testing.T) {
	if got := Format(""); got != Markup("") {
		t.Errorf("Format(\"\") = %q, want empty", got)
	}
}

func TestFormat_Deterministic(t *testing.T) {
	const raw = "**a** *b*\n- c"
	first := Format(raw)
	for i := 0; i < 5; i++ {
		if got := Format(raw); got != first {
			t.Fatalf("Format not deterministic: %q vs %q", got, first)
		}
	}
}
