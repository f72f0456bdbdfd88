package format

import (
	"strings"
	"testing"
)

func TestRender_BreaksBecomeNewlines(t *testing.T) {
	got := Render(Format("line one\nline two"))
	if !strings.Contains(got, "line one\nline two") {
		t.Errorf("Render = %q, want real newline between lines", got)
	}
}

func TestRender_EmphasisTagsRemoved(t *testing.T) {
	got := Render(Format("**bold** and *italic*"))
	for _, tag := range []string{"<strong>", "</strong>", "<em>", "</em>"} {
		if strings.Contains(got, tag) {
			t.Errorf("Render left tag %s in output: %q", tag, got)
		}
	}
	if !strings.Contains(got, "bold") || !strings.Contains(got, "italic") {
		t.Errorf("Render dropped emphasised text: %q", got)
	}
}

func TestRender_BulletsPreserved(t *testing.T) {
	got := Render(Format("- first step"))
	if !strings.Contains(got, "• first step") {
		t.Errorf("Render = %q, want bullet glyph", got)
	}
}
