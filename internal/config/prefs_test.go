package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrefs_GetUnset(t *testing.T) {
	prefs, err := NewPrefs(t.TempDir())
	if err != nil {
		t.Fatalf("NewPrefs failed: %v", err)
	}

	if got := prefs.Get(ThemeKey); got != "" {
		t.Errorf("Get on empty store = %q, want \"\"", got)
	}
}

func TestPrefs_SetGet(t *testing.T) {
	prefs, _ := NewPrefs(t.TempDir())

	if err := prefs.Set(ThemeKey, "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := prefs.Get(ThemeKey); got != "dark" {
		t.Errorf("Get = %q, want dark", got)
	}
}

func TestPrefs_PersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	first, _ := NewPrefs(dir)
	if err := first.Set(ThemeKey, "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	second, err := NewPrefs(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if got := second.Get(ThemeKey); got != "dark" {
		t.Errorf("reopened Get = %q, want dark", got)
	}
}

func TestPrefs_CorruptedFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "prefs.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	prefs, err := NewPrefs(dir)
	if err != nil {
		t.Fatalf("NewPrefs on corrupted store failed: %v", err)
	}
	if got := prefs.Get(ThemeKey); got != "" {
		t.Errorf("corrupted store Get = %q, want \"\"", got)
	}
}
