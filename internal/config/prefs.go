package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ThemeKey is the fixed key under which the presentation theme is stored.
// Values are limited to "light" and "dark".
const ThemeKey = "theme"

// Prefs is a small string key-value store that survives across sessions.
// It backs the theme persistence and is written on every Set.
type Prefs struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// NewPrefs opens (or creates) the preference store in dir.
func NewPrefs(dir string) (*Prefs, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	p := &Prefs{
		path:   filepath.Join(dir, "prefs.json"),
		values: map[string]string{},
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	if err := json.Unmarshal(data, &p.values); err != nil {
		// Corrupted store: start over rather than fail startup
		p.values = map[string]string{}
	}

	return p, nil
}

// DefaultPrefs opens the preference store in the default config directory.
func DefaultPrefs() (*Prefs, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return NewPrefs(dir)
}

// Get returns the stored value for key, or "" when unset.
func (p *Prefs) Get(key string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[key]
}

// Set stores value under key and writes the store to disk.
func (p *Prefs) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.values[key] = value

	data, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(p.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	return nil
}
