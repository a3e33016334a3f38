// Package prefs handles pawprint user preferences persistence.
// Preferences are stored in ~/.config/pawprint/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/config"
)

// Prefs holds user preferences for pawprint. Filters is the query-string
// form of the last pet filters, so a session resumes where it left off.
type Prefs struct {
	Theme   string `toml:"theme"`
	Sort    string `toml:"sort,omitempty"`
	Filters string `toml:"filters,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/pawprint/prefs.toml"
	defaultTheme     = "Meadow"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{Theme: defaultTheme}, nil
	}

	prefs := Prefs{Theme: defaultTheme}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Prefs{Theme: defaultTheme}, nil // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	if _, err := adopt.ParseSort(prefs.Sort); err != nil {
		prefs.Sort = ""
	}
	if _, err := adopt.ParseFilters(prefs.Filters); err != nil {
		prefs.Filters = ""
	}

	return prefs, nil
}

// SortOr returns the saved sort, or fallback when none is saved.
func (p Prefs) SortOr(fallback adopt.Sort) adopt.Sort {
	if s, err := adopt.ParseSort(p.Sort); err == nil {
		return s
	}
	return fallback
}

// SavedFilters decodes the saved filter state. Invalid state yields no filters.
func (p Prefs) SavedFilters() adopt.Filters {
	f, err := adopt.ParseFilters(p.Filters)
	if err != nil {
		return adopt.Filters{}
	}
	return f
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
