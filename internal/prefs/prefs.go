// Package prefs persists the three independent preference documents:
// theme, user defaults and last-used filters. The core engine never reads
// or writes storage; the UI shell loads at startup and saves on change.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"ftcscope/internal/util/logx"
)

const (
	themeFile    = "theme.json"
	defaultsFile = "defaults.json"
	filtersFile  = "filters.json"
)

type Theme struct {
	Name string `json:"name"`
}

// Defaults seed the season/region/team fields of every view.
type Defaults struct {
	Season     string `json:"season"`
	Region     string `json:"region"`
	TeamNumber string `json:"teamNumber"`
}

// Filters are the transient last-used values worth restoring.
type Filters struct {
	EventCode string `json:"eventCode"`
	Limit     string `json:"limit"`
}

func BuiltinDefaults() Defaults {
	return Defaults{Season: "2025", Region: "USCHS", TeamNumber: "12345"}
}

func BuiltinFilters() Filters {
	return Filters{EventCode: "USNCCOQ", Limit: "25"}
}

// Dir is the preference directory, overridable for tests.
var Dir = func() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ftcscope")
	}
	return filepath.Join(base, "ftcscope")
}

// LoadTheme returns the stored theme name, or "" when nothing usable is on
// disk (the caller falls back to the --theme flag default).
func LoadTheme() string {
	var t Theme
	if !read(themeFile, &t) {
		return ""
	}
	name := strings.TrimSpace(t.Name)
	if name != "dark" && name != "light" {
		return ""
	}
	return name
}

func SaveTheme(name string) error {
	return write(themeFile, Theme{Name: name})
}

// LoadDefaults is tolerant of missing or corrupt data: any unusable field
// falls back to the built-in default.
func LoadDefaults() Defaults {
	base := BuiltinDefaults()
	var d Defaults
	if !read(defaultsFile, &d) {
		return base
	}
	if strings.TrimSpace(d.Season) != "" {
		base.Season = strings.TrimSpace(d.Season)
	}
	if strings.TrimSpace(d.Region) != "" {
		base.Region = strings.TrimSpace(d.Region)
	}
	if strings.TrimSpace(d.TeamNumber) != "" {
		base.TeamNumber = strings.TrimSpace(d.TeamNumber)
	}
	return base
}

func SaveDefaults(d Defaults) error {
	return write(defaultsFile, d)
}

func LoadFilters() Filters {
	base := BuiltinFilters()
	var f Filters
	if !read(filtersFile, &f) {
		return base
	}
	if strings.TrimSpace(f.EventCode) != "" {
		base.EventCode = strings.TrimSpace(f.EventCode)
	}
	if strings.TrimSpace(f.Limit) != "" {
		base.Limit = strings.TrimSpace(f.Limit)
	}
	return base
}

func SaveFilters(f Filters) error {
	return write(filtersFile, f)
}

func read(name string, out any) bool {
	f, err := os.Open(filepath.Join(Dir(), name))
	if err != nil {
		return false
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(out); err != nil {
		logx.Warnf("prefs: ignoring corrupt %s: %v", name, err)
		return false
	}
	return true
}

// write replaces a document atomically via temp-file rename so a crash
// never leaves a half-written preference on disk.
func write(name string, v any) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	p := filepath.Join(dir, name)
	tmp := p + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}
