package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	BaseURL      string
	Theme        Theme
	TimeoutSec   int
	ExportFormat string
	ExportOut    string
	ShowVersion  bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("ftcscope", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.BaseURL, "base-url", getenvDefault("FTCSCOPE_BASE_URL", "http://localhost:8080"), "statistics API base URL")
	theme := string(ThemeDark)
	fs.StringVar(&theme, "theme", getenvDefault("FTCSCOPE_THEME", string(ThemeDark)), "theme: dark|light")
	fs.IntVar(&cfg.TimeoutSec, "timeout-sec", getenvDefaultInt("FTCSCOPE_TIMEOUT_SEC", 30), "HTTP request timeout in seconds")
	fs.StringVar(&cfg.ExportFormat, "export", "", "export format for the focused table: csv|json")
	fs.StringVar(&cfg.ExportOut, "out", "", "output path for export")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	switch Theme(theme) {
	case ThemeDark, ThemeLight:
		cfg.Theme = Theme(theme)
	default:
		return nil, fmt.Errorf("unknown theme %q", theme)
	}

	if cfg.ExportFormat != "" && cfg.ExportFormat != "csv" && cfg.ExportFormat != "json" {
		return nil, fmt.Errorf("unknown export format %q", cfg.ExportFormat)
	}
	if cfg.ExportFormat != "" && cfg.ExportOut == "" {
		return nil, errors.New("--export requires --out path")
	}

	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("base URL must not be empty")
	}
	if cfg.TimeoutSec <= 0 {
		cfg.TimeoutSec = 30
	}

	return cfg, nil
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvDefaultInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func (c *Config) String() string {
	return fmt.Sprintf("base=%s theme=%s timeout=%ds", c.BaseURL, c.Theme, c.TimeoutSec)
}
