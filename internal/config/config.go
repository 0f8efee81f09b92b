// Package config loads treescope settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/treescope/config.toml (falling back
// to ~/.config). A missing or unreadable file silently yields defaults;
// command-line flags override whatever the file says.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds treescope configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	Labels LabelsConfig `toml:"labels"`
	Scan   ScanConfig   `toml:"scan"`
	Layout LayoutConfig `toml:"layout"`
}

// WindowConfig controls the initial window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// LabelsConfig controls label rendering.
type LabelsConfig struct {
	DrawAll bool    `toml:"draw_all"`
	Size    float64 `toml:"size"`
	Font    string  `toml:"font"` // system font file name; empty = auto
}

// ScanConfig controls filesystem traversal.
type ScanConfig struct {
	MaxDepth   int  `toml:"max_depth"` // 0 = unlimited
	SkipHidden bool `toml:"skip_hidden"`
}

// LayoutConfig controls layout spacing.
type LayoutConfig struct {
	YScale float64 `toml:"y_scale"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 800, Height: 800, Title: "treescope"},
		Labels: LabelsConfig{DrawAll: false, Size: 20},
		Scan:   ScanConfig{MaxDepth: 0, SkipHidden: false},
		Layout: LayoutConfig{YScale: 1.0},
	}
}

// Dir returns the treescope config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "treescope")
}

// Path returns the config file path.
func Path() string {
	return path()
}

func path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() *Config {
	return loadFrom(path())
}

func loadFrom(p string) *Config {
	cfg := Default()
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	_ = toml.Unmarshal(data, cfg)
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	p := path()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	f, err := os.Create(p)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
