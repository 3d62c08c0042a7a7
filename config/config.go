package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// configDirName is the directory under the user config dir holding all files
const configDirName = "textivus-minimap"

// Config holds the viewer configuration
type Config struct {
	Minimap     MinimapConfig `toml:"minimap"`
	Viewer      ViewerConfig  `toml:"viewer"`
	Theme       ThemeConfig   `toml:"theme"`
	RecentFiles []string      `toml:"recent_files,omitempty"` // Recently viewed files (max 10)
}

// MaxRecentFiles is the maximum number of recent files to track
const MaxRecentFiles = 10

// Minimap defaults. These mirror the constants in the minimap package and
// are repeated here so a config file can be validated without it.
const (
	DefaultMinimapWidth = 20
	DefaultHorizScale   = 0.5
	DefaultDensity      = 0.5
	DefaultHighlight    = "visual"
	MaxMinimapWidth     = 200
)

// MinimapConfig holds settings for the minimap panel
type MinimapConfig struct {
	Enabled    bool    `toml:"enabled"`
	Width      int     `toml:"width"`       // Panel width in glyph cells
	Highlight  string  `toml:"highlight"`   // Highlight style identifier from the theme
	HorizScale float64 `toml:"horiz_scale"` // Pixel columns per source column
	Density    float64 `toml:"density"`     // Average weight needed to light a pixel
	Side       string  `toml:"side"`        // "right" or "left"
}

// ViewerConfig holds settings for the text pane
type ViewerConfig struct {
	SyntaxHighlight bool  `toml:"syntax_highlight"`
	LineNumbers     bool  `toml:"line_numbers"`
	TrueColor       *bool `toml:"true_color"`  // nil = auto-detect
	ScrollStep      int   `toml:"scroll_step"` // Lines per mouse wheel tick
}

// ThemeConfig references a theme by name
type ThemeConfig struct {
	Name string `toml:"name"` // Built-in theme or a file in themes/
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Minimap: MinimapConfig{
			Enabled:    true,
			Width:      DefaultMinimapWidth,
			Highlight:  DefaultHighlight,
			HorizScale: DefaultHorizScale,
			Density:    DefaultDensity,
			Side:       "right",
		},
		Viewer: ViewerConfig{
			SyntaxHighlight: true,
			ScrollStep:      3,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// Validate replaces out-of-range values with defaults
func (c *Config) Validate() {
	m := &c.Minimap
	if m.Width < 1 || m.Width > MaxMinimapWidth {
		m.Width = DefaultMinimapWidth
	}
	if m.HorizScale <= 0 {
		m.HorizScale = DefaultHorizScale
	}
	if m.Density <= 0 {
		m.Density = DefaultDensity
	}
	if m.Highlight == "" {
		m.Highlight = DefaultHighlight
	}
	if m.Side != "left" && m.Side != "right" {
		m.Side = "right"
	}
	if c.Viewer.ScrollStep < 1 {
		c.Viewer.ScrollStep = 3
	}
	if c.Theme.Name == "" {
		c.Theme.Name = "default"
	}
}

// AddRecentFile moves path to the front of the recent files list
func (c *Config) AddRecentFile(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	list := make([]string, 0, MaxRecentFiles)
	list = append(list, absPath)
	for _, f := range c.RecentFiles {
		if f != absPath && len(list) < MaxRecentFiles {
			list = append(list, f)
		}
	}
	c.RecentFiles = list
}

// userConfigDir returns the base config directory, falling back to ~/.config
func userConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, configDirName), nil
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ThemesDir returns the path to the user themes directory
func ThemesDir() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "themes"), nil
}

// ConfigLoadError holds details about a config loading error
type ConfigLoadError struct {
	FilePath string
	Err      error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.FilePath, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// Load reads the configuration from the default path
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil // Defaults when there is no config dir
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path.
// Returns defaults if the file doesn't exist, and defaults plus a
// ConfigLoadError if it exists but can't be parsed.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), &ConfigLoadError{FilePath: path, Err: err}
	}

	cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the default path
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to path, creating its directory
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString("# textivus-minimap configuration\n\n"); err != nil {
		return err
	}
	return toml.NewEncoder(f).Encode(c)
}

// GetResolved loads and returns the complete theme
func (t *ThemeConfig) GetResolved() Theme {
	return LoadTheme(t.Name)
}
