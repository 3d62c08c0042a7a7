package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// Theme holds complete color theme settings
// This is the format for theme TOML files in the themes/ directory
type Theme struct {
	// Metadata
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Author      string `toml:"author"`

	// UI Colors
	UI UIColors `toml:"ui"`

	// Syntax highlighting colors for the text pane
	Syntax SyntaxColors `toml:"syntax"`

	// Highlight styles for the minimap viewport region, keyed by identifier
	Highlights map[string]HighlightColors `toml:"highlight"`
}

// UIColors holds UI color settings
type UIColors struct {
	StatusBg      string `toml:"status_bg"`
	StatusFg      string `toml:"status_fg"`
	StatusAccent  string `toml:"status_accent"`
	ErrorFg       string `toml:"error_fg"`
	LineNumber    string `toml:"line_number"`
	MinimapText   string `toml:"minimap_text"`
	MinimapBorder string `toml:"minimap_border"`
}

// SyntaxColors holds syntax highlighting color settings
type SyntaxColors struct {
	Keyword  string `toml:"keyword"`
	String   string `toml:"string"`
	Comment  string `toml:"comment"`
	Number   string `toml:"number"`
	Operator string `toml:"operator"`
	Function string `toml:"function"`
	Type     string `toml:"type"`
}

// HighlightColors describes one highlight style
type HighlightColors struct {
	Fg      string `toml:"fg"`
	Bg      string `toml:"bg"`
	Bold    bool   `toml:"bold"`
	Reverse bool   `toml:"reverse"`
}

// Built-in themes
var builtinThemes = map[string]Theme{
	"default": {
		Name:        "default",
		Description: "Blue status bar, cyan viewport region",
		Author:      "Textivus",
		UI: UIColors{
			StatusBg:      "4",  // Dark blue
			StatusFg:      "15", // Bright white
			StatusAccent:  "14", // Bright cyan
			ErrorFg:       "9",  // Bright red
			LineNumber:    "8",  // Gray
			MinimapText:   "7",  // Light gray
			MinimapBorder: "8",  // Gray
		},
		Syntax: SyntaxColors{
			Keyword:  "14", // Bright cyan
			String:   "10", // Bright green
			Comment:  "8",  // Gray
			Number:   "11", // Bright yellow
			Operator: "13", // Bright magenta
			Function: "12", // Bright blue
			Type:     "11", // Bright yellow
		},
		Highlights: map[string]HighlightColors{
			"visual":     {Fg: "0", Bg: "6"},
			"search":     {Fg: "0", Bg: "11"},
			"cursorline": {Bg: "236"},
			"reverse":    {Reverse: true},
		},
	},
	"dark": {
		Name:        "dark",
		Description: "Muted dark theme",
		Author:      "Textivus",
		UI: UIColors{
			StatusBg:      "236", // Dark gray
			StatusFg:      "252", // Light gray
			StatusAccent:  "43",  // Teal
			ErrorFg:       "203", // Soft red
			LineNumber:    "240", // Medium gray
			MinimapText:   "245", // Gray
			MinimapBorder: "238", // Darker gray
		},
		Syntax: SyntaxColors{
			Keyword:  "176", // Purple
			String:   "114", // Green
			Comment:  "245", // Gray
			Number:   "215", // Orange
			Operator: "80",  // Cyan
			Function: "75",  // Light blue
			Type:     "222", // Yellow
		},
		Highlights: map[string]HighlightColors{
			"visual":     {Fg: "15", Bg: "24"},
			"search":     {Fg: "16", Bg: "215"},
			"cursorline": {Bg: "237"},
			"reverse":    {Reverse: true},
		},
	},
	"light": {
		Name:        "light",
		Description: "Light theme for bright environments",
		Author:      "Textivus",
		UI: UIColors{
			StatusBg:      "254", // Light gray
			StatusFg:      "235", // Dark gray
			StatusAccent:  "26",  // Blue
			ErrorFg:       "160", // Red
			LineNumber:    "249", // Medium gray
			MinimapText:   "240", // Gray
			MinimapBorder: "250", // Light gray
		},
		Syntax: SyntaxColors{
			Keyword:  "26",  // Blue
			String:   "28",  // Green
			Comment:  "245", // Gray
			Number:   "166", // Orange
			Operator: "90",  // Magenta
			Function: "26",  // Blue
			Type:     "30",  // Teal
		},
		Highlights: map[string]HighlightColors{
			"visual":     {Fg: "0", Bg: "153"},
			"search":     {Fg: "0", Bg: "228"},
			"cursorline": {Bg: "255"},
			"reverse":    {Reverse: true},
		},
	},
}

// DefaultTheme returns the default theme
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// LoadTheme loads a theme by name
// Checks user themes directory first, then falls back to built-in themes
func LoadTheme(name string) Theme {
	if name == "" {
		return DefaultTheme()
	}

	theme, err := loadUserTheme(name)
	if err == nil {
		return theme
	}

	if builtin, ok := builtinThemes[name]; ok {
		return builtin
	}

	return DefaultTheme()
}

// loadUserTheme attempts to load a theme from the user's themes directory
func loadUserTheme(name string) (Theme, error) {
	themesDir, err := ThemesDir()
	if err != nil {
		return Theme{}, err
	}
	return LoadThemeFile(filepath.Join(themesDir, name+".toml"))
}

// LoadThemeFile reads a theme file and fills missing values from the default
func LoadThemeFile(path string) (Theme, error) {
	if _, err := os.Stat(path); err != nil {
		return Theme{}, err
	}

	var theme Theme
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return Theme{}, err
	}

	return mergeWithDefault(theme), nil
}

// mergeWithDefault fills in any missing theme values with defaults
func mergeWithDefault(theme Theme) Theme {
	def := DefaultTheme()

	if theme.Name == "" {
		theme.Name = def.Name
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&theme.UI.StatusBg, def.UI.StatusBg)
	fill(&theme.UI.StatusFg, def.UI.StatusFg)
	fill(&theme.UI.StatusAccent, def.UI.StatusAccent)
	fill(&theme.UI.ErrorFg, def.UI.ErrorFg)
	fill(&theme.UI.LineNumber, def.UI.LineNumber)
	fill(&theme.UI.MinimapText, def.UI.MinimapText)
	fill(&theme.UI.MinimapBorder, def.UI.MinimapBorder)

	fill(&theme.Syntax.Keyword, def.Syntax.Keyword)
	fill(&theme.Syntax.String, def.Syntax.String)
	fill(&theme.Syntax.Comment, def.Syntax.Comment)
	fill(&theme.Syntax.Number, def.Syntax.Number)
	fill(&theme.Syntax.Operator, def.Syntax.Operator)
	fill(&theme.Syntax.Function, def.Syntax.Function)
	fill(&theme.Syntax.Type, def.Syntax.Type)

	// Highlight styles are merged per identifier; the theme's own win
	merged := make(map[string]HighlightColors, len(def.Highlights)+len(theme.Highlights))
	for id, hl := range def.Highlights {
		merged[id] = hl
	}
	for id, hl := range theme.Highlights {
		merged[id] = hl
	}
	theme.Highlights = merged

	return theme
}

// Highlight returns the highlight style for id, falling back to "visual"
func (t Theme) Highlight(id string) HighlightColors {
	if hl, ok := t.Highlights[id]; ok {
		return hl
	}
	if hl, ok := t.Highlights[DefaultHighlight]; ok {
		return hl
	}
	return HighlightColors{Reverse: true}
}

// HighlightNames returns the highlight identifiers the theme defines, sorted
func (t Theme) HighlightNames() []string {
	names := make([]string, 0, len(t.Highlights))
	for id := range t.Highlights {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// ThemeNames returns the list of built-in theme names
func ThemeNames() []string {
	return []string{"default", "dark", "light"}
}

// ListUserThemes returns a list of user-defined theme names
func ListUserThemes() []string {
	themesDir, err := ThemesDir()
	if err != nil {
		return nil
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil
	}

	var themes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".toml" {
			themes = append(themes, name[:len(name)-5]) // Remove .toml extension
		}
	}
	return themes
}
