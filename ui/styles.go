package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cornish/textivus-minimap/config"
)

// SetTrueColor selects the color profile used when rendering styles.
// Without true color, hex theme colors degrade to the nearest 256-color.
func SetTrueColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// Styles contains all the styles used by the viewer
type Styles struct {
	// The theme these styles were generated from
	Theme config.Theme

	// Status bar styles
	StatusBar    lipgloss.Style
	StatusAccent lipgloss.Style
	StatusError  lipgloss.Style

	// Text pane styles
	LineNumber lipgloss.Style
	EmptyLine  lipgloss.Style

	// Minimap styles
	MinimapText   lipgloss.Style
	MinimapBorder lipgloss.Style
}

// NewStyles creates a Styles configuration from a theme
func NewStyles(theme config.Theme) Styles {
	ui := theme.UI

	return Styles{
		Theme: theme,

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.StatusBg)).
			Foreground(lipgloss.Color(ui.StatusFg)),

		StatusAccent: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.StatusBg)).
			Foreground(lipgloss.Color(ui.StatusAccent)).
			Bold(true),

		StatusError: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.StatusBg)).
			Foreground(lipgloss.Color(ui.ErrorFg)).
			Bold(true),

		LineNumber: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.LineNumber)),

		EmptyLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.LineNumber)).
			Faint(true),

		MinimapText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.MinimapText)),

		MinimapBorder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.MinimapBorder)),
	}
}

// Highlight returns the style for a highlight identifier from the theme.
// Unknown identifiers fall back to the theme's "visual" style.
func (s Styles) Highlight(id string) lipgloss.Style {
	hl := s.Theme.Highlight(id)
	style := lipgloss.NewStyle().Bold(hl.Bold).Reverse(hl.Reverse)
	if hl.Fg != "" {
		style = style.Foreground(lipgloss.Color(hl.Fg))
	}
	if hl.Bg != "" {
		style = style.Background(lipgloss.Color(hl.Bg))
	}
	return style
}

// Foreground returns a style that only sets the foreground color
func Foreground(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
