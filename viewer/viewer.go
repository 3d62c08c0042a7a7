// Package viewer is the terminal host for the minimap: a read-only text
// pane with the braille overview alongside it.
package viewer

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cornish/textivus-minimap/clipboard"
	"github.com/cornish/textivus-minimap/config"
	"github.com/cornish/textivus-minimap/minimap"
	"github.com/cornish/textivus-minimap/source"
	"github.com/cornish/textivus-minimap/syntax"
	"github.com/cornish/textivus-minimap/ui"
)

// Viewer is the bubbletea model. It is also the minimap.Source for every
// render: the buffer is its snapshot, the viewport is the visible text.
type Viewer struct {
	snapshot *source.Snapshot
	scrollY  int

	// UI components
	panel       *ui.MinimapPanel
	pane        *ui.TextPane
	statusbar   *ui.StatusBar
	highlighter *syntax.Highlighter
	styles      ui.Styles

	rasterizer *minimap.Rasterizer
	clipboard  *clipboard.Clipboard
	keys       *config.KeybindingsConfig

	width  int
	height int

	// Configuration
	config *config.Config
}

// New creates a viewer with the default config and keybindings
func New() *Viewer {
	return NewWithConfig(config.DefaultConfig(), config.DefaultKeybindings())
}

// NewWithConfig creates a viewer from the given configuration
func NewWithConfig(cfg *config.Config, keys *config.KeybindingsConfig) *Viewer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if keys == nil {
		keys = config.DefaultKeybindings()
	}
	cfg.Validate()

	theme := cfg.Theme.GetResolved()
	styles := ui.NewStyles(theme)

	highlighter := syntax.New("", theme.Syntax)
	highlighter.SetEnabled(cfg.Viewer.SyntaxHighlight)

	panel := ui.NewMinimapPanel(styles, cfg.Minimap.Width)
	panel.SetEnabled(cfg.Minimap.Enabled)
	panel.SetRightSide(cfg.Minimap.Side != "left")
	panel.SetHighlightID(cfg.Minimap.Highlight)

	pane := ui.NewTextPane(styles, highlighter)
	pane.SetLineNumbers(cfg.Viewer.LineNumbers)

	statusbar := ui.NewStatusBar(styles)
	statusbar.SetMinimap(cfg.Minimap.Enabled)

	v := &Viewer{
		snapshot:    source.FromString(""),
		panel:       panel,
		pane:        pane,
		statusbar:   statusbar,
		highlighter: highlighter,
		styles:      styles,
		rasterizer:  NewRasterizer(cfg.Minimap),
		clipboard:   clipboard.New(os.Stdout),
		keys:        keys,
		width:       80,
		height:      24,
		config:      cfg,
	}

	if !config.GetCapabilities().UTF8Support {
		v.statusbar.SetMessage("Locale is not UTF-8: braille may not display", "error")
	}
	v.refresh()
	return v
}

// LoadFile loads a file into the viewer
func (v *Viewer) LoadFile(filename string) error {
	snap, err := source.Load(filename)
	if err != nil {
		return err
	}
	v.SetSnapshot(snap)
	return nil
}

// SetSnapshot replaces the displayed buffer and scrolls to the top
func (v *Viewer) SetSnapshot(snap *source.Snapshot) {
	v.snapshot = snap
	v.scrollY = 0
	v.highlighter.SetFile(snap.Path)
	v.statusbar.SetFilename(snap.Path)
	v.statusbar.SetEncoding(snap.EncodingName())
	v.statusbar.SetLanguage(v.highlighter.LexerName())
	v.refresh()
}

// SetMessage shows a message in the status bar until the next key
func (v *Viewer) SetMessage(message, msgType string) {
	v.statusbar.SetMessage(message, msgType)
}

// SetConfigError shows a config load error in the status bar
func (v *Viewer) SetConfigError(err error) {
	v.statusbar.SetMessage("Config error: "+err.Error(), "error")
}

// Lines implements minimap.Source
func (v *Viewer) Lines() []string {
	return v.snapshot.Lines
}

// Viewport implements minimap.Source
func (v *Viewer) Viewport() minimap.Viewport {
	return minimap.Viewport{Top: v.scrollY, Height: v.paneHeight()}
}

// PanelSize implements minimap.Source
func (v *Viewer) PanelSize() (width, height int) {
	return v.panel.GlyphWidth(), v.paneHeight()
}

// NewRasterizer returns a rasterizer for the minimap settings. Zero
// settings keep the rasterizer defaults.
func NewRasterizer(m config.MinimapConfig) *minimap.Rasterizer {
	r := minimap.NewRasterizer()
	if m.Width > 0 {
		r.Width = m.Width
	}
	if m.HorizScale > 0 {
		r.HorizScale = m.HorizScale
	}
	if m.Density > 0 {
		r.Density = m.Density
	}
	return r
}

// paneHeight is the screen height less the status bar
func (v *Viewer) paneHeight() int {
	return max(v.height-1, 1)
}

// paneWidth is the screen width less the minimap panel
func (v *Viewer) paneWidth() int {
	return max(v.width-v.panel.Width(), 0)
}

// maxScroll is the last scroll position that still fills the pane
func (v *Viewer) maxScroll() int {
	return max(len(v.snapshot.Lines)-v.paneHeight(), 0)
}

// scrollTo sets the first visible line, clamped to the buffer
func (v *Viewer) scrollTo(line int) {
	v.scrollY = min(max(line, 0), v.maxScroll())
}

// refresh runs one minimap render cycle and updates the status bar
func (v *Viewer) refresh() {
	v.statusbar.SetWidth(v.width)
	v.statusbar.SetRange(v.scrollY, v.paneHeight(), len(v.snapshot.Lines))
	if !v.panel.IsEnabled() {
		return
	}
	if err := minimap.Update(v, v.rasterizer, v.panel); err != nil {
		if !errors.Is(err, minimap.ErrEmptyBuffer) {
			log.Printf("minimap: %v", err)
		}
	}
}

// Init implements tea.Model
func (v *Viewer) Init() tea.Cmd {
	title := "textivus-minimap"
	if v.snapshot.Path != "" {
		title += " - " + filepath.Base(v.snapshot.Path)
	}
	return tea.SetWindowTitle(title)
}

// Update implements tea.Model. Every message that can move the viewport or
// resize the panel triggers a new minimap render.
func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.scrollTo(v.scrollY)

	case tea.KeyMsg:
		cmd = v.handleKey(msg)

	case tea.MouseMsg:
		v.handleMouse(msg)

	default:
		return v, nil
	}

	v.refresh()
	return v, cmd
}

// handleKey handles keyboard input
func (v *Viewer) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	v.statusbar.ClearMessage()
	switch v.keys.Lookup(msg.String()) {
	case config.ActionQuit:
		return tea.Quit
	case config.ActionLineUp:
		v.scrollTo(v.scrollY - 1)
	case config.ActionLineDown:
		v.scrollTo(v.scrollY + 1)
	case config.ActionPageUp:
		v.scrollTo(v.scrollY - v.paneHeight())
	case config.ActionPageDown:
		v.scrollTo(v.scrollY + v.paneHeight())
	case config.ActionDocStart:
		v.scrollTo(0)
	case config.ActionDocEnd:
		v.scrollTo(v.maxScroll())
	case config.ActionToggleMinimap:
		v.statusbar.SetMinimap(v.panel.Toggle())
	case config.ActionToggleLineNumbers:
		v.pane.ToggleLineNumbers()
	case config.ActionYankMinimap:
		v.yankMinimap()
	}
	return nil
}

// yankMinimap copies the rendered minimap to the clipboard
func (v *Viewer) yankMinimap() {
	lines := v.panel.Lines()
	if !v.panel.IsEnabled() || len(lines) == 0 {
		v.statusbar.SetMessage("Minimap is off", "error")
		return
	}
	if err := v.clipboard.CopyLines(lines); err != nil {
		v.statusbar.SetMessage("Copy failed: "+err.Error(), "error")
		return
	}
	v.statusbar.SetMessage(fmt.Sprintf("Copied %d minimap lines", len(lines)), "info")
}

// panelX returns the first screen column of the minimap panel
func (v *Viewer) panelX() int {
	if v.config.Minimap.Side == "left" {
		return 0
	}
	return v.paneWidth()
}

// handleMouse scrolls on the wheel and jumps on a click in the minimap
func (v *Viewer) handleMouse(msg tea.MouseMsg) {
	step := v.config.Viewer.ScrollStep
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.scrollTo(v.scrollY - step)

	case tea.MouseButtonWheelDown:
		v.scrollTo(v.scrollY + step)

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || !v.panel.IsEnabled() {
			return
		}
		x := msg.X - v.panelX()
		if x < 0 || x >= v.panel.Width() {
			return
		}
		row := v.panel.RowAt(msg.Y, v.paneHeight())
		if row < 0 {
			return
		}
		line := minimap.RowToLine(row, len(v.snapshot.Lines), len(v.panel.Lines()))
		v.scrollTo(line - v.paneHeight()/2)
	}
}

// View implements tea.Model
func (v *Viewer) View() string {
	height := v.paneHeight()
	text := strings.Join(v.pane.Render(v.snapshot.Lines, v.scrollY, v.paneWidth(), height), "\n")

	body := text
	if panelRows := v.panel.Render(height); panelRows != nil {
		panel := strings.Join(panelRows, "\n")
		if v.config.Minimap.Side == "left" {
			body = lipgloss.JoinHorizontal(lipgloss.Top, panel, text)
		} else {
			body = lipgloss.JoinHorizontal(lipgloss.Top, text, panel)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, v.statusbar.View())
}
