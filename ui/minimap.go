package ui

import (
	"strings"

	"github.com/cornish/textivus-minimap/minimap"
)

// MinimapPanel displays the braille glyph lines produced by the rasterizer.
// It implements minimap.Sink: the host pushes lines, the highlighted row
// range and the row that must be in view, and the panel draws them.
//
// Layout: [border][glyph cells]. The border column is drawn on the side
// facing the text pane.
type MinimapPanel struct {
	lines     []string
	highlight minimap.HighlightRange
	scroll    int
	hasRange  bool

	width       int
	enabled     bool
	rightSide   bool
	highlightID string
	styles      Styles
}

// NewMinimapPanel creates a minimap panel with the given glyph width.
func NewMinimapPanel(styles Styles, width int) *MinimapPanel {
	if width <= 0 {
		width = minimap.DefaultWidth
	}
	return &MinimapPanel{
		width:       width,
		enabled:     true,
		rightSide:   true,
		highlightID: "visual",
		styles:      styles,
	}
}

// SetLines replaces the displayed glyph lines. The highlight and scroll
// row of the previous lines are dropped; a render that maps a viewport sets
// them again.
func (p *MinimapPanel) SetLines(lines []string) {
	p.lines = append(p.lines[:0], lines...)
	p.highlight = minimap.HighlightRange{}
	p.hasRange = false
	p.scroll = 0
}

// SetHighlight sets the glyph rows marking the visible viewport.
func (p *MinimapPanel) SetHighlight(r minimap.HighlightRange) {
	p.highlight = r
	p.hasRange = true
}

// ScrollTo sets the 1-based glyph row that must be in view. Zero leaves
// the panel at its top.
func (p *MinimapPanel) ScrollTo(row int) {
	if row < 0 {
		row = 0
	}
	p.scroll = row
}

// Lines returns the glyph lines currently displayed.
func (p *MinimapPanel) Lines() []string {
	return p.lines
}

// GlyphWidth returns the number of braille cells per row.
func (p *MinimapPanel) GlyphWidth() int {
	return p.width
}

// Width returns the screen columns taken by the panel, or 0 if disabled.
func (p *MinimapPanel) Width() int {
	if !p.enabled {
		return 0
	}
	return p.width + 1
}

// SetEnabled enables or disables the panel.
func (p *MinimapPanel) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// IsEnabled returns whether the panel is enabled.
func (p *MinimapPanel) IsEnabled() bool {
	return p.enabled
}

// Toggle toggles the panel on/off.
func (p *MinimapPanel) Toggle() bool {
	p.enabled = !p.enabled
	return p.enabled
}

// SetRightSide places the border for a panel on the right of the text.
func (p *MinimapPanel) SetRightSide(right bool) {
	p.rightSide = right
}

// SetHighlightID selects the theme highlight used for the viewport rows.
func (p *MinimapPanel) SetHighlightID(id string) {
	p.highlightID = id
}

// Offset returns the first glyph row shown in a panel of the given height.
// The window moves only as far as needed to bring the scroll row into view.
func (p *MinimapPanel) Offset(height int) int {
	if height <= 0 {
		return 0
	}
	offset := 0
	if p.scroll > height {
		offset = p.scroll - height
	}
	if limit := len(p.lines) - height; offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// RowAt maps a screen row inside the panel to a glyph row index.
// Returns -1 if the screen row shows no glyph line.
func (p *MinimapPanel) RowAt(y, height int) int {
	if y < 0 || y >= height {
		return -1
	}
	row := p.Offset(height) + y
	if row >= len(p.lines) {
		return -1
	}
	return row
}

// Render returns exactly height rows, each Width() columns wide.
// Rows within the highlight range are drawn with the highlight style.
func (p *MinimapPanel) Render(height int) []string {
	if !p.enabled || height <= 0 {
		return nil
	}

	hl := p.highlight.Clamp(len(p.lines))
	hlStyle := p.styles.Highlight(p.highlightID)
	border := p.styles.MinimapBorder.Render("│")
	offset := p.Offset(height)

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var sb strings.Builder
		if p.rightSide {
			sb.WriteString(border)
		}

		row := offset + y
		if row < len(p.lines) {
			cells := fitCells(p.lines[row], p.width)
			if p.hasRange && hl.Contains(row) {
				sb.WriteString(hlStyle.Render(cells))
			} else {
				sb.WriteString(p.styles.MinimapText.Render(cells))
			}
		} else {
			sb.WriteString(strings.Repeat(" ", p.width))
		}

		if !p.rightSide {
			sb.WriteString(border)
		}
		rows[y] = sb.String()
	}
	return rows
}

// fitCells truncates or pads a glyph line to exactly width cells.
// Braille and pad glyphs are all single-width.
func fitCells(line string, width int) string {
	runes := []rune(line)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return string(runes) + strings.Repeat(string(minimap.PadGlyph), width-len(runes))
}
