package minimap

import "errors"

// ErrEmptyBuffer is returned when the source has no lines to map a viewport
// onto. The glyph lines are still delivered (all blank).
var ErrEmptyBuffer = errors.New("minimap: empty buffer")

// Source is what the host editor exposes for one render.
type Source interface {
	// Lines returns the full buffer snapshot.
	Lines() []string
	// Viewport returns the visible range of the main window.
	Viewport() Viewport
	// PanelSize returns the minimap panel width in cells and height in rows.
	PanelSize() (width, height int)
}

// Sink receives the result of a render.
type Sink interface {
	SetLines(lines []string)
	SetHighlight(h HighlightRange)
	ScrollTo(row int)
}

// Frame is the complete output of one render cycle.
type Frame struct {
	Lines     []string
	Highlight HighlightRange
	Scroll    int
}

// Frame renders src. A positive panel width from src overrides r.Width.
func (r *Rasterizer) Frame(src Source) (Frame, error) {
	width, height := src.PanelSize()
	lines := src.Lines()

	f := Frame{Lines: r.WithWidth(width).Render(lines, height)}
	if len(lines) == 0 {
		return f, ErrEmptyBuffer
	}
	f.Highlight, f.Scroll = MapViewport(len(lines), len(f.Lines), src.Viewport(), height)
	return f, nil
}

// Update runs one render cycle from src into sink. On ErrEmptyBuffer the
// sink gets the blank lines but no highlight or scroll.
func Update(src Source, r *Rasterizer, sink Sink) error {
	f, err := r.Frame(src)
	sink.SetLines(f.Lines)
	if err != nil {
		return err
	}
	sink.SetHighlight(f.Highlight)
	sink.ScrollTo(f.Scroll)
	return nil
}
