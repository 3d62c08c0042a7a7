package minimap

import (
	"fmt"
	"math"
)

// Viewport is the visible range of the source buffer. Top is the 0-based
// index of the first visible line.
type Viewport struct {
	Top    int
	Height int
}

// HighlightRange marks the glyph lines covering the viewport. Bottom is
// exclusive and is not clamped to the number of glyph lines; renderers must
// clamp it themselves.
type HighlightRange struct {
	Top    int
	Bottom int
}

// Contains reports whether glyph line row lies inside the range.
func (h HighlightRange) Contains(row int) bool {
	return row >= h.Top && row < h.Bottom
}

// Clamp limits the range to [0, lineCount).
func (h HighlightRange) Clamp(lineCount int) HighlightRange {
	if h.Bottom > lineCount {
		h.Bottom = lineCount
	}
	if h.Top < 0 {
		h.Top = 0
	}
	if h.Top > h.Bottom {
		h.Top = h.Bottom
	}
	return h
}

// MapViewport scales vp from a buffer of bufferLines lines onto glyphLines
// rendered lines. It returns the highlighted range and the row the panel
// should scroll to so the range sits in the middle of a panel panelHeight
// rows tall. A scroll row of 0 leaves the panel at its top.
//
// bufferLines must be positive; an empty buffer has no viewport to map and
// MapViewport panics. Update checks this before calling.
func MapViewport(bufferLines, glyphLines int, vp Viewport, panelHeight int) (HighlightRange, int) {
	if bufferLines <= 0 {
		panic(fmt.Sprintf("minimap: MapViewport called with %d buffer lines", bufferLines))
	}
	n, m := int64(bufferLines), int64(glyphLines)

	// round(Top*m/n) and ceil(Height*m/n) in integer arithmetic.
	top := 0
	if vp.Top > 0 {
		top = int((2*int64(vp.Top)*m + n) / (2 * n))
	}
	if top > glyphLines-1 {
		top = glyphLines - 1
	}
	if top < 0 {
		top = 0
	}
	bottom := top
	if vp.Height > 0 {
		bottom += int((int64(vp.Height)*m + n - 1) / n)
	}

	center := float64(top) + float64(bottom-top)/2
	half := float64(panelHeight) / 2
	scroll := 0
	if center > half {
		scroll = int(math.Min(center+half, float64(glyphLines)))
	}
	return HighlightRange{Top: top, Bottom: bottom}, scroll
}

// RowToLine is the inverse of the MapViewport scaling: it returns the source
// line a glyph line row stands for, clamped to the buffer.
func RowToLine(row, bufferLines, glyphLines int) int {
	if bufferLines <= 0 || glyphLines <= 0 {
		return 0
	}
	if row < 0 {
		row = 0
	}
	line := int(int64(row) * int64(bufferLines) / int64(glyphLines))
	if line >= bufferLines {
		return bufferLines - 1
	}
	return line
}
