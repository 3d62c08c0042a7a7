package minimap

import "strings"

const (
	// BrailleBase is the empty braille pattern; dots are OR-ed onto it.
	BrailleBase = 0x2800

	// PadGlyph fills the tail of a glyph line so every line spans the full
	// panel width. A non-breaking space survives trimming in hosts and
	// still takes one cell, which keeps highlight blocks rectangular.
	PadGlyph = '\u00a0'

	// CellWidth and CellHeight are the pixel dimensions of one braille cell.
	CellWidth  = 2
	CellHeight = 4
)

// Braille dot bits indexed by [dy][dx]:
//
//	1 4
//	2 5
//	3 6
//	7 8
var brailleDots = [CellHeight][CellWidth]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// DotBit returns the bit for the dot at (dx, dy) within a cell.
func DotBit(dx, dy int) rune {
	return brailleDots[dy][dx]
}

// Pack converts a bitmap into glyph lines of exactly width cells. Each
// output line covers four pixel rows. Cells after the last lit cell of a
// line are written as PadGlyph; blank cells before it are the empty
// braille pattern.
func Pack(b Bitmap, width int) []string {
	if width <= 0 {
		return nil
	}
	lineCount := (len(b) + CellHeight - 1) / CellHeight
	out := make([]string, lineCount)

	cells := make([]rune, width)
	for line := 0; line < lineCount; line++ {
		last := -1
		for cx := 0; cx < width; cx++ {
			var pattern rune
			for dy := 0; dy < CellHeight; dy++ {
				y := line*CellHeight + dy
				if y >= len(b) {
					break
				}
				for dx := 0; dx < CellWidth; dx++ {
					x := cx*CellWidth + dx
					if x < len(b[y]) && b[y][x] {
						pattern |= DotBit(dx, dy)
					}
				}
			}
			cells[cx] = BrailleBase + pattern
			if pattern != 0 {
				last = cx
			}
		}

		var sb strings.Builder
		for cx := 0; cx <= last; cx++ {
			sb.WriteRune(cells[cx])
		}
		out[line] = padLine(sb.String(), last+1, width)
	}
	return out
}

// padLine right-pads s, which already spans n cells, to width cells.
func padLine(s string, n, width int) string {
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(PadGlyph), width-n)
}

// TrimPadding removes the trailing pad glyphs from a glyph line, leaving
// blank braille cells in place.
func TrimPadding(line string) string {
	return strings.TrimRight(line, string(PadGlyph))
}
