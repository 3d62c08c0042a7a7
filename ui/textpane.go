package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cornish/textivus-minimap/syntax"
)

// TextPane renders the visible slice of the source lines
type TextPane struct {
	styles          Styles
	highlighter     *syntax.Highlighter
	showLineNumbers bool
	tabWidth        int
}

// NewTextPane creates a text pane. highlighter may be nil.
func NewTextPane(styles Styles, highlighter *syntax.Highlighter) *TextPane {
	return &TextPane{
		styles:      styles,
		highlighter: highlighter,
		tabWidth:    4,
	}
}

// SetLineNumbers enables or disables the line number gutter
func (t *TextPane) SetLineNumbers(show bool) {
	t.showLineNumbers = show
}

// ToggleLineNumbers toggles the line number gutter
func (t *TextPane) ToggleLineNumbers() bool {
	t.showLineNumbers = !t.showLineNumbers
	return t.showLineNumbers
}

// GutterWidth returns the width of the line number gutter for a buffer
// with the given number of lines, including the trailing space.
func (t *TextPane) GutterWidth(totalLines int) int {
	if !t.showLineNumbers {
		return 0
	}
	return len(fmt.Sprint(max(totalLines, 1))) + 1
}

// Render returns exactly height rows, each padded to width columns,
// showing lines starting at index top. Rows past the end show "~".
func (t *TextPane) Render(lines []string, top, width, height int) []string {
	if height <= 0 {
		return nil
	}
	rows := make([]string, height)
	gutter := t.GutterWidth(len(lines))
	textWidth := width - gutter
	if textWidth < 0 {
		textWidth = 0
	}

	for y := 0; y < height; y++ {
		idx := top + y
		var sb strings.Builder
		if idx < 0 || idx >= len(lines) {
			sb.WriteString(t.styles.EmptyLine.Render("~"))
			sb.WriteString(strings.Repeat(" ", max(width-1, 0)))
			rows[y] = sb.String()
			continue
		}
		if gutter > 0 {
			num := fmt.Sprintf("%*d ", gutter-1, idx+1)
			sb.WriteString(t.styles.LineNumber.Render(num))
		}
		sb.WriteString(t.renderLine(lines[idx], textWidth))
		rows[y] = sb.String()
	}
	return rows
}

// renderLine expands tabs, truncates to width display columns and applies
// syntax colors. The result always occupies exactly width columns.
func (t *TextPane) renderLine(line string, width int) string {
	var spans []syntax.Span
	if t.highlighter != nil {
		spans = t.highlighter.Spans(line)
	}

	var sb strings.Builder
	var run strings.Builder
	runColor := ""
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runColor != "" {
			sb.WriteString(Foreground(runColor).Render(run.String()))
		} else {
			sb.WriteString(run.String())
		}
		run.Reset()
	}

	col := 0
	for i, r := range []rune(line) {
		color := syntax.ColorAt(spans, i)
		if color != runColor {
			flush()
			runColor = color
		}
		if r == '\t' {
			n := t.tabWidth - col%t.tabWidth
			if col+n > width {
				n = width - col
			}
			run.WriteString(strings.Repeat(" ", n))
			col += n
		} else {
			w := runewidth.RuneWidth(r)
			if col+w > width {
				break
			}
			run.WriteRune(r)
			col += w
		}
		if col >= width {
			break
		}
	}
	flush()

	if col < width {
		sb.WriteString(strings.Repeat(" ", width-col))
	}
	return sb.String()
}
