package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	filename    string
	firstLine   int
	lastLine    int
	totalLines  int
	encoding    string
	language    string
	minimapOn   bool
	message     string // Temporary message to display
	messageType string // "info", "error"
	width       int
	styles      Styles
}

// NewStatusBar creates a new status bar
func NewStatusBar(styles Styles) *StatusBar {
	return &StatusBar{
		firstLine:  1,
		lastLine:   1,
		totalLines: 1,
		encoding:   "UTF-8",
		minimapOn:  true,
		styles:     styles,
	}
}

// SetFilename sets the current filename
func (s *StatusBar) SetFilename(filename string) {
	s.filename = filename
}

// SetRange sets the visible line range from a 0-indexed top line and height
func (s *StatusBar) SetRange(top, height, total int) {
	s.totalLines = total
	s.firstLine = top + 1
	s.lastLine = top + height
	if s.lastLine > total {
		s.lastLine = total
	}
	if s.firstLine > s.lastLine {
		s.firstLine = s.lastLine
	}
}

// SetEncoding sets the file encoding
func (s *StatusBar) SetEncoding(encoding string) {
	s.encoding = encoding
}

// SetLanguage sets the syntax language name shown on the right
func (s *StatusBar) SetLanguage(language string) {
	s.language = language
}

// SetMinimap sets whether the minimap indicator is shown as on
func (s *StatusBar) SetMinimap(on bool) {
	s.minimapOn = on
}

// SetMessage sets a temporary message to display
func (s *StatusBar) SetMessage(message, msgType string) {
	s.message = message
	s.messageType = msgType
}

// ClearMessage clears the temporary message
func (s *StatusBar) ClearMessage() {
	s.message = ""
	s.messageType = ""
}

// SetWidth sets the width of the status bar
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar
func (s *StatusBar) View() string {
	filename := "[No Name]"
	if s.filename != "" {
		filename = filepath.Base(s.filename)
	}

	var right strings.Builder
	if s.language != "" {
		right.WriteString(s.language + " | ")
	}
	fmt.Fprintf(&right, "Ln %d-%d/%d | %s", s.firstLine, s.lastLine, s.totalLines, s.encoding)
	if !s.minimapOn {
		right.WriteString(" | map off")
	}
	rightText := right.String()

	leftLen := runewidth.StringWidth(filename)
	rightLen := runewidth.StringWidth(rightText)
	centerLen := runewidth.StringWidth(s.message)

	availableSpace := s.width - leftLen - rightLen
	if availableSpace < 0 {
		availableSpace = 0
	}

	var sb strings.Builder
	sb.WriteString(s.styles.StatusAccent.Render(filename))

	if s.message != "" && centerLen+4 <= availableSpace {
		leftPad := (availableSpace - centerLen) / 2
		rightPad := availableSpace - centerLen - leftPad
		sb.WriteString(s.styles.StatusBar.Render(strings.Repeat(" ", leftPad)))
		if s.messageType == "error" {
			sb.WriteString(s.styles.StatusError.Render(s.message))
		} else {
			sb.WriteString(s.styles.StatusBar.Render(s.message))
		}
		sb.WriteString(s.styles.StatusBar.Render(strings.Repeat(" ", rightPad)))
	} else {
		sb.WriteString(s.styles.StatusBar.Render(strings.Repeat(" ", availableSpace)))
	}

	sb.WriteString(s.styles.StatusBar.Render(rightText))
	return sb.String()
}
