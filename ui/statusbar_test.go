package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestStatusBarSetRange(t *testing.T) {
	tests := []struct {
		name                string
		top, height, tot    int
		wantFirst, wantLast int
	}{
		{"first page", 0, 10, 100, 1, 10},
		{"middle", 40, 20, 100, 41, 60},
		{"short buffer", 0, 10, 3, 1, 3},
		{"past end", 5, 10, 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStatusBar(testStyles())
			s.SetRange(tt.top, tt.height, tt.tot)
			if s.firstLine != tt.wantFirst || s.lastLine != tt.wantLast {
				t.Errorf("SetRange() = %d-%d, want %d-%d", s.firstLine, s.lastLine, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestStatusBarView(t *testing.T) {
	s := NewStatusBar(testStyles())
	s.SetWidth(60)
	s.SetFilename("/tmp/project/main.go")
	s.SetLanguage("Go")
	s.SetRange(40, 20, 100)

	view := ansi.Strip(s.View())
	if !strings.HasPrefix(view, "main.go") {
		t.Errorf("View() = %q, want filename first", view)
	}
	if !strings.HasSuffix(view, "Go | Ln 41-60/100 | UTF-8") {
		t.Errorf("View() = %q, want position on the right", view)
	}
	if w := lipgloss.Width(s.View()); w != 60 {
		t.Errorf("View() width = %d, want 60", w)
	}
}

func TestStatusBarMessage(t *testing.T) {
	s := NewStatusBar(testStyles())
	s.SetWidth(80)
	s.SetMessage("Copied 3 lines", "info")
	if !strings.Contains(ansi.Strip(s.View()), "Copied 3 lines") {
		t.Error("View() should contain the message")
	}

	s.SetMinimap(false)
	if !strings.Contains(ansi.Strip(s.View()), "map off") {
		t.Error("View() should show the minimap is off")
	}

	s.ClearMessage()
	if s.message != "" {
		t.Errorf("message after clear = %q", s.message)
	}

	s.SetWidth(10)
	s.SetMessage("this message does not fit", "error")
	if strings.Contains(ansi.Strip(s.View()), "does not fit") {
		t.Error("View() should drop a message that does not fit")
	}
}

func TestStylesHighlight(t *testing.T) {
	styles := testStyles()
	if !styles.Highlight("reverse").GetReverse() {
		t.Error(`Highlight("reverse") should set reverse`)
	}
	want := styles.Highlight("visual").GetBackground()
	if got := styles.Highlight("no-such-group").GetBackground(); got != want {
		t.Errorf("unknown highlight background = %v, want visual %v", got, want)
	}
}
