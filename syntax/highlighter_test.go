package syntax

import (
	"testing"

	"github.com/cornish/textivus-minimap/config"
)

func testColors() config.SyntaxColors {
	return config.DefaultTheme().Syntax
}

func TestSetFile(t *testing.T) {
	tests := []struct {
		filename  string
		wantLexer bool
	}{
		{"main.go", true},
		{"script.py", true},
		{"README.md", true},
		{"", false},
		{"no-extension-here", false},
	}

	for _, tt := range tests {
		h := New(tt.filename, testColors())
		if got := h.LexerName() != ""; got != tt.wantLexer {
			t.Errorf("New(%q) has lexer %q, want lexer %v", tt.filename, h.LexerName(), tt.wantLexer)
		}
	}
}

func TestSpansGo(t *testing.T) {
	colors := testColors()
	h := New("main.go", colors)

	line := `func main() { return "hi" } // done`
	spans := h.Spans(line)
	if len(spans) == 0 {
		t.Fatal("Spans() returned no spans for Go code")
	}

	if got := ColorAt(spans, 0); got != colors.Keyword {
		t.Errorf("color of 'func' = %q, want keyword %q", got, colors.Keyword)
	}
	strCol := len(`func main() { return `)
	if got := ColorAt(spans, strCol); got != colors.String {
		t.Errorf("color of string literal = %q, want %q", got, colors.String)
	}
	commentCol := len(`func main() { return "hi" } `)
	if got := ColorAt(spans, commentCol); got != colors.Comment {
		t.Errorf("color of comment = %q, want %q", got, colors.Comment)
	}
}

func TestSpansRuneColumns(t *testing.T) {
	h := New("main.go", testColors())
	spans := h.Spans(`x := "日本" + y`)
	for _, s := range spans {
		if s.End > 13 {
			t.Errorf("span %+v runs past the 13 rune columns of the line", s)
		}
	}
}

func TestSpansDisabled(t *testing.T) {
	h := New("main.go", testColors())
	h.SetEnabled(false)
	if spans := h.Spans("func main() {}"); spans != nil {
		t.Errorf("disabled Spans() = %v, want nil", spans)
	}

	plain := New("", testColors())
	if spans := plain.Spans("func main() {}"); spans != nil {
		t.Errorf("Spans() without lexer = %v, want nil", spans)
	}
}

func TestThemeColors(t *testing.T) {
	custom := testColors()
	custom.Keyword = "#ff0000"
	h := New("main.go", custom)
	if got := ColorAt(h.Spans("package main"), 0); got != "#ff0000" {
		t.Errorf("keyword color = %q, want #ff0000", got)
	}
}

func TestColorAtOutside(t *testing.T) {
	spans := []Span{{Start: 2, End: 4, Color: "1"}}
	for col, want := range map[int]string{0: "", 2: "1", 3: "1", 4: ""} {
		if got := ColorAt(spans, col); got != want {
			t.Errorf("ColorAt(%d) = %q, want %q", col, got, want)
		}
	}
}

func TestLexerName(t *testing.T) {
	if got := New("main.go", testColors()).LexerName(); got != "Go" {
		t.Errorf("LexerName() = %q, want Go", got)
	}
	if got := New("", testColors()).LexerName(); got != "" {
		t.Errorf("LexerName() without lexer = %q, want empty", got)
	}
}
