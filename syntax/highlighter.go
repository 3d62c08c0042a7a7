package syntax

import (
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/cornish/textivus-minimap/config"
)

// Span is a colored run of a line, in rune columns
type Span struct {
	Start int    // Start column (rune index)
	End   int    // End column (rune index, exclusive)
	Color string // Theme color ("0"-"255" or "#RRGGBB")
}

// Highlighter colors source lines for the text pane
type Highlighter struct {
	lexer   chroma.Lexer
	enabled bool
	colors  config.SyntaxColors
}

// New creates a Highlighter for the given filename
func New(filename string, colors config.SyntaxColors) *Highlighter {
	h := &Highlighter{
		enabled: true,
		colors:  colors,
	}
	h.SetFile(filename)
	return h
}

// SetFile picks the lexer from the filename; unknown files get none
func (h *Highlighter) SetFile(filename string) {
	h.lexer = nil
	if filename == "" {
		return
	}
	if l := lexers.Match(filename); l != nil {
		h.lexer = chroma.Coalesce(l)
	}
}

// SetEnabled enables or disables syntax highlighting
func (h *Highlighter) SetEnabled(enabled bool) {
	h.enabled = enabled
}

// LexerName returns the lexer name, or "" when there is none
func (h *Highlighter) LexerName() string {
	if h.lexer == nil {
		return ""
	}
	return h.lexer.Config().Name
}

// Spans returns the colored runs of line. Lines are lexed on their own, so
// constructs spanning lines (block comments) only color their own line.
func (h *Highlighter) Spans(line string) []Span {
	if !h.enabled || h.lexer == nil || line == "" {
		return nil
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return nil
	}

	var spans []Span
	pos := 0
	for _, token := range iterator.Tokens() {
		n := utf8.RuneCountInString(token.Value)
		if color := h.tokenColor(token.Type); color != "" && n > 0 {
			spans = append(spans, Span{Start: pos, End: pos + n, Color: color})
		}
		pos += n
	}
	return spans
}

// ColorAt returns the color for a column, or "" if no span covers it
func ColorAt(spans []Span, col int) string {
	for _, span := range spans {
		if col >= span.Start && col < span.End {
			return span.Color
		}
	}
	return ""
}

// tokenColor maps a chroma token type onto a theme color
func (h *Highlighter) tokenColor(t chroma.TokenType) string {
	switch {
	case t == chroma.NameFunction, t == chroma.NameFunctionMagic:
		return h.colors.Function
	case t == chroma.NameClass, t == chroma.NameBuiltin, t == chroma.NameBuiltinPseudo:
		return h.colors.Type
	case t == chroma.NameConstant:
		return h.colors.Number
	case t == chroma.GenericHeading, t == chroma.GenericSubheading:
		return h.colors.Type
	case t.InCategory(chroma.Keyword):
		return h.colors.Keyword
	case t.InSubCategory(chroma.LiteralString):
		return h.colors.String
	case t.InSubCategory(chroma.LiteralNumber):
		return h.colors.Number
	case t.InCategory(chroma.Comment):
		return h.colors.Comment
	case t.InCategory(chroma.Operator):
		return h.colors.Operator
	}
	return ""
}
