package config

import (
	"os"
	"strings"
)

// ColorMode represents the terminal color capability
type ColorMode int

const (
	Color16        ColorMode = iota // Basic 16 colors
	Color256                        // 256 color palette
	ColorTrueColor                  // 24-bit true color
)

// TermCapabilities holds detected terminal capabilities
type TermCapabilities struct {
	UTF8Support bool      // Terminal supports UTF-8 (braille needs it)
	ColorMode   ColorMode // Color capability level
}

// String returns a human-readable description of the color mode
func (c ColorMode) String() string {
	switch c {
	case Color16:
		return "16 colors"
	case Color256:
		return "256 colors"
	case ColorTrueColor:
		return "TrueColor (24-bit)"
	default:
		return "unknown"
	}
}

// DetectCapabilities detects terminal capabilities from the environment
func DetectCapabilities() *TermCapabilities {
	return detectFrom(os.Getenv)
}

func detectFrom(getenv func(string) string) *TermCapabilities {
	return &TermCapabilities{
		UTF8Support: detectUTF8Support(getenv),
		ColorMode:   detectColorMode(getenv),
	}
}

// detectUTF8Support checks LC_ALL, LC_CTYPE and LANG, in precedence order
func detectUTF8Support(getenv func(string) string) bool {
	for _, envVar := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := strings.ToUpper(getenv(envVar))
		if val == "" {
			continue
		}
		return strings.Contains(val, "UTF-8") || strings.Contains(val, "UTF8")
	}
	return false
}

// detectColorMode detects the terminal's color capability
func detectColorMode(getenv func(string) string) ColorMode {
	colorterm := strings.ToLower(getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorTrueColor
	}

	term := strings.ToLower(getenv("TERM"))
	for _, t := range []string{"truecolor", "24bit", "xterm-direct", "iterm2", "vte"} {
		if strings.Contains(term, t) {
			return ColorTrueColor
		}
	}
	if strings.Contains(term, "256color") || strings.Contains(term, "256-color") {
		return Color256
	}

	// Default to 16 colors for safety
	return Color16
}

// ShouldUseTrueColor returns true if TrueColor should be used
// Takes into account both auto-detection and user override
func (c *TermCapabilities) ShouldUseTrueColor(override *bool) bool {
	if override != nil {
		return *override
	}
	return c.ColorMode == ColorTrueColor
}

// GlobalCapabilities holds the detected capabilities (set at startup)
var GlobalCapabilities *TermCapabilities

// InitCapabilities detects and stores terminal capabilities
// Should be called once at startup
func InitCapabilities() {
	GlobalCapabilities = DetectCapabilities()
}

// GetCapabilities returns the global capabilities, detecting if needed
func GetCapabilities() *TermCapabilities {
	if GlobalCapabilities == nil {
		InitCapabilities()
	}
	return GlobalCapabilities
}
