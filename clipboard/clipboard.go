// Package clipboard copies minimap text to the system clipboard, or to the
// terminal with OSC52 when running over SSH.
package clipboard

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/cornish/textivus-minimap/minimap"
)

// Clipboard writes text to the system clipboard with an OSC52 fallback.
type Clipboard struct {
	// Whether we're likely in an SSH session
	isSSH bool
	// Output writer for OSC52 sequences (typically os.Stdout)
	output io.Writer
	// System clipboard writer
	writeAll func(string) error
}

// New creates a new Clipboard instance.
func New(output io.Writer) *Clipboard {
	if output == nil {
		output = os.Stdout
	}
	return &Clipboard{
		isSSH:    isSSHSession(os.Getenv),
		output:   output,
		writeAll: clipboard.WriteAll,
	}
}

// isSSHSession detects if we're running in an SSH session.
func isSSHSession(getenv func(string) string) bool {
	for _, key := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION"} {
		if getenv(key) != "" {
			return true
		}
	}
	return false
}

// Copy copies the given text to the clipboard.
// In SSH sessions, it uses OSC52 escape sequences.
// Locally, it tries the system clipboard first, then falls back to OSC52.
func (c *Clipboard) Copy(text string) error {
	if c.isSSH || clipboard.Unsupported {
		return c.copyOSC52(text)
	}
	if err := c.writeAll(text); err != nil {
		return c.copyOSC52(text)
	}
	return nil
}

// CopyLines copies glyph lines as newline-separated text, with the pad
// glyph trimmed from each line end.
func (c *Clipboard) CopyLines(lines []string) error {
	return c.Copy(JoinLines(lines))
}

// JoinLines trims the padding from each glyph line and joins them.
func JoinLines(lines []string) string {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = minimap.TrimPadding(line)
	}
	return strings.Join(trimmed, "\n")
}

// copyOSC52 copies text using OSC52 escape sequence.
func (c *Clipboard) copyOSC52(text string) error {
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(c.output)
	return err
}
