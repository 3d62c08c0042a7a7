// Package source loads files into the line snapshots the minimap renders.
package source

import (
	"fmt"
	"os"
	"strings"
)

// Snapshot is a read-only copy of a buffer's lines
type Snapshot struct {
	Path     string
	Encoding *Encoding
	Lines    []string
}

// Load reads path, detects its encoding and splits it into lines
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	snap, err := FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	snap.Path = path
	return snap, nil
}

// FromBytes decodes raw file content into a snapshot
func FromBytes(data []byte) (*Snapshot, error) {
	enc := Detect(data)
	text, err := Decode(data, enc)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Encoding: enc, Lines: SplitLines(string(text))}, nil
}

// FromString wraps already-decoded text
func FromString(s string) *Snapshot {
	return &Snapshot{Encoding: EncodingByID("utf-8"), Lines: SplitLines(s)}
}

// SplitLines splits text the way an editor counts lines: a trailing newline
// does not start a new line, CRLF endings lose their CR, and empty text is
// one empty line.
func SplitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// LineCount returns the number of lines in the snapshot
func (s *Snapshot) LineCount() int {
	return len(s.Lines)
}

// EncodingName returns the display name of the detected encoding
func (s *Snapshot) EncodingName() string {
	if s.Encoding == nil {
		return "UTF-8"
	}
	return s.Encoding.Name
}
