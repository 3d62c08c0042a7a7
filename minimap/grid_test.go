package minimap

import (
	"strings"
	"testing"
)

func TestRowScale(t *testing.T) {
	tests := []struct {
		lines, rows int
		want        float64
	}{
		{0, 8, 1},
		{5, 8, 1},
		{8, 8, 1},
		{16, 8, 2},
		{12, 8, 1.5},
		{10, 0, 1},
	}

	for _, tt := range tests {
		if got := RowScale(tt.lines, tt.rows); got != tt.want {
			t.Errorf("RowScale(%d, %d) = %v, want %v", tt.lines, tt.rows, got, tt.want)
		}
	}
}

func TestAccumulateNoFolding(t *testing.T) {
	lines := []string{"aa", "bb", "cc", "dd"}
	g := Accumulate(lines, 8, 4, HorizScale)

	for y := 0; y < 4; y++ {
		if g.Count[y] != 2 {
			t.Errorf("Count[%d] = %v, want 2", y, g.Count[y])
		}
		if g.Weight[y][0] != 2 {
			t.Errorf("Weight[%d][0] = %v, want 2", y, g.Weight[y][0])
		}
	}
	for y := 4; y < 8; y++ {
		if g.Count[y] != 0 {
			t.Errorf("Count[%d] = %v, want 0 for rows past the buffer", y, g.Count[y])
		}
	}
}

func TestAccumulateFolding(t *testing.T) {
	// 8 lines into 4 rows: two lines per row.
	lines := make([]string, 8)
	for i := range lines {
		lines[i] = "xx"
	}
	g := Accumulate(lines, 4, 2, HorizScale)

	for y := 0; y < 4; y++ {
		if g.Count[y] != 4 {
			t.Errorf("Count[%d] = %v, want 4", y, g.Count[y])
		}
		if g.Weight[y][0] != 4 {
			t.Errorf("Weight[%d][0] = %v, want 4", y, g.Weight[y][0])
		}
		if g.Weight[y][1] != 0 {
			t.Errorf("Weight[%d][1] = %v, want 0", y, g.Weight[y][1])
		}
	}
}

func TestAccumulateFractionalFolding(t *testing.T) {
	// 3 lines into 2 rows: rowScale 1.5, lines 0,1 -> row 0, line 2 -> row 1.
	g := Accumulate([]string{"a", "b", "c"}, 2, 1, HorizScale)
	if g.Count[0] != 4 || g.Count[1] != 2 {
		t.Errorf("Count = %v, want [4 2]", g.Count)
	}
}

func TestAccumulateClipsLongLines(t *testing.T) {
	line := strings.Repeat("x", 100)
	g := Accumulate([]string{line}, 4, 6, HorizScale)

	for x := 0; x < 6; x++ {
		if g.Weight[0][x] != 2 {
			t.Errorf("Weight[0][%d] = %v, want 2", x, g.Weight[0][x])
		}
	}
	if len(g.Weight[0]) != 6 {
		t.Errorf("row has %d columns, want 6", len(g.Weight[0]))
	}
}

func TestAccumulateCountsRunes(t *testing.T) {
	// Multi-byte characters occupy one source column each.
	g := Accumulate([]string{"日本語x"}, 4, 4, HorizScale)
	if g.Weight[0][0] != 2 || g.Weight[0][1] != 2 {
		t.Errorf("Weight[0] = %v, want [2 2 0 0]", g.Weight[0])
	}
}

func TestAccumulateEmpty(t *testing.T) {
	g := Accumulate(nil, 8, 4, HorizScale)
	if g.Rows != 8 || g.Cols != 4 {
		t.Fatalf("grid is %dx%d, want 8x4", g.Rows, g.Cols)
	}
	for y := range g.Count {
		if g.Count[y] != 0 {
			t.Errorf("Count[%d] = %v, want 0", y, g.Count[y])
		}
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		wantL bool // pixel column 0
		wantR bool // pixel column 1
	}{
		{"two letters", "abcd", true, true},
		{"one letter per pixel", "a c ", true, true},
		{"blank", "    ", false, false},
		{"punctuation is light", "..,,", false, false},
		{"punctuation beside a letter", "a.", true, false},
		{"structural", "- | ", true, true},
		{"short line", "a", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Accumulate([]string{tt.line}, 1, 2, HorizScale).Threshold(DensityThreshold)
			if b[0][0] != tt.wantL || b[0][1] != tt.wantR {
				t.Errorf("Threshold(%q) = %v, want [%v %v]", tt.line, b[0], tt.wantL, tt.wantR)
			}
		})
	}
}

func TestThresholdZeroCountIsOff(t *testing.T) {
	g := NewPixelGrid(1, 1)
	g.Weight[0][0] = 10
	if b := g.Threshold(DensityThreshold); b[0][0] {
		t.Error("pixel with count 0 should be off regardless of weight")
	}
}
