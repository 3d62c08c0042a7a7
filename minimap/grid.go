package minimap

import "math"

// PixelGrid accumulates character weights before any on/off decision is made.
// Count is tracked per pixel row: every source line folded into a row adds
// 1/horizScale to it, which is the number of characters one pixel column
// receives from that line.
type PixelGrid struct {
	Rows   int
	Cols   int
	Count  []float64
	Weight [][]float64
}

// NewPixelGrid allocates an empty grid. Negative dimensions are treated as 0.
func NewPixelGrid(rows, cols int) *PixelGrid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &PixelGrid{
		Rows:   rows,
		Cols:   cols,
		Count:  make([]float64, rows),
		Weight: make([][]float64, rows),
	}
	for i := range g.Weight {
		g.Weight[i] = make([]float64, cols)
	}
	return g
}

// RowScale returns how many source lines fold into one pixel row.
// It never drops below 1, so short buffers map one line per row.
func RowScale(lineCount, rows int) float64 {
	if rows <= 0 {
		return 1
	}
	return math.Max(1, float64(lineCount)/float64(rows))
}

// Accumulate folds lines into a rows×cols grid. Source line y lands on pixel
// row floor(y/RowScale) and character x on pixel column floor(x*horizScale).
// Anything that falls outside the grid is dropped.
func Accumulate(lines []string, rows, cols int, horizScale float64) *PixelGrid {
	g := NewPixelGrid(rows, cols)
	if g.Rows == 0 || g.Cols == 0 || horizScale <= 0 {
		return g
	}

	rowScale := RowScale(len(lines), g.Rows)
	for y, line := range lines {
		row := int(float64(y) / rowScale)
		if row >= g.Rows {
			continue
		}
		g.Count[row] += 1 / horizScale

		weights := g.Weight[row]
		x := 0
		for _, c := range line {
			col := int(float64(x) * horizScale)
			if col >= g.Cols {
				break
			}
			weights[col] += CharWeight(c)
			x++
		}
	}
	return g
}

// Bitmap is a grid of lit pixels, indexed [row][col].
type Bitmap [][]bool

// Threshold decides which pixels are lit. A pixel is on when its row has
// received any lines and its average weight reaches density.
func (g *PixelGrid) Threshold(density float64) Bitmap {
	b := make(Bitmap, g.Rows)
	for y := 0; y < g.Rows; y++ {
		b[y] = make([]bool, g.Cols)
		count := g.Count[y]
		if count <= 0 {
			continue
		}
		for x, w := range g.Weight[y] {
			b[y][x] = w/count >= density
		}
	}
	return b
}
