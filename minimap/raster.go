// Package minimap renders a braille overview of a text buffer and maps the
// editor viewport onto it.
//
// Rendering is a pure function of its inputs: the host passes a snapshot of
// the buffer lines and the panel size and gets back one glyph line per panel
// row. Nothing is cached between renders.
package minimap

const (
	// DefaultWidth is the panel width in glyph cells.
	DefaultWidth = 20

	// HorizScale maps source columns to pixel columns. At 0.5 two
	// characters share one pixel column, so a 20-cell panel shows the
	// first 80 characters of each line.
	HorizScale = 0.5

	// DensityThreshold is the average weight per contributing character a
	// pixel needs before it lights up, relative to WeightNormal.
	DensityThreshold = 0.5
)

// Rasterizer turns text into glyph lines for a panel of Width cells.
type Rasterizer struct {
	Width      int
	HorizScale float64
	Density    float64
}

// NewRasterizer returns a rasterizer with the default width and scales.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		Width:      DefaultWidth,
		HorizScale: HorizScale,
		Density:    DensityThreshold,
	}
}

// PixelSize returns the pixel grid dimensions for a panel of the given height.
func (r *Rasterizer) PixelSize(panelHeight int) (rows, cols int) {
	return CellHeight * panelHeight, CellWidth * r.Width
}

// Render rasterizes lines into exactly panelHeight glyph lines, each exactly
// Width cells wide. Long buffers are folded vertically; long lines are clipped.
func (r *Rasterizer) Render(lines []string, panelHeight int) []string {
	if panelHeight <= 0 || r.Width <= 0 {
		return nil
	}
	rows, cols := r.PixelSize(panelHeight)
	grid := Accumulate(lines, rows, cols, r.HorizScale)
	return Pack(grid.Threshold(r.Density), r.Width)
}

// WithWidth returns a copy of r rendering width cells. Non-positive widths
// leave the width unchanged.
func (r *Rasterizer) WithWidth(width int) *Rasterizer {
	c := *r
	if width > 0 {
		c.Width = width
	}
	return &c
}
