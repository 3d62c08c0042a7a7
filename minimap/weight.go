package minimap

// Character weights used when accumulating text into pixels.
// A normal glyph counts as 1.0; the density threshold is expressed
// against that unit.
const (
	WeightBlank      = 0.0
	WeightLight      = 0.2
	WeightNormal     = 1.0
	WeightStructural = 2.0
)

// CharWeight returns how much ink a character contributes to its pixel.
// Spaces and tabs are blank, light punctuation barely registers and
// line-drawing characters count double so rulers and tables stand out.
func CharWeight(r rune) float64 {
	switch r {
	case ' ', '\t':
		return WeightBlank
	case '.', ',', '\'':
		return WeightLight
	case '|', '-', '#':
		return WeightStructural
	default:
		return WeightNormal
	}
}
