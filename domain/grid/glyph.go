// Package grid holds the coordinate records read from a published table and
// the dense character grid they are plotted onto.
package grid

// Glyph is one character cell of the picture.
type Glyph rune

// Blank is the glyph of every cell no triple addresses.
const Blank Glyph = ' '

// The "ink" glyphs a table row may carry.
const (
	FullBlock      Glyph = '█'
	LightShade     Glyph = '░'
	UpperHalfBlock Glyph = '▀'
)

// RecognizedGlyphs is the fixed set of glyphs that render as themselves.
var RecognizedGlyphs = map[Glyph]struct{}{
	FullBlock:      {},
	LightShade:     {},
	UpperHalfBlock: {},
}

// IsRecognized reports whether g is in RecognizedGlyphs.
func (g Glyph) IsRecognized() bool {
	_, ok := RecognizedGlyphs[g]
	return ok
}

// String returns the glyph as a one-character string.
func (g Glyph) String() string {
	return string(rune(g))
}

// GlyphFromField returns the glyph held by a table field. The field must be
// exactly one recognized character.
func GlyphFromField(field string) (Glyph, bool) {
	runes := []rune(field)
	if len(runes) != 1 {
		return 0, false
	}
	g := Glyph(runes[0])
	return g, g.IsRecognized()
}
