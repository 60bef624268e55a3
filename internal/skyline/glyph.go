package skyline

// Glyphs used when drawing buildings.
const (
	GlyphSky     = ' '
	GlyphFill    = '█'
	GlyphEdge    = '│'
	GlyphRoof    = '▄'
	GlyphWindow  = '▪'
	GlyphSpire   = '▲'
	GlyphTexture = '░'
)

// Tone is an abstract color role. The scene maps tones onto its palette so
// this package stays free of concrete colors.
type Tone int

const (
	ToneSky Tone = iota
	ToneBuilding
	ToneAccent
)

// String returns the name of the tone.
func (t Tone) String() string {
	switch t {
	case ToneSky:
		return "sky"
	case ToneBuilding:
		return "building"
	case ToneAccent:
		return "accent"
	default:
		return "unknown"
	}
}

// Tones returns the foreground and background tones a skyline glyph is
// painted with. ok is false for runes the skyline never produces, including
// the sky space. Edges, roof and spire keep the sky behind them.
func Tones(r rune) (fg, bg Tone, ok bool) {
	switch r {
	case GlyphFill:
		return ToneBuilding, ToneBuilding, true
	case GlyphEdge, GlyphRoof:
		return ToneBuilding, ToneSky, true
	case GlyphWindow, GlyphTexture:
		return ToneAccent, ToneBuilding, true
	case GlyphSpire:
		return ToneAccent, ToneSky, true
	default:
		return ToneSky, ToneSky, false
	}
}

// glyphFor picks the rune for one cell of a building. localCol counts from
// the building's left edge, rowFromBottom from its base, and h is the drawn
// height after clipping, so the top drawn row always gets the roof line.
func glyphFor(b Building, localCol, rowFromBottom, h int) rune {
	roof := rowFromBottom == h-1
	edge := localCol == 0 || localCol == b.Width-1

	switch b.Style {
	case StyleWindowed:
		switch {
		case roof:
			return GlyphRoof
		case edge:
			return GlyphEdge
		case rowFromBottom%2 == 1 && localCol%2 == 1:
			return GlyphWindow
		}
	case StyleTower:
		switch {
		case roof && localCol == b.Width/2:
			return GlyphSpire
		case roof:
			return GlyphRoof
		case edge:
			return GlyphEdge
		case rowFromBottom%3 == 1 && localCol%2 == 1:
			return GlyphTexture
		}
	default:
		switch {
		case roof:
			return GlyphRoof
		case edge:
			return GlyphEdge
		}
	}
	return GlyphFill
}
