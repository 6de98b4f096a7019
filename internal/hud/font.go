// Package hud holds everything the frontends share for on-screen text: a
// built-in 5x7 bitmap font packed into an RGBA atlas, and the overlay
// and status lines derived from a session.
package hud

import "unicode"

// Font atlas layout. Each glyph is 5x7 inside a 6x8 cell so neighbouring
// cells never bleed under linear filtering.
const (
	GlyphW     = 5
	GlyphH     = 7
	CellW      = 6
	CellH      = 8
	AtlasCols  = 16
	atlasFirst = ' '
	atlasLast  = 'Z'
	AtlasRows  = (atlasLast - atlasFirst + AtlasCols) / AtlasCols
	AtlasW     = CellW * AtlasCols
	AtlasH     = CellH * AtlasRows
)

// Rows top to bottom, bit 4 is the leftmost pixel.
var glyphs = map[rune][GlyphH]uint8{
	' ': {},
	'!': {0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04},
	'%': {0x18, 0x19, 0x02, 0x04, 0x08, 0x13, 0x03},
	'-': {0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00},
	'.': {0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C},
	'/': {0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x00},
	'0': {0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E},
	'1': {0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'2': {0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F},
	'3': {0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E},
	'4': {0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02},
	'5': {0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E},
	'6': {0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E},
	'7': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08},
	'8': {0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E},
	'9': {0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C},
	':': {0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x0C, 0x00},
	'A': {0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'B': {0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E},
	'C': {0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E},
	'D': {0x1E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1E},
	'E': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F},
	'F': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10},
	'G': {0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F},
	'H': {0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'I': {0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'J': {0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C},
	'K': {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11},
	'L': {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F},
	'M': {0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11},
	'N': {0x11, 0x11, 0x19, 0x15, 0x13, 0x11, 0x11},
	'O': {0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'P': {0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10},
	'Q': {0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D},
	'R': {0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11},
	'S': {0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E},
	'T': {0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04},
	'U': {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'V': {0x11, 0x11, 0x11, 0x11, 0x11, 0x0A, 0x04},
	'W': {0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0A},
	'X': {0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11},
	'Y': {0x11, 0x11, 0x11, 0x0A, 0x04, 0x04, 0x04},
	'Z': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F},
}

// Normalize maps a rune onto the atlas: letters are upper-cased and
// anything without a glyph becomes a space.
func Normalize(r rune) rune {
	r = unicode.ToUpper(r)
	if _, ok := glyphs[r]; !ok {
		return ' '
	}
	return r
}

// Atlas is an RGBA8 image of every glyph, white on transparent.
type Atlas struct {
	Pix  []uint8
	W, H int
}

func BuildAtlas() Atlas {
	a := Atlas{Pix: make([]uint8, AtlasW*AtlasH*4), W: AtlasW, H: AtlasH}
	for r, rows := range glyphs {
		cx, cy := cell(r)
		for y := 0; y < GlyphH; y++ {
			for x := 0; x < GlyphW; x++ {
				if rows[y]&(1<<(GlyphW-1-x)) == 0 {
					continue
				}
				i := ((cy*CellH+y)*AtlasW + cx*CellW + x) * 4
				a.Pix[i+0] = 255
				a.Pix[i+1] = 255
				a.Pix[i+2] = 255
				a.Pix[i+3] = 255
			}
		}
	}
	return a
}

// UV returns the texture rectangle of r's glyph (without cell padding).
func UV(r rune) (u0, v0, u1, v1 float32) {
	cx, cy := cell(Normalize(r))
	u0 = float32(cx*CellW) / AtlasW
	v0 = float32(cy*CellH) / AtlasH
	u1 = float32(cx*CellW+GlyphW) / AtlasW
	v1 = float32(cy*CellH+GlyphH) / AtlasH
	return
}

func cell(r rune) (int, int) {
	i := int(r - atlasFirst)
	return i % AtlasCols, i / AtlasCols
}
