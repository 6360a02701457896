//go:build tinygo

package font

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"inkterm/config"
)

// glyphCapture satisfies the small Displayer surface tinyfont.DrawChar
// needs, recording pixels into a local glyph-sized bitmap instead of a
// real panel.
type glyphCapture struct {
	bits [config.FontH * BytesPerRow]byte
}

func (g *glyphCapture) Size() (int16, int16) { return int16(config.FontW), int16(config.FontH) }

func (g *glyphCapture) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= config.FontW || int(y) >= config.FontH {
		return
	}
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return
	}
	byteIdx := int(y)*BytesPerRow + int(x)/8
	bitIdx := 7 - (int(x) % 8)
	g.bits[byteIdx] |= 1 << uint(bitIdx)
}

func (g *glyphCapture) Display() error { return nil }

// TinyFont is an alternate Source backed by a tinygo.org/x/tinyfont
// Fonter, for hardware builds that already carry a ROM glyph table and
// would rather not pull in golang.org/x/image on a baremetal target.
type TinyFont struct {
	font  tinyfont.Fonter
	cache map[uint16][]byte
}

// NewTinyFont returns a TinyFont source backed by f.
func NewTinyFont(f tinyfont.Fonter) *TinyFont {
	return &TinyFont{font: f, cache: make(map[uint16][]byte)}
}

func (t *TinyFont) GetGlyph(cp uint16) []byte {
	if g, ok := t.cache[cp]; ok {
		return g
	}
	capture := &glyphCapture{}
	tinyfont.DrawChar(capture, t.font, 0, int16(config.FontH-1), rune(cp), color.RGBA{R: 255, G: 255, B: 255, A: 255})
	out := append([]byte(nil), capture.bits[:]...)
	t.cache[cp] = out
	return out
}
