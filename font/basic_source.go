//go:build !tinygo

package font

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"inkterm/config"
)

// Basic is the default Source: glyphs rasterized on demand from
// golang.org/x/image/font/basicfont and cached, centered in the
// config.FontW x config.FontH cell.
type Basic struct {
	face font.Face

	mu    sync.Mutex
	cache map[uint16][]byte
}

// NewBasic returns a Basic source backed by basicfont.Face7x13.
func NewBasic() *Basic {
	return &Basic{face: basicfont.Face7x13, cache: make(map[uint16][]byte)}
}

func (b *Basic) GetGlyph(cp uint16) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if g, ok := b.cache[cp]; ok {
		return g
	}
	g := b.rasterize(cp)
	b.cache[cp] = g
	return g
}

func (b *Basic) rasterize(cp uint16) []byte {
	r := rune(cp)
	if _, ok := b.face.GlyphAdvance(r); !ok {
		r = ' '
	}

	dst := image.NewAlpha(image.Rect(0, 0, config.FontW, config.FontH))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: b.face,
	}

	metrics := b.face.Metrics()
	baseline := (config.FontH + metrics.Ascent.Ceil() - metrics.Descent.Ceil()) / 2
	originX := (config.FontW - 7) / 2
	if originX < 0 {
		originX = 0
	}
	d.Dot = fixed.P(originX, baseline)
	d.DrawString(string(r))

	return packAlpha(dst)
}

func packAlpha(img *image.Alpha) []byte {
	out := blankGlyph()
	for y := 0; y < config.FontH; y++ {
		for x := 0; x < config.FontW; x++ {
			if img.AlphaAt(x, y).A <= 127 {
				continue
			}
			byteIdx := y*BytesPerRow + x/8
			bitIdx := 7 - (x % 8)
			out[byteIdx] |= 1 << uint(bitIdx)
		}
	}
	return out
}
