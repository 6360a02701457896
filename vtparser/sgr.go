package vtparser

import "inkterm/screen"

// ansiLum is the approximate luminance (0-255) of the 16 standard ANSI
// colors, adopted verbatim from the original firmware's tuning rather
// than re-derived.
var ansiLum = [16]uint8{
	0,   // 0: black
	76,  // 1: red
	149, // 2: green
	226, // 3: yellow
	29,  // 4: blue
	105, // 5: magenta
	178, // 6: cyan
	200, // 7: white (light gray)
	128, // 8: bright black (dark gray)
	128, // 9: bright red
	192, // 10: bright green
	255, // 11: bright yellow
	80,  // 12: bright blue
	160, // 13: bright magenta
	224, // 14: bright cyan
	255, // 15: bright white
}

// lum256 maps a 256-color palette index to luminance: the 16 standard
// colors via ansiLum, the 6x6x6 color cube, or the grayscale ramp.
func lum256(n int) uint8 {
	if n < 16 {
		return ansiLum[n]
	}
	if n >= 232 {
		return uint8(8 + (n-232)*10)
	}
	idx := n - 16
	b5 := idx % 6
	g5 := (idx / 6) % 6
	r5 := idx / 36
	r, g, b := cubeComponent(r5), cubeComponent(g5), cubeComponent(b5)
	return lumRGB(r, g, b)
}

func cubeComponent(v int) int {
	if v == 0 {
		return 0
	}
	return v*40 + 55
}

func lumRGB(r, g, b int) uint8 {
	return uint8((r*77 + g*150 + b*29) >> 8)
}

// handleSgr applies the collected parameters as a Select Graphic
// Rendition sequence. An empty parameter list is equivalent to SGR 0.
func (p *Parser) handleSgr() {
	if p.paramCount == 0 {
		p.buf.ResetAttrs()
		return
	}

	for i := 0; i < p.paramCount; i++ {
		switch v := p.params[i]; v {
		case 0:
			p.buf.ResetAttrs()
		case 1:
			p.buf.SetAttr(screen.AttrBold)
		case 2: // dim: this firmware has no separate dim attribute
			p.buf.ClearAttr(screen.AttrBold)
		case 4:
			p.buf.SetAttr(screen.AttrUnderline)
		case 7:
			p.buf.SetAttr(screen.AttrInverse)
		case 22:
			p.buf.ClearAttr(screen.AttrBold)
		case 24:
			p.buf.ClearAttr(screen.AttrUnderline)
		case 27:
			p.buf.ClearAttr(screen.AttrInverse)

		case 30, 31, 32, 33, 34, 35, 36, 37, 39:
			// Foreground color: this is a 1bpp display, foreground is
			// always rendered at full contrast against the dithered
			// background, so these carry no attribute change.

		case 40, 41, 42, 43, 44, 45, 46, 47:
			p.buf.SetBgBright(ansiLum[v-40])
		case 49:
			p.buf.SetBgBright(255)

		case 90, 91, 92, 93, 94, 95, 96, 97:
			p.buf.SetAttr(screen.AttrBold)

		case 100, 101, 102, 103, 104, 105, 106, 107:
			p.buf.SetBgBright(ansiLum[v-100+8])

		case 38:
			i = p.handleExtendedFg(i)
		case 48:
			i = p.handleExtendedBg(i)
		}
	}
}

// handleExtendedFg parses `38;5;N` (256-color) or `38;2;R;G;B` (direct
// RGB) starting at index i (the `38`), returning the index of the last
// parameter consumed.
func (p *Parser) handleExtendedFg(i int) int {
	if i+1 < p.paramCount && p.params[i+1] == 5 {
		if i+2 < p.paramCount {
			n := p.params[i+2]
			if n >= 8 && n < 16 {
				p.buf.SetAttr(screen.AttrBold)
			}
		}
		return i + 2
	}
	if i+1 < p.paramCount && p.params[i+1] == 2 {
		if i+4 < p.paramCount {
			lum := lumRGB(p.params[i+2], p.params[i+3], p.params[i+4])
			if lum > 150 {
				p.buf.SetAttr(screen.AttrBold)
			}
		}
		return i + 4
	}
	return i
}

// handleExtendedBg parses `48;5;N` or `48;2;R;G;B` the same way, setting
// the background brightness from the resolved luminance.
func (p *Parser) handleExtendedBg(i int) int {
	if i+1 < p.paramCount && p.params[i+1] == 5 {
		if i+2 < p.paramCount {
			p.buf.SetBgBright(lum256(p.params[i+2]))
		}
		return i + 2
	}
	if i+1 < p.paramCount && p.params[i+1] == 2 {
		if i+4 < p.paramCount {
			p.buf.SetBgBright(lumRGB(p.params[i+2], p.params[i+3], p.params[i+4]))
		}
		return i + 4
	}
	return i
}
