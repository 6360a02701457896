// Package render blits the screen buffer into a 1bpp framebuffer with
// Bayer-dithered backgrounds and decides how much of the e-ink panel
// needs to be refreshed.
package render

import (
	"inkterm/config"
	"inkterm/font"
	"inkterm/hal"
	"inkterm/screen"
)

// bayer4x4 are the dither thresholds (0-15) used to decide, pixel by
// pixel, whether a background brightness level should render black or
// white on this 1bpp panel.
var bayer4x4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Renderer owns the refresh policy: it tracks how many fast refreshes
// have happened since the last full one and where the cursor was last
// drawn, so it can erase the old cursor and decide between a windowed
// partial update, a full-panel fast refresh, or a ghost-clearing full
// refresh.
type Renderer struct {
	display hal.Display
	buf     *screen.Buffer
	src     font.Source

	fastRefreshCount int
	lastCursorRow    int
	lastCursorCol    int
	cursorVisible    bool
}

// New returns a Renderer drawing buf into display's framebuffer using
// glyphs from src.
func New(display hal.Display, buf *screen.Buffer, src font.Source) *Renderer {
	return &Renderer{
		display:       display,
		buf:           buf,
		src:           src,
		lastCursorRow: -1,
		lastCursorCol: -1,
		cursorVisible: true,
	}
}

// SetCursorVisible mirrors vtparser.Parser.CursorVisible (DECTCEM):
// the cursor block is skipped entirely while hidden.
func (r *Renderer) SetCursorVisible(v bool) { r.cursorVisible = v }

func (r *Renderer) blitGlyph(px, py int, glyph []byte, bgBright uint8, invertGlyph bool) {
	fb := r.display.Framebuffer()
	pixels := fb.Pixels()
	stride := fb.StrideBytes()
	width, height := fb.Width(), fb.Height()

	for gy := 0; gy < config.FontH; gy++ {
		fbY := py + gy
		if fbY >= height {
			break
		}
		for gx := 0; gx < config.FontW; gx++ {
			fbX := px + gx
			if fbX >= width {
				break
			}

			glyphByteIdx := gy*font.BytesPerRow + gx/8
			glyphBitIdx := 7 - (gx % 8)
			isGlyphPixel := glyphByteIdx < len(glyph) && (glyph[glyphByteIdx]>>uint(glyphBitIdx))&1 != 0

			var drawBlack bool
			if isGlyphPixel {
				drawBlack = !invertGlyph
			} else {
				threshold := bayer4x4[gy&3][gx&3]
				level := (int(bgBright) * 17) >> 8
				drawBlack = level <= int(threshold)
			}

			fbByteIdx := fbY*stride + fbX/8
			fbBitIdx := uint(7 - (fbX % 8))
			if drawBlack {
				pixels[fbByteIdx] &^= 1 << fbBitIdx
			} else {
				pixels[fbByteIdx] |= 1 << fbBitIdx
			}
		}
	}
}

func (r *Renderer) renderRow(row int) {
	for col := 0; col < config.Cols; col++ {
		cell := r.buf.CellAt(row, col)
		glyph := r.src.GetGlyph(cell.Codepoint)

		bgBright := cell.BgBright
		if cell.Attrs&screen.AttrInverse != 0 {
			bgBright = 255 - bgBright
		}
		invertGlyph := bgBright < 128

		r.blitGlyph(config.OffsetX+col*config.FontW, row*config.FontH, glyph, bgBright, invertGlyph)
	}
}

// RenderCursor draws the cursor block: the cell at the cursor position
// with its effective background inverted. A no-op while the cursor is
// hidden (DECTCEM).
func (r *Renderer) RenderCursor() {
	if !r.cursorVisible {
		return
	}

	row, col := r.buf.CursorRow(), r.buf.CursorCol()
	if col >= config.Cols {
		col = config.Cols - 1
	}

	cell := r.buf.CellAt(row, col)
	glyph := r.src.GetGlyph(cell.Codepoint)

	bgBright := cell.BgBright
	if cell.Attrs&screen.AttrInverse != 0 {
		bgBright = 255 - bgBright
	}
	bgBright = 255 - bgBright
	invertGlyph := bgBright < 128

	r.blitGlyph(config.OffsetX+col*config.FontW, row*config.FontH, glyph, bgBright, invertGlyph)
}

// RenderDirty repaints every dirty row (plus the row the cursor last
// occupied, so the old cursor block is erased), draws the cursor at its
// new position, and refreshes the display. Five or fewer dirty rows use
// a windowed partial update; more than that falls back to a full-panel
// fast refresh. Either way, every config.FullRefreshInterval fast
// refreshes are followed by one full refresh to clear e-ink ghosting.
//
// RenderDirty returns without drawing only when nothing is dirty and no
// cursor has been drawn yet; once a cursor has been drawn, its last row is
// always repainted and refreshed, even if nothing else changed.
func (r *Renderer) RenderDirty() {
	dirty := r.buf.DirtyRows()
	if r.lastCursorRow >= 0 {
		dirty.Mark(r.lastCursorRow)
	}
	if dirty.Empty() {
		return
	}

	rows := dirty.Rows(config.Rows)
	for _, row := range rows {
		r.renderRow(row)
	}
	r.RenderCursor()

	if len(rows) > config.DirtyRowsPartialMax {
		r.display.DisplayBuffer(hal.FastRefresh)
		r.fastRefreshCount++
	} else {
		minRow, maxRow, _ := dirty.Bounds()
		curRow := r.buf.CursorRow()
		if curRow < minRow {
			minRow = curRow
		}
		if curRow > maxRow {
			maxRow = curRow
		}
		if r.lastCursorRow >= 0 {
			if r.lastCursorRow < minRow {
				minRow = r.lastCursorRow
			}
			if r.lastCursorRow > maxRow {
				maxRow = r.lastCursorRow
			}
		}

		y := minRow * config.FontH
		h := (maxRow - minRow + 1) * config.FontH
		r.display.DisplayWindow(0, y, config.DisplayW, h)
		r.fastRefreshCount++
	}

	if r.fastRefreshCount >= config.FullRefreshInterval {
		r.display.DisplayBuffer(hal.FullRefresh)
		r.fastRefreshCount = 0
	}

	r.lastCursorRow = r.buf.CursorRow()
	r.lastCursorCol = r.buf.CursorCol()
	r.buf.ClearDirty()
}

// RenderFull repaints every row unconditionally and issues a full
// refresh, clearing any accumulated e-ink ghosting. Exposed as a
// first-class operation for a future input layer to trigger (the
// original firmware wires it to a button combo), but never called by
// RenderDirty's own policy.
func (r *Renderer) RenderFull() {
	for row := 0; row < config.Rows; row++ {
		r.renderRow(row)
	}
	r.RenderCursor()
	r.display.DisplayBuffer(hal.FullRefresh)
	r.fastRefreshCount = 0
	r.lastCursorRow = r.buf.CursorRow()
	r.lastCursorCol = r.buf.CursorCol()
	r.buf.ClearDirty()
}
