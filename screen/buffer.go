// Package screen holds the character grid, cursor, and dirty-row tracking
// that the VT parser mutates and the renderer reads back.
package screen

import "inkterm/config"

// Buffer is the screen state: primary and alternate grids, the active
// cursor, the current scroll region, the pending write attributes, and
// which rows have changed since the renderer last looked.
type Buffer struct {
	cells    Grid
	altCells Grid

	Cursor Cursor

	altSavedRow, altSavedCol int
	scrollTop, scrollBottom  int

	attrs    Attr
	bgBright uint8

	dirty DirtySet

	altActive bool
}

// NewBuffer returns a Buffer with both grids cleared, the cursor at the
// origin, and every row marked dirty so the first render paints the whole
// panel.
func NewBuffer() *Buffer {
	b := &Buffer{
		scrollBottom: config.Rows - 1,
		bgBright:     255,
	}
	for r := 0; r < config.Rows; r++ {
		b.cells.clearRow(r)
	}
	b.markAllDirty()
	return b
}

// CursorRow and CursorCol report the cursor position.
func (b *Buffer) CursorRow() int { return b.Cursor.Row }
func (b *Buffer) CursorCol() int { return b.Cursor.Col }

// IsAltScreen reports whether the alternate screen is active.
func (b *Buffer) IsAltScreen() bool { return b.altActive }

// CellAt returns the cell at (row, col) of the active grid.
func (b *Buffer) CellAt(row, col int) Cell { return b.cells[row][col] }

// DirtyRows returns the set of rows changed since the last ClearDirty.
func (b *Buffer) DirtyRows() DirtySet { return b.dirty }

// ClearDirty resets the dirty set.
func (b *Buffer) ClearDirty() { b.dirty.Clear() }

func (b *Buffer) markRowDirty(row int) { b.dirty.Mark(row) }
func (b *Buffer) markAllDirty()        { b.dirty.MarkAll(config.Rows) }

func (b *Buffer) clearRow(row int) {
	b.cells.clearRow(row)
	b.markRowDirty(row)
}

func (b *Buffer) clearCell(row, col int) {
	b.cells[row][col] = DefaultCell
}

func (b *Buffer) clampCursor() { b.Cursor.clamp(config.Rows, config.Cols) }

// PutChar writes cp at the cursor with the current attributes and
// advances. If the previous character filled the last column, the
// deferred wrap happens first: the cursor moves to column 0 of the next
// row (scrolling if needed) before cp is placed.
func (b *Buffer) PutChar(cp uint16) {
	if b.Cursor.WrapPending {
		b.Cursor.WrapPending = false
		b.Cursor.Col = 0
		b.LineFeed()
	}
	b.cells[b.Cursor.Row][b.Cursor.Col] = Cell{
		Codepoint: cp,
		Attrs:     b.attrs,
		BgBright:  b.bgBright,
	}
	b.markRowDirty(b.Cursor.Row)
	b.Cursor.Col++
	if b.Cursor.Col >= config.Cols {
		b.Cursor.Col = config.Cols - 1
		b.Cursor.WrapPending = true
	}
}

// SetCursor moves the cursor to an absolute position (CSI CUP), clamped to
// the grid and clearing any pending wrap.
func (b *Buffer) SetCursor(row, col int) {
	b.Cursor.Row = row
	b.Cursor.Col = col
	b.Cursor.WrapPending = false
	b.clampCursor()
}

// MoveCursorUp, MoveCursorDown, MoveCursorForward, and MoveCursorBack
// shift the cursor relative to its current position, clamping to the
// grid edges and clearing any pending wrap.
func (b *Buffer) MoveCursorUp(n int) {
	b.Cursor.Row -= n
	if b.Cursor.Row < 0 {
		b.Cursor.Row = 0
	}
	b.Cursor.WrapPending = false
}

func (b *Buffer) MoveCursorDown(n int) {
	b.Cursor.Row += n
	if b.Cursor.Row >= config.Rows {
		b.Cursor.Row = config.Rows - 1
	}
	b.Cursor.WrapPending = false
}

func (b *Buffer) MoveCursorForward(n int) {
	b.Cursor.Col += n
	if b.Cursor.Col >= config.Cols {
		b.Cursor.Col = config.Cols - 1
	}
	b.Cursor.WrapPending = false
}

func (b *Buffer) MoveCursorBack(n int) {
	b.Cursor.Col -= n
	if b.Cursor.Col < 0 {
		b.Cursor.Col = 0
	}
	b.Cursor.WrapPending = false
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (b *Buffer) CarriageReturn() {
	b.Cursor.Col = 0
	b.Cursor.WrapPending = false
}

// LineFeed moves the cursor down one row, scrolling the scroll region up
// when the cursor sits on its bottom margin.
func (b *Buffer) LineFeed() {
	if b.Cursor.Row == b.scrollBottom {
		b.ScrollUp(1)
	} else if b.Cursor.Row < config.Rows-1 {
		b.Cursor.Row++
	}
}

// ReverseIndex moves the cursor up one row, scrolling the scroll region
// down when the cursor sits on its top margin.
func (b *Buffer) ReverseIndex() {
	if b.Cursor.Row == b.scrollTop {
		b.ScrollDown(1)
	} else if b.Cursor.Row > 0 {
		b.Cursor.Row--
	}
}

// Tab advances the cursor to the next tab stop, clamped to the last
// column.
func (b *Buffer) Tab() {
	next := ((b.Cursor.Col / config.TabWidth) + 1) * config.TabWidth
	if next >= config.Cols {
		next = config.Cols - 1
	}
	b.Cursor.Col = next
	b.Cursor.WrapPending = false
}

// Backspace moves the cursor back one column, stopping at column 0.
func (b *Buffer) Backspace() {
	if b.Cursor.Col > 0 {
		b.Cursor.Col--
	}
	b.Cursor.WrapPending = false
}

// EraseLine clears part or all of the cursor's row: mode 0 from the
// cursor to the end, 1 from the start to the cursor, 2 the entire row.
func (b *Buffer) EraseLine(mode int) {
	b.markRowDirty(b.Cursor.Row)
	switch mode {
	case 0:
		for c := b.Cursor.Col; c < config.Cols; c++ {
			b.clearCell(b.Cursor.Row, c)
		}
	case 1:
		for c := 0; c <= b.Cursor.Col; c++ {
			b.clearCell(b.Cursor.Row, c)
		}
	case 2:
		b.clearRow(b.Cursor.Row)
	}
}

// EraseDisplay clears part or all of the grid: mode 0 from the cursor to
// the end of the display, 1 from the start to the cursor, 2 the entire
// display.
func (b *Buffer) EraseDisplay(mode int) {
	switch mode {
	case 0:
		b.EraseLine(0)
		for r := b.Cursor.Row + 1; r < config.Rows; r++ {
			b.clearRow(r)
		}
	case 1:
		for r := 0; r < b.Cursor.Row; r++ {
			b.clearRow(r)
		}
		b.EraseLine(1)
	case 2:
		for r := 0; r < config.Rows; r++ {
			b.clearRow(r)
		}
	}
}

// SetScrollRegion sets the scroll margins (DECSTBM). An invalid region
// (top >= bottom after clamping) is ignored. A valid region resets the
// cursor to the origin, matching the original firmware.
func (b *Buffer) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom >= config.Rows {
		bottom = config.Rows - 1
	}
	if top >= bottom {
		return
	}
	b.scrollTop = top
	b.scrollBottom = bottom
	b.Cursor.Row = 0
	b.Cursor.Col = 0
}

// ScrollUp and ScrollDown scroll the current scroll region by n rows.
func (b *Buffer) ScrollUp(n int)   { b.scrollRegionUp(b.scrollTop, b.scrollBottom, n) }
func (b *Buffer) ScrollDown(n int) { b.scrollRegionDown(b.scrollTop, b.scrollBottom, n) }

func (b *Buffer) scrollRegionUp(top, bottom, n int) {
	if n <= 0 {
		return
	}
	if n > bottom-top+1 {
		n = bottom - top + 1
	}
	for r := top; r <= bottom-n; r++ {
		b.cells[r] = b.cells[r+n]
		b.markRowDirty(r)
	}
	for r := bottom - n + 1; r <= bottom; r++ {
		b.clearRow(r)
	}
}

func (b *Buffer) scrollRegionDown(top, bottom, n int) {
	if n <= 0 {
		return
	}
	if n > bottom-top+1 {
		n = bottom - top + 1
	}
	for r := bottom; r >= top+n; r-- {
		b.cells[r] = b.cells[r-n]
		b.markRowDirty(r)
	}
	for r := top; r < top+n; r++ {
		b.clearRow(r)
	}
}

// InsertLines and DeleteLines (IL/DL) shift rows within the scroll
// region, acting only when the cursor sits inside it.
func (b *Buffer) InsertLines(n int) {
	if b.Cursor.Row < b.scrollTop || b.Cursor.Row > b.scrollBottom {
		return
	}
	b.scrollRegionDown(b.Cursor.Row, b.scrollBottom, n)
}

func (b *Buffer) DeleteLines(n int) {
	if b.Cursor.Row < b.scrollTop || b.Cursor.Row > b.scrollBottom {
		return
	}
	b.scrollRegionUp(b.Cursor.Row, b.scrollBottom, n)
}

// InsertChars (ICH) shifts the cursor's row right by n starting at the
// cursor, dropping characters that fall off the right edge.
func (b *Buffer) InsertChars(n int) {
	b.markRowDirty(b.Cursor.Row)
	row := b.Cursor.Row
	for c := config.Cols - 1; c >= b.Cursor.Col+n; c-- {
		b.cells[row][c] = b.cells[row][c-n]
	}
	end := b.Cursor.Col + n
	if end > config.Cols {
		end = config.Cols
	}
	for c := b.Cursor.Col; c < end; c++ {
		b.clearCell(row, c)
	}
}

// DeleteChars (DCH) shifts the cursor's row left by n starting at the
// cursor, pulling in blanks from beyond the right edge.
func (b *Buffer) DeleteChars(n int) {
	b.markRowDirty(b.Cursor.Row)
	row := b.Cursor.Row
	if n > config.Cols-b.Cursor.Col {
		n = config.Cols - b.Cursor.Col
	}
	for c := b.Cursor.Col; c < config.Cols-n; c++ {
		b.cells[row][c] = b.cells[row][c+n]
	}
	for c := config.Cols - n; c < config.Cols; c++ {
		b.clearCell(row, c)
	}
}

// EraseChars (ECH) clears n cells starting at the cursor without
// shifting anything.
func (b *Buffer) EraseChars(n int) {
	b.markRowDirty(b.Cursor.Row)
	end := b.Cursor.Col + n
	if end > config.Cols {
		end = config.Cols
	}
	for c := b.Cursor.Col; c < end; c++ {
		b.clearCell(b.Cursor.Row, c)
	}
}

// SaveCursor and RestoreCursor implement DECSC/DECRC (and CSI s/u).
// WrapPending is saved and restored with the position — see Cursor's doc
// comment.
func (b *Buffer) SaveCursor()    { b.Cursor.save() }
func (b *Buffer) RestoreCursor() { b.Cursor.restore(config.Rows, config.Cols) }

// SwitchScreen enters or leaves the alternate screen (CSI ?47h/l,
// ?1047h/l, ?1049h/l). Entering snapshots the main grid and cursor into
// alternate storage and blanks the active grid; leaving restores them and
// marks every row dirty. The scroll region resets to the full grid and
// any pending wrap is cleared either way. A call matching the current
// state is a no-op.
func (b *Buffer) SwitchScreen(alt bool) {
	if alt == b.altActive {
		return
	}

	if alt {
		b.altSavedRow = b.Cursor.Row
		b.altSavedCol = b.Cursor.Col
		b.altCells = b.cells
		for r := 0; r < config.Rows; r++ {
			b.clearRow(r)
		}
		b.Cursor.Row = 0
		b.Cursor.Col = 0
	} else {
		b.cells = b.altCells
		b.Cursor.Row = b.altSavedRow
		b.Cursor.Col = b.altSavedCol
		b.markAllDirty()
	}

	b.scrollTop = 0
	b.scrollBottom = config.Rows - 1
	b.Cursor.WrapPending = false
	b.altActive = alt
}

// SetAttr, ClearAttr, and ResetAttrs control the attribute bits applied
// to characters written after them.
func (b *Buffer) SetAttr(attr Attr)   { b.attrs |= attr }
func (b *Buffer) ClearAttr(attr Attr) { b.attrs &^= attr }
func (b *Buffer) ResetAttrs() {
	b.attrs = 0
	b.bgBright = 255
}

// SetBgBright sets the background brightness applied to characters
// written after it.
func (b *Buffer) SetBgBright(v uint8) { b.bgBright = v }

// CurrentAttrs returns the attribute bits that new characters are
// written with.
func (b *Buffer) CurrentAttrs() Attr { return b.attrs }
