package screen

import (
	"testing"

	"inkterm/config"
)

func TestPutCharDeferredWrap(t *testing.T) {
	b := NewBuffer()
	b.SetCursor(0, config.Cols-1)

	b.PutChar('X')
	if !b.Cursor.WrapPending {
		t.Fatal("expected wrap pending after filling last column")
	}
	if b.Cursor.Row != 0 || b.Cursor.Col != config.Cols-1 {
		t.Fatalf("cursor moved before the deferred wrap: row=%d col=%d", b.Cursor.Row, b.Cursor.Col)
	}

	b.PutChar('Y')
	if b.Cursor.WrapPending {
		t.Fatal("wrap should have resolved on the next char")
	}
	if b.Cursor.Row != 1 || b.Cursor.Col != 1 {
		t.Fatalf("expected cursor at (1,1), got (%d,%d)", b.Cursor.Row, b.Cursor.Col)
	}
	if b.CellAt(1, 0).Codepoint != 'Y' {
		t.Fatalf("expected Y at (1,0), got %q", b.CellAt(1, 0).Codepoint)
	}
}

func TestLineFeedScrollsAtBottomMargin(t *testing.T) {
	b := NewBuffer()
	b.SetCursor(config.Rows-1, 0)
	b.PutChar('Z')

	b.SetCursor(config.Rows-1, 0)
	b.LineFeed()

	if b.Cursor.Row != config.Rows-1 {
		t.Fatalf("cursor row changed on scroll, got %d", b.Cursor.Row)
	}
	if b.CellAt(config.Rows-2, 0).Codepoint != 'Z' {
		t.Fatalf("expected scrolled content at row %d, got %q", config.Rows-2, b.CellAt(config.Rows-2, 0).Codepoint)
	}
	if b.CellAt(config.Rows-1, 0) != DefaultCell {
		t.Fatal("expected bottom row cleared after scroll")
	}
}

func TestEraseDisplayModes(t *testing.T) {
	b := NewBuffer()
	for r := 0; r < config.Rows; r++ {
		b.SetCursor(r, 0)
		b.PutChar('A')
	}

	b.SetCursor(2, 0)
	b.EraseDisplay(0)
	if b.CellAt(2, 0) != DefaultCell {
		t.Fatal("expected row 2 cleared from cursor to end")
	}
	if b.CellAt(1, 0).Codepoint != 'A' {
		t.Fatal("rows above cursor should be untouched by mode 0")
	}
	if b.CellAt(3, 0) != DefaultCell {
		t.Fatal("rows below cursor should be cleared by mode 0")
	}
}

func TestScrollRegionConfinesScroll(t *testing.T) {
	b := NewBuffer()
	b.SetScrollRegion(2, 4)
	b.SetCursor(0, 0)
	b.PutChar('T')

	b.SetCursor(4, 0)
	b.LineFeed()

	if b.CellAt(0, 0).Codepoint != 'T' {
		t.Fatal("row outside scroll region should be untouched by a scroll")
	}
}

func TestSetScrollRegionRejectsInvalid(t *testing.T) {
	b := NewBuffer()
	b.scrollTop, b.scrollBottom = 1, 3
	b.SetScrollRegion(5, 5)
	if b.scrollTop != 1 || b.scrollBottom != 3 {
		t.Fatal("invalid region (top >= bottom) should be rejected")
	}
}

func TestSaveRestoreCursorKeepsWrapPending(t *testing.T) {
	b := NewBuffer()
	b.SetCursor(0, config.Cols-1)
	b.PutChar('Q')
	if !b.Cursor.WrapPending {
		t.Fatal("expected wrap pending before save")
	}

	b.SaveCursor()
	b.SetCursor(3, 3)
	b.RestoreCursor()

	if !b.Cursor.WrapPending {
		t.Fatal("wrap pending must be restored along with the saved cursor position")
	}
	if b.Cursor.Row != 0 || b.Cursor.Col != config.Cols-1 {
		t.Fatalf("unexpected restored position (%d,%d)", b.Cursor.Row, b.Cursor.Col)
	}
}

func TestSwitchScreenRoundTrip(t *testing.T) {
	b := NewBuffer()
	b.SetCursor(5, 5)
	b.PutChar('M')
	b.ClearDirty()

	b.SwitchScreen(true)
	if !b.IsAltScreen() {
		t.Fatal("expected alt screen active")
	}
	if b.CellAt(5, 5) != DefaultCell {
		t.Fatal("entering alt screen should start blank")
	}
	if b.Cursor.Row != 0 || b.Cursor.Col != 0 {
		t.Fatal("entering alt screen should reset the cursor")
	}

	b.PutChar('N')
	b.SwitchScreen(false)

	if b.IsAltScreen() {
		t.Fatal("expected main screen active")
	}
	if b.Cursor.Row != 5 || b.Cursor.Col != 6 {
		t.Fatalf("expected cursor restored to (5,6), got (%d,%d)", b.Cursor.Row, b.Cursor.Col)
	}
	if b.CellAt(5, 5).Codepoint != 'M' {
		t.Fatal("expected main screen content restored")
	}
	if b.DirtyRows().Empty() {
		t.Fatal("leaving alt screen should mark every row dirty")
	}
}

func TestInsertDeleteChars(t *testing.T) {
	b := NewBuffer()
	for i, ch := range []uint16{'A', 'B', 'C', 'D'} {
		b.SetCursor(0, i)
		b.PutChar(ch)
	}

	b.SetCursor(0, 1)
	b.InsertChars(1)
	if b.CellAt(0, 1) != DefaultCell {
		t.Fatal("expected blank inserted at cursor")
	}
	if b.CellAt(0, 2).Codepoint != 'B' {
		t.Fatalf("expected shifted B at col 2, got %q", b.CellAt(0, 2).Codepoint)
	}

	b.SetCursor(0, 0)
	b.DeleteChars(1)
	if b.CellAt(0, 0) != DefaultCell {
		t.Fatal("expected col 0 to take on col 1's (blank) content after delete")
	}
	if b.CellAt(0, 1).Codepoint != 'B' {
		t.Fatalf("expected B shifted into col 1, got %q", b.CellAt(0, 1).Codepoint)
	}
}
