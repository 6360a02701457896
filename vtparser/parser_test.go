package vtparser

import (
	"bytes"
	"testing"

	"inkterm/screen"
)

func feed(p *Parser, s string) {
	for i := 0; i < len(s); i++ {
		p.Feed(s[i])
	}
}

func TestPlainTextWrites(t *testing.T) {
	buf := screen.NewBuffer()
	p := New(buf, nil)
	feed(p, "hi")
	if buf.CellAt(0, 0).Codepoint != 'h' || buf.CellAt(0, 1).Codepoint != 'i' {
		t.Fatalf("expected hi written, got %q %q", buf.CellAt(0, 0).Codepoint, buf.CellAt(0, 1).Codepoint)
	}
}

func TestCupThenEraseDisplay(t *testing.T) {
	buf := screen.NewBuffer()
	p := New(buf, nil)
	feed(p, "ABC")
	feed(p, "\x1b[1;1H") // CUP to (0,0)
	if buf.CursorRow() != 0 || buf.CursorCol() != 0 {
		t.Fatalf("expected cursor at origin, got (%d,%d)", buf.CursorRow(), buf.CursorCol())
	}
	feed(p, "\x1b[2J") // ED entire display
	if buf.CellAt(0, 0) != screen.DefaultCell {
		t.Fatal("expected display cleared")
	}
}

func TestSgrInverseAndReset(t *testing.T) {
	buf := screen.NewBuffer()
	p := New(buf, nil)
	feed(p, "\x1b[7mX\x1b[0mY")
	if buf.CellAt(0, 0).Attrs&screen.AttrInverse == 0 {
		t.Fatal("expected X written with inverse attribute")
	}
	if buf.CellAt(0, 1).Attrs != 0 {
		t.Fatal("expected attributes reset before Y")
	}
}

func TestSgrDimClearsBold(t *testing.T) {
	buf := screen.NewBuffer()
	p := New(buf, nil)
	feed(p, "\x1b[1mA\x1b[2mB")
	if buf.CellAt(0, 0).Attrs&screen.AttrBold == 0 {
		t.Fatal("expected A bold")
	}
	if buf.CellAt(0, 1).Attrs&screen.AttrBold != 0 {
		t.Fatal("expected SGR 2 to clear bold, matching the firmware's dim handling")
	}
}

func TestDeviceStatusReport(t *testing.T) {
	buf := screen.NewBuffer()
	var out bytes.Buffer
	p := New(buf, &out)
	feed(p, "\x1b[5;10H") // row 5, col 10 (1-based)
	feed(p, "\x1b[6n")
	if got, want := out.String(), "\x1b[5;10R"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDeviceAttributes(t *testing.T) {
	buf := screen.NewBuffer()
	var out bytes.Buffer
	p := New(buf, &out)
	feed(p, "\x1b[c")
	if got, want := out.String(), "\x1b[?1;0c"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestUtf8TwoByteDecode(t *testing.T) {
	buf := screen.NewBuffer()
	p := New(buf, nil)
	// U+00E9 (é) encoded as 0xC3 0xA9.
	p.Feed(0xC3)
	p.Feed(0xA9)
	if buf.CellAt(0, 0).Codepoint != 0x00E9 {
		t.Fatalf("expected U+00E9, got %#x", buf.CellAt(0, 0).Codepoint)
	}
}

func TestAltScreenDecset(t *testing.T) {
	buf := screen.NewBuffer()
	p := New(buf, nil)
	feed(p, "\x1b[?1049h")
	if !buf.IsAltScreen() {
		t.Fatal("expected alt screen entered by ?1049h")
	}
	feed(p, "\x1b[?1049l")
	if buf.IsAltScreen() {
		t.Fatal("expected alt screen left by ?1049l")
	}
}

func TestCursorVisibilityDectcem(t *testing.T) {
	buf := screen.NewBuffer()
	p := New(buf, nil)
	if !p.CursorVisible() {
		t.Fatal("expected cursor visible by default")
	}
	feed(p, "\x1b[?25l")
	if p.CursorVisible() {
		t.Fatal("expected cursor hidden after ?25l")
	}
	feed(p, "\x1b[?25h")
	if !p.CursorVisible() {
		t.Fatal("expected cursor shown after ?25h")
	}
}

func TestUnknownCsiWithPrefixIsSwallowed(t *testing.T) {
	buf := screen.NewBuffer()
	p := New(buf, nil)
	feed(p, "A")
	feed(p, "\x1b[>0c") // has a prefix byte, should be consumed without dispatch
	feed(p, "B")
	if buf.CellAt(0, 0).Codepoint != 'A' || buf.CellAt(0, 1).Codepoint != 'B' {
		t.Fatal("expected the unsupported sequence to be swallowed cleanly")
	}
}

func TestSgr256ColorBackground(t *testing.T) {
	buf := screen.NewBuffer()
	p := New(buf, nil)
	feed(p, "\x1b[48;5;232mA") // darkest gray ramp entry
	if buf.CellAt(0, 0).BgBright != 8 {
		t.Fatalf("expected bg bright 8, got %d", buf.CellAt(0, 0).BgBright)
	}
}
