package vtparser

import (
	"fmt"

	"inkterm/config"
)

func (p *Parser) dispatchCsi(cmd byte) {
	n := p.param(0, 1)

	if p.questionMark {
		p.dispatchPrivateMode(cmd)
		return
	}

	switch cmd {
	case 'A': // CUU
		p.buf.MoveCursorUp(n)
	case 'B': // CUD
		p.buf.MoveCursorDown(n)
	case 'C': // CUF
		p.buf.MoveCursorForward(n)
	case 'D': // CUB
		p.buf.MoveCursorBack(n)
	case 'E': // CNL
		p.buf.MoveCursorDown(n)
		p.buf.CarriageReturn()
	case 'F': // CPL
		p.buf.MoveCursorUp(n)
		p.buf.CarriageReturn()
	case 'G': // CHA
		p.buf.SetCursor(p.buf.CursorRow(), p.param(0, 1)-1)
	case 'H', 'f': // CUP, HVP
		p.buf.SetCursor(p.param(0, 1)-1, p.param(1, 1)-1)
	case 'J': // ED
		p.buf.EraseDisplay(p.param(0, 0))
	case 'K': // EL
		p.buf.EraseLine(p.param(0, 0))
	case 'L': // IL
		p.buf.InsertLines(n)
	case 'M': // DL
		p.buf.DeleteLines(n)
	case 'P': // DCH
		p.buf.DeleteChars(n)
	case '@': // ICH
		p.buf.InsertChars(n)
	case 'S': // SU
		p.buf.ScrollUp(n)
	case 'T': // SD
		p.buf.ScrollDown(n)
	case 'd': // VPA
		p.buf.SetCursor(p.param(0, 1)-1, p.buf.CursorCol())
	case 'm': // SGR
		p.handleSgr()
	case 'r': // DECSTBM
		p.buf.SetScrollRegion(p.param(0, 1)-1, p.param(1, config.Rows)-1)
	case 'n': // DSR
		if p.param(0, 0) == 6 {
			p.reply("\033[%d;%dR", p.buf.CursorRow()+1, p.buf.CursorCol()+1)
		}
	case 's': // ANSI save cursor
		p.buf.SaveCursor()
	case 'u': // ANSI restore cursor
		p.buf.RestoreCursor()
	case 'X': // ECH
		p.buf.EraseChars(n)
	case 'c': // DA
		p.reply("\033[?1;0c")
	}
}

func (p *Parser) dispatchPrivateMode(cmd byte) {
	mode := p.param(0, 0)
	switch cmd {
	case 'h': // DECSET
		switch mode {
		case 25: // DECTCEM show cursor
			p.cursorVisible = true
		case 47, 1047, 1049:
			if mode == 1049 {
				p.buf.SaveCursor()
			}
			p.buf.SwitchScreen(true)
		}
	case 'l': // DECRST
		switch mode {
		case 25: // DECTCEM hide cursor
			p.cursorVisible = false
		case 47, 1047, 1049:
			p.buf.SwitchScreen(false)
			if mode == 1049 {
				p.buf.RestoreCursor()
			}
		}
	}
}

func (p *Parser) reply(format string, args ...any) {
	if p.out == nil {
		return
	}
	fmt.Fprintf(p.out, format, args...)
}
