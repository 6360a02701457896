// Package hal defines the hardware-abstraction surface the terminal core is
// built against: a 1bpp e-ink display, a byte-oriented serial transport, a
// log sink, and a tick source. Concrete implementations live in the
// host_*.go (desktop preview) and tinygo.go (Badger 2040 hardware) files,
// selected by build tag the same way the rest of this tree is split.
package hal

import "errors"

// ErrNotImplemented is returned by HAL methods that have no backing
// capability on the current target (e.g. Serial on a build with no UART).
var ErrNotImplemented = errors.New("hal: not implemented")

// Logger writes newline-delimited diagnostic lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// RefreshMode selects how the e-ink panel redraws its pixels.
type RefreshMode uint8

const (
	// FastRefresh trades image quality for speed; used for small windowed updates.
	FastRefresh RefreshMode = iota
	// FullRefresh flashes the whole panel and clears ghosting.
	FullRefresh
)

// Framebuffer is the 1 bit-per-pixel backing store for the display. Row
// stride is ceil(width/8) bytes; within a byte, pixel 0 is the MSB. Bit
// value 1 is white, 0 is black.
type Framebuffer interface {
	Width() int
	Height() int
	StrideBytes() int
	Pixels() []byte
}

// Display is the physical e-ink driver's capability set, named by role per
// the terminal core's external-collaborator boundary: it owns the panel's
// refresh timing and ghost-clearing behavior, not the pixels themselves.
type Display interface {
	Framebuffer() Framebuffer
	DisplayBuffer(mode RefreshMode)
	DisplayWindow(x, y, w, h int)
	ClearScreen(fill byte)
	DeepSleep()
}

// Serial is the host I/O transport: a byte-oriented bidirectional stream
// carrying parser input in one direction and host reports (DSR/DA replies)
// in the other.
type Serial interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// Time is a tick source driving the top-level loop's refresh cadence.
type Time interface {
	Ticks() <-chan uint64
}

// HAL aggregates the capabilities a target exposes. Every field is always
// non-nil; targets with no real backing device return a stub that reports
// ErrNotImplemented rather than nil interfaces, so callers never need a
// nil check before use.
type HAL interface {
	Logger() Logger
	Display() Display
	Serial() Serial
	Time() Time
}
