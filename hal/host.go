//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// DefaultWidth and DefaultHeight match the e-ink panel this terminal targets
// (see the DISPLAY_W/DISPLAY_H constants consumed by the renderer).
const (
	DefaultWidth  = 800
	DefaultHeight = 480
)

type hostHAL struct {
	logger *hostLogger
	disp   *hostDisplay
	serial *hostSerial
	t      *hostTime
}

// New returns a host HAL implementation backed by an in-process 1bpp
// framebuffer, stdin/stdout serial, and a wall-clock tick source.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		disp:   newHostDisplay(DefaultWidth, DefaultHeight, logger),
		serial: &hostSerial{r: os.Stdin, w: os.Stdout},
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Serial() Serial   { return h.serial }
func (h *hostHAL) Time() Time       { return h.t }

// hostDisplay simulates the physical e-ink driver: it owns the framebuffer
// and records refresh commands instead of shipping them over SPI.
type hostDisplay struct {
	mu       sync.Mutex
	fb       *hostFramebuffer
	log      Logger
	asleep   bool
	refreshN int
}

func newHostDisplay(w, h int, log Logger) *hostDisplay {
	return &hostDisplay{fb: newHostFramebuffer(w, h), log: log}
}

func (d *hostDisplay) Framebuffer() Framebuffer { return d.fb }

func (d *hostDisplay) DisplayBuffer(mode RefreshMode) {
	d.mu.Lock()
	d.asleep = false
	d.refreshN++
	d.mu.Unlock()
	name := "fast"
	if mode == FullRefresh {
		name = "full"
	}
	d.log.WriteLineString(fmt.Sprintf("eink: display_buffer(%s) #%d", name, d.refreshN))
}

func (d *hostDisplay) DisplayWindow(x, y, w, h int) {
	d.mu.Lock()
	d.asleep = false
	d.mu.Unlock()
	d.log.WriteLineString(fmt.Sprintf("eink: display_window(%d,%d,%d,%d)", x, y, w, h))
}

func (d *hostDisplay) ClearScreen(fill byte) {
	buf := d.fb.Pixels()
	for i := range buf {
		buf[i] = fill
	}
	d.log.WriteLineString("eink: clear_screen")
}

func (d *hostDisplay) DeepSleep() {
	d.mu.Lock()
	d.asleep = true
	d.mu.Unlock()
	d.log.WriteLineString("eink: deep_sleep")
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
