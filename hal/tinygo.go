//go:build tinygo && badger2040

package hal

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/uc8151"
)

// DefaultWidth and DefaultHeight match the Badger 2040's panel.
const (
	DefaultWidth  = 296
	DefaultHeight = 128
)

type badgerHAL struct {
	logger *uartLogger
	disp   *badgerDisplay
	serial *uartSerial
	t      *tinyGoTime
}

// New returns a Badger 2040 (RP2040 + UC8151 e-ink) HAL implementation.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	enable := machine.ENABLE_3V3
	enable.Configure(machine.PinConfig{Mode: machine.PinOutput})
	enable.High()

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 12000000,
		SCK:       machine.EPD_SCK_PIN,
		SDO:       machine.EPD_SDO_PIN,
	})

	dev := uc8151.New(machine.SPI0, machine.EPD_CS_PIN, machine.EPD_DC_PIN, machine.EPD_RESET_PIN, machine.EPD_BUSY_PIN)
	dev.Configure(uc8151.Config{
		Speed:       uc8151.TURBO,
		FlickerFree: true,
		Rotation:    uc8151.ROTATION_270,
	})
	dev.ClearDisplay()

	logger := &uartLogger{uart: uart}
	return &badgerHAL{
		logger: logger,
		disp:   newBadgerDisplay(&dev, enable),
		serial: &uartSerial{uart: uart},
		t:      newTinyGoTime(),
	}
}

func (h *badgerHAL) Logger() Logger   { return h.logger }
func (h *badgerHAL) Display() Display { return h.disp }
func (h *badgerHAL) Serial() Serial   { return h.serial }
func (h *badgerHAL) Time() Time       { return h.t }

// badgerDisplay drives a uc8151-backed panel. It keeps its own 1bpp buffer
// since the driver's SetPixel/Display pair doesn't expose a raw byte slice;
// DisplayBuffer/DisplayWindow both flush the whole panel because the UC8151
// controller has no partial-refresh window command in this driver's API —
// the renderer's windowed bounding box is still computed for cost-accounting
// parity with the host preview, just not transmitted as a sub-rectangle.
type badgerDisplay struct {
	dev    *uc8151.Device
	enable machine.Pin
	fb     *plainFramebuffer
}

func newBadgerDisplay(dev *uc8151.Device, enable machine.Pin) *badgerDisplay {
	return &badgerDisplay{dev: dev, enable: enable, fb: newPlainFramebuffer(DefaultWidth, DefaultHeight)}
}

func (d *badgerDisplay) Framebuffer() Framebuffer { return d.fb }

func (d *badgerDisplay) flushPixels() {
	stride := d.fb.StrideBytes()
	buf := d.fb.Pixels()
	for y := 0; y < d.fb.height; y++ {
		row := y * stride
		for x := 0; x < d.fb.width; x++ {
			bit := buf[row+x/8] & (0x80 >> uint(x%8))
			c := color.RGBA{R: 0, G: 0, B: 0, A: 255}
			if bit != 0 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			d.dev.SetPixel(int16(x), int16(y), c)
		}
	}
}

func (d *badgerDisplay) DisplayBuffer(mode RefreshMode) {
	_ = mode
	d.flushPixels()
	_ = d.dev.Display()
}

func (d *badgerDisplay) DisplayWindow(x, y, w, h int) {
	_ = x
	_ = y
	_ = w
	_ = h
	d.flushPixels()
	_ = d.dev.Display()
}

func (d *badgerDisplay) ClearScreen(fill byte) {
	buf := d.fb.Pixels()
	for i := range buf {
		buf[i] = fill
	}
	d.dev.ClearDisplay()
}

func (d *badgerDisplay) DeepSleep() {
	time.Sleep(time.Millisecond)
	d.enable.Low()
}

// plainFramebuffer is a bare 1bpp byte buffer, used where no preview window
// needs to read it under a lock.
type plainFramebuffer struct {
	width, height, stride int
	buf                    []byte
}

func newPlainFramebuffer(w, h int) *plainFramebuffer {
	stride := (w + 7) / 8
	return &plainFramebuffer{width: w, height: h, stride: stride, buf: make([]byte, stride*h)}
}

func (f *plainFramebuffer) Width() int       { return f.width }
func (f *plainFramebuffer) Height() int      { return f.height }
func (f *plainFramebuffer) StrideBytes() int { return f.stride }
func (f *plainFramebuffer) Pixels() []byte   { return f.buf }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type uartSerial struct {
	uart *machine.UART
}

func (s *uartSerial) Read(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Read(p)
}

func (s *uartSerial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Write(p)
}

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }
