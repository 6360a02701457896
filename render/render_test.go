package render

import (
	"testing"

	"inkterm/config"
	"inkterm/hal"
	"inkterm/screen"
)

type fakeFramebuffer struct {
	w, h, stride int
	pixels       []byte
}

func newFakeFramebuffer() *fakeFramebuffer {
	stride := (config.DisplayW + 7) / 8
	fb := &fakeFramebuffer{w: config.DisplayW, h: config.DisplayH, stride: stride}
	fb.pixels = make([]byte, stride*config.DisplayH)
	for i := range fb.pixels {
		fb.pixels[i] = 0xFF
	}
	return fb
}

func (f *fakeFramebuffer) Width() int        { return f.w }
func (f *fakeFramebuffer) Height() int       { return f.h }
func (f *fakeFramebuffer) StrideBytes() int  { return f.stride }
func (f *fakeFramebuffer) Pixels() []byte    { return f.pixels }

type fakeDisplay struct {
	fb               *fakeFramebuffer
	buffers          []hal.RefreshMode
	windows          [][4]int
	asleep           bool
}

func newFakeDisplay() *fakeDisplay { return &fakeDisplay{fb: newFakeFramebuffer()} }

func (d *fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }
func (d *fakeDisplay) DisplayBuffer(mode hal.RefreshMode) {
	d.buffers = append(d.buffers, mode)
}
func (d *fakeDisplay) DisplayWindow(x, y, w, h int) {
	d.windows = append(d.windows, [4]int{x, y, w, h})
}
func (d *fakeDisplay) ClearScreen(fill byte) {
	for i := range d.fb.pixels {
		d.fb.pixels[i] = fill
	}
}
func (d *fakeDisplay) DeepSleep() { d.asleep = true }

// fakeSource renders every codepoint other than space and 0 as a
// fully-set glyph (those two are blank), so tests can
// reason about pixel output without depending on a real font.
type fakeSource struct{}

func (fakeSource) GetGlyph(cp uint16) []byte {
	if cp == ' ' || cp == 0 {
		return make([]byte, config.FontH*2)
	}
	out := make([]byte, config.FontH*2)
	for i := range out {
		out[i] = 0xFF
	}
	return out
}

func TestRenderDirtyWindowedForFewRows(t *testing.T) {
	buf := screen.NewBuffer()
	buf.ClearDirty()
	buf.SetCursor(1, 0)
	buf.PutChar('A')

	d := newFakeDisplay()
	r := New(d, buf, fakeSource{})
	r.RenderDirty()

	if len(d.windows) != 1 {
		t.Fatalf("expected one windowed update, got %d (buffers=%v)", len(d.windows), d.buffers)
	}
	if len(d.buffers) != 0 {
		t.Fatalf("expected no full-panel refresh yet, got %v", d.buffers)
	}
}

func TestRenderDirtyFullPanelForManyRows(t *testing.T) {
	buf := screen.NewBuffer() // starts with every row dirty
	d := newFakeDisplay()
	r := New(d, buf, fakeSource{})
	r.RenderDirty()

	if len(d.buffers) != 1 || d.buffers[0] != hal.FastRefresh {
		t.Fatalf("expected one fast refresh for a full-panel repaint, got %v", d.buffers)
	}
}

func TestRenderFullIssuesFullRefresh(t *testing.T) {
	buf := screen.NewBuffer()
	d := newFakeDisplay()
	r := New(d, buf, fakeSource{})
	r.RenderFull()

	if len(d.buffers) != 1 || d.buffers[0] != hal.FullRefresh {
		t.Fatalf("expected one full refresh, got %v", d.buffers)
	}
	if !buf.DirtyRows().Empty() {
		t.Fatal("expected dirty set cleared after RenderFull")
	}
}

func TestRenderCursorSkippedWhenHidden(t *testing.T) {
	buf := screen.NewBuffer()
	d := newFakeDisplay()
	r := New(d, buf, fakeSource{})
	r.SetCursorVisible(false)

	before := append([]byte(nil), d.fb.pixels...)
	r.RenderCursor()
	for i := range before {
		if before[i] != d.fb.pixels[i] {
			t.Fatal("expected no pixels touched while cursor hidden")
		}
	}
}

func TestPeriodicFullRefresh(t *testing.T) {
	buf := screen.NewBuffer()
	d := newFakeDisplay()
	r := New(d, buf, fakeSource{})

	for i := 0; i < config.FullRefreshInterval; i++ {
		buf.EraseDisplay(2) // marks every row dirty
		r.RenderDirty()
	}

	found := false
	for _, m := range d.buffers {
		if m == hal.FullRefresh {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a periodic full refresh within %d fast refreshes, got %v", config.FullRefreshInterval, d.buffers)
	}
}
