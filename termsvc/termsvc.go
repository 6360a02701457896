// Package termsvc wires the parser, screen buffer, and renderer together
// as a pair of cooperative kernel.Tasks, the way sparkos/services/term
// splits input and output across services that talk over a kernel.Context
// instead of sharing state directly.
package termsvc

import (
	"strconv"

	"inkterm/config"
	"inkterm/font"
	"inkterm/hal"
	"inkterm/kernel"
	"inkterm/render"
	"inkterm/screen"
	"inkterm/vtparser"
)

// msgSerialInput tags a Message carrying a chunk of raw serial bytes.
const msgSerialInput uint16 = 1

// InputTask drains hal.Serial every tick and forwards whatever arrived to
// the render task's endpoint as IPC messages, rather than touching the
// parser directly. Reads larger than kernel.MaxMessageBytes never occur
// since readBuf is sized to that limit, so each read is a single send.
type InputTask struct {
	serial   hal.Serial
	log      hal.Logger
	toRender kernel.Capability

	readBuf [kernel.MaxMessageBytes]byte
}

func newInputTask(serial hal.Serial, log hal.Logger, toRender kernel.Capability) *InputTask {
	return &InputTask{serial: serial, log: log, toRender: toRender}
}

// Step implements kernel.Task: drain available serial input, relaying it
// to the render task, then park until the next tick.
func (t *InputTask) Step(ctx *kernel.Context) {
	for {
		n, err := t.serial.Read(t.readBuf[:])
		if n > 0 {
			res := ctx.SendCapResult(t.toRender, t.toRender, msgSerialInput, t.readBuf[:n], kernel.Capability{})
			if res != kernel.SendOK {
				t.log.WriteLineString("termsvc: dropped " + strconv.Itoa(n) + " input bytes, " + res.String())
			}
		}
		if n == 0 || err != nil {
			break
		}
	}
	ctx.BlockOnTick()
}

// RenderTask owns the parser, screen buffer, and renderer. It receives
// input bytes forwarded by an InputTask over fromInput and repaints the
// display every config.MinRefreshIntervalMS steps. It parks on
// BlockOnTick after each step, so each later step follows at least one
// tick; with hal.Time ticking at 1ms, that many steps span at least about
// that many milliseconds. Several ticks that arrive while it is parked
// count as one step, so the interval can be longer.
type RenderTask struct {
	fromInput kernel.Capability
	parser    *vtparser.Parser
	buf       *screen.Buffer
	renderer  *render.Renderer

	ticksSinceRefresh int
}

func newRenderTask(h hal.HAL, src font.Source, fromInput kernel.Capability) *RenderTask {
	buf := screen.NewBuffer()
	parser := vtparser.New(buf, h.Serial())
	renderer := render.New(h.Display(), buf, src)
	return &RenderTask{
		fromInput: fromInput,
		parser:    parser,
		buf:       buf,
		renderer:  renderer,
	}
}

// Feed pushes bytes directly into the parser, bypassing the IPC path.
// Used by cmd/inkterm to play the boot banner before any real input
// arrives over the kernel.
func (t *RenderTask) Feed(data []byte) {
	t.parser.Write(data)
}

// RenderFull forces an immediate full-panel repaint, bypassing the
// dirty-row/tick-count policy.
func (t *RenderTask) RenderFull() {
	t.renderer.SetCursorVisible(t.parser.CursorVisible())
	t.renderer.RenderFull()
}

// Step implements kernel.Task: drain every message waiting on fromInput
// into the parser, refresh the display on the configured cadence, then
// park until the next tick.
func (t *RenderTask) Step(ctx *kernel.Context) {
	for {
		msg, ok := ctx.TryRecv(t.fromInput)
		if !ok {
			break
		}
		t.parser.Write(msg.Data[:msg.Len])
	}

	t.renderer.SetCursorVisible(t.parser.CursorVisible())

	t.ticksSinceRefresh++
	if t.ticksSinceRefresh >= config.MinRefreshIntervalMS {
		t.ticksSinceRefresh = 0
		t.renderer.RenderDirty()
	}

	ctx.BlockOnTick()
}

// New wires an InputTask and a RenderTask around h's serial transport and
// display, connects them with a single kernel endpoint, registers both
// with k, and returns the render task so callers can feed it the boot
// banner and force an initial full repaint.
func New(k *kernel.Kernel, h hal.HAL, src font.Source) *RenderTask {
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	renderTask := newRenderTask(h, src, ep.Restrict(kernel.RightRecv))
	inputTask := newInputTask(h.Serial(), h.Logger(), ep.Restrict(kernel.RightSend))

	k.AddTask(inputTask)
	k.AddTask(renderTask)
	return renderTask
}
