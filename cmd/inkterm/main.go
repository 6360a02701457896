//go:build !tinygo

// Command inkterm runs the terminal core against a desktop preview
// window instead of real e-ink hardware, the way the teacher's
// app/tinyterm-release/examples/basic demo runs against host.New().
package main

import (
	"fmt"
	"os"

	"inkterm/font"
	"inkterm/hal"
	"inkterm/internal/buildinfo"
	"inkterm/kernel"
	"inkterm/termsvc"
)

// stepsPerFrame bounds how many cooperative steps run per preview frame;
// termsvc.New registers two tasks (input and render), so this keeps
// headroom for both to run even when several frames' worth of ticks
// drained at once.
const stepsPerFrame = 8

type app struct {
	k     *kernel.Kernel
	ticks <-chan uint64
}

func newApp(h hal.HAL) func() error {
	k := kernel.New()

	render := termsvc.New(k, h, font.NewBasic())
	render.Feed(bannerBytes())
	render.RenderFull()

	a := &app{k: k, ticks: h.Time().Ticks()}
	return a.step
}

func (a *app) step() error {
	draining := true
	for draining {
		select {
		case <-a.ticks:
			a.k.Tick()
		default:
			draining = false
		}
	}
	for i := 0; i < stepsPerFrame; i++ {
		a.k.Step()
	}
	return nil
}

func main() {
	fmt.Fprintf(os.Stderr, "inkterm %s (preview)\n", buildinfo.Short())
	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, "inkterm:", err)
		os.Exit(1)
	}
}
