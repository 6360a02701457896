//go:build tinygo

// Command inkterm runs the terminal core against real e-ink hardware.
package main

import (
	"tinygo.org/x/tinyfont/freemono"

	"inkterm/font"
	"inkterm/hal"
	"inkterm/kernel"
	"inkterm/termsvc"
)

func main() {
	h := hal.New()

	k := kernel.New()
	render := termsvc.New(k, h, font.NewTinyFont(&freemono.Regular9pt7b))
	render.Feed(bannerBytes())
	render.RenderFull()

	for range h.Time().Ticks() {
		k.Tick()
		// Two tasks (input, render) were woken by Tick; Step once per
		// task so both run before the next tick instead of one.
		k.Step()
		k.Step()
	}
}
