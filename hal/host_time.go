//go:build !tinygo

package hal

import "time"

// hostTime emits one tick per millisecond of wall-clock time, buffered so a
// slow consumer drops ticks rather than blocking the clock goroutine.
type hostTime struct {
	ch  chan uint64
	seq uint64
}

func newHostTime() *hostTime {
	t := &hostTime{ch: make(chan uint64, 1024)}
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

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }
