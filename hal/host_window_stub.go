//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow reports that the preview window is unavailable on builds
// without cgo, which ebiten's desktop backends require.
func RunWindow(_ func(h HAL) func() error) error {
	return errors.New("hal: window preview requires cgo (build/run with CGO_ENABLED=1)")
}
