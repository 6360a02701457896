//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that mirrors the 1bpp framebuffer and
// drives newApp's step function once per frame. It blocks until the window
// closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &previewGame{h: h, step: step}
	ebiten.SetWindowTitle("inkterm preview")
	ebiten.SetWindowSize(h.disp.fb.width, h.disp.fb.height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type previewGame struct {
	h       *hostHAL
	img     *image.Gray
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *previewGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

var white = color.Gray{Y: 0xFF}
var black = color.Gray{Y: 0x00}

func (g *previewGame) Draw(screen *ebiten.Image) {
	fb := g.h.disp.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewGray(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshot(g.scratch)

	stride := fb.stride
	for y := 0; y < fb.height; y++ {
		row := y * stride
		for x := 0; x < fb.width; x++ {
			byteIdx := row + x/8
			bit := byte(0x80 >> uint(x%8))
			on := g.scratch[byteIdx]&bit != 0
			c := black
			if on {
				c = white
			}
			g.img.SetGray(x, y, c)
		}
	}

	g.fbImg.WritePixels(grayToRGBA(g.img))
	screen.DrawImage(g.fbImg, nil)
}

func grayToRGBA(img *image.Gray) []byte {
	n := len(img.Pix)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := img.Pix[i]
		j := i * 4
		out[j+0] = v
		out[j+1] = v
		out[j+2] = v
		out[j+3] = 0xFF
	}
	return out
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.fb.width, g.h.disp.fb.height
}
