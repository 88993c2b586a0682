//go:build ebiten

package ui

import (
	"image/color"

	"kernel-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type scoreProvider interface {
	Scores() []int
	ScoreBounds() (lo, hi int)
	Accepts(score int) bool
}

// Overlay tints every cell by its neighbourhood score. Cells whose score is
// in the acceptance set (alive next generation) are drawn in the accent
// colour; the rest fade from transparent at the lowest score to opaque at
// the highest.
type Overlay struct {
	sim     core.Sim
	show    bool
	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Update toggles the overlay on key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, scale int) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(scoreProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	scores := provider.Scores()
	if len(scores) != total {
		return
	}
	lo, hi := provider.ScoreBounds()
	span := float64(hi - lo)
	if span <= 0 {
		span = 1
	}
	accent := color.RGBA{R: 255, G: 220, B: 60}
	heat := color.RGBA{R: 64, G: 164, B: 223}
	for i, s := range scores {
		base := i * 4
		if provider.Accepts(s) {
			writePremultiplied(o.maskBuf[base:base+4], accent, 170)
			continue
		}
		alpha := uint8(120 * float64(s-lo) / span)
		writePremultiplied(o.maskBuf[base:base+4], heat, alpha)
	}
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func writePremultiplied(dst []byte, c color.RGBA, alpha uint8) {
	a := uint16(alpha)
	dst[0] = uint8(uint16(c.R) * a / 255)
	dst[1] = uint8(uint16(c.G) * a / 255)
	dst[2] = uint8(uint16(c.B) * a / 255)
	dst[3] = alpha
}
