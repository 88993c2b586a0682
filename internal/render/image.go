package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"kernel-life/internal/core"
)

// Image draws the interior of g (border excluded) with each cell covering
// scale×scale pixels.
func Image(g *core.Grid, scale int, on, off color.Color) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	cells := g.FillInterior(nil)
	base := image.NewRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	fillBinaryRGBA(base.Pix, cells, on, off)
	if scale == 1 {
		return base
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Cols*scale, g.Rows*scale))
	for y := 0; y < img.Rect.Dy(); y++ {
		src := base.Pix[(y/scale)*base.Stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < img.Rect.Dx(); x++ {
			copy(dst[x*4:x*4+4], src[(x/scale)*4:(x/scale)*4+4])
		}
	}
	return img
}

// WritePNG encodes the interior of g as a PNG.
func WritePNG(w io.Writer, g *core.Grid, scale int, on, off color.Color) error {
	if err := png.Encode(w, Image(g, scale, on, off)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
