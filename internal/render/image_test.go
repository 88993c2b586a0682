package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"kernel-life/internal/core"
)

func TestImageExcludesBorder(t *testing.T) {
	g := core.NewGrid(2, 3)
	g.Set(1, 1, true)
	g.Set(2, 3, true)

	img := Image(g, 1, DefaultOn, DefaultOff)
	if img.Rect.Dx() != 3 || img.Rect.Dy() != 2 {
		t.Fatalf("image size %v, want 3x2", img.Rect)
	}
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := blue
			if (x == 0 && y == 0) || (x == 2 && y == 1) {
				want = red
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImageScale(t *testing.T) {
	g := core.NewGrid(2, 2)
	g.Set(2, 1, true)
	img := Image(g, 3, color.White, color.Black)
	if img.Rect.Dx() != 6 || img.Rect.Dy() != 6 {
		t.Fatalf("scaled size %v, want 6x6", img.Rect)
	}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if img.RGBAAt(0, 3) != white || img.RGBAAt(2, 5) != white {
		t.Fatal("live cell block not painted")
	}
	if img.RGBAAt(3, 3) == white || img.RGBAAt(0, 2) == white {
		t.Fatal("paint leaked outside the live cell block")
	}
}

func TestWritePNG(t *testing.T) {
	g := core.NewGrid(4, 5)
	g.Set(2, 2, true)
	var buf bytes.Buffer
	if err := WritePNG(&buf, g, 2, DefaultOn, DefaultOff); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 10 || b.Dy() != 8 {
		t.Fatalf("decoded bounds %v, want 10x8", b)
	}
}
