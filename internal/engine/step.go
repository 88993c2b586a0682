package engine

import (
	"fmt"

	"kernel-life/internal/core"
)

// Step computes the next generation of g under rule r. The input grid is
// left untouched and the result always has a dead border.
func Step(g *core.Grid, r Rule) *core.Grid {
	next := core.NewGrid(g.Rows, g.Cols)
	stepRows(next, g, r, 1, g.Rows+1)
	return next
}

// Evolve applies Step steps times and returns the final generation. With
// steps == 0 the input grid itself is returned. Intermediate generations are
// not retained and g is never written to.
func Evolve(g *core.Grid, r Rule, steps int) (*core.Grid, error) {
	return Stepper{}.Evolve(g, r, steps)
}

// stepRows writes interior rows [from, to) of dst from src. dst and src must
// share a shape and must not alias.
func stepRows(dst, src *core.Grid, r Rule, from, to int) {
	k := r.Kernel()
	cells := src.Cells()
	out := dst.Cells()
	stride := src.Stride()
	for i := from; i < to; i++ {
		up := (i - 1) * stride
		mid := i * stride
		down := (i + 1) * stride
		for j := 1; j <= src.Cols; j++ {
			score := 0
			for dj := 0; dj < 3; dj++ {
				c := j + dj - 1
				if cells[up+c] {
					score += k[0][dj]
				}
				if cells[mid+c] {
					score += k[1][dj]
				}
				if cells[down+c] {
					score += k[2][dj]
				}
			}
			out[mid+j] = r.Accepts(score)
		}
	}
}

func checkSteps(steps int) error {
	if steps < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStepCount, steps)
	}
	return nil
}

// Scores returns the weighted neighbourhood score of every interior cell in
// row-major order, the value Step tests against the acceptance set.
func Scores(g *core.Grid, r Rule) []int {
	k := r.Kernel()
	cells := g.Cells()
	stride := g.Stride()
	out := make([]int, 0, g.Rows*g.Cols)
	for i := 1; i <= g.Rows; i++ {
		for j := 1; j <= g.Cols; j++ {
			score := 0
			for di := 0; di < 3; di++ {
				row := (i + di - 1) * stride
				for dj := 0; dj < 3; dj++ {
					if cells[row+j+dj-1] {
						score += k[di][dj]
					}
				}
			}
			out = append(out, score)
		}
	}
	return out
}
