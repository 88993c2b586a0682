package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"kernel-life/internal/core"
)

// Stepper advances grids with the interior split into horizontal bands, one
// goroutine per band, and a barrier between generations. Results are
// identical to the sequential Step for every worker count.
type Stepper struct {
	// Workers caps the number of bands. Zero or one runs on the calling
	// goroutine.
	Workers int
}

// NewStepper returns a Stepper sized to the machine when workers <= 0.
func NewStepper(workers int) Stepper {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return Stepper{Workers: workers}
}

// Step computes one generation into a fresh grid.
func (s Stepper) Step(g *core.Grid, r Rule) *core.Grid {
	next := core.NewGrid(g.Rows, g.Cols)
	s.stepInto(next, g, r)
	return next
}

// Evolve runs steps generations. It ping-pongs between two scratch grids so
// the input is never written and only the final generation survives.
func (s Stepper) Evolve(g *core.Grid, r Rule, steps int) (*core.Grid, error) {
	if err := checkSteps(steps); err != nil {
		return nil, err
	}
	if steps == 0 {
		return g, nil
	}
	cur := g
	next := core.NewGrid(g.Rows, g.Cols)
	var spare *core.Grid
	for t := 0; t < steps; t++ {
		s.stepInto(next, cur, r)
		if cur == g {
			cur = next
			if t+1 < steps {
				spare = core.NewGrid(g.Rows, g.Cols)
			}
			next = spare
			continue
		}
		cur, next = next, cur
	}
	return cur, nil
}

func (s Stepper) stepInto(dst, src *core.Grid, r Rule) {
	bands := s.Workers
	if bands > src.Rows {
		bands = src.Rows
	}
	if bands <= 1 {
		stepRows(dst, src, r, 1, src.Rows+1)
		return
	}

	var eg errgroup.Group
	per := src.Rows / bands
	extra := src.Rows % bands
	from := 1
	for b := 0; b < bands; b++ {
		to := from + per
		if b < extra {
			to++
		}
		lo, hi := from, to
		eg.Go(func() error {
			stepRows(dst, src, r, lo, hi)
			return nil
		})
		from = to
	}
	eg.Wait()
}
