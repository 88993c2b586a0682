package kernel

import (
	"fmt"

	"kernel-life/internal/core"
	"kernel-life/internal/engine"
)

// Automaton drives the weighted-kernel engine behind the core.Sim contract.
type Automaton struct {
	name    string
	cfg     Config
	catalog *engine.Catalog
	rule    engine.Rule
	stepper engine.Stepper

	grid       *core.Grid
	display    []uint8
	generation int
}

// NewWithConfig validates cfg against the catalog and seeds the first
// generation from cfg.Seed.
func NewWithConfig(catalog *engine.Catalog, cfg Config) (*Automaton, error) {
	rule, err := catalog.Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	a := &Automaton{
		name:    "kernel",
		cfg:     cfg,
		catalog: catalog,
		rule:    rule,
		stepper: engine.NewStepper(cfg.Workers),
	}
	grid, err := a.seed(cfg.Seed)
	if err != nil {
		return nil, err
	}
	a.setGrid(grid)
	return a, nil
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return a.name }

// Size reports the interior dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.cfg.Cols, H: a.cfg.Rows} }

// Cells exposes the interior as a row-major 0/1 buffer.
func (a *Automaton) Cells() []uint8 { return a.display }

// Grid returns the current generation including its border.
func (a *Automaton) Grid() *core.Grid { return a.grid }

// Rule returns the active rule.
func (a *Automaton) Rule() engine.Rule { return a.rule }

// Generation counts steps since the last reset.
func (a *Automaton) Generation() int { return a.generation }

// Population counts live cells in the current generation.
func (a *Automaton) Population() int { return a.grid.Population() }

// Reset reseeds the grid and zeroes the generation counter. Explicit cells
// take precedence over random sampling; a zero seed reuses the configured
// one.
//
// Seeding cannot fail once NewWithConfig has accepted the config, since the
// setters reject negative counts and dimensions never change. Should it fail
// anyway the current generation is kept and the error is returned by
// ResetErr.
func (a *Automaton) Reset(seed int64) {
	_ = a.ResetErr(seed)
}

// ResetErr is Reset with the seeding error reported. On error the grid and
// generation counter are left untouched.
func (a *Automaton) ResetErr(seed int64) error {
	grid, err := a.seed(seed)
	if err != nil {
		return fmt.Errorf("reset %s: %w", a.name, err)
	}
	a.setGrid(grid)
	a.generation = 0
	return nil
}

// Step advances the automaton by one generation.
func (a *Automaton) Step() {
	a.setGrid(a.stepper.Step(a.grid, a.rule))
	a.generation++
}

// SetRule switches to another catalog rule without touching the grid.
func (a *Automaton) SetRule(name string) error {
	rule, err := a.catalog.Lookup(name)
	if err != nil {
		return err
	}
	a.rule = rule
	a.cfg.Rule = rule.Name()
	return nil
}

// CycleRule moves delta positions through the catalog.
func (a *Automaton) CycleRule(delta int) {
	idx := a.catalog.Index(a.rule.Name())
	next := a.catalog.At(idx + delta)
	a.rule = next
	a.cfg.Rule = next.Name()
}

func (a *Automaton) seed(seed int64) (*core.Grid, error) {
	if len(a.cfg.Cells) > 0 {
		return engine.FromCells(a.cfg.Rows, a.cfg.Cols, a.cfg.Cells)
	}
	if seed == 0 {
		seed = a.cfg.Seed
	}
	return engine.Random(a.cfg.Rows, a.cfg.Cols, a.cfg.Count, core.NewRNG(seed))
}

func (a *Automaton) setGrid(g *core.Grid) {
	a.grid = g
	a.display = g.FillInterior(a.display)
}

// Scores returns the neighbourhood score of each interior cell under the
// active rule.
func (a *Automaton) Scores() []int { return engine.Scores(a.grid, a.rule) }

// ScoreBounds returns the score range reachable under the active kernel.
func (a *Automaton) ScoreBounds() (lo, hi int) { return a.rule.Kernel().Bounds() }

// Accepts reports whether score keeps or makes a cell alive.
func (a *Automaton) Accepts(score int) bool { return a.rule.Accepts(score) }
