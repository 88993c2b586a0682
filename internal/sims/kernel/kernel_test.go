package kernel

import (
	"errors"
	"slices"
	"testing"

	"kernel-life/internal/core"
	"kernel-life/internal/engine"
)

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"rows":    "12",
		"cols":    "9",
		"rule":    "Cruz",
		"seed":    "5",
		"cells":   "1:1;12:9",
		"workers": "3",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rows != 12 || cfg.Cols != 9 || cfg.Rule != "Cruz" || cfg.Seed != 5 || cfg.Workers != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Count != 12*9/3 {
		t.Fatalf("Count = %d, want a third of the interior", cfg.Count)
	}
	if !slices.Equal(cfg.Cells, []engine.Cell{{Row: 1, Col: 1}, {Row: 12, Col: 9}}) {
		t.Fatalf("Cells = %v", cfg.Cells)
	}

	cfg, err = FromMap(map[string]string{"count": "7"})
	if err != nil || cfg.Count != 7 {
		t.Fatalf("count override = %d, %v", cfg.Count, err)
	}

	if _, err := FromMap(map[string]string{"rows": "many"}); err == nil {
		t.Fatal("malformed rows must fail")
	}
	if _, err := FromMap(map[string]string{"cells": "1-1"}); err == nil {
		t.Fatal("malformed cells must fail")
	}

	def, err := FromMap(nil)
	if err != nil || def.Rows != DefaultConfig().Rows {
		t.Fatalf("nil map should give defaults, got %+v, %v", def, err)
	}
}

func TestNewWithConfigErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rule = "Nope"
	if _, err := NewWithConfig(engine.DefaultCatalog(), cfg); !errors.Is(err, engine.ErrUnknownRule) {
		t.Fatalf("err = %v, want ErrUnknownRule", err)
	}

	cfg = DefaultConfig()
	cfg.Rows = 0
	if _, err := NewWithConfig(engine.DefaultCatalog(), cfg); !errors.Is(err, engine.ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}

	cfg = DefaultConfig()
	cfg.Rows, cfg.Cols = 3, 3
	cfg.Cells = []engine.Cell{{Row: 4, Col: 4}}
	if _, err := NewWithConfig(engine.DefaultCatalog(), cfg); !errors.Is(err, engine.ErrOutOfRangeSeed) {
		t.Fatalf("err = %v, want ErrOutOfRangeSeed", err)
	}
}

func TestAutomatonBlinker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 5
	cfg.Cells = []engine.Cell{{Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 4, Col: 3}}
	cfg.Workers = 2
	a, err := NewWithConfig(engine.DefaultCatalog(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Size() != (core.Size{W: 5, H: 5}) {
		t.Fatalf("Size = %+v", a.Size())
	}

	a.Step()
	want := []uint8{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}
	if !slices.Equal(a.Cells(), want) {
		t.Fatalf("cells after one step = %v", a.Cells())
	}
	if a.Generation() != 1 || a.Population() != 3 {
		t.Fatalf("generation=%d population=%d, want 1 and 3", a.Generation(), a.Population())
	}

	a.Step()
	a.Step()
	if a.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", a.Generation())
	}

	a.Reset(0)
	if a.Generation() != 0 || !a.Grid().At(2, 3) || a.Grid().At(3, 2) {
		t.Fatal("Reset should restore the explicit seed cells")
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Count = 24, 32, 200
	a, err := NewWithConfig(engine.DefaultCatalog(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	initial := slices.Clone(a.Cells())

	a.Step()
	a.Reset(0)
	if !slices.Equal(initial, a.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	a.Reset(777)
	seeded := slices.Clone(a.Cells())
	a.Step()
	a.Reset(777)
	if !slices.Equal(seeded, a.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
}

func TestAutomatonMatchesEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Count = 30, 20, 250
	cfg.Rule = "Strong"
	a, err := NewWithConfig(engine.DefaultCatalog(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	start := a.Grid().Clone()
	for i := 0; i < 6; i++ {
		a.Step()
	}
	want, err := engine.Evolve(start, a.Rule(), 6)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Grid().Equal(want) {
		t.Fatal("sim diverged from engine.Evolve")
	}
	if !slices.Equal(a.Cells(), want.FillInterior(nil)) {
		t.Fatal("display buffer out of sync with grid")
	}
}

func TestRuleSwitching(t *testing.T) {
	a, err := NewWithConfig(engine.DefaultCatalog(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	a.CycleRule(1)
	if a.Rule().Name() != "Diagonals" {
		t.Fatalf("CycleRule(1) = %q", a.Rule().Name())
	}
	a.CycleRule(-2)
	if a.Rule().Name() != "xD" {
		t.Fatalf("CycleRule(-2) = %q", a.Rule().Name())
	}
	if err := a.SetRule("Fast Grow"); err != nil || a.Rule().Name() != "Fast Grow" {
		t.Fatalf("SetRule = %q, %v", a.Rule().Name(), err)
	}
	if err := a.SetRule("missing"); err == nil {
		t.Fatal("SetRule must reject unknown names")
	}

	if !a.SetIntParameter("rule", 2) || a.Rule().Name() != "Cross" {
		t.Fatalf("SetIntParameter(rule, 2) gave %q", a.Rule().Name())
	}
	if a.SetIntParameter("rule", 6) {
		t.Fatal("out-of-range rule index accepted")
	}
	if !a.SetIntParameter("count", 0) {
		t.Fatal("count 0 rejected")
	}
	a.Reset(1)
	if a.Population() != 0 {
		t.Fatalf("population after count=0 reset = %d", a.Population())
	}
	if a.SetIntParameter("count", -1) || a.SetIntParameter("bogus", 1) {
		t.Fatal("invalid parameter accepted")
	}
}

func TestParameters(t *testing.T) {
	a, err := NewWithConfig(engine.DefaultCatalog(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	snap := a.Parameters()
	p, ok := snap.Lookup("kernel")
	if !ok || p.Value != "[[1,1,1],[1,-9,1],[1,1,1]]" {
		t.Fatalf("kernel param = %+v", p)
	}
	p, ok = snap.Lookup("accept")
	if !ok || p.Value != "{-7,-6,3}" {
		t.Fatalf("accept param = %+v", p)
	}
	p, ok = snap.Lookup("score_range")
	if !ok || p.Value != "-9..8" {
		t.Fatalf("score_range param = %+v", p)
	}
	if len(a.ParameterControls()) != 2 {
		t.Fatalf("controls = %v", a.ParameterControls())
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"kernel", "life"} {
		sim, err := core.NewSim(name, map[string]string{"rows": "8", "cols": "6", "rule": "xD"})
		if err != nil {
			t.Fatal(err)
		}
		if sim.Name() != name {
			t.Fatalf("Name = %q, want %q", sim.Name(), name)
		}
		if len(sim.Cells()) != 48 {
			t.Fatalf("%s cells = %d, want 48", name, len(sim.Cells()))
		}
	}
	life, _ := core.NewSim("life", map[string]string{"rule": "xD"})
	if life.(*Automaton).Rule().Name() != "Standard" {
		t.Fatal("life sim must always use the Standard rule")
	}
	if _, err := core.NewSim("kernel", map[string]string{"rule": "nope"}); err == nil {
		t.Fatal("unknown rule should fail construction")
	}
	if _, err := core.NewSim("missing", nil); err == nil {
		t.Fatal("unknown sim should fail")
	}
}

func TestScoresPreviewNextGeneration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Count = 16, 16, 90
	cfg.Rule = "Fast Grow"
	a, err := NewWithConfig(engine.DefaultCatalog(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := a.ScoreBounds()
	if lo != -9 || hi != 8 {
		t.Fatalf("ScoreBounds = (%d,%d)", lo, hi)
	}
	scores := a.Scores()
	a.Step()
	for i, s := range scores {
		if a.Accepts(s) != (a.Cells()[i] == 1) {
			t.Fatalf("score %d at %d did not predict the next state", s, i)
		}
	}
}

func TestResetErrKeepsGeneration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Count = 10, 10, 30
	a, err := NewWithConfig(engine.DefaultCatalog(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	a.Step()
	before := a.Grid().Clone()

	a.cfg.Count = -1
	if err := a.ResetErr(3); !errors.Is(err, engine.ErrInvalidSeedCount) {
		t.Fatalf("ResetErr err = %v, want ErrInvalidSeedCount", err)
	}
	a.Reset(3)
	if !a.Grid().Equal(before) || a.Generation() != 1 {
		t.Fatal("failed reset must leave the current generation in place")
	}

	a.cfg.Count = 30
	if err := a.ResetErr(3); err != nil {
		t.Fatal(err)
	}
	if a.Generation() != 0 {
		t.Fatalf("generation = %d after reset, want 0", a.Generation())
	}
}
