package main

import (
	"os"
	"path/filepath"
	"testing"

	"kernel-life/internal/engine"
)

func TestSelectRules(t *testing.T) {
	cat := engine.DefaultCatalog()
	all, err := selectRules(cat, "ALL")
	if err != nil || len(all) != cat.Len() {
		t.Fatalf("selectRules(all) = %d rules, %v", len(all), err)
	}
	one, err := selectRules(cat, "Cruz")
	if err != nil || len(one) != 1 || one[0].Name() != "Cross" {
		t.Fatalf("selectRules(Cruz) = %v, %v", one, err)
	}
	if _, err := selectRules(cat, "nope"); err == nil {
		t.Fatal("unknown rule must fail")
	}
}

func TestRunMatchesEvolve(t *testing.T) {
	opts := options{rows: 20, cols: 24, steps: 12, count: 150, seed: 8, workers: 3}
	start, err := initialGrid(opts)
	if err != nil {
		t.Fatal(err)
	}
	rules, _ := selectRules(engine.DefaultCatalog(), "all")
	results, err := run(start, rules, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(rules) {
		t.Fatalf("got %d results, want %d", len(results), len(rules))
	}
	for i, res := range results {
		want, _ := engine.Evolve(start, res.rule, opts.steps)
		if !res.grid.Equal(want) || res.population != want.Population() {
			t.Fatalf("%s result differs from sequential evolve", res.rule.Name())
		}
		if i > 0 && results[i-1].population < res.population {
			t.Fatal("results not sorted by population")
		}
	}

	opts.steps = -1
	if _, err := run(start, rules[:1], opts); err == nil {
		t.Fatal("negative steps must fail")
	}
}

func TestInitialGridFromCells(t *testing.T) {
	g, err := initialGrid(options{rows: 3, cols: 3, cells: "2:2"})
	if err != nil {
		t.Fatal(err)
	}
	if g.Population() != 1 || !g.At(2, 2) {
		t.Fatal("explicit cells not applied")
	}
	if _, err := initialGrid(options{rows: 3, cols: 3, cells: "5:5"}); err == nil {
		t.Fatal("out-of-range cell must fail")
	}
}

func TestWritePNGOutputs(t *testing.T) {
	dir := t.TempDir()
	if got := outputPath(filepath.Join(dir, "out.png"), "Fast Grow", true); got != filepath.Join(dir, "out-fast-grow.png") {
		t.Fatalf("outputPath = %q", got)
	}
	g, _ := engine.FromCells(4, 4, []engine.Cell{{Row: 1, Col: 1}})
	path := filepath.Join(dir, "g.png")
	if err := writePNG(path, g, 2); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("png not written: %v", err)
	}
}
