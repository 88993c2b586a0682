package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"kernel-life/internal/core"
	"kernel-life/internal/engine"
	"kernel-life/internal/render"
)

type options struct {
	rows    int
	cols    int
	rule    string
	steps   int
	count   int
	seed    int64
	cells   string
	workers int
	out     string
	scale   int
}

type result struct {
	rule       engine.Rule
	population int
	elapsed    time.Duration
	grid       *core.Grid
}

func main() {
	var opts options
	flag.IntVar(&opts.rows, "rows", 100, "interior rows")
	flag.IntVar(&opts.cols, "cols", 100, "interior columns")
	flag.StringVar(&opts.rule, "rule", "Standard", "rule name, or \"all\" to run every catalog rule")
	flag.IntVar(&opts.steps, "steps", 100, "generations to evolve")
	flag.IntVar(&opts.count, "count", 1000, "random cells to draw (with replacement) when -cells is empty")
	flag.Int64Var(&opts.seed, "seed", 42, "seed for random initialization")
	flag.StringVar(&opts.cells, "cells", "", "explicit 1-indexed seed cells, e.g. \"2:3;3:3;4:3\"")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "row bands stepped in parallel per generation")
	flag.StringVar(&opts.out, "out", "", "write the final interior as PNG (with -rule all, the rule name is appended)")
	flag.IntVar(&opts.scale, "scale", 4, "PNG pixels per cell")
	list := flag.Bool("list", false, "print the rule catalog and exit")
	flag.Parse()

	catalog := engine.DefaultCatalog()
	if *list {
		for _, name := range catalog.Names() {
			r, _ := catalog.Lookup(name)
			fmt.Println(r)
		}
		return
	}

	rules, err := selectRules(catalog, opts.rule)
	if err != nil {
		log.Fatal(err)
	}
	start, err := initialGrid(opts)
	if err != nil {
		log.Fatalf("initialize grid: %v", err)
	}

	fmt.Printf("Evolving %dx%d grid (population %d) for %d steps under %d rule(s), %d workers\n",
		start.Rows, start.Cols, start.Population(), opts.steps, len(rules), opts.workers)

	results, err := run(start, rules, opts)
	if err != nil {
		log.Fatal(err)
	}
	for _, res := range results {
		fmt.Printf("%-10s population %6d  (%v)\n", res.rule.Name(), res.population, res.elapsed.Round(time.Microsecond))
		if opts.out == "" {
			continue
		}
		path := outputPath(opts.out, res.rule.Name(), len(results) > 1)
		if err := writePNG(path, res.grid, opts.scale); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  wrote %s\n", path)
	}
}

func selectRules(catalog *engine.Catalog, name string) ([]engine.Rule, error) {
	if strings.EqualFold(name, "all") {
		rules := make([]engine.Rule, catalog.Len())
		for i := range rules {
			rules[i] = catalog.At(i)
		}
		return rules, nil
	}
	r, err := catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []engine.Rule{r}, nil
}

func initialGrid(opts options) (*core.Grid, error) {
	if opts.cells != "" {
		cells, err := engine.ParseCells(opts.cells)
		if err != nil {
			return nil, err
		}
		return engine.FromCells(opts.rows, opts.cols, cells)
	}
	return engine.Random(opts.rows, opts.cols, opts.count, core.NewRNG(opts.seed))
}

// run evolves start under each rule. Rules are spread over a small pool so a
// catalog sweep uses the machine; each evolution still splits its own rows
// across opts.workers bands.
func run(start *core.Grid, rules []engine.Rule, opts options) ([]result, error) {
	stepper := engine.NewStepper(opts.workers)
	jobs := make(chan int)
	results := make([]result, len(rules))
	errs := make([]error, len(rules))

	pool := min(len(rules), max(1, runtime.NumCPU()/max(1, stepper.Workers)))
	var wg sync.WaitGroup
	for i := 0; i < pool; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				began := time.Now()
				grid, err := stepper.Evolve(start, rules[idx], opts.steps)
				if err != nil {
					errs[idx] = fmt.Errorf("evolve %s: %w", rules[idx].Name(), err)
					continue
				}
				results[idx] = result{
					rule:       rules[idx],
					population: grid.Population(),
					elapsed:    time.Since(began),
					grid:       grid,
				}
			}
		}()
	}
	for i := range rules {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].population > results[j].population
	})
	return results, nil
}

func outputPath(out, rule string, perRule bool) string {
	if !perRule {
		return out
	}
	ext := ".png"
	base := strings.TrimSuffix(out, ext)
	slug := strings.ToLower(strings.ReplaceAll(rule, " ", "-"))
	return base + "-" + slug + ext
}

func writePNG(path string, g *core.Grid, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render.WritePNG(f, g, scale, render.DefaultOn, render.DefaultOff)
}
