package kernel

import (
	"fmt"
	"strconv"

	"kernel-life/internal/engine"
)

// Config controls the grid size, rule and seeding of the automaton.
type Config struct {
	Rows int
	Cols int

	Rule string

	// Count is the number of random draws used when Cells is empty. It
	// defaults to a third of the interior.
	Count int
	Seed  int64
	Cells []engine.Cell

	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:    128,
		Cols:    128,
		Rule:    "Standard",
		Count:   128 * 128 / 3,
		Seed:    42,
		Workers: 0,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys are ignored; malformed values are reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["rows"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("rows: %w", err)
		}
		c.Rows = parsed
	}
	if v, ok := cfg["cols"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("cols: %w", err)
		}
		c.Cols = parsed
	}
	c.Count = c.Rows * c.Cols / 3
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["count"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("count: %w", err)
		}
		c.Count = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("seed: %w", err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["cells"]; ok {
		cells, err := engine.ParseCells(v)
		if err != nil {
			return c, fmt.Errorf("cells: %w", err)
		}
		c.Cells = cells
	}
	if v, ok := cfg["workers"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("workers: %w", err)
		}
		c.Workers = parsed
	}
	return c, nil
}
