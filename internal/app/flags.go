package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "kernel", Scale: 4, TPS: 15, Seed: 42, HUDWidth: 280}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "sim option in key=value form (repeatable), e.g. -set rule=Cross")
}

// SimOptions returns the -set overrides as a factory config map. A
// "-set seed=N" override wins over -seed and is copied back into Seed so
// viewer resets use it too; otherwise -seed is forwarded to the sim.
func (c *Config) SimOptions() (map[string]string, error) {
	opts := make(map[string]string, len(c.Set)+1)
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("option %q: want key=value", kv)
		}
		opts[key] = strings.TrimSpace(value)
	}
	if v, ok := opts["seed"]; ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("option seed: %w", err)
		}
		c.Seed = seed
	} else {
		opts["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return opts, nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one occurrence of the flag.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
