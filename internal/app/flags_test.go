package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "life", "-tps", "30", "-set", "rows=40", "-set", "rule = Fast Grow"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "life" || cfg.TPS != 30 || cfg.Scale != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	opts, err := cfg.SimOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts["rows"] != "40" || opts["rule"] != "Fast Grow" {
		t.Fatalf("SimOptions = %v", opts)
	}
}

func TestSimOptionsRejectsMalformed(t *testing.T) {
	cfg := NewConfig()
	cfg.Set = KVList{"rows"}
	if _, err := cfg.SimOptions(); err == nil {
		t.Fatal("option without '=' must fail")
	}
	cfg.Set = KVList{"=5"}
	if _, err := cfg.SimOptions(); err == nil {
		t.Fatal("option without key must fail")
	}
}

func TestSimOptionsSeed(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 9
	opts, err := cfg.SimOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts["seed"] != "9" {
		t.Fatalf("-seed not forwarded, opts = %v", opts)
	}

	cfg.Set = KVList{"seed=1234"}
	opts, err = cfg.SimOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts["seed"] != "1234" || cfg.Seed != 1234 {
		t.Fatalf("-set seed should win: opts=%v Seed=%d", opts, cfg.Seed)
	}

	cfg.Set = KVList{"seed=abc"}
	if _, err := cfg.SimOptions(); err == nil {
		t.Fatal("malformed seed must fail")
	}
}
