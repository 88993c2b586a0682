package kernel

import (
	"kernel-life/internal/core"
	"kernel-life/internal/engine"
)

var catalog = engine.DefaultCatalog()

func init() {
	core.Register("kernel", func(m map[string]string) (core.Sim, error) {
		cfg, err := FromMap(m)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(catalog, cfg)
	})
	// Standard scores births at 3 and survivals at -6/-7, which is B3/S23.
	core.Register("life", func(m map[string]string) (core.Sim, error) {
		cfg, err := FromMap(m)
		if err != nil {
			return nil, err
		}
		cfg.Rule = "Standard"
		a, err := NewWithConfig(catalog, cfg)
		if err != nil {
			return nil, err
		}
		a.name = "life"
		return a, nil
	})
}
