package kernel

import (
	"strconv"

	"kernel-life/internal/core"
	"kernel-life/internal/engine"
)

// Parameters reports the current configuration and live statistics.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	lo, hi := a.rule.Kernel().Bounds()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("rows", "Rows", a.cfg.Rows),
				intParam("cols", "Cols", a.cfg.Cols),
				intParam("generation", "Generation", a.generation),
				intParam("population", "Population", a.Population()),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("rule", "Rule #", a.catalog.Index(a.rule.Name())),
				stringParam("rule_name", "Rule", a.rule.Name()),
				stringParam("kernel", "Kernel", a.rule.Kernel().String()),
				stringParam("accept", "Accept", formatInts(a.rule.Accept())),
				stringParam("score_range", "Score range", strconv.Itoa(lo)+".."+strconv.Itoa(hi)),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				intParam("count", "Random count", a.cfg.Count),
				int64Param("seed", "Seed", a.cfg.Seed),
				stringParam("cells", "Cells", engine.FormatCells(a.cfg.Cells)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may step.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	interior := a.cfg.Rows * a.cfg.Cols
	step := interior / 32
	if step < 1 {
		step = 1
	}
	return []core.ParameterControl{
		{Key: "rule", Label: "Rule #", Step: 1, Min: 0, Max: a.catalog.Len() - 1},
		{Key: "count", Label: "Random count", Step: step, Min: 0, Max: interior * 2},
	}
}

// SetIntParameter applies a HUD adjustment. A new count takes effect on the
// next reset.
func (a *Automaton) SetIntParameter(key string, value int) bool {
	switch key {
	case "rule":
		if value < 0 || value >= a.catalog.Len() {
			return false
		}
		r := a.catalog.At(value)
		a.rule = r
		a.cfg.Rule = r.Name()
		return true
	case "count":
		if value < 0 {
			return false
		}
		a.cfg.Count = value
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}

func formatInts(values []int) string {
	out := "{"
	for i, v := range values {
		if i > 0 {
			out += ","
		}
		out += strconv.Itoa(v)
	}
	return out + "}"
}
