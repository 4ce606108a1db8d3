package sand

import (
	"strconv"

	"sandspill/internal/core"
)

// Parameters reports the grid configuration and live particle counters.
func (g *Grid) Parameters() core.ParameterSnapshot {
	params := g.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", g.lat.H),
				core.IntParam("columns", "Columns", g.lat.W),
				core.TextParam("seed", "Seed", strconv.FormatInt(g.cfg.Seed, 10)),
				core.TextParam("rule", "Rule", params.Rule),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.IntParam("initial", "Initial particles", params.InitialCount),
				core.TextParam("seed_band", "Seed band", strconv.FormatFloat(params.SeedBand, 'f', 2, 64)),
				core.TextParam("hue_mode", "Hue mode", params.HueMode),
			},
		},
		{
			Name: "Particles",
			Params: []core.Parameter{
				core.IntParam("count", "Particles", g.Count()),
				core.IntParam("moved", "Moved last tick", g.moved),
			},
		},
	}}
}
