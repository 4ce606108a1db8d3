package sand

import (
	"sandspill/internal/core"
	pkgcore "sandspill/pkg/core"

	"github.com/aquilax/go-perlin"
)

// Grid holds hue-tagged particles on a fixed row-major lattice and advances
// them one tick at a time.
type Grid struct {
	cfg Config
	lat core.Lattice

	cur []core.Hue
	nxt []core.Hue

	rule  ruleFunc
	rng   *pkgcore.RNG
	noise *perlin.Perlin

	moved int
}

// New returns a grid of rows x columns seeded with initialCount particles using
// the default configuration otherwise. Seeding only fills the top SeedBand of
// rows, a third by default, so initialCount is capped at the cells in that band.
func New(rows, columns, initialCount int) *Grid {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Columns = columns
	cfg.Params.InitialCount = initialCount
	return NewWithConfig(cfg)
}

// NewWithConfig returns a grid configured from the provided options and seeds it.
func NewWithConfig(cfg Config) *Grid {
	lat := core.NewLattice(cfg.Columns, cfg.Rows)
	cfg.Columns, cfg.Rows = lat.W, lat.H
	rule, ok := rules[cfg.Params.Rule]
	if !ok {
		cfg.Params.Rule = RulePile
		rule = rules[RulePile]
	}
	g := &Grid{
		cfg:  cfg,
		lat:  lat,
		cur:  make([]core.Hue, lat.Len()),
		nxt:  make([]core.Hue, lat.Len()),
		rule: rule,
		rng:  pkgcore.NewRNG(cfg.Seed),
	}
	g.Reset(0)
	return g
}

// Name returns the simulation identifier.
func (g *Grid) Name() string {
	if g.cfg.Params.Rule == RulePile {
		return "sand"
	}
	return g.cfg.Params.Rule
}

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return g.lat.Size() }

// Lattice exposes the index/coordinate mapping used by the grid.
func (g *Grid) Lattice() core.Lattice { return g.lat }

// Cells exposes the current state buffer. Callers must not retain it across
// a Step because the buffers are swapped.
func (g *Grid) Cells() []core.Hue { return g.cur }

// At returns the hue stored at (x, y), or Empty when out of range.
func (g *Grid) At(x, y int) core.Hue {
	if !g.lat.Contains(x, y) {
		return core.Empty
	}
	return g.cur[g.lat.Index(x, y)]
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, h := range g.cur {
		if h != core.Empty {
			n++
		}
	}
	return n
}

// Moved reports how many particles changed cell during the last Step.
func (g *Grid) Moved() int { return g.moved }

// Reset clears the grid and reseeds it. A zero seed reuses the configured one.
func (g *Grid) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = g.cfg.Seed
	}
	g.rng.Seed(effective)
	if g.cfg.Params.HueMode == HueModeNoise {
		g.noise = perlin.NewPerlin(2, 2, 3, effective)
	} else {
		g.noise = nil
	}
	g.Clear()
	g.seed(g.cfg.Params.InitialCount)
}

// Clear empties every cell without reallocating.
func (g *Grid) Clear() {
	clear(g.cur)
	clear(g.nxt)
	g.moved = 0
}

// SpawnAt places a particle with the given hue. It is a no-op when (x, y) is
// outside the grid, the cell is occupied, or hue is Empty.
func (g *Grid) SpawnAt(x, y int, hue core.Hue) {
	if hue == core.Empty || !g.lat.Contains(x, y) {
		return
	}
	i := g.lat.Index(x, y)
	if g.cur[i] != core.Empty {
		return
	}
	g.cur[i] = hue
}

// Step advances every particle by one tick. Moves are decided against the
// current buffer and written into a zeroed next buffer, which then replaces it.
func (g *Grid) Step() {
	clear(g.nxt)
	moved := 0
	for i, h := range g.cur {
		if h == core.Empty {
			continue
		}
		x, y := g.lat.Coords(i)
		dst := g.rule(g, x, y)
		if dst != i {
			moved++
		}
		g.nxt[dst] = h
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.moved = moved
}

// free reports whether idx is empty in the snapshot and unclaimed this tick.
func (g *Grid) free(idx int) bool {
	return g.cur[idx] == core.Empty && g.nxt[idx] == core.Empty
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register(RuleDrop, func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Params.Rule = RuleDrop
		return NewWithConfig(c)
	})
}
