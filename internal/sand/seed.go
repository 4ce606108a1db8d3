package sand

import (
	"math"

	"sandspill/internal/core"
)

// seed places up to count particles at distinct empty cells of the seed band
// and returns how many were placed. Rejection sampling is capped per particle;
// once a particle exhausts its attempts the rest are drawn from a shuffle of
// the remaining empty cells, so seeding always terminates.
func (g *Grid) seed(count int) int {
	if count <= 0 {
		return 0
	}
	bandRows := g.bandRows()
	attempts := g.cfg.Params.MaxSeedAttempts
	if attempts <= 0 {
		attempts = 1
	}

	placed := 0
	for placed < count && g.seedOne(bandRows, attempts) {
		placed++
	}
	if placed < count {
		placed += g.seedShuffled(bandRows, count-placed)
	}
	return placed
}

func (g *Grid) bandRows() int {
	band := g.cfg.Params.SeedBand
	if band <= 0 || band > 1 {
		band = 1
	}
	rows := int(math.Ceil(float64(g.lat.H) * band))
	if rows < 1 {
		rows = 1
	}
	if rows > g.lat.H {
		rows = g.lat.H
	}
	return rows
}

func (g *Grid) seedOne(bandRows, attempts int) bool {
	for a := 0; a < attempts; a++ {
		x := g.rng.IntN(g.lat.W)
		y := g.rng.IntN(bandRows)
		if g.cur[g.lat.Index(x, y)] != core.Empty {
			continue
		}
		g.SpawnAt(x, y, g.seedHue(x, y))
		return true
	}
	return false
}

func (g *Grid) seedShuffled(bandRows, want int) int {
	limit := bandRows * g.lat.W
	empty := make([]int, 0, limit)
	for i := 0; i < limit; i++ {
		if g.cur[i] == core.Empty {
			empty = append(empty, i)
		}
	}
	placed := 0
	for _, k := range g.rng.Perm(len(empty)) {
		if placed == want {
			break
		}
		x, y := g.lat.Coords(empty[k])
		g.SpawnAt(x, y, g.seedHue(x, y))
		placed++
	}
	return placed
}

func (g *Grid) seedHue(x, y int) core.Hue {
	if g.noise == nil {
		return core.Hue(g.rng.Hue())
	}
	scale := g.cfg.Params.NoiseScale
	v := g.noise.Noise2D(float64(x)*scale, float64(y)*scale)
	// Noise2D stays roughly within [-1, 1]; stretch it over the wheel.
	deg := int(math.Round((v + 1) / 2 * float64(core.MaxHue)))
	return core.NormalizeHue(deg)
}
