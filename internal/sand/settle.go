package sand

// SettleResult summarises running a grid until nothing moves.
type SettleResult struct {
	// Ticks is the number of ticks on which at least one particle moved.
	Ticks      int
	Settled    bool
	Count      int
	PeakMoved  int
	TotalMoved int
}

// RunUntilSettled steps the grid until a tick moves nothing or maxTicks ticks
// have run.
func (g *Grid) RunUntilSettled(maxTicks int) SettleResult {
	res := SettleResult{}
	for i := 0; i < maxTicks; i++ {
		g.Step()
		if g.moved == 0 {
			res.Settled = true
			break
		}
		res.Ticks++
		res.TotalMoved += g.moved
		if g.moved > res.PeakMoved {
			res.PeakMoved = g.moved
		}
	}
	res.Count = g.Count()
	return res
}

// Settle builds a grid from cfg and runs it until it settles.
func Settle(cfg Config, maxTicks int) SettleResult {
	return NewWithConfig(cfg).RunUntilSettled(maxTicks)
}
