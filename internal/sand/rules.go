package sand

// Rule names accepted by Config.Params.Rule.
const (
	// RulePile falls straight down, then slides down-left, then down-right.
	RulePile = "pile"
	// RuleDrop only falls straight down.
	RuleDrop = "drop"
)

// ruleFunc returns the destination index of the particle at (x, y).
type ruleFunc func(g *Grid, x, y int) int

var rules = map[string]ruleFunc{
	RulePile: pileTarget,
	RuleDrop: dropTarget,
}

// Rules lists the registered rule names.
func Rules() []string {
	return []string{RulePile, RuleDrop}
}

func dropTarget(g *Grid, x, y int) int {
	here := g.lat.Index(x, y)
	if y >= g.lat.H-1 {
		return here
	}
	if below := g.lat.Index(x, y+1); g.free(below) {
		return below
	}
	return here
}

// pileTarget tries down, down-left, down-right in that order. The column checks
// keep diagonal moves from wrapping into the neighbouring row.
func pileTarget(g *Grid, x, y int) int {
	here := g.lat.Index(x, y)
	if y >= g.lat.H-1 {
		return here
	}
	if below := g.lat.Index(x, y+1); g.free(below) {
		return below
	}
	if x > 0 {
		if left := g.lat.Index(x-1, y+1); g.free(left) {
			return left
		}
	}
	if x < g.lat.W-1 {
		if right := g.lat.Index(x+1, y+1); g.free(right) {
			return right
		}
	}
	return here
}
