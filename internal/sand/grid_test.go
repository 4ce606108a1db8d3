package sand

import (
	"slices"
	"testing"

	"sandspill/internal/core"
)

func TestSpawnAtIgnoresOccupiedAndOutOfRange(t *testing.T) {
	g := New(4, 5, 0)
	g.SpawnAt(2, 1, 42)

	before := append([]core.Hue(nil), g.Cells()...)

	g.SpawnAt(2, 1, 99)
	g.SpawnAt(-1, 0, 10)
	g.SpawnAt(5, 0, 10)
	g.SpawnAt(0, 4, 10)
	g.SpawnAt(0, -3, 10)
	g.SpawnAt(1, 1, core.Empty)

	if !slices.Equal(before, g.Cells()) {
		t.Fatal("no-op spawns must leave the grid unchanged")
	}
	if got := g.At(2, 1); got != 42 {
		t.Fatalf("occupied cell overwritten: got hue %d, want 42", got)
	}
}

func TestStepFreeParticleFallsStraightDown(t *testing.T) {
	g := New(3, 3, 0)
	g.SpawnAt(1, 0, 7)

	g.Step()

	if got := g.At(1, 1); got != 7 {
		t.Fatalf("expected particle at (1,1), got hue %d", got)
	}
	if g.At(1, 0) != core.Empty || g.At(0, 1) != core.Empty || g.At(2, 1) != core.Empty {
		t.Fatal("particle should only occupy (1,1) after one step")
	}
	if g.Moved() != 1 {
		t.Fatalf("expected 1 moved particle, got %d", g.Moved())
	}
}

func TestStepPrefersDownLeftOverDownRight(t *testing.T) {
	g := New(2, 3, 0)
	g.SpawnAt(1, 0, 5)
	g.SpawnAt(1, 1, 9)

	g.Step()

	if got := g.At(0, 1); got != 5 {
		t.Fatalf("expected particle to slide to (0,1), got hue %d there", got)
	}
	if got := g.At(2, 1); got != core.Empty {
		t.Fatalf("down-right must not be used when down-left is free, found hue %d", got)
	}
	if got := g.At(1, 1); got != 9 {
		t.Fatalf("bottom particle moved: got hue %d at (1,1)", got)
	}
}

func TestStepBlockedParticleStays(t *testing.T) {
	g := New(2, 3, 0)
	g.SpawnAt(1, 0, 11)
	for x := 0; x < 3; x++ {
		g.SpawnAt(x, 1, 20)
	}

	g.Step()

	if got := g.At(1, 0); got != 11 {
		t.Fatalf("blocked particle moved away, (1,0) holds %d", got)
	}
	if g.Moved() != 0 {
		t.Fatalf("expected no movement, got %d", g.Moved())
	}
}

func TestStepDiagonalsDoNotWrapRows(t *testing.T) {
	g := New(3, 3, 0)
	// Left edge: down and down-right blocked, down-left is off-grid.
	g.SpawnAt(0, 1, 1)
	g.SpawnAt(0, 2, 2)
	g.SpawnAt(1, 2, 3)
	// Right edge: down and down-left blocked, down-right is off-grid.
	g.SpawnAt(2, 0, 4)
	g.SpawnAt(2, 1, 5)
	g.SpawnAt(1, 1, 6)

	g.Step()

	if got := g.At(0, 1); got != 1 {
		t.Fatalf("left-edge particle should stay at (0,1), got %d", got)
	}
	if got := g.At(2, 0); got != 4 {
		t.Fatalf("right-edge particle should stay at (2,0), got %d", got)
	}
	if got := g.At(2, 2); got != 6 {
		t.Fatalf("(1,1) should slide down-right into (2,2), got %d", got)
	}
	if got := g.At(2, 1); got != 5 {
		t.Fatalf("(2,1) lost the race for (2,2) and should stay, got %d", got)
	}
}

func TestStepLeftEdgeDoesNotWrapIntoPreviousRow(t *testing.T) {
	g := New(3, 3, 0)
	// Index arithmetic for down-left of (0,1) would land on (2,1), which is
	// empty here.
	g.SpawnAt(0, 1, 1)
	g.SpawnAt(0, 2, 2)
	g.SpawnAt(1, 2, 3)

	g.Step()

	if got := g.At(0, 1); got != 1 {
		t.Fatalf("left-edge particle should stay at (0,1), got %d", got)
	}
	for y := 0; y < 3; y++ {
		if got := g.At(2, y); got != core.Empty {
			t.Fatalf("left-edge particle wrapped into (2,%d)=%d", y, got)
		}
	}
	if g.Count() != 3 {
		t.Fatalf("expected 3 particles, got %d", g.Count())
	}
}

func TestStepRightEdgeDoesNotWrapIntoNextRow(t *testing.T) {
	g := New(3, 3, 0)
	// Index arithmetic for down-right of (2,0) would land on (0,2), which is
	// empty here.
	g.SpawnAt(2, 0, 4)
	g.SpawnAt(2, 1, 5)
	g.SpawnAt(1, 1, 6)
	g.SpawnAt(1, 2, 7)
	g.SpawnAt(2, 2, 8)

	g.Step()

	if got := g.At(2, 0); got != 4 {
		t.Fatalf("right-edge particle should stay at (2,0), got %d", got)
	}
	if got := g.At(0, 2); got != 6 {
		t.Fatalf("(1,1) should slide down-left into (0,2), got %d", got)
	}
	if g.At(0, 1) != core.Empty {
		t.Fatalf("nothing should reach (0,1), got %d", g.At(0, 1))
	}
}

func TestStepResolvesSharedTargetWithoutLoss(t *testing.T) {
	g := New(2, 3, 0)
	g.SpawnAt(0, 0, 1)
	g.SpawnAt(1, 0, 2)
	g.SpawnAt(1, 1, 3)

	g.Step()

	want := map[[2]int]core.Hue{
		{0, 1}: 1,
		{1, 1}: 3,
		{2, 1}: 2,
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := g.At(x, y); got != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestStepConservesParticles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 20
	cfg.Columns = 30
	cfg.Seed = 7
	cfg.Params.InitialCount = 200
	g := NewWithConfig(cfg)

	want := g.Count()
	if want != 200 {
		t.Fatalf("expected 200 seeded particles, got %d", want)
	}
	for i := 0; i < 400; i++ {
		g.Step()
		if got := g.Count(); got != want {
			t.Fatalf("step %d changed particle count: %d -> %d", i, want, got)
		}
	}
	if g.Moved() != 0 {
		t.Fatalf("pile should settle, %d still moving", g.Moved())
	}
}

func TestStepBottomRowStays(t *testing.T) {
	g := New(2, 2, 0)
	g.SpawnAt(0, 1, 8)
	g.Step()
	if got := g.At(0, 1); got != 8 {
		t.Fatalf("bottom particle should stay, got %d", got)
	}
}

func TestDropRuleIgnoresDiagonals(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 2
	cfg.Columns = 3
	cfg.Params.InitialCount = 0
	cfg.Params.Rule = RuleDrop
	g := NewWithConfig(cfg)
	g.SpawnAt(1, 0, 5)
	g.SpawnAt(1, 1, 9)

	g.Step()

	if got := g.At(1, 0); got != 5 {
		t.Fatalf("drop rule must not slide, (1,0) holds %d", got)
	}
	if g.Name() != RuleDrop {
		t.Fatalf("expected name %q, got %q", RuleDrop, g.Name())
	}
}

func TestClearEmptiesGrid(t *testing.T) {
	g := New(10, 10, 30)
	if g.Count() == 0 {
		t.Fatal("expected seeded particles before clear")
	}
	g.Step()
	g.Clear()
	if got := g.Count(); got != 0 {
		t.Fatalf("expected empty grid after clear, got %d particles", got)
	}
	if got := len(g.Cells()); got != 100 {
		t.Fatalf("clear must keep the allocation, got %d cells", got)
	}
}

func TestRegistryProvidesRules(t *testing.T) {
	for _, name := range []string{"sand", RuleDrop} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("sim %q not registered", name)
		}
		sim := factory(map[string]string{"rows": "12", "columns": "16", "initial": "0"})
		if sim.Name() != name {
			t.Fatalf("factory %q built sim named %q", name, sim.Name())
		}
		if size := sim.Size(); size.W != 16 || size.H != 12 {
			t.Fatalf("unexpected size %+v", size)
		}
	}
}

func TestParametersReportCounters(t *testing.T) {
	g := New(5, 5, 0)
	g.SpawnAt(2, 0, 3)
	g.Step()

	snap := g.Parameters()
	count, ok := snap.Lookup("count")
	if !ok || count.Value != "1" {
		t.Fatalf("expected count parameter 1, got %+v", count)
	}
	moved, ok := snap.Lookup("moved")
	if !ok || moved.Value != "1" {
		t.Fatalf("expected moved parameter 1, got %+v", moved)
	}
}
