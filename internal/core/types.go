package core

// Hue identifies a particle color on the hue wheel. Zero marks an empty cell,
// occupied cells carry a value in [1, MaxHue].
type Hue uint16

const (
	// Empty is the sentinel stored in unoccupied cells.
	Empty Hue = 0
	// MaxHue is the largest storable hue, in degrees.
	MaxHue Hue = 360
)

// NormalizeHue folds an arbitrary degree value into [1, MaxHue]. Multiples of
// 360 map to 360 so the empty sentinel is never produced.
func NormalizeHue(deg int) Hue {
	h := deg % int(MaxHue)
	if h <= 0 {
		h += int(MaxHue)
	}
	return Hue(h)
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract a falling-sand grid exposes to frontends.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Clear()
	Step()
	Cells() []Hue
	SpawnAt(x, y int, hue Hue)
}

// Spawner accepts new particles. Out-of-range or occupied targets are ignored.
type Spawner interface {
	Size() Size
	SpawnAt(x, y int, hue Hue)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
