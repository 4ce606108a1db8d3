package app

import (
	"flag"
	"strconv"
	"strings"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Sim       string
	Rows      int
	Columns   int
	CellSize  int
	Initial   int
	TPS       int
	FPS       int
	Seed      int64
	BrushSize int
	HueStep   int
	HUDWidth  int
	Sound     bool
	Overrides KVList
}

// NewConfig returns a Config populated with defaults: a 640x480 window of
// 10px cells stepping and rendering at 30 per second.
func NewConfig() *Config {
	return &Config{
		Sim:       "sand",
		Rows:      48,
		Columns:   64,
		CellSize:  10,
		Initial:   10,
		TPS:       30,
		FPS:       30,
		Seed:      42,
		BrushSize: 3,
		HueStep:   1,
		HUDWidth:  200,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (sand, drop)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Columns, "columns", c.Columns, "grid columns")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Initial, "initial", c.Initial, "randomly seeded particles")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.FPS, "fps", c.FPS, "rendered frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for particle placement")
	fs.IntVar(&c.BrushSize, "brush", c.BrushSize, "brush edge length in cells")
	fs.IntVar(&c.HueStep, "hue-step", c.HueStep, "hue advance per rendered frame")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 disables)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a chime on reset")
	fs.Var(&c.Overrides, "set", "sim option in key=value form (repeatable)")
}

// SimOptions builds the option map passed to a sim factory. Explicit -set
// overrides win over the dedicated flags.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"rows":    strconv.Itoa(c.Rows),
		"columns": strconv.Itoa(c.Columns),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"initial": strconv.Itoa(c.Initial),
	}
	for k, v := range c.Overrides.Map() {
		opts[k] = v
	}
	return opts
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the well-formed entries; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
