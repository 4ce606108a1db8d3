package sand

import "strconv"

// Hue modes for seeded particles.
const (
	HueModeRandom = "random"
	HueModeNoise  = "noise"
)

// Params holds the seeding and rule tunables for a grid.
type Params struct {
	InitialCount int
	// SeedBand is the fraction of rows, counted from the top, that random
	// seeding may place particles in.
	SeedBand float64
	// MaxSeedAttempts caps rejection sampling per particle before seeding
	// switches to shuffling the remaining empty cells.
	MaxSeedAttempts int
	HueMode         string
	NoiseScale      float64
	Rule            string
}

// Config controls the grid dimensions and seeding.
type Config struct {
	Rows    int
	Columns int

	Seed int64

	Params Params
}

// DefaultConfig returns a 48x64 grid matching a 640x480 window with 10px cells.
func DefaultConfig() Config {
	return Config{
		Rows:    48,
		Columns: 64,
		Seed:    1337,
		Params: Params{
			InitialCount:    10,
			SeedBand:        1.0 / 3.0,
			MaxSeedAttempts: 64,
			HueMode:         HueModeRandom,
			NoiseScale:      0.08,
			Rule:            RulePile,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["columns"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Columns = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["initial"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.InitialCount = parsed
		}
	}
	if v, ok := cfg["seed_band"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.Params.SeedBand = parsed
		}
	}
	if v, ok := cfg["seed_attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.MaxSeedAttempts = parsed
		}
	}
	if v, ok := cfg["hue_mode"]; ok {
		if v == HueModeRandom || v == HueModeNoise {
			c.Params.HueMode = v
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.NoiseScale = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, known := rules[v]; known {
			c.Params.Rule = v
		}
	}
	return c
}
