package core

import "time"

// Clock supplies monotonic elapsed time and a blocking sleep.
type Clock interface {
	Now() time.Duration
	Sleep(d time.Duration)
}

// WallClock measures time since its creation using the runtime monotonic clock.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a clock anchored at the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the elapsed time since the clock was created.
func (c *WallClock) Now() time.Duration { return time.Since(c.start) }

// Sleep blocks for d.
func (c *WallClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// ManualClock is a Clock that only moves when told to. Sleep advances it
// instead of blocking, so loops driven by it run as fast as possible.
type ManualClock struct {
	now time.Duration
}

// Now returns the accumulated time.
func (c *ManualClock) Now() time.Duration { return c.now }

// Sleep advances the clock by d.
func (c *ManualClock) Sleep(d time.Duration) { c.Advance(d) }

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// DefaultMaxCatchUp bounds how many ticks a single frame may run.
const DefaultMaxCatchUp = 8

// FixedStep accumulates elapsed time into a lag counter and converts it into a
// whole number of simulation ticks.
type FixedStep struct {
	step       time.Duration
	lag        time.Duration
	last       time.Duration
	started    bool
	maxCatchUp int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxCatchUp: DefaultMaxCatchUp}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 30
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the configured tick rate.
func (f *FixedStep) TPS() int {
	if f.step <= 0 {
		return 0
	}
	return int(time.Second / f.step)
}

// SetMaxCatchUp changes the per-frame tick cap. Values <= 0 disable the cap.
func (f *FixedStep) SetMaxCatchUp(n int) { f.maxCatchUp = n }

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Lag returns the elapsed time not yet consumed by a tick.
func (f *FixedStep) Lag() time.Duration { return f.lag }

// Advance adds the time elapsed since the previous call to the lag counter and
// returns how many ticks should run now. The returned ticks are consumed from
// the lag. The first call only anchors the clock.
func (f *FixedStep) Advance(now time.Duration) int {
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}
	if now > f.last {
		f.lag += now - f.last
	}
	f.last = now

	ticks := 0
	for f.lag >= f.step {
		f.lag -= f.step
		ticks++
		if f.maxCatchUp > 0 && ticks == f.maxCatchUp {
			// Drop the backlog rather than spiral.
			f.lag %= f.step
			break
		}
	}
	return ticks
}

// Reset discards accumulated lag and re-anchors on the next Advance.
func (f *FixedStep) Reset() {
	f.lag = 0
	f.started = false
}
