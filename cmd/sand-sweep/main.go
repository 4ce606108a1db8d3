package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"sandspill/internal/app"
	"sandspill/internal/sand"
)

type paramSet struct {
	rule     string
	initial  int
	band     float64
	hueMode  string
	attempts int
}

func (p paramSet) String() string {
	return fmt.Sprintf("rule=%s initial=%d band=%.2f hue=%s attempts=%d", p.rule, p.initial, p.band, p.hueMode, p.attempts)
}

type scenarioResult struct {
	params  paramSet
	settle  sand.SettleResult
	elapsed time.Duration
}

func main() {
	rows := flag.Int("rows", 48, "grid rows")
	columns := flag.Int("columns", 64, "grid columns")
	seed := flag.Int64("seed", 1337, "seed used for every scenario")
	maxTicks := flag.Int("ticks", 2000, "tick cap per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "slowest scenarios to report")
	var overrides app.KVList
	flag.Var(&overrides, "set", "base option in key=value form (repeatable)")
	flag.Parse()

	opts := overrides.Map()
	opts["rows"] = fmt.Sprint(*rows)
	opts["columns"] = fmt.Sprint(*columns)
	opts["seed"] = fmt.Sprint(*seed)
	base := sand.FromMap(opts)

	cells := base.Rows * base.Columns
	initialOptions := []int{10, cells / 20, cells / 6, cells / 3, cells}
	bandOptions := []float64{0.1, 1.0 / 3.0, 0.5, 1.0}
	attemptOptions := []int{1, 64}

	var sets []paramSet
	for _, rule := range sand.Rules() {
		for _, initial := range initialOptions {
			for _, band := range bandOptions {
				for _, attempts := range attemptOptions {
					sets = append(sets, paramSet{
						rule:     rule,
						initial:  initial,
						band:     band,
						hueMode:  base.Params.HueMode,
						attempts: attempts,
					})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets on %dx%d (%d workers, %d tick cap)\n", len(sets), base.Rows, base.Columns, *workers, *maxTicks)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if !res.settle.Settled {
			fmt.Printf("Did not settle within %d ticks: %s\n", *maxTicks, res.params)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].settle.Ticks != all[j].settle.Ticks {
			return all[i].settle.Ticks > all[j].settle.Ticks
		}
		return all[i].params.String() < all[j].params.String()
	})

	fmt.Printf("\nSlowest %d to settle (elapsed %s):\n", *top, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) ticks=%d count=%d peakMoved=%d totalMoved=%d took=%s params=%s\n",
			i+1, res.settle.Ticks, res.settle.Count, res.settle.PeakMoved, res.settle.TotalMoved, res.elapsed.Round(time.Microsecond), res.params)
	}
}

func runScenario(base sand.Config, params paramSet, maxTicks int) scenarioResult {
	cfg := base
	cfg.Params.Rule = params.rule
	cfg.Params.InitialCount = params.initial
	cfg.Params.SeedBand = params.band
	cfg.Params.HueMode = params.hueMode
	cfg.Params.MaxSeedAttempts = params.attempts

	start := time.Now()
	res := sand.Settle(cfg, maxTicks)
	return scenarioResult{params: params, settle: res, elapsed: time.Since(start)}
}
