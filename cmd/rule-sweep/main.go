package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"time"

	"life3d/internal/sims/life3d"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

type paramSet struct {
	birth       int
	survivalMin int
	survivalMax int
}

func (p paramSet) String() string {
	return fmt.Sprintf("birth=%d survival=%d-%d", p.birth, p.survivalMin, p.survivalMax)
}

type outcome int

const (
	outcomeExtinct outcome = iota
	outcomeFrozen
	outcomeSaturated
	outcomeActive
)

var outcomeNames = map[outcome]string{
	outcomeExtinct:   "extinct",
	outcomeFrozen:    "frozen",
	outcomeSaturated: "saturated",
	outcomeActive:    "active",
}

type sweepResult struct {
	params       paramSet
	meanDensity  float64
	stdevDensity float64
	meanSurvival float64
	verdict      outcome
	activeTrials int
}

// activity score favors rules that neither die out nor saturate: a healthy
// mid-range density with variation across seeds.
func (r sweepResult) score() float64 {
	if r.verdict != outcomeActive {
		return 0
	}
	return r.meanDensity * (1 - r.meanDensity) * float64(r.activeTrials)
}

func main() {
	size := flag.Int("size", 16, "cubic lattice edge length")
	steps := flag.Int("steps", 60, "generations to simulate per trial")
	trials := flag.Int("trials", 4, "random seeds per parameter set")
	density := flag.Float64("density", 0.2, "initial live-cell probability")
	wrap := flag.Bool("wrap", true, "periodic boundaries")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	birthOptions := []int{3, 4, 5, 6, 7}
	survivalOptions := []struct{ min, max int }{
		{min: 2, max: 3},
		{min: 3, max: 4},
		{min: 4, max: 5},
		{min: 4, max: 6},
		{min: 5, max: 7},
		{min: 6, max: 8},
	}

	var sets []paramSet
	for _, birth := range birthOptions {
		for _, sv := range survivalOptions {
			sets = append(sets, paramSet{birth: birth, survivalMin: sv.min, survivalMax: sv.max})
		}
	}

	fmt.Printf("Sweeping %d rule sets (%d workers, %d trials x %d steps, %d³ lattice)\n",
		len(sets), *workers, *trials, *steps, *size)

	jobs := make(chan paramSet)
	results := make(chan sweepResult)

	var eg errgroup.Group
	for i := 0; i < *workers; i++ {
		eg.Go(func() error {
			for params := range jobs {
				results <- runTrials(params, *size, *steps, *trials, *density, *wrap)
			}
			return nil
		})
	}

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()
	go func() {
		_ = eg.Wait()
		close(results)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].score() > all[j].score() })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 rule sets by activity (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) %-28s verdict=%-9s density=%.4f±%.4f survived=%.0f%% active=%d/%d\n",
			i+1, res.params, outcomeNames[res.verdict], res.meanDensity, res.stdevDensity,
			res.meanSurvival*100, res.activeTrials, *trials)
	}

	counts := map[outcome]int{}
	for _, res := range all {
		counts[res.verdict]++
	}
	fmt.Printf("\nVerdicts: %d active, %d frozen, %d saturated, %d extinct\n",
		counts[outcomeActive], counts[outcomeFrozen], counts[outcomeSaturated], counts[outcomeExtinct])
}

// runTrials runs several seeded simulations of one rule set and summarizes
// the final population densities.
func runTrials(params paramSet, size, steps, trials int, density float64, wrap bool) sweepResult {
	cfg := life3d.Config{
		GridSize:    size,
		BirthRule:   params.birth,
		SurvivalMin: params.survivalMin,
		SurvivalMax: params.survivalMax,
		Periodic:    wrap,
	}
	engine := life3d.New(cfg)
	cells := float64(size * size * size)

	finals := make([]float64, 0, trials)
	survived := make([]float64, 0, trials)
	active := 0
	for trial := 0; trial < trials; trial++ {
		engine.Reseed(int64(1000*trial + 7))
		grid := engine.RandomGrid(density)

		frozen := false
		for i := 0; i < steps; i++ {
			next := engine.Step(grid)
			if next.Equal(grid) {
				frozen = true
				grid = next
				break
			}
			grid = next
			if grid.Population() == 0 {
				break
			}
		}

		final := float64(grid.Population()) / cells
		finals = append(finals, final)
		if final > 0 {
			survived = append(survived, 1)
		} else {
			survived = append(survived, 0)
		}
		if !frozen && final > 0.005 && final < 0.5 {
			active++
		}
	}

	mean, stdev := stat.MeanStdDev(finals, nil)
	res := sweepResult{
		params:       params,
		meanDensity:  mean,
		stdevDensity: stdev,
		meanSurvival: stat.Mean(survived, nil),
		activeTrials: active,
	}
	switch {
	case mean == 0:
		res.verdict = outcomeExtinct
	case mean >= 0.5:
		res.verdict = outcomeSaturated
	case active == 0:
		res.verdict = outcomeFrozen
	default:
		res.verdict = outcomeActive
	}
	return res
}
