package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"hexflake/internal/sims/snowflake"
)

type paramSet struct {
	beta  float64
	theta float64
	kappa float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("beta=%.3f theta=%.4f kappa=%.4f", p.beta, p.theta, p.kappa)
}

type scenarioResult struct {
	params      paramSet
	radius      int
	stepReached int
	attached    int
	tips        int
	crystalMass float64
}

func main() {
	steps := flag.Int("steps", 600, "steps to simulate per scenario")
	size := flag.Int("size", 40, "lattice radius")
	seed := flag.Int64("seed", 1337, "simulation seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	preset := flag.String("preset", "", "YAML parameter preset used as the sweep baseline")
	flag.Parse()

	baseCfg := snowflake.DefaultConfig()
	baseCfg.Size = *size
	baseCfg.Seed = *seed
	if *preset != "" {
		if err := baseCfg.LoadFile(*preset); err != nil {
			log.Fatalf("load preset: %v", err)
		}
	}

	betaOptions := []float64{1.05, 1.15, 1.3, 1.5, 1.8}
	thetaOptions := []float64{0.02, 0.025, 0.032}
	kappaOptions := []float64{0.001, 0.003, 0.01}

	var sets []paramSet
	for _, beta := range betaOptions {
		for _, theta := range thetaOptions {
			for _, kappa := range kappaOptions {
				sets = append(sets, paramSet{beta: beta, theta: theta, kappa: kappa})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, radius %d)\n",
		len(sets), *workers, *steps, baseCfg.Size)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *steps)
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
	rim := baseCfg.Size - 1
	for res := range results {
		all = append(all, res)
		if res.radius >= rim {
			fmt.Printf("Dendrite reached the rim (radius %d) at step %d with %s\n",
				res.radius, res.stepReached, res.params)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].radius != all[j].radius {
			return all[i].radius > all[j].radius
		}
		return all[i].tips > all[j].tips
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) radius=%d step=%d attached=%d tips=%d crystal=%.2f params=%s\n",
			i+1, res.radius, res.stepReached, res.attached, res.tips, res.crystalMass, res.params)
	}
}

func runScenario(base snowflake.Config, params paramSet, steps int) scenarioResult {
	cfg := base
	cfg.Params.Beta = params.beta
	cfg.Params.Theta = params.theta
	cfg.Params.Kappa = params.kappa

	lattice, err := snowflake.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("construct lattice: %v", err)
	}

	rim := cfg.Size - 1
	result := scenarioResult{params: params}
	for step := 0; step < steps; step++ {
		lattice.Step()
		if r := lattice.Radius(); r > result.radius {
			result.radius = r
			result.stepReached = step + 1
		}
		// Stop once the dendrite touches the reflecting rim; growth beyond
		// this point is an edge artifact, not morphology.
		if result.radius >= rim {
			break
		}
	}

	result.attached = lattice.AttachedCount()
	result.tips = lattice.TipCount()
	result.crystalMass = lattice.MassTotals().Crystal
	return result
}
