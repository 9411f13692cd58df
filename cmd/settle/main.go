package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"rhysix/internal/core"
	"rhysix/internal/sims/sandbox"
)

type job struct {
	scenario sandbox.Scenario
	seed     int64
}

type summary struct {
	runs      int
	settled   int
	minFoot   int
	maxFoot   int
	sumFoot   int
	minHeight int
	maxHeight int
	lastStep  int
}

func (s *summary) add(res sandbox.ScenarioResult) {
	if s.runs == 0 {
		s.minFoot, s.maxFoot = res.Footprint, res.Footprint
		s.minHeight, s.maxHeight = res.Height, res.Height
	}
	s.runs++
	s.sumFoot += res.Footprint
	s.minFoot = min(s.minFoot, res.Footprint)
	s.maxFoot = max(s.maxFoot, res.Footprint)
	s.minHeight = min(s.minHeight, res.Height)
	s.maxHeight = max(s.maxHeight, res.Height)
	if res.Settled() {
		s.settled++
		s.lastStep = max(s.lastStep, res.LastChange)
	}
}

func main() {
	steps := flag.Int("steps", 400, "ticks to simulate per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 32, "runs per scenario, one seed each")
	column := flag.Int("column", 20, "height of the dropped column in cells")
	width := flag.Int("w", 200, "grid width")
	height := flag.Int("h", 150, "grid height")
	only := flag.String("scenario", "", "run only this scenario (puddle or pile)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := core.NewLogger(*logLevel)

	scenarios := []sandbox.Scenario{sandbox.ScenarioPuddle, sandbox.ScenarioPile}
	if *only != "" {
		s := sandbox.Scenario(*only)
		if s != sandbox.ScenarioPuddle && s != sandbox.ScenarioPile {
			logger.Fatalf("unknown scenario %q", *only)
		}
		scenarios = []sandbox.Scenario{s}
	}
	if *workers <= 0 {
		*workers = 1
	}

	base := sandbox.DefaultConfig()
	base.Width = *width
	base.Height = *height

	var jobsList []job
	for _, sc := range scenarios {
		for i := 0; i < *seeds; i++ {
			jobsList = append(jobsList, job{scenario: sc, seed: int64(i + 1)})
		}
	}
	logger.Infof("running %d jobs (%d workers, %d steps, column %d)", len(jobsList), *workers, *steps, *column)

	jobs := make(chan job)
	results := make(chan sandbox.ScenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				cfg := base
				cfg.Seed = j.seed
				results <- sandbox.RunScenario(cfg, j.scenario, *column, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobsList {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	summaries := map[sandbox.Scenario]*summary{}
	for res := range results {
		s, ok := summaries[res.Scenario]
		if !ok {
			s = &summary{}
			summaries[res.Scenario] = s
		}
		s.add(res)
		logger.Debugf("%s seed=%d footprint=%d height=%d last=%d", res.Scenario, res.Seed, res.Footprint, res.Height, res.LastChange)
	}
	elapsed := time.Since(start)

	names := make([]string, 0, len(summaries))
	for sc := range summaries {
		names = append(names, string(sc))
	}
	sort.Strings(names)

	fmt.Printf("Results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, name := range names {
		s := summaries[sandbox.Scenario(name)]
		fmt.Printf("%-7s runs=%d footprint[min=%d mean=%.1f max=%d] height[min=%d max=%d] settled=%d/%d latest=%d\n",
			name, s.runs, s.minFoot, float64(s.sumFoot)/float64(s.runs), s.maxFoot, s.minHeight, s.maxHeight, s.settled, s.runs, s.lastStep)
	}
}
