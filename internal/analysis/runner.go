package analysis

import (
	"runtime"
	"sync"

	"github.com/trailstats/trailstats/internal/config"
	"github.com/trailstats/trailstats/internal/models"
)

// Run executes the whole pipeline: point filter, group resolution, then one
// accumulator pass per group. Groups share no mutable state, so they are
// dispatched to a worker pool; each result lands in the slot matching its
// group's resolution order, so the output order never depends on scheduling.
func Run(files []models.File, cfg *config.Config) []models.Stats {
	groups := ResolveGroups(FilterFiles(files, cfg), cfg)
	results := make([]models.Stats, len(groups))

	workers := runtime.NumCPU()
	if workers > len(groups) {
		workers = len(groups)
	}
	if workers <= 1 {
		for i, group := range groups {
			results[i] = AnalyzeGroup(group, cfg)
		}
		return results
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, group := range groups {
		wg.Add(1)
		go func(i int, group models.Group) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = AnalyzeGroup(group, cfg)
		}(i, group)
	}
	wg.Wait()

	return results
}
