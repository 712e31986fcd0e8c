// Package bruteforce implements the parallel baseline search used for
// parity testing against the three pruning-based indexes: a plain filter
// over the whole dictionary using the configured distance function, fanned
// out across worker goroutines.
package bruteforce

import (
	"runtime"
	"sync"
)

// DistanceFunc is the metric used to filter choices against query.
type DistanceFunc func(a, b string) int

// Search returns every term in choices within maxEdits of query. Work is
// sharded across runtime.GOMAXPROCS(0) worker goroutines, each computing
// distance independently over its own slice of choices and appending to a
// private result slice; no mutable state is shared across workers during
// the parallel phase, so the result order is unspecified.
func Search(query string, choices []string, maxEdits int, distance DistanceFunc) []string {
	if len(choices) == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(choices) {
		workers = len(choices)
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (len(choices) + workers - 1) / workers
	partials := make([][]string, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= len(choices) {
			break
		}
		end := start + chunkSize
		if end > len(choices) {
			end = len(choices)
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			var matches []string
			for _, choice := range choices[start:end] {
				if distance(query, choice) <= maxEdits {
					matches = append(matches, choice)
				}
			}
			partials[w] = matches
		}(w, start, end)
	}
	wg.Wait()

	var results []string
	for _, partial := range partials {
		results = append(results, partial...)
	}
	return results
}
