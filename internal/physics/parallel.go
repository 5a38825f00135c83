package physics

import (
	"runtime"
	"sync"
)

// forEach runs fn(i) for every index in [0, n) split into contiguous
// chunks across up to NumCPU goroutines, and returns only after all
// complete. The returned barrier is what separates the simulation phases:
// no index from a later phase runs before every index of the current one
// has finished.
func forEach(n int, fn func(i int)) {
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
