// Package parallel provides small helpers for fanning CPU-bound raster
// work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// minRowsPerWorker keeps tiny canvases on a single goroutine; below this
// the spawn overhead outweighs the work.
const minRowsPerWorker = 64

// Rows runs fn over the half-open row ranges that partition [0, n),
// distributing contiguous chunks across up to GOMAXPROCS goroutines.
// Chunks never overlap, so fn may write to disjoint row slices of a shared
// buffer without synchronization. Rows returns when every chunk is done.
func Rows(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n/minRowsPerWorker {
		workers = n / minRowsPerWorker
	}
	if workers <= 1 {
		fn(0, n)
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
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
