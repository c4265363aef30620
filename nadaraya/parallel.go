// SPDX-License-Identifier: MIT

package nadaraya

import "sync"

// parallelFor runs fn(i) for every i in [0, n) on up to workers
// goroutines. Indices are handed out exactly once; fn must confine its
// writes to state owned by index i. workers <= 1 degrades to a plain
// sequential loop, which keeps single-worker runs easy to step through.
func parallelFor(n, workers int, fn func(i int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}

		return
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		idx <- i
	}
	close(idx)
	wg.Wait()
}
