package parallel

import "fmt"

// ForEach calls fn(i) for every i in [0, n). See ForEachWorker.
func ForEach(n, workers int, fn func(i int)) error {
	return ForEachWorker(n, workers, func(_, i int) { fn(i) })
}

// ForEachWorker calls fn(worker, i) for every i in [0, n), where worker is in
// [0, min(workers, n, MaxWorkers)). With workers <= 1 or n < 2 everything
// runs inline as worker 0. Callers write into slot i of a pre-sized slice and
// may keep scratch space per worker.
func ForEachWorker(n, workers int, fn func(worker, i int)) error {
	if n <= 0 {
		return nil
	}
	if workers <= 1 || n < 2 {
		for i := range n {
			fn(0, i)
		}
		return nil
	}

	pool, err := NewPool(min(workers, n, MaxWorkers))
	if err != nil {
		return err
	}
	for i := range n {
		pool.Submit(func(w int) { fn(w, i) })
	}
	pool.Close()

	if panics := pool.Panics(); len(panics) > 0 {
		return fmt.Errorf("%w: %d of %d tasks, first: %s", ErrTaskPanicked, len(panics), n, panics[0])
	}
	return nil
}
