package wavefront

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelFor calls fn(i) for every i in [0, n), joining before returning so
// that callers can rely on every index having completed once parallelFor
// returns — the barrier discipline every wavefront stage depends on (spec
// §5: no stage may begin before the previous one has finished for every
// pixel). When parallel is false it runs as a plain sequential loop, the
// deterministic single-threaded path tests rely on.
func parallelFor(n int, parallel bool, fn func(i int)) {
	if !parallel {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
