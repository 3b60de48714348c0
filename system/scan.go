package system

import (
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/text-rts/parameter"
)

// parallelScan calls fn once for every index in [0, n)
// fn must only read shared state and write to its own index-addressed slot
func parallelScan(n int, fn func(i int)) {
	if n < parameter.ScanChunkMin {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := max(parameter.ScanChunkMin, (n+parameter.ScanWorkers-1)/parameter.ScanWorkers)

	var g errgroup.Group
	g.SetLimit(parameter.ScanWorkers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return nil
		})
	}
	// Workers never fail
	_ = g.Wait()
}
