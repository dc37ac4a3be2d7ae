package exec

import "golang.org/x/sync/errgroup"

// ConcurrentForEach runs fn over every chunk, awaiting every per-chunk
// stream before returning, the Go analogue of
// sxt/execution/device/for_each.h's xendv::concurrent_for_each:
// "the combine stage awaits every per-chunk stream" (spec §5).
// maxInFlight bounds how many chunks run at once (0 means unbounded),
// standing in for one stream per physical device.
func ConcurrentForEach(chunks []IndexRange, maxInFlight int, fn func(IndexRange) error) error {
	var g errgroup.Group
	if maxInFlight > 0 {
		g.SetLimit(maxInFlight)
	}
	for _, rng := range chunks {
		rng := rng
		g.Go(func() error {
			return fn(rng)
		})
	}
	return g.Wait()
}
