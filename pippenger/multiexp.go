package pippenger

import (
	"golang.org/x/sync/errgroup"

	"github.com/spaceandtimefdn/blitzar/exec"
	"github.com/spaceandtimefdn/blitzar/internal/panicf"
	"github.com/spaceandtimefdn/blitzar/internal/xlog"
	"github.com/spaceandtimefdn/blitzar/ptable"
)

// Multiexponentiate is variable_length_multiexponentiation (spec
// §4.4.3): it splits the generator axis into window-aligned chunks,
// computes each chunk's partition products, and combine-reduces the
// per-chunk partials into res. scalars must be the packed,
// transpose.Transpose-produced byte stream; n is recovered from its
// length and bitTable.
//
// Fast path (spec §4.4.3 "Fast-path"): when the whole range fits in a
// single chunk, the host-side partial buffer is never allocated and
// combine-reduce runs directly on the one chunk's products.
func Multiexponentiate[T Elem[T]](res []T, table *ptable.Table[T], bitTable, lengths []int, scalars []byte, opts exec.SplitOptions) error {
	numOutputs := len(res)
	if numOutputs != len(bitTable) {
		panicf.Panic("res and bitTable must have equal length, got %d and %d", numOutputs, len(bitTable))
	}
	if numOutputs == 0 {
		return nil
	}
	numProducts := NumProducts(bitTable)
	step := (numProducts + 7) / 8
	if step == 0 {
		for i := range res {
			var zero T
			res[i] = zero.Identity()
		}
		return nil
	}
	n := len(scalars) / step

	log := xlog.Logger("pippenger")

	opts.Alignment = ptable.WindowSize
	chunks := exec.Split(exec.IndexRange{A: 0, B: n}, opts)
	log.Info().Int("products", numProducts).Int("generators", n).Int("chunks", len(chunks)).
		Msg("computing bitwise multiexponentiation products")

	if len(chunks) <= 1 {
		productLengths := ComputeProductLengths(bitTable, lengths, 0, n)
		products := make([]T, numProducts)
		PartitionProduct[T](products, table, scalars, step, productLengths)
		CombineReduce[T](res, bitTable, products, 1)
		return nil
	}

	numChunks := len(chunks)
	partials := make([]T, numProducts*numChunks)
	var g errgroup.Group
	if opts.SplitFactor > 0 {
		g.SetLimit(opts.SplitFactor)
	}
	for i, rng := range chunks {
		i, rng := i, rng
		g.Go(func() error {
			chunkLen := rng.Size()
			productLengths := ComputeProductLengths(bitTable, lengths, rng.A, chunkLen)
			chunkScalars := scalars[rng.A*step : rng.B*step]
			firstWindow := rng.A / ptable.WindowSize
			lastWindow := (rng.B + ptable.WindowSize - 1) / ptable.WindowSize
			tableSlice := table.Window(firstWindow, lastWindow-firstWindow)
			dst := partials[i*numProducts : (i+1)*numProducts]
			PartitionProduct[T](dst, tableSlice, chunkScalars, step, productLengths)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Int("chunks", numChunks).Msg("combining partial product chunks")
	CombineReduce[T](res, bitTable, partials, numChunks)
	return nil
}
