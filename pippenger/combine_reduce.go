package pippenger

import (
	"github.com/spaceandtimefdn/blitzar/exec"
	"github.com/spaceandtimefdn/blitzar/internal/curve"
)

// prefixOffsets returns, for each output, the index of its first
// product within a flattened products array ordered output-major,
// bit-minor (spec §3's "Products array").
func prefixOffsets(bitTable []int) []int {
	offsets := make([]int, len(bitTable))
	acc := 0
	for i, b := range bitTable {
		offsets[i] = acc
		acc += b
	}
	return offsets
}

// CombineReduceOutput collapses the reductionSize chunk-partials for a
// single output's bitWidth bits into one result, via the left-to-right
// Horner schedule described in spec §4.4.2:
// R = p[w-1] + 2*(p[w-2] + 2*(... + 2*p[0])).
// partials must contain exactly bitWidth contiguous per-bit sums
// already reduced across chunks (see CombineReduce for how chunks are
// summed before this call).
func CombineReduceOutput[T Elem[T]](partials []T) T {
	return curve.DoubleAndAdd[T](partials)
}

// CombineReduce reduces a partial-products array laid out as
// reductionSize stacked copies of a numProducts-length products array
// (spec §4.4.3: "partial products, yielding (Σ Bi) × C elements") into
// num_outputs results, one per entry of bitTable.
//
// Edge cases (spec §4.4.2): bitTable[o] == 0 produces the identity via
// curve.DoubleAndAdd's empty-slice case; a length-0 output similarly
// collapses to identity because its products were initialized to
// identity upstream in PartitionProduct.
func CombineReduce[T Elem[T]](res []T, bitTable []int, partialProducts []T, reductionSize int) {
	numProducts := NumProducts(bitTable)
	offsets := prefixOffsets(bitTable)
	combineReduceRange[T](res, bitTable, offsets, numProducts, partialProducts, reductionSize, 0, len(bitTable))
}

// combineReduceRange writes res[a:b] (indices relative to the full
// bitTable/offsets) using the global numProducts stride between
// chunk-reduction copies in partialProducts.
func combineReduceRange[T Elem[T]](res []T, bitTable, offsets []int, numProducts int, partialProducts []T, reductionSize, a, b int) {
	for o := a; o < b; o++ {
		width := bitTable[o]
		if width == 0 {
			var zero T
			res[o] = zero.Identity()
			continue
		}
		base := offsets[o]
		bitsSum := make([]T, width)
		for j := 0; j < width; j++ {
			acc := partialProducts[base+j]
			for c := 1; c < reductionSize; c++ {
				acc = acc.AddInPlace(partialProducts[c*numProducts+base+j])
			}
			bitsSum[j] = acc
		}
		res[o] = CombineReduceOutput[T](bitsSum)
	}
}

// CombineReduceConcurrent is CombineReduce split across output ranges
// and run concurrently, the host-side analogue of combine_reduce.h's
// xendv::concurrent_for_each over output chunks (spec §4.4.3).
func CombineReduceConcurrent[T Elem[T]](res []T, bitTable []int, partialProducts []T, reductionSize int, opts exec.SplitOptions) error {
	numOutputs := len(bitTable)
	numProducts := NumProducts(bitTable)
	offsets := prefixOffsets(bitTable)
	chunks := exec.Split(exec.IndexRange{A: 0, B: numOutputs}, opts)
	return exec.ConcurrentForEach(chunks, opts.SplitFactor, func(rng exec.IndexRange) error {
		combineReduceRange[T](res, bitTable, offsets, numProducts, partialProducts, reductionSize, rng.A, rng.B)
		return nil
	})
}
