// Package pippenger is the Pippenger core (PIP): partition-product
// lookup, combine-reduce, and variable-length orchestration, generic
// over any curve implementing internal/curve.Element[T].
//
// Translated from
// _examples/original_source/sxt/multiexp/pippenger2/partition_product.h
// and combine_reduce.h. The "GPU kernel" here is an ordinary Go loop
// that always runs on the host; this package does not call
// exec/backend. It only ever calls through internal/curve.Element[T]
// so the hot loop monomorphizes per curve exactly as spec §4.1
// requires.
package pippenger

import (
	"github.com/spaceandtimefdn/blitzar/internal/curve"
	"github.com/spaceandtimefdn/blitzar/ptable"
)

// Elem is the capability set PIP needs from a group element.
type Elem[T any] interface {
	curve.Element[T]
	CompactSize() int
}

// computePartitionIndex assembles the 16-bit mask for one window: bit
// i is set iff generator i's scalar byte (read at stride step starting
// at scalars[0]) has bit bitOffset set, restricted to the first
// min(16, n) generators (spec §4.4.1).
func computePartitionIndex(scalars []byte, step, n, bitOffset int) uint16 {
	numElements := WindowSize
	if n < numElements {
		numElements = n
	}
	mask := byte(1) << uint(bitOffset)
	var res uint16
	for i := 0; i < numElements; i++ {
		if scalars[i*step]&mask != 0 {
			res |= uint16(1) << uint(i)
		}
	}
	return res
}

// WindowSize mirrors ptable.WindowSize; redeclared to avoid pippenger
// depending on ptable for a bare constant in hot-path code.
const WindowSize = ptable.WindowSize

// partitionProductBit computes one product (output o, scalar bit
// bitOffset) given the byte index within a generator's packed record
// and the product's effective length.
func partitionProductBit[T Elem[T]](table []T, scalars []byte, byteIndex, bitOffset, step, n int) T {
	remaining := n
	windowBase := 0
	off := byteIndex
	var zero T
	res := zero.Identity()
	if n == 0 {
		return table[0] // table[0] is always identity (spec §4.2 invariant)
	}
	for {
		pi := computePartitionIndex(scalars[off:], step, remaining, bitOffset)
		entry := table[windowBase*ptable.WindowEntries+int(pi)]
		res = res.AddInPlace(entry)
		if remaining <= WindowSize {
			break
		}
		remaining -= WindowSize
		windowBase++
		off += WindowSize * step
	}
	return res
}

// PartitionProduct computes products[p] for every product index p in
// [0, len(products)), reading the transposed scalar stream produced by
// package transpose, using table's precomputed window sums.
//
// step is the packed stride in bytes per generator (spec §3:
// ceil(sum Bi / 8)); productLengths[p] is the effective number of
// generators contributing to product p (spec §4.4.1's L_product(p)),
// typically from ComputeProductLengths.
func PartitionProduct[T Elem[T]](products []T, table *ptable.Table[T], scalars []byte, step int, productLengths []int) {
	entries := table.Entries()
	for p := range products {
		byteIndex := p / 8
		bitOffset := p % 8
		products[p] = partitionProductBit[T](entries, scalars, byteIndex, bitOffset, step, productLengths[p])
	}
}

// ComputeProductLengths expands a per-output bit table and per-output
// length into a per-product effective length, clamped to the
// generator range [first, first+chunkLen) that a chunk covers (spec
// §4.4.3 step 1). Every bit of a given output shares that output's
// effective length.
func ComputeProductLengths(bitTable, lengths []int, first, chunkLen int) []int {
	numProducts := 0
	for _, b := range bitTable {
		numProducts += b
	}
	out := make([]int, numProducts)
	p := 0
	for o, width := range bitTable {
		l := lengths[o] - first
		if l < 0 {
			l = 0
		}
		if l > chunkLen {
			l = chunkLen
		}
		for b := 0; b < width; b++ {
			out[p] = l
			p++
		}
	}
	return out
}

// NumProducts returns sum(bitTable), the length of the products array
// (spec §3: "Length = Σ Bi").
func NumProducts(bitTable []int) int {
	total := 0
	for _, b := range bitTable {
		total += b
	}
	return total
}
