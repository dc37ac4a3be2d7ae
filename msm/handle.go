// Package msm is the library's public API (spec §6): handle lifecycle
// over a fixed generator set, and the three multiexponentiation entry
// points (fixed, packed, variable-length), plus the Pedersen
// commitment helper supplemented from original_source.
package msm

import (
	"github.com/spaceandtimefdn/blitzar/exec"
	"github.com/spaceandtimefdn/blitzar/internal/curve"
	"github.com/spaceandtimefdn/blitzar/internal/panicf"
	"github.com/spaceandtimefdn/blitzar/pippenger"
	"github.com/spaceandtimefdn/blitzar/ptable"
	"github.com/spaceandtimefdn/blitzar/transpose"
)

// Handle is multiexp_handle_new's result: a curve's generator set,
// precomputed into a partition table, ready for repeated
// multiexponentiation calls.
type Handle[T pippenger.Elem[T]] struct {
	Curve curve.Curve
	table *ptable.Table[T]
	n     int
	split exec.SplitOptions
}

// NewHandle builds a partition table over generators (spec §4.2
// "Construction") and returns a handle bound to curveID.
func NewHandle[T pippenger.Elem[T]](curveID curve.Curve, generators []T) *Handle[T] {
	return &Handle[T]{
		Curve: curveID,
		table: ptable.Build(generators),
		n:     len(generators),
		split: DefaultSplitOptions(),
	}
}

// OpenHandle loads a handle from a previously written partition-table
// blob (multiexp_handle_new_from_file).
func OpenHandle[T pippenger.Elem[T]](curveID curve.Curve, path string) (*Handle[T], error) {
	table, err := ptable.Open[T](path)
	if err != nil {
		return nil, err
	}
	return &Handle[T]{
		Curve: curveID,
		table: table,
		n:     table.NumWindows() * ptable.WindowSize,
		split: DefaultSplitOptions(),
	}, nil
}

// WriteToFile serializes the handle's partition table
// (multiexp_handle_write_to_file).
func (h *Handle[T]) WriteToFile(path string) error {
	return h.table.Write(path)
}

// Free is a no-op: Go's garbage collector reclaims the handle's
// backing arrays once unreferenced. Kept so callers porting against
// the §6 API (multiexp_handle_free) have a direct equivalent to call.
func (h *Handle[T]) Free() {}

// N reports the number of generators the handle was built over. For a
// handle loaded by OpenHandle it is NumWindows*16, since the blob does
// not record how many generators the final window actually held.
func (h *Handle[T]) N() int { return h.n }

// WithSplitOptions overrides the chunk-split policy used by every
// multiexponentiation call on this handle; by default
// DefaultSplitOptions() is used.
func (h *Handle[T]) WithSplitOptions(opts exec.SplitOptions) *Handle[T] {
	h.split = opts
	return h
}

// DefaultSplitOptions mirrors async_multiexponentiate's defaults in
// variable_length_multiexponentiation.h: min 64, max 1024, split
// factor equal to the number of devices (1 on the default cpu
// backend).
func DefaultSplitOptions() exec.SplitOptions {
	return exec.SplitOptions{MinChunkSize: 64, MaxChunkSize: 1024, SplitFactor: ActiveBackend().NumDevices()}
}

// FixedMultiexponentiation implements fixed_multiexponentiation: every
// output uses the same fixed-width scalar and the full generator
// range. scalars is laid out output-major, element-major, byte-major
// (spec §4.3's STL input convention) and is transposed internally.
func (h *Handle[T]) FixedMultiexponentiation(res []T, elementNBytes, numOutputs int, scalars []byte) error {
	panicf.Assert(len(res) == numOutputs, "res must have length numOutputs=%d, got %d", numOutputs, len(res))
	n := h.n
	expected := numOutputs * n * elementNBytes
	panicf.Assert(len(scalars) == expected, "scalars must have length %d, got %d", expected, len(scalars))

	perOutput := make([][]byte, numOutputs)
	bitTable := make([]int, numOutputs)
	lengths := make([]int, numOutputs)
	for o := 0; o < numOutputs; o++ {
		perOutput[o] = scalars[o*n*elementNBytes : (o+1)*n*elementNBytes]
		bitTable[o] = elementNBytes * 8
		lengths[o] = n
	}
	packed := transpose.Transpose(perOutput, bitTable, n)
	return pippenger.Multiexponentiate[T](res, h.table, bitTable, lengths, packed, h.split)
}

// FixedPackedMultiexponentiation implements fixed_packed_multiexponentiation:
// packedScalars already carries the generator-slowest, product-fastest
// layout of spec §3, with per-output bit widths given by bitTable.
func (h *Handle[T]) FixedPackedMultiexponentiation(res []T, bitTable []int, numOutputs int, packedScalars []byte) error {
	panicf.Assert(len(res) == numOutputs && len(bitTable) == numOutputs,
		"res and bitTable must have length numOutputs=%d", numOutputs)
	lengths := make([]int, numOutputs)
	for i := range lengths {
		lengths[i] = h.n
	}
	return pippenger.Multiexponentiate[T](res, h.table, bitTable, lengths, packedScalars, h.split)
}

// FixedVlenMultiexponentiation implements fixed_vlen_multiexponentiation:
// each output additionally has its own generator-count length, so
// output i only sums over its first lengths[i] generators.
func (h *Handle[T]) FixedVlenMultiexponentiation(res []T, bitTable, lengths []int, packedScalars []byte) error {
	numOutputs := len(res)
	panicf.Assert(len(bitTable) == numOutputs && len(lengths) == numOutputs,
		"res, bitTable, and lengths must all have length %d", numOutputs)
	return pippenger.Multiexponentiate[T](res, h.table, bitTable, lengths, packedScalars, h.split)
}
