package msm

import (
	"github.com/spaceandtimefdn/blitzar/internal/panicf"
	"github.com/spaceandtimefdn/blitzar/pippenger"
	"github.com/spaceandtimefdn/blitzar/ptable"
	"github.com/spaceandtimefdn/blitzar/transpose"
)

// CommitmentDescriptor describes one Pedersen commitment input. Length
// is the number of leading generators (from generatorOffset) that
// participate; Scalars must still supply one ElementNBytes-wide
// element per generator spanning the handle's full remaining range
// (h.N()-generatorOffset elements, element-major then byte-major) —
// entries at index >= Length are present but ignored, the same
// full-width convention the variable-length seed scenarios in spec §8
// use (supplemented from
// original_source/cbindings/fixed_pedersen.t.cc).
type CommitmentDescriptor struct {
	Length        int
	ElementNBytes int
	Scalars       []byte
}

// ComputePedersenCommitments computes result[i] = Σ_{k<descriptors[i].Length}
// scalar(i,k) * G[generatorOffset+k] for every descriptor, i.e. a
// vlen multiexponentiation against the generator range starting at
// generatorOffset. generatorOffset must be a multiple of
// ptable.WindowSize, the same constraint partition_product.h's
// async_partition_product asserts on its chunk offsets.
func (h *Handle[T]) ComputePedersenCommitments(res []T, descriptors []CommitmentDescriptor, generatorOffset int) error {
	panicf.Assert(generatorOffset%ptable.WindowSize == 0, "generatorOffset must be a multiple of %d, got %d", ptable.WindowSize, generatorOffset)
	numOutputs := len(descriptors)
	panicf.Assert(len(res) == numOutputs, "res must have length %d", numOutputs)

	n := h.n - generatorOffset
	panicf.Assert(n > 0, "generatorOffset %d exceeds handle generator count %d", generatorOffset, h.n)

	perOutput := make([][]byte, numOutputs)
	bitTable := make([]int, numOutputs)
	lengths := make([]int, numOutputs)
	for i, d := range descriptors {
		perOutput[i] = d.Scalars
		bitTable[i] = d.ElementNBytes * 8
		lengths[i] = d.Length
	}
	packed := transpose.Transpose(perOutput, bitTable, n)

	sub := h.table.Window(generatorOffset/ptable.WindowSize, h.table.NumWindows()-generatorOffset/ptable.WindowSize)
	return pippenger.Multiexponentiate[T](res, sub, bitTable, lengths, packed, h.split)
}
