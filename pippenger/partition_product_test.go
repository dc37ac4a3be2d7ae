package pippenger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumProducts(t *testing.T) {
	require.Equal(t, 0, NumProducts(nil))
	require.Equal(t, 17, NumProducts([]int{8, 1, 8}))
}

func TestComputeProductLengthsClampsToChunk(t *testing.T) {
	bitTable := []int{2, 3}
	lengths := []int{5, 2}
	// chunk covers generators [4, 4+3) = [4,7)
	out := ComputeProductLengths(bitTable, lengths, 4, 3)
	// output 0: lengths[0]-first = 1, clamped to chunkLen 3 -> 1, both bits
	require.Equal(t, []int{1, 1, 0, 0, 0}, out)
}

func TestComputeProductLengthsFullRange(t *testing.T) {
	bitTable := []int{1, 1}
	lengths := []int{10, 10}
	out := ComputeProductLengths(bitTable, lengths, 0, 10)
	require.Equal(t, []int{10, 10}, out)
}

func TestComputePartitionIndexRespectsEffectiveLength(t *testing.T) {
	// 3 generators, step 1, bitOffset 0: bytes 0b1,0b1,0b1 -> all bits
	// set, but n=2 should only consider the first two generators.
	scalars := []byte{1, 1, 1}
	got := computePartitionIndex(scalars, 1, 2, 0)
	require.Equal(t, uint16(0b011), got)
}

func TestComputePartitionIndexStep(t *testing.T) {
	// step=2: generator i's relevant byte lives at scalars[i*2].
	scalars := []byte{1, 0xff, 0, 0xff, 1, 0xff}
	got := computePartitionIndex(scalars, 2, 3, 0)
	require.Equal(t, uint16(0b101), got)
}
