package exec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaceandtimefdn/blitzar/exec"
)

func TestSplitCoversRangeContiguously(t *testing.T) {
	opts := exec.SplitOptions{MinChunkSize: 4, MaxChunkSize: 16, SplitFactor: 1, Alignment: 1}
	chunks := exec.Split(exec.IndexRange{A: 0, B: 37}, opts)
	require.NotEmpty(t, chunks)

	require.Equal(t, 0, chunks[0].A)
	require.Equal(t, 37, chunks[len(chunks)-1].B)
	for i := 1; i < len(chunks); i++ {
		require.Equal(t, chunks[i-1].B, chunks[i].A)
	}
}

func TestSplitEmptyRange(t *testing.T) {
	opts := exec.SplitOptions{}
	chunks := exec.Split(exec.IndexRange{A: 5, B: 5}, opts)
	require.Nil(t, chunks)
}

func TestSplitRespectsAlignment(t *testing.T) {
	opts := exec.SplitOptions{MinChunkSize: 1, MaxChunkSize: 100, SplitFactor: 3, Alignment: 16}
	chunks := exec.Split(exec.IndexRange{A: 0, B: 100}, opts)
	for i, c := range chunks {
		if i == len(chunks)-1 {
			continue // final chunk may be shorter than the aligned size
		}
		require.Zero(t, c.Size()%16)
	}
}

func TestChunkMultiple(t *testing.T) {
	r := exec.ChunkMultiple(exec.IndexRange{A: 17, B: 33}, 16)
	require.Equal(t, exec.IndexRange{A: 16, B: 48}, r)
}

func TestPlanSplitBoundsByMemory(t *testing.T) {
	opts := exec.PlanSplit(64, 1024, 0.5, 2)
	require.LessOrEqual(t, opts.MaxChunkSize, 1024/64)
	require.Equal(t, 2, opts.SplitFactor)
}
