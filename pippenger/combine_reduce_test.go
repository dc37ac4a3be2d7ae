package pippenger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaceandtimefdn/blitzar/bn254"
	"github.com/spaceandtimefdn/blitzar/exec"
	icurve "github.com/spaceandtimefdn/blitzar/internal/curve"
	"github.com/spaceandtimefdn/blitzar/pippenger"
)

func scaledGens(n int) []bn254.Point {
	base := bn254.Base()
	out := make([]bn254.Point, n)
	for i := range out {
		out[i] = icurve.ScalarMul[bn254.Point](base, []byte{byte(i + 1)})
	}
	return out
}

// TestCombineReduceOutputAppliesHornerSchedule checks R = p2 + 2*(p1 + 2*p0)
// against a direct scalar computation: with p[i] = i+1 (as multiples of
// base), R should equal (1 + 2*(2 + 2*3)) = 15 multiples of base.
func TestCombineReduceOutputAppliesHornerSchedule(t *testing.T) {
	partials := scaledGens(3)
	got := pippenger.CombineReduceOutput[bn254.Point](partials)
	want := icurve.ScalarMul[bn254.Point](bn254.Base(), []byte{15})
	require.True(t, want.Eq(got))
}

func TestCombineReduceOutputEmptyIsIdentity(t *testing.T) {
	got := pippenger.CombineReduceOutput[bn254.Point](nil)
	require.True(t, bn254.Base().Identity().Eq(got))
}

// TestCombineReduceSumsAcrossReductionCopies builds a 2-output,
// 1-bit-each bitTable with 2 reduction copies and checks the result is
// the sum of both copies' single partial each, i.e. 2x the per-copy
// value under the (trivial) single-bit Horner schedule.
func TestCombineReduceSumsAcrossReductionCopies(t *testing.T) {
	bitTable := []int{1, 1}
	numProducts := pippenger.NumProducts(bitTable)
	reductionSize := 2

	g := scaledGens(1)[0]
	partialProducts := make([]bn254.Point, numProducts*reductionSize)
	for c := 0; c < reductionSize; c++ {
		for p := 0; p < numProducts; p++ {
			partialProducts[c*numProducts+p] = g
		}
	}

	res := make([]bn254.Point, len(bitTable))
	pippenger.CombineReduce[bn254.Point](res, bitTable, partialProducts, reductionSize)

	want := g.Add(g)
	require.True(t, want.Eq(res[0]))
	require.True(t, want.Eq(res[1]))
}

func TestCombineReduceZeroWidthOutputIsIdentity(t *testing.T) {
	bitTable := []int{0, 1}
	numProducts := pippenger.NumProducts(bitTable)
	g := scaledGens(1)[0]
	partialProducts := make([]bn254.Point, numProducts)
	for i := range partialProducts {
		partialProducts[i] = g
	}

	res := make([]bn254.Point, len(bitTable))
	pippenger.CombineReduce[bn254.Point](res, bitTable, partialProducts, 1)

	require.True(t, g.Identity().Eq(res[0]))
	require.True(t, g.Eq(res[1]))
}

func TestCombineReduceConcurrentMatchesSequential(t *testing.T) {
	bitTable := []int{2, 3, 1, 4}
	numProducts := pippenger.NumProducts(bitTable)
	reductionSize := 3
	gens := scaledGens(numProducts * reductionSize)

	resSeq := make([]bn254.Point, len(bitTable))
	pippenger.CombineReduce[bn254.Point](resSeq, bitTable, gens, reductionSize)

	resConc := make([]bn254.Point, len(bitTable))
	opts := exec.SplitOptions{MinChunkSize: 1, MaxChunkSize: 1, SplitFactor: 2}
	require.NoError(t, pippenger.CombineReduceConcurrent[bn254.Point](resConc, bitTable, gens, reductionSize, opts))

	for i := range resSeq {
		require.True(t, resSeq[i].Eq(resConc[i]), "output %d", i)
	}
}
