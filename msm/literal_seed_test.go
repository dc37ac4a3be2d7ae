package msm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaceandtimefdn/blitzar/bn254"
	"github.com/spaceandtimefdn/blitzar/curve25519"
	icurve "github.com/spaceandtimefdn/blitzar/internal/curve"
	"github.com/spaceandtimefdn/blitzar/msm"
)

func curve25519GeneratorsFor(n int) []curve25519.Point {
	return icurve.DeterministicGenerators[curve25519.Point](curve25519.Base(), n)
}

// TestFixedPackedMultiexponentiationLiteralBitTable reproduces the
// packed-form scenario, bit_table={3,1}, scalars={0b1010,0b0101}: two
// generators, output 0 takes 3 bits, output 1 takes 1 bit, packed
// tightly (no byte padding) per generator.
func TestFixedPackedMultiexponentiationLiteralBitTable(t *testing.T) {
	gens := curve25519GeneratorsFor(2)
	h := msm.NewHandle[curve25519.Point](icurve.Curve25519, gens)

	bitTable := []int{3, 1}
	packed := []byte{0b1010, 0b0101}

	res := make([]curve25519.Point, 2)
	require.NoError(t, h.FixedPackedMultiexponentiation(res, bitTable, 2, packed))

	want0 := icurve.ScalarMul[curve25519.Point](gens[0], []byte{2}).
		Add(icurve.ScalarMul[curve25519.Point](gens[1], []byte{5}))
	want1 := gens[0]

	require.True(t, want0.Eq(res[0]))
	require.True(t, want1.Eq(res[1]))
}

// TestFixedVlenMultiexponentiationLiteralBitTable reproduces the
// variable-length scenario, bit_table={3,1}, lengths={1,2},
// scalars={0b1011,0b1101}: output 0 only sums over the first
// generator, output 1 sums over both.
func TestFixedVlenMultiexponentiationLiteralBitTable(t *testing.T) {
	gens := curve25519GeneratorsFor(2)
	h := msm.NewHandle[curve25519.Point](icurve.Curve25519, gens)

	bitTable := []int{3, 1}
	lengths := []int{1, 2}
	packed := []byte{0b1011, 0b1101}

	res := make([]curve25519.Point, 2)
	require.NoError(t, h.FixedVlenMultiexponentiation(res, bitTable, lengths, packed))

	want0 := icurve.ScalarMul[curve25519.Point](gens[0], []byte{3})
	want1 := gens[0].Add(gens[1])

	require.True(t, want0.Eq(res[0]))
	require.True(t, want1.Eq(res[1]))
}

func TestFixedMultiexponentiationLargeN(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for _, n := range []int{1024, 2049} {
		n := n
		t.Run("n="+itoa(n), func(t *testing.T) {
			gens := generatorsFor(n)
			h := msm.NewHandle[bn254.Point](icurve.BN254, gens)
			numOutputs := 1
			scalars, values := seedScalars(rng, numOutputs, n)

			res := make([]bn254.Point, numOutputs)
			require.NoError(t, h.FixedMultiexponentiation(res, 1, numOutputs, scalars))
			require.True(t, naiveReference(gens, values[0]).Eq(res[0]))
		})
	}
}

// TestFixedMultiexponentiationMultiByteElement checks elementNBytes>1,
// where each generator's scalar spans multiple bytes rather than the
// single-byte case every other fixed-multiexponentiation test uses.
func TestFixedMultiexponentiationMultiByteElement(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	n := 12
	elementNBytes := 2
	gens := generatorsFor(n)
	h := msm.NewHandle[bn254.Point](icurve.BN254, gens)

	scalars := make([]byte, n*elementNBytes)
	acc := gens[0].Identity()
	for g := 0; g < n; g++ {
		lo := byte(rng.Intn(256))
		hi := byte(rng.Intn(256))
		scalars[g*elementNBytes] = lo
		scalars[g*elementNBytes+1] = hi
		// scalars are stored little-endian (spec §3); ScalarMul wants
		// big-endian, so swap byte order for the expected value.
		acc = acc.Add(icurve.ScalarMul[bn254.Point](gens[g], []byte{hi, lo}))
	}

	res := make([]bn254.Point, 1)
	require.NoError(t, h.FixedMultiexponentiation(res, elementNBytes, 1, scalars))
	require.True(t, acc.Eq(res[0]))
}

func TestFixedMultiexponentiationCurve25519(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	n := 9
	gens := curve25519GeneratorsFor(n)
	h := msm.NewHandle[curve25519.Point](icurve.Curve25519, gens)

	scalars := make([]byte, n)
	values := make([]uint64, n)
	for g := 0; g < n; g++ {
		v := byte(rng.Intn(256))
		scalars[g] = v
		values[g] = uint64(v)
	}

	res := make([]curve25519.Point, 1)
	require.NoError(t, h.FixedMultiexponentiation(res, 1, 1, scalars))

	acc := gens[0].Identity()
	for i, v := range values {
		acc = acc.Add(icurve.ScalarMul[curve25519.Point](gens[i], []byte{byte(v)}))
	}
	require.True(t, acc.Eq(res[0]))
}
