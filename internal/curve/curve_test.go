package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaceandtimefdn/blitzar/bn254"
	icurve "github.com/spaceandtimefdn/blitzar/internal/curve"
)

func TestDoubleAndAddMatchesRepeatedAdd(t *testing.T) {
	g := bn254.Base()
	// 1011b = g + 2*(g + 2*(0 + 2*g)) evaluated MSB-first via partials
	// ordered least-significant-bit-first: bits 1,1,0,1 -> value 0b1011 = 11.
	one := g
	zero := g.Identity()
	partials := []bn254.Point{one, one, zero, one} // bit0..bit3 = 1,1,0,1
	got := icurve.DoubleAndAdd[bn254.Point](partials)

	want := icurve.ScalarMul[bn254.Point](g, []byte{11})
	require.True(t, want.Eq(got))
}

func TestScalarMulZeroIsIdentity(t *testing.T) {
	g := bn254.Base()
	got := icurve.ScalarMul[bn254.Point](g, []byte{0})
	require.True(t, got.Eq(g.Identity()))
}

func TestScalarMulOneIsSelf(t *testing.T) {
	g := bn254.Base()
	got := icurve.ScalarMul[bn254.Point](g, []byte{1})
	require.True(t, got.Eq(g))
}

func TestScalarMulAdditivity(t *testing.T) {
	g := bn254.Base()
	a := icurve.ScalarMul[bn254.Point](g, []byte{7})
	b := icurve.ScalarMul[bn254.Point](g, []byte{5})
	sum := icurve.ScalarMul[bn254.Point](g, []byte{12})
	require.True(t, sum.Eq(a.Add(b)))
}

func TestNaiveMSMAgainstManualSum(t *testing.T) {
	base := bn254.Base()
	gens := icurve.DeterministicGenerators[bn254.Point](base, 4)
	scalars := [][]byte{{3}, {0}, {1}, {9}}

	got := icurve.NaiveMSM[bn254.Point](gens, scalars)

	want := gens[0].Identity()
	for i, g := range gens {
		want = want.Add(icurve.ScalarMul[bn254.Point](g, reverse(scalars[i])))
	}
	require.True(t, want.Eq(got))
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

func TestSumEmptyIsIdentity(t *testing.T) {
	var xs []bn254.Point
	got := icurve.Sum[bn254.Point](xs)
	require.True(t, got.Eq(bn254.Base().Identity()))
}

func TestParseCurveRoundTrip(t *testing.T) {
	cases := map[string]icurve.Curve{
		"curve25519":  icurve.Curve25519,
		"ristretto255": icurve.Curve25519,
		"bn254":       icurve.BN254,
		"bls12-381":   icurve.BLS12381,
		"grumpkin":    icurve.Grumpkin,
	}
	for s, want := range cases {
		got, ok := icurve.ParseCurve(s)
		require.True(t, ok, s)
		require.Equal(t, want, got, s)
	}
	_, ok := icurve.ParseCurve("not-a-curve")
	require.False(t, ok)
}

func TestCurveString(t *testing.T) {
	require.Equal(t, "bn254", icurve.BN254.String())
	require.Equal(t, "curve25519", icurve.Curve25519.String())
	require.Equal(t, "bls12381", icurve.BLS12381.String())
	require.Equal(t, "grumpkin", icurve.Grumpkin.String())
}
