package bls12381_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaceandtimefdn/blitzar/bls12381"
)

func TestIdentityIsNeutral(t *testing.T) {
	g := bls12381.Base()
	id := g.Identity()
	require.True(t, g.Add(id).Eq(g))
}

func TestDoubleEqualsAddSelf(t *testing.T) {
	g := bls12381.Base()
	require.True(t, g.Double().Eq(g.Add(g)))
}

func TestNegCancels(t *testing.T) {
	g := bls12381.Base()
	require.True(t, g.Add(g.Neg()).Eq(g.Identity()))
}

func TestCompactRoundTrip(t *testing.T) {
	g := bls12381.Base().Double()
	b := g.Compact()
	require.Len(t, b, bls12381.CompactSize)
	var out bls12381.Point
	out = out.FromCompact(b)
	require.True(t, g.Eq(out))
}
