package bn254_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaceandtimefdn/blitzar/bn254"
)

func TestIdentityIsNeutral(t *testing.T) {
	g := bn254.Base()
	id := g.Identity()
	require.True(t, g.Add(id).Eq(g))
	require.True(t, id.Add(g).Eq(g))
}

func TestAddCommutative(t *testing.T) {
	g := bn254.Base()
	h := g.Double()
	require.True(t, g.Add(h).Eq(h.Add(g)))
}

func TestDoubleEqualsAddSelf(t *testing.T) {
	g := bn254.Base()
	require.True(t, g.Double().Eq(g.Add(g)))
}

func TestNegCancels(t *testing.T) {
	g := bn254.Base()
	require.True(t, g.Add(g.Neg()).Eq(g.Identity()))
}

func TestAddInPlaceMatchesAdd(t *testing.T) {
	g := bn254.Base()
	h := g.Double()
	require.True(t, g.AddInPlace(h).Eq(g.Add(h)))
}

func TestMarkSentinel(t *testing.T) {
	g := bn254.Base()
	require.False(t, g.IsMarked())
	require.True(t, g.Mark().IsMarked())
}

func TestCompactRoundTrip(t *testing.T) {
	g := bn254.Base().Double().Add(bn254.Base())
	b := g.Compact()
	require.Len(t, b, bn254.CompactSize)
	var out bn254.Point
	out = out.FromCompact(b)
	require.True(t, g.Eq(out))
}

func TestIdentityCompactRoundTrip(t *testing.T) {
	var zero bn254.Point
	id := zero.Identity()
	b := id.Compact()
	var out bn254.Point
	out = out.FromCompact(b)
	require.True(t, id.Eq(out))
}
