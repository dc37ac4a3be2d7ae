package curve25519_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaceandtimefdn/blitzar/curve25519"
)

func TestIdentityIsNeutral(t *testing.T) {
	g := curve25519.Base()
	id := g.Identity()
	require.True(t, g.Add(id).Eq(g))
}

// Double falls back to Add(a,a) for this curve (documented library
// limitation), so this is really checking Add's consistency rather
// than an independent doubling formula.
func TestDoubleEqualsAddSelf(t *testing.T) {
	g := curve25519.Base()
	require.True(t, g.Double().Eq(g.Add(g)))
}

func TestNegCancels(t *testing.T) {
	g := curve25519.Base()
	require.True(t, g.Add(g.Neg()).Eq(g.Identity()))
}

func TestCompactRoundTrip(t *testing.T) {
	g := curve25519.Base().Double()
	b := g.Compact()
	require.Len(t, b, curve25519.CompactSize)
	var out curve25519.Point
	out = out.FromCompact(b)
	require.True(t, g.Eq(out))
}
