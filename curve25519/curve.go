// Package curve25519 implements curve.Element[Point] over the
// edwards25519 group using filippo.io/edwards25519 (points use the
// plain edwards25519 encoding, not the Ristretto255 one), grounded on
// other_examples/FiloSottile-edwards25519__scalarMul.go's conventions
// for wrapping *edwards25519.Point.
package curve25519

import (
	"filippo.io/edwards25519"
)

// CompactSize is the byte length of an encoded edwards25519 point.
const CompactSize = 32

type Point struct {
	pt     edwards25519.Point
	marked bool
}

func (Point) CompactSize() int { return CompactSize }

// NewGenerator wraps an existing edwards25519 point as a generator.
func NewGenerator(p *edwards25519.Point) Point {
	var out Point
	out.pt.Set(p)
	return out
}

// Base returns the standard edwards25519 basepoint.
func Base() Point {
	return NewGenerator(edwards25519.NewGeneratorPoint())
}

func (p Point) Identity() Point {
	var out Point
	out.pt.Set(edwards25519.NewIdentityPoint())
	return out
}

func (p Point) Add(b Point) Point {
	var out Point
	out.pt.Add(&p.pt, &b.pt)
	return out
}

func (p Point) AddInPlace(b Point) Point {
	return p.Add(b)
}

// Double has no dedicated doubling formula exposed by edwards25519, so
// this falls back to Add(a,a); every other curve in this module keeps
// the distinct doubling path spec §4.1 asks for.
func (p Point) Double() Point {
	var out Point
	out.pt.Add(&p.pt, &p.pt)
	return out
}

func (p Point) Neg() Point {
	var out Point
	out.pt.Negate(&p.pt)
	return out
}

func (p Point) Eq(b Point) bool {
	return p.pt.Equal(&b.pt) == 1
}

func (p Point) Mark() Point {
	p.marked = true
	return p
}

func (p Point) IsMarked() bool {
	return p.marked
}

func (p Point) Compact() []byte {
	return p.pt.Bytes()
}

func (p Point) FromCompact(b []byte) Point {
	var out Point
	if _, err := out.pt.SetBytes(b); err != nil {
		panic(err)
	}
	return out
}
