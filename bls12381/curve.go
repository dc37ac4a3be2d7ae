// Package bls12381 implements curve.Element[Point] over BLS12-381 G1
// using gnark-crypto, following the same shape as the bn254 package.
package bls12381

import (
	gnark "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// CompactSize is the byte length of a compressed G1 affine point.
const CompactSize = 48

type Point struct {
	jac    gnark.G1Jac
	marked bool
}

func (Point) CompactSize() int { return CompactSize }

func NewGenerator(a gnark.G1Affine) Point {
	var p Point
	p.jac.FromAffine(&a)
	return p
}

// Base returns the standard BLS12-381 G1 generator.
func Base() Point {
	_, _, g1Aff, _ := gnark.Generators()
	return NewGenerator(g1Aff)
}

func (p Point) Identity() Point {
	var out Point
	out.jac.X.SetZero()
	out.jac.Y.SetOne()
	out.jac.Z.SetZero()
	return out
}

func (p Point) Add(b Point) Point {
	var out gnark.G1Jac
	out.Set(&p.jac)
	out.AddAssign(&b.jac)
	return Point{jac: out}
}

func (p Point) AddInPlace(b Point) Point {
	return p.Add(b)
}

func (p Point) Double() Point {
	var out gnark.G1Jac
	out.Double(&p.jac)
	return Point{jac: out}
}

func (p Point) Neg() Point {
	var out gnark.G1Jac
	out.Neg(&p.jac)
	return Point{jac: out}
}

func (p Point) Eq(b Point) bool {
	return p.jac.Equal(&b.jac)
}

func (p Point) Mark() Point {
	p.marked = true
	return p
}

func (p Point) IsMarked() bool {
	return p.marked
}

func (p Point) Compact() []byte {
	var aff gnark.G1Affine
	aff.FromJacobian(&p.jac)
	b := aff.Bytes()
	return b[:]
}

func (p Point) FromCompact(b []byte) Point {
	var aff gnark.G1Affine
	if _, err := aff.SetBytes(b); err != nil {
		panic(err)
	}
	var out Point
	out.jac.FromAffine(&aff)
	return out
}
