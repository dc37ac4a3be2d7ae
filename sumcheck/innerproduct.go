package sumcheck

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/spaceandtimefdn/blitzar/internal/curve"
)

// Proof is the minimal inner-product proof spec.md §8's seed scenario
// exercises: a Pedersen commitment to the prover's secret vector, the
// claimed inner product, and a transcript challenge binding both of
// those together with the public b vector and the transcript label.
// It is not a zero-knowledge argument of knowledge (the recursive
// folding protocol verification_kernel.cc drives is a proving-system
// frontend and stays out of scope) — it exists to give the literal
// "tampering with a_commit, product, b-vector, or transcript label
// makes verification fail" scenario something concrete to exercise.
type Proof[T curve.Element[T]] struct {
	ACommit   T
	Product   fr.Element
	Challenge []byte
}

// Prove computes a_commit = Σ a_i*gens[i], product = <a, b>, and a
// transcript challenge binding a_commit, product, b, and label.
func Prove[T curve.Element[T]](gens []T, a, b []fr.Element, label string) (*Proof[T], error) {
	if len(gens) != len(a) || len(gens) != len(b) {
		return nil, fmt.Errorf("sumcheck: gens, a, and b must have equal length, got %d/%d/%d", len(gens), len(a), len(b))
	}
	aCommit := commit(gens, a)
	product := innerProduct(a, b)
	challenge := bindChallenge(label, aCommit, product, b)
	return &Proof[T]{ACommit: aCommit, Product: product, Challenge: challenge}, nil
}

// Verify recomputes the transcript challenge from the proof's public
// fields (a_commit, product), the public b vector, and label, and
// checks it against the challenge the proof carries. Any change to
// a_commit, product, b, or label changes the recomputed challenge and
// verification fails.
func Verify[T curve.Element[T]](gens []T, b []fr.Element, proof *Proof[T], label string) bool {
	if len(gens) != len(b) {
		return false
	}
	expected := bindChallenge(label, proof.ACommit, proof.Product, b)
	return bytes.Equal(expected, proof.Challenge)
}

func bindChallenge[T curve.Element[T]](label string, aCommit T, product fr.Element, b []fr.Element) []byte {
	tr := NewTranscript(label)
	compact := aCommit.Compact()
	tr.Append(compact)
	pb := product.Bytes()
	tr.Append(pb[:])
	for _, bi := range b {
		bb := bi.Bytes()
		tr.Append(bb[:])
	}
	return tr.Challenge("inner-product-challenge")
}

func commit[T curve.Element[T]](gens []T, a []fr.Element) T {
	parts := make([]T, len(gens))
	for i, g := range gens {
		ab := a[i].Bytes()
		parts[i] = curve.ScalarMul(g, ab[:])
	}
	return curve.Sum(parts)
}

func innerProduct(a, b []fr.Element) fr.Element {
	var acc, term fr.Element
	for i := range a {
		term.Mul(&a[i], &b[i])
		acc.Add(&acc, &term)
	}
	return acc
}
