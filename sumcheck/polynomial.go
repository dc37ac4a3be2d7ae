package sumcheck

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/spaceandtimefdn/blitzar/exec"
)

// Polynomial holds the evaluations of a multilinear polynomial over
// the boolean hypercube {0,1}^k, index i giving the evaluation at the
// binary representation of i (highest bit is the first variable). Its
// length must be a power of two.
type Polynomial []fr.Element

// RoundPolynomial computes the degree-1 univariate round polynomial
// g(X) = Σ_{x in {0,1}^{k-1}} p(X, x) for the current leading
// variable, returned as its two evaluations [g(0), g(1)] — the
// quantity a multilinear sumcheck prover sends each round, per
// sxt/proof/sumcheck/driver.h's round-polynomial step.
func RoundPolynomial(p Polynomial) Polynomial {
	half := len(p) / 2
	var g0, g1 fr.Element
	for i := 0; i < half; i++ {
		g0.Add(&g0, &p[i])
		g1.Add(&g1, &p[half+i])
	}
	return Polynomial{g0, g1}
}

// RoundPolynomialConcurrent is RoundPolynomial split across exec's
// chunk machinery (exec.Split plus exec.ConcurrentForEach), the same
// machinery pippenger.CombineReduceConcurrent uses, so that summing a
// large evaluation table does not run on a single goroutine.
func RoundPolynomialConcurrent(p Polynomial, opts exec.SplitOptions) (Polynomial, error) {
	half := len(p) / 2
	if half == 0 {
		return Polynomial{fr.Element{}, fr.Element{}}, nil
	}
	chunks := exec.Split(exec.IndexRange{A: 0, B: half}, opts)

	var mu sync.Mutex
	var g0, g1 fr.Element
	err := exec.ConcurrentForEach(chunks, opts.SplitFactor, func(rng exec.IndexRange) error {
		var l0, l1 fr.Element
		for i := rng.A; i < rng.B; i++ {
			l0.Add(&l0, &p[i])
			l1.Add(&l1, &p[half+i])
		}
		mu.Lock()
		g0.Add(&g0, &l0)
		g1.Add(&g1, &l1)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return Polynomial{g0, g1}, nil
}

// Fold substitutes challenge r for the leading variable, halving the
// table: p'[i] = p[i] + r*(p[half+i] - p[i]). Repeating this k times
// collapses a 2^k-entry table to a single evaluation.
func Fold(p Polynomial, r fr.Element) Polynomial {
	half := len(p) / 2
	out := make(Polynomial, half)
	var diff, term fr.Element
	for i := 0; i < half; i++ {
		diff.Sub(&p[half+i], &p[i])
		term.Mul(&diff, &r)
		out[i].Add(&p[i], &term)
	}
	return out
}

// Evaluate folds p down to its single remaining evaluation by folding
// on every entry of rs in order (rs[0] folds the first variable).
func Evaluate(p Polynomial, rs []fr.Element) fr.Element {
	cur := p
	for _, r := range rs {
		cur = Fold(cur, r)
	}
	return cur[0]
}
