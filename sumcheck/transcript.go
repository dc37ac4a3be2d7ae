// Package sumcheck sketches the secondary capability spec.md §2 notes
// shares PIP's concurrency core: folding a multilinear polynomial
// table round by round, and the one proof primitive spec.md §8 asks
// to be tested, a minimal Fiat-Shamir-bound inner-product proof. It is
// not a general proving-system frontend — that remains out of scope.
package sumcheck

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
)

// Transcript accumulates length-prefixed byte strings into a running
// hash and derives tagged challenges from it, the same Bind/
// ComputeChallenge shape gnark's std/fiat-shamir package uses, built
// on crypto/sha256 instead of an in-circuit hash since this transcript
// runs outside any constraint system.
type Transcript struct {
	h hash.Hash
}

// NewTranscript starts a transcript domain-separated by label. Two
// transcripts built from different labels never produce the same
// challenge for the same appended data.
func NewTranscript(label string) *Transcript {
	h := sha256.New()
	h.Write([]byte("blitzar-sumcheck-transcript-v1"))
	h.Write([]byte(label))
	return &Transcript{h: h}
}

// Append folds each byte string into the transcript state, length
// prefixed so that Append([]byte("ab"), []byte("c")) and
// Append([]byte("a"), []byte("bc")) hash to different states.
func (t *Transcript) Append(data ...[]byte) *Transcript {
	var lenPrefix [8]byte
	for _, d := range data {
		binary.LittleEndian.PutUint64(lenPrefix[:], uint64(len(d)))
		t.h.Write(lenPrefix[:])
		t.h.Write(d)
	}
	return t
}

// Challenge derives a challenge tagged by name from everything
// appended so far. hash.Hash.Sum does not reset internal state, so
// further Append calls continue accumulating on top of this point.
func (t *Transcript) Challenge(tag string) []byte {
	t.h.Write([]byte(tag))
	return t.h.Sum(nil)
}
