package merk

import (
	"bytes"

	"github.com/merk-engine/merk/mkhash"
)

// Proof is an inclusion proof:
// evidence that Value is a member of the Merkle tree
// whose root digest is RootHash.
//
// The hash algorithm is deliberately not carried in the proof.
// Serialized proofs stay algorithm-agnostic,
// and the algorithm is supplied as context to [*Proof.Validate] instead.
type Proof[T any] struct {
	// Digest of the root of the original tree.
	RootHash []byte

	// The outermost lemma of the proof;
	// its NodeHash is the root digest.
	Lemma Lemma

	// The value concerned by this proof.
	Value T
}

// Validate reports whether the proof is well-formed
// and commits to the given root digest under the given hasher.
//
// The hasher must be the same algorithm
// that was used to build the original tree.
// A false result means the proven data must not be trusted;
// it is not an error condition.
func (p *Proof[T]) Validate(h mkhash.Hasher, rootHash []byte) bool {
	if !bytes.Equal(p.RootHash, rootHash) {
		return false
	}
	if !bytes.Equal(p.Lemma.NodeHash, rootHash) {
		return false
	}

	return p.Lemma.validate(h)
}

// Compare returns -1, 0, or 1 ordering p against o:
// first by root digest, which groups proofs from the same tree,
// then by value under the caller-supplied cmp,
// then by the lemma chain as a tiebreaker.
//
// The resulting order is a strict total order
// whenever cmp is one over T.
func (p *Proof[T]) Compare(o *Proof[T], cmp func(a, b T) int) int {
	if c := bytes.Compare(p.RootHash, o.RootHash); c != 0 {
		return c
	}
	if c := cmp(p.Value, o.Value); c != 0 {
		return c
	}
	return p.Lemma.Compare(&o.Lemma)
}

// Equal reports whether p and o have the same root digest,
// equal values under the caller-supplied eq, and the same lemma chain.
func (p *Proof[T]) Equal(o *Proof[T], eq func(a, b T) bool) bool {
	return bytes.Equal(p.RootHash, o.RootHash) &&
		eq(p.Value, o.Value) &&
		p.Lemma.Equal(&o.Lemma)
}
