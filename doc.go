// Package merk implements an immutable binary Merkle tree
// over an ordered, finite collection of values,
// along with generation and validation of compact inclusion proofs.
//
// The tree is built once, bottom-up, from the values' canonical byte
// encodings and a pluggable hash algorithm (see the mkhash package).
// When a level of the tree has an odd number of nodes,
// the rightmost node is paired with itself to form its parent.
// This self-pairing policy affects the root digest for leaf counts
// that are not a power of two, and must not be changed:
// any previously committed root depends on it.
//
// A [Proof] carries the chain of digests from a value's leaf up to
// the claimed root, each level tagged with the side its sibling is on.
// Validation recomputes the chain and is a total boolean predicate:
// a tampered or malformed proof yields false, never a panic.
//
// Trees and proofs are read-only after construction and are therefore
// safe to share across goroutines without locking.
package merk
