package mkhash

// Hasher is the user-defined interface for producing digests of
// leaf values, interior nodes, and the empty tree.
// The [merk.Tree] passes each value's canonical byte encoding to the
// Leaf method to create a leaf digest,
// and it passes pairs of digests to the Node method to combine them.
//
// To be allocation-efficient, each method appends its digest to dst
// and returns the extended slice, in the manner of [hash.Hash.Sum].
// Hasher must not retain references to the dst slice.
//
// Furthermore, Hasher methods must be safe to call concurrently.
type Hasher interface {
	// Empty returns the digest of no input.
	// It is the root digest of a tree with zero leaves.
	Empty(dst []byte) []byte

	// Leaf returns the digest of a single leaf value's bytes.
	Leaf(in []byte, dst []byte) []byte

	// Node returns the combined digest of two child digests.
	// The left and right arguments are ordered:
	// swapping them must produce a different digest,
	// as proof validation depends on reproducing
	// the original left/right arrangement.
	Node(left, right []byte, dst []byte) []byte
}
