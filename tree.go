package merk

import (
	"bytes"
	"fmt"
	"math/bits"

	"github.com/merk-engine/merk/mkhash"
)

// node is one vertex of the built tree.
// A node with a non-nil value is a leaf and has no children;
// otherwise both children are set.
//
// The rightmost node of an odd-width level is paired with itself,
// in which case left and right are the same pointer.
// Nodes are immutable after construction, so the sharing is safe.
type node[T any] struct {
	hash []byte

	left, right *node[T]

	value *T
}

// TreeConfig is the configuration used for [NewTree].
type TreeConfig[T any] struct {
	// Hasher produces the leaf, node, and empty-tree digests.
	Hasher mkhash.Hasher

	// Encode returns the canonical byte representation of a value.
	// It must be deterministic:
	// two values that encode to the same bytes
	// are indistinguishable to the tree.
	Encode func(T) []byte
}

// Tree is an immutable binary Merkle tree over an ordered
// collection of values.
// The root digest is a commitment to the full leaf sequence.
//
// Create a tree with [NewTree];
// there is no way to mutate it afterwards.
type Tree[T any] struct {
	cfg TreeConfig[T]

	// Root node, or nil when the tree has no leaves.
	root *node[T]

	// Digest at the top of the tree.
	// For an empty tree this is the fixed sentinel
	// produced by [mkhash.Hasher.Empty].
	rootHash []byte

	nLeaves int
	height  int
}

// NewTree builds a Merkle tree from the given values.
// Any finite sequence, including an empty one, is valid input.
//
// The tree will own the values slice,
// so the caller must not modify it afterwards.
func NewTree[T any](values []T, cfg TreeConfig[T]) *Tree[T] {
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: TreeConfig.Hasher must not be nil"))
	}
	if cfg.Encode == nil {
		panic(fmt.Errorf("BUG: TreeConfig.Encode must not be nil"))
	}

	t := &Tree[T]{
		cfg: cfg,

		nLeaves: len(values),
	}

	if len(values) == 0 {
		t.rootHash = cfg.Hasher.Empty(nil)
		return t
	}

	row := make([]*node[T], len(values))
	for i := range values {
		row[i] = &node[T]{
			hash:  cfg.Hasher.Leaf(cfg.Encode(values[i]), nil),
			value: &values[i],
		}
	}

	for len(row) > 1 {
		next := make([]*node[T], 0, (len(row)+1)/2)

		for i := 0; i < len(row); i += 2 {
			left := row[i]

			// On an odd-width row, the rightmost node pairs with itself.
			right := left
			if i+1 < len(row) {
				right = row[i+1]
			}

			next = append(next, &node[T]{
				hash:  cfg.Hasher.Node(left.hash, right.hash, nil),
				left:  left,
				right: right,
			})
		}

		row = next
	}

	t.root = row[0]
	t.rootHash = row[0].hash
	if t.nLeaves > 1 {
		t.height = bits.Len(uint(t.nLeaves - 1))
	}

	return t
}

// Root returns the tree's root digest.
// The returned slice is a copy owned by the caller.
func (t *Tree[T]) Root() []byte {
	return bytes.Clone(t.rootHash)
}

// Count returns the number of leaf values in the tree.
func (t *Tree[T]) Count() int {
	return t.nLeaves
}

// Height returns the number of levels between the root and the leaves:
// zero for trees with at most one leaf,
// otherwise the base-2 logarithm of the leaf count, rounded up.
func (t *Tree[T]) Height() int {
	return t.height
}

// GenProof generates an inclusion proof for the given value.
//
// It returns nil when the value is not a member of the tree;
// absence is a normal outcome, not a fault.
// If the value occurs more than once,
// the leftmost occurrence is proved.
func (t *Tree[T]) GenProof(value T) *Proof[T] {
	if t.root == nil {
		return nil
	}

	needle := t.cfg.Hasher.Leaf(t.cfg.Encode(value), nil)
	lemma := newLemma(t.root, needle)
	if lemma == nil {
		return nil
	}

	return &Proof[T]{
		RootHash: bytes.Clone(t.rootHash),
		Lemma:    *lemma,
		Value:    value,
	}
}
