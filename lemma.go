package merk

import (
	"bytes"

	"github.com/merk-engine/merk/mkhash"
)

// Side identifies which branch of the tree a sibling digest came from.
type Side uint8

const (
	// SideLeft means the sibling is the left child;
	// the proven value lies under the right child.
	SideLeft Side = iota

	// SideRight means the sibling is the right child;
	// the proven value lies under the left child.
	SideRight
)

// Sibling is a sibling subtree's digest,
// tagged with the side of the tree it was found on.
type Sibling struct {
	Side Side
	Hash []byte
}

// Lemma is one level of an inclusion proof.
// It holds the digest of a tree node, the digest of that node's sibling,
// and the next lemma one level deeper toward the proven leaf.
//
// Sibling and Sub are either both nil,
// meaning the lemma represents the proven leaf itself,
// or both non-nil, meaning the lemma represents an interior node
// whose digest must recompute from Sub's digest and the sibling digest.
type Lemma struct {
	NodeHash []byte
	Sibling  *Sibling
	Sub      *Lemma
}

// newLemma searches the subtree rooted at n for a leaf
// whose digest equals needle,
// returning the lemma chain from n down to that leaf,
// or nil if no leaf matches.
//
// The left subtree is searched before the right,
// so if a digest occurs in both, the left occurrence is proved.
func newLemma[T any](n *node[T], needle []byte) *Lemma {
	if n.value != nil {
		if !bytes.Equal(n.hash, needle) {
			return nil
		}
		return &Lemma{NodeHash: bytes.Clone(n.hash)}
	}

	if sub := newLemma(n.left, needle); sub != nil {
		return &Lemma{
			NodeHash: bytes.Clone(n.hash),
			Sibling:  &Sibling{Side: SideRight, Hash: bytes.Clone(n.right.hash)},
			Sub:      sub,
		}
	}

	if sub := newLemma(n.right, needle); sub != nil {
		return &Lemma{
			NodeHash: bytes.Clone(n.hash),
			Sibling:  &Sibling{Side: SideLeft, Hash: bytes.Clone(n.left.hash)},
			Sub:      sub,
		}
	}

	return nil
}

// validate recursively checks the lemma chain under the given hasher.
// At an interior lemma, the node digest must recompute from the
// sub-lemma's digest and the sibling digest,
// combined in the order implied by the sibling's side tag.
func (l *Lemma) validate(h mkhash.Hasher) bool {
	if l.Sub == nil {
		// Terminal lemma: valid only with no dangling sibling.
		return l.Sibling == nil
	}
	if l.Sibling == nil {
		return false
	}

	var combined []byte
	switch l.Sibling.Side {
	case SideLeft:
		combined = h.Node(l.Sibling.Hash, l.Sub.NodeHash, nil)
	case SideRight:
		combined = h.Node(l.Sub.NodeHash, l.Sibling.Hash, nil)
	default:
		return false
	}

	return bytes.Equal(combined, l.NodeHash) && l.Sub.validate(h)
}

// Compare returns -1, 0, or 1 ordering l against o lexicographically:
// first by node digest, then by sibling
// (absent before present, left before right, then by digest),
// then by the sub-lemma.
// A nil lemma orders before any non-nil lemma.
func (l *Lemma) Compare(o *Lemma) int {
	if l == nil || o == nil {
		switch {
		case l == o:
			return 0
		case l == nil:
			return -1
		default:
			return 1
		}
	}

	if c := bytes.Compare(l.NodeHash, o.NodeHash); c != 0 {
		return c
	}
	if c := compareSiblings(l.Sibling, o.Sibling); c != 0 {
		return c
	}
	return l.Sub.Compare(o.Sub)
}

// Equal reports whether l and o are the same lemma chain.
func (l *Lemma) Equal(o *Lemma) bool {
	return l.Compare(o) == 0
}

func compareSiblings(a, b *Sibling) int {
	if a == nil || b == nil {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if a.Side != b.Side {
		if a.Side == SideLeft {
			return -1
		}
		return 1
	}
	return bytes.Compare(a.Hash, b.Hash)
}
