package mksha256

import (
	"crypto/sha256"
)

const HashSize = sha256.Size

// Leaf and node digests are domain-separated by a one-byte prefix,
// so that an interior node can never be reinterpreted as a leaf.
var (
	leafPrefix = []byte{0x00}
	nodePrefix = []byte{0x01}
)

// Hasher is a [mkhash.Hasher] backed by SHA256 hashes.
type Hasher struct{}

func (Hasher) Empty(dst []byte) []byte {
	h := sha256.New()
	return h.Sum(dst)
}

func (Hasher) Leaf(in []byte, dst []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(leafPrefix)
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (Hasher) Node(left, right []byte, dst []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(nodePrefix)
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(dst)
}
