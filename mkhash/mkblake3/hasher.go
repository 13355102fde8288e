package mkblake3

import (
	"github.com/zeebo/blake3"
)

const HashSize = 32

// Same one-byte domain separation scheme as mksha256.
var (
	leafPrefix = []byte{0x00}
	nodePrefix = []byte{0x01}
)

// Hasher is a [mkhash.Hasher] backed by BLAKE3 hashes.
type Hasher struct{}

func (Hasher) Empty(dst []byte) []byte {
	h := blake3.New()
	return h.Sum(dst)
}

func (Hasher) Leaf(in []byte, dst []byte) []byte {
	h := blake3.New()
	_, _ = h.Write(leafPrefix)
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (Hasher) Node(left, right []byte, dst []byte) []byte {
	h := blake3.New()
	_, _ = h.Write(nodePrefix)
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(dst)
}
