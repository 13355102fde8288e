package mkpartial

import (
	"errors"
	"fmt"
	"log/slog"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
	"github.com/merk-engine/merk"
	"github.com/merk-engine/merk/mkhash"
)

// ErrInvalidProof is returned from [*Accumulator.Add] when a proof
// does not validate against the accumulator's root,
// or when its lemma chain does not describe a leaf of the committed tree.
var ErrInvalidProof = errors.New("proof did not validate against accumulator root")

// ErrAlreadyProven is returned from [*Accumulator.Add] when the leaf
// the proof describes was already proven.
var ErrAlreadyProven = errors.New("already had a validated proof for leaf")

// Config contains all the details for [NewAccumulator].
type Config struct {
	// RootHash is the claimed root digest
	// that every added proof must commit to.
	RootHash []byte

	// NLeaves is the leaf count of the committed tree.
	// It must be positive.
	NLeaves int

	// Hasher is the hash algorithm the committed tree was built with.
	Hasher mkhash.Hasher

	// Log is optional; a nil logger disables logging.
	Log *slog.Logger
}

// Accumulator collects validated inclusion proofs against a single root,
// tracking which leaves of the committed tree have been proven so far.
//
// The leaf index is derived from each proof's lemma chain:
// a sibling on the left means the path descended to the right,
// so the side tags spell out the leaf's position bit by bit.
type Accumulator[T any] struct {
	log *slog.Logger

	rootHash []byte
	h        mkhash.Hasher

	// Expected lemma depth; every leaf sits at the same depth
	// because odd-width levels pair their tail node with itself.
	depth int

	// Which leaves are already proven.
	have *bitset.BitSet

	nLeaves int
}

// NewAccumulator returns an accumulator for the tree
// committed to by cfg.RootHash.
func NewAccumulator[T any](cfg Config) *Accumulator[T] {
	if cfg.NLeaves <= 0 {
		panic(fmt.Errorf(
			"BUG: NLeaves must be positive (got %d)", cfg.NLeaves,
		))
	}
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: Hasher must not be nil"))
	}

	depth := 0
	if cfg.NLeaves > 1 {
		depth = bits.Len(uint(cfg.NLeaves - 1))
	}

	return &Accumulator[T]{
		log: cfg.Log,

		rootHash: cfg.RootHash,
		h:        cfg.Hasher,

		depth: depth,

		have: bitset.MustNew(uint(cfg.NLeaves)),

		nLeaves: cfg.NLeaves,
	}
}

// Add validates the given proof against the accumulator's root
// and records the leaf it proves.
// It returns the derived leaf index.
//
// If the proof does not validate, or its path does not correspond
// to a leaf of the committed tree, Add returns [ErrInvalidProof].
// If the leaf was already proven, Add returns [ErrAlreadyProven]
// along with the leaf index.
func (a *Accumulator[T]) Add(p *merk.Proof[T]) (int, error) {
	if !p.Validate(a.h, a.rootHash) {
		if a.log != nil {
			a.log.Debug("Rejected proof", "reason", "failed validation")
		}
		return 0, ErrInvalidProof
	}

	idx := 0
	depth := 0
	for l := &p.Lemma; l.Sub != nil; l = l.Sub {
		idx <<= 1
		if l.Sibling.Side == merk.SideLeft {
			idx |= 1
		}
		depth++
	}

	if depth != a.depth {
		if a.log != nil {
			a.log.Debug(
				"Rejected proof",
				"reason", "wrong depth",
				"got", depth,
				"want", a.depth,
			)
		}
		return 0, fmt.Errorf(
			"%w: lemma depth %d, want %d", ErrInvalidProof, depth, a.depth,
		)
	}

	if idx >= a.nLeaves {
		// A validated proof can still walk into the self-paired
		// region past the last real leaf.
		return 0, fmt.Errorf(
			"%w: derived leaf index %d out of range [0, %d)",
			ErrInvalidProof, idx, a.nLeaves,
		)
	}

	if a.have.Test(uint(idx)) {
		return idx, fmt.Errorf("%w %d", ErrAlreadyProven, idx)
	}
	a.have.Set(uint(idx))

	if a.log != nil {
		a.log.Debug("Accepted proof", "leaf", idx, "remaining", a.Remaining())
	}

	return idx, nil
}

// HasLeaf reports whether the leaf at the given index
// has already been proven.
//
// HasLeaf reports false if idx is out of bounds.
func (a *Accumulator[T]) HasLeaf(idx int) bool {
	if idx < 0 {
		return false
	}
	return a.have.Test(uint(idx))
}

// Remaining returns how many leaves have not been proven yet.
func (a *Accumulator[T]) Remaining() int {
	return a.nLeaves - int(a.have.Count())
}

// Complete reports whether every leaf of the committed tree
// has been proven.
func (a *Accumulator[T]) Complete() bool {
	return a.Remaining() == 0
}
