package mkwire

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/merk-engine/merk"
)

// ErrMalformedLemma is returned from [DecodeProof] when a lemma in the
// encoding has a sibling hash without a sub-lemma or vice versa.
var ErrMalformedLemma = errors.New("malformed lemma: sibling hash and sub-lemma must be present together")

// ErrUnknownSide is returned from [DecodeProof] when a sibling carries
// a side tag other than left or right.
var ErrUnknownSide = errors.New("unknown sibling side tag")

type wireSibling struct {
	Side uint8  `cbor:"side"`
	Hash []byte `cbor:"hash"`
}

type wireLemma struct {
	NodeHash []byte       `cbor:"node_hash"`
	Sibling  *wireSibling `cbor:"sibling_hash,omitempty"`
	Sub      *wireLemma   `cbor:"sub_lemma,omitempty"`
}

type wireProof struct {
	RootHash []byte          `cbor:"root_hash"`
	Lemma    wireLemma       `cbor:"lemma"`
	Value    cbor.RawMessage `cbor:"value"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.EncOptions{Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		panic(err)
	}

	// The lemma chain nests one level per tree level,
	// which overruns the decoder's default nesting limit
	// well before it overruns practical tree sizes.
	decMode, err = cbor.DecOptions{MaxNestedLevels: 256}.DecMode()
	if err != nil {
		panic(err)
	}
}

// EncodeProof encodes the proof's transport shape:
// the root digest, the lemma chain, and the proven value.
// The value is encoded with CBOR and so must be a CBOR-encodable type.
func EncodeProof[T any](p *merk.Proof[T]) ([]byte, error) {
	val, err := encMode.Marshal(p.Value)
	if err != nil {
		return nil, fmt.Errorf("encoding proof value: %w", err)
	}

	w := wireProof{
		RootHash: p.RootHash,
		Lemma:    lemmaToWire(&p.Lemma),
		Value:    val,
	}

	out, err := encMode.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encoding proof: %w", err)
	}
	return out, nil
}

// DecodeProof decodes a proof previously produced by [EncodeProof].
//
// The decoded proof has not been validated:
// the caller must still pass it, together with the hash algorithm
// of the original tree, to [merk.Proof.Validate]
// before trusting the proven value.
func DecodeProof[T any](data []byte) (*merk.Proof[T], error) {
	var w wireProof
	if err := decMode.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding proof: %w", err)
	}

	lemma, err := lemmaFromWire(&w.Lemma)
	if err != nil {
		return nil, err
	}

	var value T
	if err := decMode.Unmarshal(w.Value, &value); err != nil {
		return nil, fmt.Errorf("decoding proof value: %w", err)
	}

	return &merk.Proof[T]{
		RootHash: w.RootHash,
		Lemma:    *lemma,
		Value:    value,
	}, nil
}

func lemmaToWire(l *merk.Lemma) wireLemma {
	w := wireLemma{NodeHash: l.NodeHash}

	if l.Sibling != nil {
		w.Sibling = &wireSibling{
			Side: uint8(l.Sibling.Side),
			Hash: l.Sibling.Hash,
		}
	}
	if l.Sub != nil {
		sub := lemmaToWire(l.Sub)
		w.Sub = &sub
	}

	return w
}

func lemmaFromWire(w *wireLemma) (*merk.Lemma, error) {
	if (w.Sibling == nil) != (w.Sub == nil) {
		return nil, ErrMalformedLemma
	}

	l := &merk.Lemma{NodeHash: w.NodeHash}

	if w.Sibling != nil {
		if w.Sibling.Side > uint8(merk.SideRight) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownSide, w.Sibling.Side)
		}

		l.Sibling = &merk.Sibling{
			Side: merk.Side(w.Sibling.Side),
			Hash: w.Sibling.Hash,
		}

		sub, err := lemmaFromWire(w.Sub)
		if err != nil {
			return nil, err
		}
		l.Sub = sub
	}

	return l, nil
}
