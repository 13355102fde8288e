package mkwire_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/merk-engine/merk"
	"github.com/merk-engine/merk/mkhash/mkblake3"
	"github.com/merk-engine/merk/mkhash/mksha256"
	"github.com/merk-engine/merk/mkwire"
	"github.com/stretchr/testify/require"
)

func newStringTree(values ...string) *merk.Tree[string] {
	return merk.NewTree(values, merk.TreeConfig[string]{
		Hasher: mksha256.Hasher{},
		Encode: func(s string) []byte { return []byte(s) },
	})
}

func TestProofRoundTrip(t *testing.T) {
	t.Parallel()

	tree := newStringTree("zero", "one", "two", "three", "four")
	root := tree.Root()

	orig := tree.GenProof("two")
	require.NotNil(t, orig)

	data, err := mkwire.EncodeProof(orig)
	require.NoError(t, err)

	decoded, err := mkwire.DecodeProof[string](data)
	require.NoError(t, err)

	eq := func(a, b string) bool { return a == b }
	require.True(t, orig.Equal(decoded, eq))

	// The algorithm is not part of the encoding;
	// it is supplied again at validation time.
	require.True(t, decoded.Validate(mksha256.Hasher{}, root))
}

func TestDecodeProof_wrongHasher(t *testing.T) {
	t.Parallel()

	tree := newStringTree("a", "b", "c")
	root := tree.Root()

	data, err := mkwire.EncodeProof(tree.GenProof("b"))
	require.NoError(t, err)

	decoded, err := mkwire.DecodeProof[string](data)
	require.NoError(t, err)

	// Validating under a different algorithm must fail,
	// not misvalidate.
	require.False(t, decoded.Validate(mkblake3.Hasher{}, root))
}

func TestDecodeProof_tamperedSibling(t *testing.T) {
	t.Parallel()

	tree := newStringTree("a", "b", "c", "d")
	root := tree.Root()

	data, err := mkwire.EncodeProof(tree.GenProof("c"))
	require.NoError(t, err)

	decoded, err := mkwire.DecodeProof[string](data)
	require.NoError(t, err)

	decoded.Lemma.Sub.Sibling.Hash[0] ^= 0xff
	require.False(t, decoded.Validate(mksha256.Hasher{}, root))
}

// rawSibling, rawLemma, and rawProof mirror the wire shape
// so tests can craft encodings DecodeProof must reject.
type rawSibling struct {
	Side uint8  `cbor:"side"`
	Hash []byte `cbor:"hash"`
}

type rawLemma struct {
	NodeHash []byte      `cbor:"node_hash"`
	Sibling  *rawSibling `cbor:"sibling_hash,omitempty"`
	Sub      *rawLemma   `cbor:"sub_lemma,omitempty"`
}

type rawProof struct {
	RootHash []byte          `cbor:"root_hash"`
	Lemma    rawLemma        `cbor:"lemma"`
	Value    cbor.RawMessage `cbor:"value"`
}

func marshalRawProof(t *testing.T, p rawProof) []byte {
	t.Helper()

	if p.Value == nil {
		val, err := cbor.Marshal("value")
		require.NoError(t, err)
		p.Value = val
	}

	data, err := cbor.Marshal(p)
	require.NoError(t, err)
	return data
}

func TestDecodeProof_siblingWithoutSubLemma(t *testing.T) {
	t.Parallel()

	data := marshalRawProof(t, rawProof{
		RootHash: []byte{1, 2, 3},
		Lemma: rawLemma{
			NodeHash: []byte{1, 2, 3},
			Sibling:  &rawSibling{Side: 0, Hash: []byte{4, 5, 6}},
		},
	})

	_, err := mkwire.DecodeProof[string](data)
	require.ErrorIs(t, err, mkwire.ErrMalformedLemma)
}

func TestDecodeProof_subLemmaWithoutSibling(t *testing.T) {
	t.Parallel()

	data := marshalRawProof(t, rawProof{
		RootHash: []byte{1, 2, 3},
		Lemma: rawLemma{
			NodeHash: []byte{1, 2, 3},
			Sub:      &rawLemma{NodeHash: []byte{4, 5, 6}},
		},
	})

	_, err := mkwire.DecodeProof[string](data)
	require.ErrorIs(t, err, mkwire.ErrMalformedLemma)
}

func TestDecodeProof_unknownSideTag(t *testing.T) {
	t.Parallel()

	data := marshalRawProof(t, rawProof{
		RootHash: []byte{1, 2, 3},
		Lemma: rawLemma{
			NodeHash: []byte{1, 2, 3},
			Sibling:  &rawSibling{Side: 7, Hash: []byte{4, 5, 6}},
			Sub:      &rawLemma{NodeHash: []byte{7, 8, 9}},
		},
	})

	_, err := mkwire.DecodeProof[string](data)
	require.ErrorIs(t, err, mkwire.ErrUnknownSide)
}

func TestDecodeProof_garbage(t *testing.T) {
	t.Parallel()

	_, err := mkwire.DecodeProof[string]([]byte("not cbor at all"))
	require.Error(t, err)
}
