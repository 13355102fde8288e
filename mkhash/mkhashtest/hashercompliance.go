package mkhashtest

import (
	"testing"

	"github.com/merk-engine/merk/mkhash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() (h mkhash.Hasher, hashSize int)

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("empty is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := h.Empty(nil)
		dst02 := h.Empty(nil)

		require.Len(t, dst01, sz)
		require.Equal(t, dst01, dst02)
	})

	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := h.Leaf([]byte("deterministic_data"), nil)
		dst02 := h.Leaf([]byte("deterministic_data"), nil)

		require.Len(t, dst01, sz)
		require.Equal(t, dst01, dst02)
	})

	t.Run("leaf respects input", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		dst01 := h.Leaf([]byte("hello"), nil)
		dst02 := h.Leaf([]byte("world"), nil)

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("leaf differs from empty", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		require.NotEqual(t, h.Empty(nil), h.Leaf(nil, nil))
	})

	t.Run("node respects order", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		left := h.Leaf([]byte("left"), nil)
		right := h.Leaf([]byte("right"), nil)

		dst01 := h.Node(left, right, nil)
		dst02 := h.Node(right, left, nil)

		require.Len(t, dst01, sz)
		require.NotEqual(t, dst01, dst02)
	})

	t.Run("node is domain separated from leaf", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		left := h.Leaf([]byte("left"), nil)
		right := h.Leaf([]byte("right"), nil)

		// Hashing the concatenation as a leaf
		// must not collide with combining the pair as a node.
		concat := make([]byte, 0, len(left)+len(right))
		concat = append(concat, left...)
		concat = append(concat, right...)

		require.NotEqual(t, h.Node(left, right, nil), h.Leaf(concat, nil))
	})

	t.Run("appends to dst", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		prefix := []byte("prefix")
		dst := h.Leaf([]byte("data"), prefix)

		require.Len(t, dst, len(prefix)+sz)
		require.Equal(t, prefix, dst[:len(prefix)])
		require.Equal(t, h.Leaf([]byte("data"), nil), dst[len(prefix):])
	})
}
