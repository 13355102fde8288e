package merk_test

import (
	"slices"
	"testing"

	"github.com/merk-engine/merk"
	"github.com/stretchr/testify/require"
)

func TestTree_Leaves_order(t *testing.T) {
	t.Parallel()

	values := []string{"zero", "one", "two", "three", "four"}
	tree := merk.NewTree(append([]string(nil), values...), stringConfig())

	require.Equal(t, values, slices.Collect(tree.Leaves()))
}

func TestTree_Leaves_oddCountYieldsOnce(t *testing.T) {
	t.Parallel()

	// The rightmost leaf of an odd count is self-paired in the tree,
	// but iteration must still yield it exactly once.
	values := []string{"a", "b", "c"}
	tree := merk.NewTree(append([]string(nil), values...), stringConfig())

	require.Equal(t, values, slices.Collect(tree.Leaves()))
}

func TestTree_Leaves_empty(t *testing.T) {
	t.Parallel()

	tree := merk.NewTree(nil, stringConfig())

	require.Empty(t, slices.Collect(tree.Leaves()))
}

func TestTree_Leaves_restartable(t *testing.T) {
	t.Parallel()

	values := []string{"a", "b", "c", "d", "e", "f"}
	tree := merk.NewTree(append([]string(nil), values...), stringConfig())

	first := slices.Collect(tree.Leaves())
	second := slices.Collect(tree.Leaves())

	require.Equal(t, values, first)
	require.Equal(t, first, second)
}

func TestTree_Leaves_earlyStop(t *testing.T) {
	t.Parallel()

	values := []string{"a", "b", "c", "d", "e"}
	tree := merk.NewTree(append([]string(nil), values...), stringConfig())

	var got []string
	for v := range tree.Leaves() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}

	require.Equal(t, []string{"a", "b"}, got)
}
