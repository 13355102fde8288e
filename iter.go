package merk

import "iter"

// Leaves returns an iterator over the tree's values
// in left-to-right order.
//
// The iteration is lazy and does not copy the values;
// each call to Leaves produces a fresh, restartable sequence.
func (t *Tree[T]) Leaves() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		t.root.yieldLeaves(yield)
	}
}

func (n *node[T]) yieldLeaves(yield func(T) bool) bool {
	if n.value != nil {
		return yield(*n.value)
	}

	if !n.left.yieldLeaves(yield) {
		return false
	}

	if n.right == n.left {
		// Self-paired tail of an odd-width level;
		// the duplicated subtree's values are yielded only once.
		return true
	}

	return n.right.yieldLeaves(yield)
}
