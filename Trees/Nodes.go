package Trees

import "golang.org/x/exp/constraints"

// A node in the AVLTree
// The zero value is meaningless.
type node[T constraints.Signed, S constraints.Unsigned] struct {
	v    Point[T]
	l, r nodePtr[T, S]
	sz   S
	h    int8
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in AVLTree. The value of this node has
// both node.l, node.r = itself, sz=0 and h=0, so size and height reads
// need no nil checks. v is the zero value of Point[T].
type nodePtr[T constraints.Signed, S constraints.Unsigned] *node[T, S]

// update recomputes height and size of n from its children. Children must
// already be up to date. A free function because nodePtr has no method set.
func update[T constraints.Signed, S constraints.Unsigned](n nodePtr[T, S]) {
	n.h = max(n.l.h, n.r.h) + 1
	n.sz = n.l.sz + n.r.sz + 1
}

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference
// in order to modify its content. The right child must not be nilPtr.
// Time: O(1); Space: O(1)
func rotateLeft[T constraints.Signed, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	update(r)
	update(rc)
	*n = rc
}

// rotateRight performs a right rotation on nodePtr n. n is passed by reference
// in order to modify its content. The left child must not be nilPtr.
// Time: O(1); Space: O(1)
func rotateRight[T constraints.Signed, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	update(r)
	update(lc)
	*n = lc
}
