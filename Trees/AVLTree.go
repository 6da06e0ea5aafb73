package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values over two-objective
// Points, balanced by heights in the usual AVL fashion. It stores only
// mutually non-dominated Points: Insert fathoms the incoming Point against
// the stored ones and removes every stored Point the incoming one dominates,
// all during the one lexicographic descent. T is the coordinate type of the
// Points it will hold, S is the type of the variables used for storing the
// sizes of different subtrees.
// This struct holds a root pointer and a corresponding nilPtr used
// as nil described in nodePtr.
// This tree needs to keep track of the sizes of each subtree, so the
// additional memory cost is size(S)*n, plus one byte per node for the height.
// The worst case height of the tree is less than f(n)=1.44*log2(n+1.5)-1.33,
// so the height D of the tree is of O(log n).
// Note that due to the way uint works in Go, and that the Frontier interface
// defines the return value of some functions to be uint, S shouldn't be
// any type that will cause overflow when converted to uint. Generally, you
// should let S be a wide upperbound for the size of the tree.
type AVLTree[T constraints.Signed, S constraints.Unsigned] struct {
	root   nodePtr[T, S] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[T, S] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
}

// New returns an empty AVLTree satisfying the above definitions for nilPtr,
// root, and types. AVLTree shouldn't be created directly using struct literal.
func New[T constraints.Signed, S constraints.Unsigned]() *AVLTree[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	return &AVLTree[T, S]{z, z}
}

// Build builds an AVLTree using the given sorted slice recursively. This is
// faster than repeatedly calling Insert. The given slice must be sorted in
// ascending lexicographic order and mustn't contain a Point dominating
// another (equivalently: Z1 strictly increasing and Z2 strictly decreasing).
// If safe==true, this function will check if the conditions are met and panic
// with InvalidSliceError at the offending adjacent pair if they are broken.
// Otherwise, this function won't perform the check, and it is up to the user
// to ensure the conditions are met (otherwise the tree will be corrupt).
// Time: O(n).
func Build[T constraints.Signed, S constraints.Unsigned](sli []Point[T], safe bool) *AVLTree[T, S] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i-1].Z1 >= sli[i].Z1 || sli[i-1].Z2 <= sli[i].Z2 {
				panic(InvalidSliceError[T]{sli[i-1], sli[i]})
			}
		}
	}
	z := new(node[T, S])
	z.l, z.r = z, z
	var build func([]Point[T]) nodePtr[T, S]
	build = func(s []Point[T]) nodePtr[T, S] {
		if len(s) > 0 {
			mid := len(s) >> 1
			n := &node[T, S]{v: s[mid], l: build(s[0:mid]), r: build(s[mid+1:])}
			update(n)
			return n
		}
		return z
	}
	return &AVLTree[T, S]{build(sli), z}
}

// Size [Frontier.Size].
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Size() uint {
	return uint(u.root.sz)
}

// rebalance recomputes height and size of the node at curPtr and restores the
// AVL balance invariant with at most two rotations, classifying the case by
// the balance factor of the taller child. curPtr is passed by reference and
// must not hold nilPtr. Applied after every structural change to the subtree.
// Time: O(1)
func (u *AVLTree[T, S]) rebalance(curPtr *nodePtr[T, S]) {
	cur := *curPtr
	update(cur)
	if bf := cur.l.h - cur.r.h; bf > 1 {
		if cur.l.l.h >= cur.l.r.h {
			rotateRight(curPtr)
		} else {
			rotateLeft(&cur.l)
			rotateRight(curPtr)
		}
	} else if bf < -1 {
		if cur.r.r.h >= cur.r.l.h {
			rotateLeft(curPtr)
		} else {
			rotateRight(&cur.r)
			rotateLeft(curPtr)
		}
	}
}

// popMin removes the leftmost node of the subtree rooting at cur and returns
// its Point, rebalancing every frame on the way out. cur is passed by
// reference. The subtree must not be empty.
func (u *AVLTree[T, S]) popMin(curPtr *nodePtr[T, S]) Point[T] {
	cur := *curPtr
	if cur.l == u.nilPtr {
		*curPtr = cur.r
		return cur.v
	}
	v := u.popMin(&cur.l)
	u.rebalance(curPtr)
	return v
}

// insert the Point v to the subtree rooting at cur recursively. cur is passed
// by reference. At each node v is compared to the stored Point: if the node
// weakly dominates v, v is fathomed and the subtree is left unchanged; if v
// dominates the node's Point, that Point is evicted (leaf overwrite,
// single-child splice, or successor copy from the right subtree) and the
// descent re-enters the replacement subtree root with the same v, evicting
// any further dominated Points it meets; otherwise the descent follows
// lexicographic order and the usual leaf creation applies. Returns whether v
// is stored in the subtree afterwards.
// Only nodes on one root-to-leaf path are visited: because stored Points form
// an antichain under dominance, ascending lexicographic order coincides with
// strictly decreasing Z2, so a single descent meets every stored Point
// comparable to v under dominance. This relies on the non-domination of the
// stored Points and is assumed, not checked.
func (u *AVLTree[T, S]) insert(curPtr *nodePtr[T, S], v Point[T]) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		*curPtr = &node[T, S]{v: v, l: u.nilPtr, r: u.nilPtr, sz: 1, h: 1}
		return true
	}
	if v == cur.v || cur.v.Dominates(v) {
		return false
	}
	if v.Dominates(cur.v) {
		if cur.l == u.nilPtr && cur.r == u.nilPtr {
			cur.v = v
			return true
		}
		if cur.l == u.nilPtr {
			*curPtr = cur.r
		} else if cur.r == u.nilPtr {
			*curPtr = cur.l
		} else {
			cur.v = u.popMin(&cur.r)
			u.rebalance(curPtr)
		}
		return u.insert(curPtr, v)
	}
	var placed bool
	if v.Less(cur.v) {
		placed = u.insert(&cur.l, v)
	} else {
		placed = u.insert(&cur.r, v)
	}
	if placed {
		u.rebalance(curPtr)
	}
	return placed
}

// Insert [Frontier.Insert]. Recursive.
// It is a wrapper for insert. Inserting a Point that dominates exactly k
// stored Points and is dominated by none changes Size() by 1-k; inserting a
// fathomed or already present Point changes nothing.
// Time: O(D+k) where k is the number of evicted Points.
func (u *AVLTree[T, S]) Insert(v Point[T]) bool {
	return u.insert(&u.root, v)
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if the removal failed (v doesn't exist
// in u), otherwise true. The two-children case copies the inorder successor
// into the node and removes the successor from the right subtree; every
// changed frame is rebalanced on the way out.
// Time: O(D)
func (u *AVLTree[T, S]) remove(curPtr *nodePtr[T, S], v Point[T]) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		return false
	}
	deleted := false
	if v.Less(cur.v) {
		deleted = u.remove(&cur.l, v)
	} else if v == cur.v {
		if cur.l == u.nilPtr {
			*curPtr = cur.r
			return true
		} else if cur.r == u.nilPtr {
			*curPtr = cur.l
			return true
		}
		deleted = true
		cur.v = u.popMin(&cur.r)
	} else {
		deleted = u.remove(&cur.r, v)
	}
	if deleted {
		u.rebalance(curPtr)
	}
	return deleted
}

// Remove [Frontier.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *AVLTree[T, S]) Remove(v Point[T]) bool {
	return u.remove(&u.root, v)
}

// Has [Frontier.Has]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Has(v Point[T]) bool {
	for cur := u.root; cur != u.nilPtr; {
		if v.Less(cur.v) {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Frontier.Minimum]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Minimum() (Point[T], bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Frontier.Maximum]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Maximum() (Point[T], bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Predecessor [Frontier.Predecessor]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Predecessor(v Point[T]) (Point[T], bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if cur.v.Less(v) {
			p = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Frontier.Successor]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Successor(v Point[T]) (Point[T], bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v.Less(cur.v) {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// At [Frontier.At]
// Returns the k-th Point in ascending lexicographic order, 1<=k<=Size(), or
// (zero, *IndexError) when k is out of that range.
// This function utilizes the sizes of each subtree to provide O(D)
// performance with very small constant.
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) At(k uint) (Point[T], error) {
	if k < 1 || k > uint(u.root.sz) {
		return Point[T]{}, &IndexError{k, uint(u.root.sz)}
	}
	cur, t := u.root, S(k)
	for {
		if t < cur.l.sz+1 {
			cur = cur.l
		} else if t == cur.l.sz+1 {
			return cur.v, nil
		} else {
			t -= cur.l.sz + 1
			cur = cur.r
		}
	}
}

// RankOf [Frontier.RankOf]
// Returns the 1-based position of v in ascending lexicographic order, or
// (0, *NotFoundError) when v isn't stored. Each time the descent goes right
// the skipped left subtree and node precede v and are accumulated.
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) RankOf(v Point[T]) (uint, error) {
	cur := u.root
	var ra S = 0
	for cur != u.nilPtr {
		if v.Less(cur.v) {
			cur = cur.l
		} else if v == cur.v {
			return uint(ra + cur.l.sz + 1), nil
		} else {
			ra += cur.l.sz + 1
			cur = cur.r
		}
	}
	return 0, &NotFoundError[T]{v}
}

// All [Frontier.All]. Recursive.
// By the non-domination of the stored Points the result also has strictly
// increasing Z1 and strictly decreasing Z2.
// Time: O(n)
func (u AVLTree[T, S]) All() []Point[T] {
	s := make([]Point[T], 0, u.root.sz)
	var walk func(nodePtr[T, S])
	walk = func(c nodePtr[T, S]) {
		if c != u.nilPtr {
			walk(c.l)
			s = append(s, c.v)
			walk(c.r)
		}
	}
	walk(u.root)
	return s
}

// Fold performs one eager traversal of u in the given Order, calling visit on
// every Point and then step on the accumulator after each visit, and returns
// the final accumulator. order must be PreOrder, InOrder or PostOrder; any
// other value visits nothing and returns acc unchanged. It runs to completion
// in a single call; it is not a resumable iterator. The tree must not be
// modified by the callbacks.
// It is a free function because methods can't introduce the accumulator type.
// Time: O(n)
func Fold[T constraints.Signed, S constraints.Unsigned, A any](u *AVLTree[T, S], order Order, visit func(Point[T]), step func(A) A, acc A) A {
	at := func(c nodePtr[T, S]) {
		visit(c.v)
		acc = step(acc)
	}
	var walk func(nodePtr[T, S])
	walk = func(c nodePtr[T, S]) {
		if c == u.nilPtr {
			return
		}
		switch order {
		case PreOrder:
			at(c)
			walk(c.l)
			walk(c.r)
		case InOrder:
			walk(c.l)
			at(c)
			walk(c.r)
		case PostOrder:
			walk(c.l)
			walk(c.r)
			at(c)
		}
	}
	walk(u.root)
	return acc
}

// Corrupt [Frontier.Corrupt]. Recursive.
// It audits, in one pass, lexicographic ordering, pairwise non-domination
// (through its adjacent-pair consequence: Z1 strictly increasing and Z2
// strictly decreasing in-order), subtree sizes, heights and AVL balance
// factors.
// Time: O(n)
func (u AVLTree[T, S]) Corrupt() bool {
	var prev *Point[T]
	var check func(nodePtr[T, S]) bool
	check = func(c nodePtr[T, S]) bool {
		if c == u.nilPtr {
			return true
		}
		if !check(c.l) {
			return false
		}
		if prev != nil && (prev.Z1 >= c.v.Z1 || prev.Z2 <= c.v.Z2) {
			return false
		}
		p := c.v
		prev = &p
		if c.sz != c.l.sz+c.r.sz+1 || c.h != max(c.l.h, c.r.h)+1 {
			return false
		}
		if bf := c.l.h - c.r.h; bf < -1 || bf > 1 {
			return false
		}
		return check(c.r)
	}
	return !check(u.root)
}
