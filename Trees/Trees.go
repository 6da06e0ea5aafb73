package Trees

import "golang.org/x/exp/constraints"

// Order selects the traversal order used by Fold.
type Order byte

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

// Frontier represents A set of mutually non-dominated Points kept in
// lexicographic order. Receivers that has A bool as A second return value
// indicates whether the first return value is defined. For example, if
// calling Minimum on an empty tree, the return value will be (x Point[T],
// false bool). In this case the value of x should be undefined.
// All operations are synchronous and none of them is safe for concurrent
// mutation; callers needing that must serialize externally.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here.
type Frontier[T constraints.Signed] interface {
	//Insert v if no stored Point dominates it, removing every stored Point
	//that v dominates in the same descent. Returning true if v is stored
	//afterwards, false if v was fathomed or already present.
	Insert(v Point[T]) bool
	//Remove v from the set. Returning true if v was present, false otherwise.
	Remove(v Point[T]) bool
	//Has element v. Note that even though by utilizing the second
	//return value of other methods achieves the same functionality
	//as Has, it is encouraged to use Has for the purposes of checking
	//if some value exists, as Has should be optimized for this purpose
	//in implementations.
	Has(v Point[T]) bool
	//Minimum element in lexicographic order: the stored Point with the
	//best first objective.
	Minimum() (Point[T], bool)
	//Maximum element in lexicographic order: the stored Point with the
	//best second objective.
	Maximum() (Point[T], bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v Point[T]) (Point[T], bool)
	//Successor returns the smallest element greater than v.
	Successor(v Point[T]) (Point[T], bool)
	//At returns the k-th element in sorted order, 1<=k<=Size().
	//Out of range k fails with *IndexError.
	At(k uint) (Point[T], error)
	//RankOf v in the set according to in-order, 1<=r<=Size().
	//Absent v fails with *NotFoundError.
	RankOf(v Point[T]) (uint, error)
	//All stored Points in ascending lexicographic order. The slice is
	//built eagerly and owned by the caller.
	All() []Point[T]
	//Size of the set.
	Size() uint
	//Corrupt returns whether the tree has corrupt structures, when the value
	//or the bookkeeping at some node violates the properties of that
	//specific implementation.
	Corrupt() bool
}
