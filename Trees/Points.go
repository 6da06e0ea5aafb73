package Trees

import (
	"golang.org/x/exp/constraints"
)

// Point is a two-objective outcome vector (Z1, Z2). The tree orders Points
// lexicographically (Z1 first, then Z2); this total order is independent of
// the dominance relation below, which is what insertion fathoms with.
// Points are plain comparable values; equality is coordinate-wise.
type Point[T constraints.Signed] struct {
	Z1, Z2 T
}

// Less reports whether u precedes o in lexicographic order.
func (u Point[T]) Less(o Point[T]) bool {
	return u.Z1 < o.Z1 || (u.Z1 == o.Z1 && u.Z2 < o.Z2)
}

// Dominates reports whether u is no worse than o in both coordinates and
// strictly better in at least one. A Point never dominates itself.
func (u Point[T]) Dominates(o Point[T]) bool {
	return u.Z1 <= o.Z1 && u.Z2 <= o.Z2 && u != o
}
