package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NotFoundError reports a rank query on a Point that isn't stored.
type NotFoundError[T constraints.Signed] struct {
	V Point[T]
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("Trees: point (%v,%v) not found", e.V.Z1, e.V.Z2)
}

// IndexError reports a positional query outside [1, Size].
type IndexError struct {
	K, Size uint
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Trees: index %d out of range [1,%d]", e.K, e.Size)
}

// InvalidSliceError is the panic value of Build when safe==true and the
// given slice breaks the ordering or non-domination conditions at the
// adjacent pair (P, Q).
type InvalidSliceError[T constraints.Signed] struct {
	P, Q Point[T]
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("Trees: invalid slice at (%v,%v), (%v,%v)", e.P.Z1, e.P.Z2, e.Q.Z1, e.Q.Z2)
}
