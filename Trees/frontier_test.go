package Trees

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Fathoming and eviction walkthrough on concrete objective vectors, the way
// a bi-objective branch-and-bound would drive the structure.
func TestFrontier_FathomAndEvict(t *testing.T) {
	tree := New[int, uint32]()
	require.True(t, tree.Insert(Point[int]{3, 5}))
	require.EqualValues(t, 1, tree.Size())
	require.Equal(t, []Point[int]{{3, 5}}, tree.All())

	// (4,6) is dominated by (3,5): fathomed, nothing changes.
	require.False(t, tree.Insert(Point[int]{4, 6}))
	require.EqualValues(t, 1, tree.Size())
	require.Equal(t, []Point[int]{{3, 5}}, tree.All())

	// (2,4) dominates (3,5): the stored point is evicted and replaced.
	require.True(t, tree.Insert(Point[int]{2, 4}))
	require.EqualValues(t, 1, tree.Size())
	require.Equal(t, []Point[int]{{2, 4}}, tree.All())
	require.False(t, tree.Corrupt())
}

func TestFrontier_MutuallyNonDominated(t *testing.T) {
	tree := New[int, uint32]()
	for _, v := range []Point[int]{{1, 5}, {5, 1}, {3, 3}} {
		require.True(t, tree.Insert(v))
	}
	require.EqualValues(t, 3, tree.Size())
	require.Equal(t, []Point[int]{{1, 5}, {3, 3}, {5, 1}}, tree.All())

	require.True(t, tree.Remove(Point[int]{3, 3}))
	require.EqualValues(t, 2, tree.Size())
	require.Equal(t, []Point[int]{{1, 5}, {5, 1}}, tree.All())
	require.False(t, tree.Corrupt())
}

func TestFrontier_QueryErrors(t *testing.T) {
	tree := New[int, uint32]()
	for _, v := range []Point[int]{{1, 5}, {5, 1}, {3, 3}} {
		tree.Insert(v)
	}
	_, err := tree.RankOf(Point[int]{7, 7})
	require.ErrorContains(t, err, "not found")
	require.IsType(t, &NotFoundError[int]{}, err)

	_, err = tree.At(0)
	require.IsType(t, &IndexError{}, err)
	require.ErrorContains(t, err, "out of range [1,3]")
	_, err = tree.At(tree.Size() + 1)
	require.IsType(t, &IndexError{}, err)

	// The failed queries are pure: nothing changed.
	require.EqualValues(t, 3, tree.Size())
	require.Equal(t, []Point[int]{{1, 5}, {3, 3}, {5, 1}}, tree.All())
}

// Inserting a point that dominates exactly k stored points and is dominated
// by none changes the size by 1-k.
func TestFrontier_EvictionCount(t *testing.T) {
	frontier := []Point[int]{{1, 10}, {2, 9}, {3, 8}, {4, 7}, {5, 6}}
	tree := Build[int, uint32](frontier, true)
	require.EqualValues(t, 5, tree.Size())

	// (2,7) dominates (2,9), (3,8) and (4,7): k=3.
	require.True(t, tree.Insert(Point[int]{2, 7}))
	require.EqualValues(t, 3, tree.Size())
	require.Equal(t, []Point[int]{{1, 10}, {2, 7}, {5, 6}}, tree.All())
	require.False(t, tree.Corrupt())

	// (0,0) dominates the whole frontier.
	require.True(t, tree.Insert(Point[int]{0, 0}))
	require.EqualValues(t, 1, tree.Size())
	require.Equal(t, []Point[int]{{0, 0}}, tree.All())
	require.False(t, tree.Corrupt())
}

func TestFrontier_InsertIdempotent(t *testing.T) {
	tree := New[int, uint32]()
	for i := 0; i < tInsN/4; i++ {
		tree.Insert(randPoint())
	}
	all := tree.All()
	for _, v := range all {
		require.False(t, tree.Insert(v))
	}
	require.Equal(t, all, tree.All())
}
