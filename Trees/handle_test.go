package Trees

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandle_Extract(t *testing.T) {
	tree := scenario()
	h := tree.Extract(3)
	require.False(t, h.Empty())
	require.Equal(t, 3, *h.Value())
	require.False(t, tree.Contains(3))
	require.EqualValues(t, 4, tree.Size())
	require.False(t, tree.Corrupt())
	// Round trip: the extracted value reinserts elsewhere unchanged.
	other := New[int]()
	other.Put(*h.Value())
	require.True(t, other.Contains(3))
	h.Drop()
	require.True(t, h.Empty())
	h.Drop() // idempotent
}

func TestHandle_ExtractInner(t *testing.T) {
	// Extracting a node with two children must still hand out the
	// searched-for value, not its in-order successor's.
	tree := scenario()
	h := tree.Extract(5)
	require.Equal(t, 5, *h.Value())
	require.False(t, tree.Contains(5))
	require.Equal(t, []int{1, 3, 4, 8}, tree.inOrder())
	require.False(t, tree.Corrupt())
	h.Drop()
}

func TestHandle_ExtractAbsent(t *testing.T) {
	tree := scenario()
	h := tree.Extract(42)
	require.True(t, h.Empty())
	require.EqualValues(t, 5, tree.Size())
	require.Panics(t, func() { h.Value() })
}

func TestHandle_Bind(t *testing.T) {
	tree := scenario()
	it := tree.Iter() // at the root, value 5
	var h NodeHandle[int]
	h.Bind(it.Const())
	require.False(t, h.Empty())
	// Bind aliases the in-tree node, it doesn't copy.
	*it.Get() = 6
	require.Equal(t, 6, *h.Value())
	*it.Get() = 5
	h.Bind(CIter[int]{}) // rebinding to the sentinel empties
	require.True(t, h.Empty())
}

func TestHandle_Clone(t *testing.T) {
	tree := scenario()
	h := tree.Extract(8)
	c := h.Clone()
	require.False(t, c.Empty())
	require.Equal(t, 8, *c.Value())
	*c.Value() = 9 // a fresh allocation, the original is untouched
	require.Equal(t, 8, *h.Value())
	h.Drop()
	c.Drop()

	var e NodeHandle[int]
	ec := e.Clone()
	require.True(t, ec.Empty())
}

func TestHandle_Move(t *testing.T) {
	tree := scenario()
	h := tree.Extract(1)
	m := h.Move()
	require.True(t, h.Empty())
	require.Equal(t, 1, *m.Value())
	m.Drop()
}

func TestHandle_Swap(t *testing.T) {
	tree := scenario()
	a, b := tree.Extract(1), tree.Extract(4)
	a.Swap(&b)
	require.Equal(t, 4, *a.Value())
	require.Equal(t, 1, *b.Value())
	var e NodeHandle[int]
	a.Swap(&e)
	require.True(t, a.Empty())
	require.Equal(t, 4, *e.Value())
	b.Drop()
	e.Drop()
}

func TestHandle_PoolOwnership(t *testing.T) {
	// An extracted node belongs to the tree's strategy; Drop must hand
	// it back there.
	var p Pool[int]
	tree := NewIn[int](&p)
	tree.Insert(2, 1, 3)
	h := tree.Extract(2)
	require.Same(t, &p, h.Alloc())
	require.Nil(t, p.free)
	h.Drop()
	require.NotNil(t, p.free)
}
