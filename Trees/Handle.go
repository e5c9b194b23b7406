package Trees

import "golang.org/x/exp/constraints"

// NodeHandle owns a single detached node outside any tree structure:
// the way to move an element out of a tree without destroying it, for
// inspection or reinsertion elsewhere. The zero value is empty and
// allocates through GoAlloc when it has to.
// Two ways of filling a handle exist on purpose and differ: Bind takes
// the reference of an in-tree position without allocating, while Clone
// deep-copies the value into a freshly allocated node. A handle bound
// to a node still linked in a tree owns the allocation only once the
// node is unlinked; BSTree.Extract does the unlinking.
type NodeHandle[T constraints.Ordered] struct {
	n  *Node[T]
	al Allocator[T]
}

func (u *NodeHandle[T]) alloc() Allocator[T] {
	if u.al == nil {
		u.al = GoAlloc[T]{}
	}
	return u.al
}

// Empty is true iff no node is held.
func (u *NodeHandle[T]) Empty() bool {
	return u.n == nil
}

// Value of the held node. Panics with NilRefError when empty.
func (u *NodeHandle[T]) Value() *T {
	if u.n == nil {
		panic(NilRefError{})
	}
	return &u.n.v
}

// Swap exchanges the held node references in O(1), no allocation. The
// allocators stay put, so only swap handles of trees sharing a
// strategy.
func (u *NodeHandle[T]) Swap(o *NodeHandle[T]) {
	u.n, o.n = o.n, u.n
}

// Bind points u at the node under pos without allocating or copying;
// whatever u held before is released first. Binding the sentinel
// leaves u empty.
func (u *NodeHandle[T]) Bind(pos CIter[T]) {
	u.Drop()
	u.n = pos.n
}

// Clone returns a handle over a fresh allocation holding a copy of u's
// value; links and height of the held node aren't carried over. An
// empty u clones to an empty handle.
func (u *NodeHandle[T]) Clone() NodeHandle[T] {
	if u.n == nil {
		return NodeHandle[T]{al: u.al}
	}
	n := u.alloc().Alloc()
	n.v = u.n.v
	return NodeHandle[T]{n, u.al}
}

// Move transfers ownership of the held node to the returned handle and
// resets u to empty.
func (u *NodeHandle[T]) Move() NodeHandle[T] {
	h := NodeHandle[T]{u.n, u.al}
	u.n, u.al = nil, nil
	return h
}

// Drop releases the held allocation back to the strategy and empties
// u. Idempotent; the destructor analogue, to be called on every owning
// handle when done.
func (u *NodeHandle[T]) Drop() {
	if u.n != nil {
		u.alloc().Free(u.n)
		u.n = nil
	}
}

// Alloc is the strategy the held allocation belongs to.
func (u *NodeHandle[T]) Alloc() Allocator[T] {
	return u.alloc()
}
