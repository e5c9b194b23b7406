package Trees

import "golang.org/x/exp/constraints"

// A Node in a binary search tree.
// p is a lookup-only back reference, never ownership; l and r own
// their subtrees. h is the height: 0 at a leaf, otherwise 1 plus the
// height of the sole child, or 1 plus the larger child height when
// both exist. The zero value is a valid detached leaf.
// For any node reachable as a child, exactly one of p.l==n, p.r==n
// holds; within a subtree every value left of a node compares less
// than it and every value right of it compares greater.
type Node[T constraints.Ordered] struct {
	v       T
	p, l, r *Node[T]
	h       uint
}

// Value of the node. The pointer stays valid until the node is freed.
func (u *Node[T]) Value() *T {
	return &u.v
}

// Height of the subtree rooted at u.
func (u *Node[T]) Height() uint {
	return u.h
}

// Parent of u, nil at the root.
func (u *Node[T]) Parent() *Node[T] {
	return u.p
}

// Left child of u, nil if absent.
func (u *Node[T]) Left() *Node[T] {
	return u.l
}

// Right child of u, nil if absent.
func (u *Node[T]) Right() *Node[T] {
	return u.r
}

// reheight recomputes h from the children alone. A missing child's
// height is absent, not zero: with one child h=1+child.h.
func (u *Node[T]) reheight() {
	if u.l != nil {
		if u.r != nil {
			u.h = 1 + max(u.l.h, u.r.h)
		} else {
			u.h = 1 + u.l.h
		}
	} else if u.r != nil {
		u.h = 1 + u.r.h
	} else {
		u.h = 0
	}
}

// leftmost descendant of u.
func (u *Node[T]) leftmost() *Node[T] {
	for u.l != nil {
		u = u.l
	}
	return u
}

// rightmost descendant of u.
func (u *Node[T]) rightmost() *Node[T] {
	for u.r != nil {
		u = u.r
	}
	return u
}

// next is the in-order successor: the leftmost descendant of the right
// subtree if one exists, otherwise the first ancestor reached from a
// left child. Returns nil when u is the maximum. Pointer-only, no
// auxiliary storage.
func (u *Node[T]) next() *Node[T] {
	if u.r != nil {
		return u.r.leftmost()
	}
	for u.p != nil && u.p.r == u {
		u = u.p
	}
	return u.p
}

// prev is the in-order predecessor, symmetric to next.
func (u *Node[T]) prev() *Node[T] {
	if u.l != nil {
		return u.l.rightmost()
	}
	for u.p != nil && u.p.l == u {
		u = u.p
	}
	return u.p
}

// eq compares the subtrees rooted at u and o structurally: same shape,
// same heights, same values node by node. Two subtrees holding the
// same elements in different shapes aren't eq.
func (u *Node[T]) eq(o *Node[T]) bool {
	if u == nil || o == nil {
		return u == o
	}
	return u.v == o.v && u.h == o.h && u.l.eq(o.l) && u.r.eq(o.r)
}
