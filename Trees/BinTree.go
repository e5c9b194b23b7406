package Trees

import (
	"math"

	"golang.org/x/exp/constraints"
)

// BinTree is the common base of node linked search trees. It owns the
// root, the live node count, and the allocation strategy; the
// operations of Tree are supplied by concrete variants built on the
// primitives here. The primitives are mechanisms, not policy: they
// operate only on nodes the caller guarantees are valid and reachable
// and perform no defensive checks, see NewNode, LinkNode, and
// DropNode. BinTree never rebalances; variants that want balance do
// their own rotations and use FixHeights to keep h exact.
type BinTree[T constraints.Ordered] struct {
	root *Node[T]
	al   Allocator[T]
	sz   uint
}

// MakeBinTree with the given allocation strategy. A nil al means
// GoAlloc. Variants embed the result.
func MakeBinTree[T constraints.Ordered](al Allocator[T]) BinTree[T] {
	if al == nil {
		al = GoAlloc[T]{}
	}
	return BinTree[T]{al: al}
}

// Size of the tree: the authoritative count of live nodes, maintained
// by variants independently of traversal. O(1).
func (u *BinTree[T]) Size() uint {
	return u.sz
}

// Empty is Size()==0.
func (u *BinTree[T]) Empty() bool {
	return u.sz == 0
}

// MaxSize is the implementation ceiling on Size, not a real limit.
func (u *BinTree[T]) MaxSize() uint {
	return math.MaxInt
}

// Alloc is the strategy all node lifetime events of u route through.
func (u *BinTree[T]) Alloc() Allocator[T] {
	return u.al
}

// NewNode allocates one unlinked node holding v: parent and children
// nil, height 0. No side effects beyond the allocation.
func (u *BinTree[T]) NewNode(v T) *Node[T] {
	n := u.al.Alloc()
	n.v = v
	return n
}

// LinkNode allocates a node holding v with the given links, computes
// its height from l and r, and, when parent isn't nil, hangs it off
// parent's left (v less) or right (v greater) side. When v equals
// parent's value the parent's links are left untouched: no duplicate
// insertion path. l and r are adopted as handed in; reparenting them
// and updating heights above parent are the caller's jobs, not this
// primitive's.
func (u *BinTree[T]) LinkNode(v T, parent, l, r *Node[T]) *Node[T] {
	n := u.al.Alloc()
	n.v, n.p, n.l, n.r = v, parent, l, r
	n.reheight()
	if parent != nil {
		if v < parent.v {
			parent.l = n
		} else if v > parent.v {
			parent.r = n
		}
	}
	return n
}

// DropNode severs and frees a single node. nil is a no-op returning
// nil. Dropping the root frees it and returns nil; the caller must
// then clear its root reference. Otherwise the matching parent side
// link is set to nil, the node is freed, and the parent is returned so
// the caller can continue height fixing upward. A node whose parent's
// links don't point back at it leaves the parent unchanged. Children
// of n and the size counter are untouched: both are the caller's
// bookkeeping.
func (u *BinTree[T]) DropNode(n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	p := n.p
	if p == nil {
		u.al.Free(n)
		return nil
	}
	if p.l == n {
		p.l = nil
	} else if p.r == n {
		p.r = nil
	}
	u.al.Free(n)
	return p
}

// FixHeights recomputes heights from n up the ancestor chain to the
// root. LinkNode deliberately leaves the chain above the parent stale;
// inserting code calls this once the new node is in place.
func FixHeights[T constraints.Ordered](n *Node[T]) {
	for ; n != nil; n = n.p {
		n.reheight()
	}
}

// Eq reports structural equality: same size and node-by-node identical
// shape, heights, and values. Two trees holding the same elements in
// different shapes are not Eq; callers wanting multiset equality must
// compare in-order sequences themselves.
func (u *BinTree[T]) Eq(o *BinTree[T]) bool {
	return u.sz == o.sz && u.root.eq(o.root)
}

// Iter at the root, not the minimum; Leftmost descends. Invalid on an
// empty tree.
func (u *BinTree[T]) Iter() Iter[T] {
	return Iter[T]{u.root}
}

// CIter at the root, read-only counterpart of Iter.
func (u *BinTree[T]) CIter() CIter[T] {
	return CIter[T]{u.root}
}

// RevIter at the root; Rightmost descends to the reverse beginning.
func (u *BinTree[T]) RevIter() RevIter[T] {
	return RevIter[T]{Iter[T]{u.root}}
}

// CRevIter at the root, read-only counterpart of RevIter.
func (u *BinTree[T]) CRevIter() CRevIter[T] {
	return CRevIter[T]{CIter[T]{u.root}}
}
