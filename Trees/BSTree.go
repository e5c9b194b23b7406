package Trees

import "golang.org/x/exp/constraints"

// BSTree is a plain binary search tree with no repeated values: the
// smallest concrete variant of BinTree. T is the type of values it
// holds. Insertion and removal keep every node's height exact but
// never rotate, so the height D of the tree is O(n) in the worst case
// and O(log n) on random input; all the O(D) bounds below read
// accordingly. Balanced variants are built the same way with
// rotations added.
type BSTree[T constraints.Ordered] struct {
	BinTree[T]
}

var _ Tree[int] = (*BSTree[int])(nil)

// New returns an empty BSTree allocating from the Go heap.
func New[T constraints.Ordered]() *BSTree[T] {
	return NewIn[T](nil)
}

// NewIn returns an empty BSTree routing all node lifetime events
// through al. A nil al means GoAlloc.
func NewIn[T constraints.Ordered](al Allocator[T]) *BSTree[T] {
	return &BSTree[T]{MakeBinTree(al)}
}

// find the node holding v.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Put inserts v if absent, descending from the root to the leaf
// position its ordering dictates. Inserting a value already present is
// a no-op with Inserted==false and Pos at the existing node.
// Time: O(D)
func (u *BSTree[T]) Put(v T) InsertResult[T] {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		p = cur
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return InsertResult[T]{Pos: Iter[T]{cur}}
		}
	}
	n := u.LinkNode(v, p, nil, nil)
	if p == nil {
		u.root = n
	} else {
		FixHeights(p)
	}
	u.sz++
	return InsertResult[T]{Pos: Iter[T]{n}, Inserted: true}
}

// Insert [Tree.Insert].
// Time: O(len(vs)*D)
func (u *BSTree[T]) Insert(vs ...T) {
	for _, v := range vs {
		u.Put(v)
	}
}

// Contains [Tree.Contains].
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Contains(v T) bool {
	return u.find(v) != nil
}

// Clear [Tree.Clear]. Destroys every node through the allocator by
// dropping leaves upward along parent links, no auxiliary storage.
// Time: O(n); Space: O(1)
func (u *BSTree[T]) Clear() {
	for n := u.root; n != nil; {
		if n.l != nil {
			n = n.l
		} else if n.r != nil {
			n = n.r
		} else {
			n = u.DropNode(n)
		}
	}
	u.root, u.sz = nil, 0
}

// unlink detaches n from the tree without freeing it and returns it
// wiped to a lone leaf. A node with two children swaps values with its
// in-order successor and the successor node, which has no left child,
// is the one detached; the detached node therefore always carries the
// value searched for.
func (u *BSTree[T]) unlink(n *Node[T]) *Node[T] {
	if n.l != nil && n.r != nil {
		s := n.r.leftmost()
		n.v, s.v = s.v, n.v
		n = s
	}
	c := n.l
	if c == nil {
		c = n.r
	}
	if c != nil {
		c.p = n.p
	}
	if p := n.p; p == nil {
		u.root = c
	} else {
		if p.l == n {
			p.l = c
		} else {
			p.r = c
		}
		FixHeights(p)
	}
	n.p, n.l, n.r, n.h = nil, nil, nil, 0
	u.sz--
	return n
}

// Remove v from the tree. Returns false if v isn't in u.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) bool {
	n := u.find(v)
	if n == nil {
		return false
	}
	u.al.Free(u.unlink(n))
	return true
}

// Extract unlinks the node holding v and returns a NodeHandle owning
// its allocation, leaving the value intact for reinsertion elsewhere.
// An absent v yields an empty handle.
// Time: O(D)
func (u *BSTree[T]) Extract(v T) NodeHandle[T] {
	n := u.find(v)
	if n == nil {
		return NodeHandle[T]{al: u.al}
	}
	return NodeHandle[T]{u.unlink(n), u.al}
}

// Minimum element of the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.leftmost().v, true
}

// Maximum element of the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.rightmost().v, true
}

// Begin returns an iterator at the minimum element; the exhausted
// (zero) iterator is the end.
func (u *BSTree[T]) Begin() Iter[T] {
	it := u.Iter()
	it.Leftmost()
	return it
}

// RBegin returns a reverse iterator at the maximum element.
func (u *BSTree[T]) RBegin() RevIter[T] {
	it := u.RevIter()
	it.Rightmost()
	return it
}

// Corrupt reports whether u violates its structural properties:
// parent back links, node-local ordering, exact heights, or a size
// counter disagreeing with the reachable node count.
func (u *BSTree[T]) Corrupt() bool {
	var cnt uint
	return !audit(u.root, &cnt) || cnt != u.sz
}

func audit[T constraints.Ordered](n *Node[T], cnt *uint) bool {
	if n == nil {
		return true
	}
	*cnt++
	if n.l != nil && (n.l.p != n || n.l.v >= n.v) {
		return false
	}
	if n.r != nil && (n.r.p != n || n.r.v <= n.v) {
		return false
	}
	if !audit(n.l, cnt) || !audit(n.r, cnt) {
		return false
	}
	h := n.h
	n.reheight()
	ok := n.h == h
	n.h = h
	return ok
}
