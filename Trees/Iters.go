package Trees

import "golang.org/x/exp/constraints"

// NilRefError is panicked when dereferencing the nil sentinel of an
// iterator or an empty NodeHandle.
type NilRefError struct{}

func (NilRefError) Error() string {
	return "Trees: dereference of nil position"
}

// Iter is a mutable in-order position in a tree: a non owning node
// reference, nil being the sentinel for past-the-end and
// before-the-beginning alike. Iterator values compare with ==; two are
// equal iff they reference the same node, and any exhausted iterator
// equals the zero Iter. Constructed from a tree it starts at the root,
// not the minimum: callers wanting a sorted walk from the beginning
// call Leftmost first.
// The tree mustn't be structurally modified during iteration.
type Iter[T constraints.Ordered] struct {
	n *Node[T]
}

// Valid reports whether u references a node, i.e. isn't the sentinel.
func (u Iter[T]) Valid() bool {
	return u.n != nil
}

// Get the element under u for reading or mutation. Mutating the parts
// of the element that determine its ordering corrupts the tree.
// Panics with NilRefError at the sentinel.
func (u Iter[T]) Get() *T {
	if u.n == nil {
		panic(NilRefError{})
	}
	return &u.n.v
}

// Next moves u to its in-order successor: the leftmost descendant of
// the right subtree if one exists, else the first ancestor reached
// from a left child. At the maximum u becomes the sentinel; at the
// sentinel it stays there.
func (u *Iter[T]) Next() {
	if u.n != nil {
		u.n = u.n.next()
	}
}

// Prev moves u to its in-order predecessor, symmetric to Next.
func (u *Iter[T]) Prev() {
	if u.n != nil {
		u.n = u.n.prev()
	}
}

// Advance is Next applied k times.
func (u *Iter[T]) Advance(k uint) {
	for ; k > 0; k-- {
		u.Next()
	}
}

// Retreat is Prev applied k times.
func (u *Iter[T]) Retreat(k uint) {
	for ; k > 0; k-- {
		u.Prev()
	}
}

// Leftmost descends to the leftmost descendant of the current node,
// the minimum of its subtree. No-op at the sentinel.
func (u *Iter[T]) Leftmost() {
	if u.n != nil {
		u.n = u.n.leftmost()
	}
}

// Rightmost descends to the rightmost descendant of the current node.
func (u *Iter[T]) Rightmost() {
	if u.n != nil {
		u.n = u.n.rightmost()
	}
}

// Const converts u to its read-only counterpart wrapping the same node
// reference; no element is copied.
func (u Iter[T]) Const() CIter[T] {
	return CIter[T]{u.n}
}

// CIter is the read-only counterpart of Iter: it hands out element
// copies, never references into the tree. Everything else behaves as
// documented on Iter.
type CIter[T constraints.Ordered] struct {
	n *Node[T]
}

func (u CIter[T]) Valid() bool {
	return u.n != nil
}

// Get a copy of the element under u. Panics with NilRefError at the
// sentinel.
func (u CIter[T]) Get() T {
	if u.n == nil {
		panic(NilRefError{})
	}
	return u.n.v
}

func (u *CIter[T]) Next() {
	if u.n != nil {
		u.n = u.n.next()
	}
}

func (u *CIter[T]) Prev() {
	if u.n != nil {
		u.n = u.n.prev()
	}
}

func (u *CIter[T]) Advance(k uint) {
	for ; k > 0; k-- {
		u.Next()
	}
}

func (u *CIter[T]) Retreat(k uint) {
	for ; k > 0; k-- {
		u.Prev()
	}
}

func (u *CIter[T]) Leftmost() {
	if u.n != nil {
		u.n = u.n.leftmost()
	}
}

func (u *CIter[T]) Rightmost() {
	if u.n != nil {
		u.n = u.n.rightmost()
	}
}

// RevIter walks the in-order sequence backwards: Next is the in-order
// predecessor and Prev the successor. Otherwise it is Iter.
type RevIter[T constraints.Ordered] struct {
	Iter[T]
}

func (u *RevIter[T]) Next() {
	u.Iter.Prev()
}

func (u *RevIter[T]) Prev() {
	u.Iter.Next()
}

func (u *RevIter[T]) Advance(k uint) {
	for ; k > 0; k-- {
		u.Iter.Prev()
	}
}

func (u *RevIter[T]) Retreat(k uint) {
	for ; k > 0; k-- {
		u.Iter.Next()
	}
}

// Const converts u to its read-only counterpart over the same node.
func (u RevIter[T]) Const() CRevIter[T] {
	return CRevIter[T]{CIter[T]{u.n}}
}

// CRevIter is the read-only reverse iterator.
type CRevIter[T constraints.Ordered] struct {
	CIter[T]
}

func (u *CRevIter[T]) Next() {
	u.CIter.Prev()
}

func (u *CRevIter[T]) Prev() {
	u.CIter.Next()
}

func (u *CRevIter[T]) Advance(k uint) {
	for ; k > 0; k-- {
		u.CIter.Prev()
	}
}

func (u *CRevIter[T]) Retreat(k uint) {
	for ; k > 0; k-- {
		u.CIter.Next()
	}
}
