package Trees

import "golang.org/x/exp/constraints"

// Tree is the contract every concrete search tree variant satisfies.
// BinTree supplies the node store, size bookkeeping, and allocation
// strategy; implementations of this interface supply the three
// structure-mutating operations on top of it, each preserving the
// ordering invariant plus whatever balancing invariant the variant
// maintains. All implementations assume exclusive single-owner access:
// concurrent mutation is undefined and must be serialized externally.
type Tree[T any] interface {
	//Insert each value in order, skipping values already present.
	//Exact rebalancing behavior depends on the implementation.
	Insert(vs ...T)
	//Clear destroys every node and resets the tree to empty.
	Clear()
	//Contains reports whether v is in the tree. O(D) where D is the
	//height of the tree.
	Contains(v T) bool
	//Size of the tree, O(1).
	Size() uint
	//Empty is Size()==0.
	Empty() bool
}

// InsertResult reports the outcome of a single insertion. Pos sits on
// the node holding the value: the freshly linked node when Inserted is
// true, the preexisting one when the value was already there. Node
// carries the leftover handle for node-reinserting operations and is
// empty for plain value insertions.
type InsertResult[T constraints.Ordered] struct {
	Pos      Iter[T]
	Inserted bool
	Node     NodeHandle[T]
}
