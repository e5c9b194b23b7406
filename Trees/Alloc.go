package Trees

import "golang.org/x/exp/constraints"

// Allocator is the allocation strategy of a tree. Every node lifetime
// event of a tree routes through its Allocator, so arenas and tracking
// allocators compose with any variant. Implementations needn't be
// thread safe; a tree is single-owner anyway.
type Allocator[T constraints.Ordered] interface {
	//Alloc returns a zeroed node. Failure is a runtime OOM; it is
	//never retried here.
	Alloc() *Node[T]
	//Free releases a node obtained from Alloc. The node mustn't be
	//used afterwards. Free(nil) is undefined.
	Free(n *Node[T])
}

// GoAlloc is the default strategy: plain heap allocation, reclamation
// left to the collector.
type GoAlloc[T constraints.Ordered] struct{}

func (GoAlloc[T]) Alloc() *Node[T] {
	return new(Node[T])
}
func (GoAlloc[T]) Free(*Node[T]) {}

// Pool recycles freed nodes on a free list threaded through the left
// child link; Alloc pops the list before touching the heap. Freed
// nodes are wiped so they don't retain references. The zero value is
// ready to use.
type Pool[T constraints.Ordered] struct {
	free *Node[T] // Node.l is next.
}

func (u *Pool[T]) Alloc() *Node[T] {
	if n := u.free; n != nil {
		u.free = n.l
		n.l = nil
		return n
	}
	return new(Node[T])
}

func (u *Pool[T]) Free(n *Node[T]) {
	*n = Node[T]{l: u.free}
	u.free = n
}
