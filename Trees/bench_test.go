package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Baselines: the ecosystem's ordered containers on the same workload.

const bAddN = 100000

func benchKeys() []int {
	a := make([]int, bAddN)
	for i := range a {
		a[i] = rg.Int()
	}
	return a
}

func BenchmarkAdd_BSTree(b *testing.B) {
	a := benchKeys()
	b.ResetTimer()
	for range b.N {
		tree := New[int]()
		for _, v := range a {
			tree.Put(v)
		}
	}
}

func BenchmarkAdd_GoogleBTree(b *testing.B) {
	a := benchKeys()
	b.ResetTimer()
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, v := range a {
			tree.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkAdd_LLRB(b *testing.B) {
	a := benchKeys()
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, v := range a {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkAdd_GodsRB(b *testing.B) {
	a := benchKeys()
	b.ResetTimer()
	for range b.N {
		tree := redblacktree.NewWithIntComparator()
		for _, v := range a {
			tree.Put(v, nil)
		}
	}
}

func BenchmarkAdd_GodsAVL(b *testing.B) {
	a := benchKeys()
	b.ResetTimer()
	for range b.N {
		tree := avltree.NewWithIntComparator()
		for _, v := range a {
			tree.Put(v, nil)
		}
	}
}

var sideEff bool

func BenchmarkQry_BSTree(b *testing.B) {
	a := benchKeys()
	tree := New[int]()
	tree.Insert(a...)
	b.ResetTimer()
	for range b.N {
		for _, v := range a {
			sideEff = tree.Contains(v)
		}
	}
}

func BenchmarkQry_GoogleBTree(b *testing.B) {
	a := benchKeys()
	tree := btree.NewOrderedG[int](32)
	for _, v := range a {
		tree.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range a {
			sideEff = tree.Has(v)
		}
	}
}

func BenchmarkQry_LLRB(b *testing.B) {
	a := benchKeys()
	tree := llrb.New()
	for _, v := range a {
		tree.ReplaceOrInsert(llrb.Int(v))
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range a {
			sideEff = tree.Has(llrb.Int(v))
		}
	}
}

func BenchmarkQry_GodsRB(b *testing.B) {
	a := benchKeys()
	tree := redblacktree.NewWithIntComparator()
	for _, v := range a {
		tree.Put(v, nil)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range a {
			_, sideEff = tree.Get(v)
		}
	}
}

func BenchmarkIter_BSTree(b *testing.B) {
	tree := New[int]()
	tree.Insert(benchKeys()...)
	b.ResetTimer()
	for range b.N {
		for it := tree.Begin(); it.Valid(); it.Next() {
			sideEff = *it.Get() > 0
		}
	}
}

func BenchmarkIter_GodsRB(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	for _, v := range benchKeys() {
		tree.Put(v, nil)
	}
	b.ResetTimer()
	for range b.N {
		for it := tree.Iterator(); it.Next(); {
			sideEff = it.Key().(int) > 0
		}
	}
}
