package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/g-m-twostay/go-ordered/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/emirpasic/gods (node AVL with parent
// pointers), https://github.com/google/btree, and
// https://github.com/petar/GoLLRB on the same add/query/delete workloads.
// gods and GoLLRB box through interface{}; btree and Trees are generic.
var rg = *rand.New(rand.NewSource(0))

const (
	bAddN   = 1 << 18
	bDegree = 32
)

func keys() []int {
	a := make([]int, bAddN)
	for i := range a {
		a[i] = rg.Int()
	}
	return a
}

var sideEff bool

func BenchmarkAVLTreeAdd(b *testing.B) {
	a := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		tree := Trees.MakeAVLTree[int, uint8]()
		for _, v := range a {
			tree.Insert(v)
		}
	}
}
func BenchmarkGodsAVLAdd(b *testing.B) {
	a := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		tree := avltree.NewWithIntComparator()
		for _, v := range a {
			tree.Put(v, nil)
		}
	}
}
func BenchmarkBTreeAdd(b *testing.B) {
	a := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		tree := btree.NewOrderedG[int](bDegree)
		for _, v := range a {
			tree.ReplaceOrInsert(v)
		}
	}
}
func BenchmarkLLRBAdd(b *testing.B) {
	a := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		tree := llrb.New()
		for _, v := range a {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkAVLTreeQry(b *testing.B) {
	a := keys()
	tree := Trees.MakeAVLTree[int, uint8]()
	for _, v := range a {
		tree.Insert(v)
	}
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		for _, v := range a {
			sideEff = tree.Has(v)
		}
	}
}
func BenchmarkGodsAVLQry(b *testing.B) {
	a := keys()
	tree := avltree.NewWithIntComparator()
	for _, v := range a {
		tree.Put(v, nil)
	}
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		for _, v := range a {
			_, sideEff = tree.Get(v)
		}
	}
}
func BenchmarkBTreeQry(b *testing.B) {
	a := keys()
	tree := btree.NewOrderedG[int](bDegree)
	for _, v := range a {
		tree.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		for _, v := range a {
			sideEff = tree.Has(v)
		}
	}
}
func BenchmarkLLRBQry(b *testing.B) {
	a := keys()
	tree := llrb.New()
	for _, v := range a {
		tree.ReplaceOrInsert(llrb.Int(v))
	}
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		for _, v := range a {
			sideEff = tree.Has(llrb.Int(v))
		}
	}
}

func BenchmarkAVLTreeDel(b *testing.B) {
	a := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		b.StopTimer()
		tree := Trees.MakeAVLTree[int, uint8]()
		for _, v := range a {
			tree.Insert(v)
		}
		b.StartTimer()
		for _, v := range a {
			tree.Remove(v)
		}
	}
}
func BenchmarkGodsAVLDel(b *testing.B) {
	a := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		b.StopTimer()
		tree := avltree.NewWithIntComparator()
		for _, v := range a {
			tree.Put(v, nil)
		}
		b.StartTimer()
		for _, v := range a {
			tree.Remove(v)
		}
	}
}
func BenchmarkBTreeDel(b *testing.B) {
	a := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		b.StopTimer()
		tree := btree.NewOrderedG[int](bDegree)
		for _, v := range a {
			tree.ReplaceOrInsert(v)
		}
		b.StartTimer()
		for _, v := range a {
			tree.Delete(v)
		}
	}
}
func BenchmarkLLRBDel(b *testing.B) {
	a := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		b.StopTimer()
		tree := llrb.New()
		for _, v := range a {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
		b.StartTimer()
		for _, v := range a {
			tree.Delete(llrb.Int(v))
		}
	}
}
