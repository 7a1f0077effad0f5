package Trees

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchSize = 1 << 14

func BenchmarkBSTree_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := New[int]()
		for _, j := range rand.Perm(benchSize) {
			t.Insert(j)
		}
	}
}

func BenchmarkBSTree_All(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var t Tree[int] = New[int]()
		for _, j := range rand.Perm(benchSize) {
			t.Insert(j)
		}
		for j := 0; j < benchSize; j += 2 {
			t.Remove(j)
		}
		for _, j := range rand.Perm(benchSize / 2) {
			t.Insert(j * 2)
		}
	}
}

// Reference points: balanced trees from the ecosystem on the same load.

func BenchmarkRedBlackTree_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := redblacktree.NewWithIntComparator()
		for _, j := range rand.Perm(benchSize) {
			t.Put(j, nil)
		}
	}
}

func BenchmarkBTreeG_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := btree.NewOrderedG[int](32)
		for _, j := range rand.Perm(benchSize) {
			t.ReplaceOrInsert(j)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := llrb.New()
		for _, j := range rand.Perm(benchSize) {
			t.ReplaceOrInsert(llrb.Int(j))
		}
	}
}
