package Heaps

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/binaryheap"
)

const benchSize = 1 << 13

func BenchmarkBinary_InsertDrain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		h := MakeBinary[int](16)
		for _, j := range rand.Perm(benchSize) {
			h.Insert(j)
		}
		for h.Size() > 0 {
			h.RemoveFirst()
		}
	}
}

func BenchmarkBinary_Remove(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h := MakeBinary[int](16)
		for _, j := range rand.Perm(benchSize) {
			h.Insert(j)
		}
		b.StartTimer()
		for j := 0; j < benchSize; j++ {
			h.Remove(j)
		}
	}
}

// Reference point: gods' binary heap on the same load.
func BenchmarkGodsBinaryHeap_InsertDrain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		h := binaryheap.NewWithIntComparator()
		for _, j := range rand.Perm(benchSize) {
			h.Push(j)
		}
		for h.Size() > 0 {
			h.Pop()
		}
	}
}
