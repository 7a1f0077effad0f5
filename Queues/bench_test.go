package Queues

import (
	"math/rand"
	"testing"

	godspq "github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
)

const benchSize = 1 << 13

func BenchmarkPriorityQueue_RoundTrip(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q := MakePriorityQueue[int](16)
		for _, j := range rand.Perm(benchSize) {
			q.Enqueue(j)
		}
		for !q.Empty() {
			q.Dequeue()
		}
	}
}

// Reference point: gods' priority queue on the same load.
func BenchmarkGodsPriorityQueue_RoundTrip(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q := godspq.NewWith(utils.IntComparator)
		for _, j := range rand.Perm(benchSize) {
			q.Enqueue(j)
		}
		for !q.Empty() {
			q.Dequeue()
		}
	}
}
