package Queues

import (
	Go_Structs "github.com/g-m-twostay/go-structs"
	"github.com/g-m-twostay/go-structs/Heaps"
	"golang.org/x/exp/constraints"
)

const defaultPQCap = 16

// PriorityQueue dequeues elements in ascending comparator order: the
// backing structure is a min-heap, so the lower an element compares, the
// sooner it comes out. Pass a reversed comparator for max-first behavior.
// Unlike the plain Queues here, Peek of an empty PriorityQueue is an
// explicit error, mirroring Dequeue.
type PriorityQueue[T any] struct {
	heap *Heaps.Binary[T]
}

// MakePriorityQueue returns an empty PriorityQueue over the natural
// ascending order of T. initCap==0 picks a small default.
func MakePriorityQueue[T constraints.Ordered](initCap uint) *PriorityQueue[T] {
	return MakePriorityQueueCmp[T](initCap, Go_Structs.Order[T]())
}

// MakePriorityQueueCmp returns an empty PriorityQueue whose priorities are
// judged by cmp. initCap==0 picks a small default.
func MakePriorityQueueCmp[T any](initCap uint, cmp Go_Structs.Cmp[T]) *PriorityQueue[T] {
	if initCap == 0 {
		initCap = defaultPQCap
	}
	return &PriorityQueue[T]{Heaps.MakeBinaryCmp(initCap, cmp)}
}

// Enqueue item. Fails only on a nil item.
// Time: amortized O(log n)
func (this *PriorityQueue[T]) Enqueue(item T) error {
	return this.heap.Insert(item)
}

// Dequeue removes and returns the element with the highest priority (the
// minimum under the comparator). Fails with EmptyQueueError if no elements
// are present; nothing is mutated in that case.
// Time: O(log n)
func (this *PriorityQueue[T]) Dequeue() (T, error) {
	t, err := this.heap.RemoveFirst()
	if err != nil {
		return t, &EmptyQueueError{}
	}
	return t, nil
}

// Peek returns the element Dequeue would return, without removing it.
// Fails with EmptyQueueError if no elements are present.
// Time: O(1)
func (this *PriorityQueue[T]) Peek() (T, error) {
	t, err := this.heap.First()
	if err != nil {
		return t, &EmptyQueueError{}
	}
	return t, nil
}

func (this *PriorityQueue[T]) Empty() bool {
	return this.heap.Size() == 0
}

func (this *PriorityQueue[T]) Size() uint {
	return this.heap.Size()
}

// Copy returns an independent PriorityQueue sharing no state with this.
func (this *PriorityQueue[T]) Copy() *PriorityQueue[T] {
	return &PriorityQueue[T]{this.heap.Copy()}
}

// Drain returns the elements in dequeue order without modifying this; it
// works on a throwaway copy of the backing heap.
// Time: O(n log n)
func (this *PriorityQueue[T]) Drain() []T {
	c := this.heap.Copy()
	s := make([]T, 0, c.Size())
	for c.Size() > 0 {
		t, _ := c.RemoveFirst()
		s = append(s, t)
	}
	return s
}
