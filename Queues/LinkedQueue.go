package Queues

type lnode[T any] struct {
	v  T
	nx *lnode[T]
}

type linkedQ[T any] struct {
	head, tail *lnode[T]
	sz         uint
}

// MakeLinkedQueue returns an unbounded Queue backed by a singly linked
// list. No preallocation, one allocation per Push.
func MakeLinkedQueue[T any]() Queue[T] {
	return &linkedQ[T]{}
}

func (this *linkedQ[T]) Push(item T) {
	n := &lnode[T]{v: item}
	if this.tail == nil {
		this.head = n
	} else {
		this.tail.nx = n
	}
	this.tail = n
	this.sz++
}

func (this *linkedQ[T]) Pop() (T, error) {
	if this.head == nil {
		return *new(T), &EmptyQueueError{}
	}
	t := this.head.v
	this.head = this.head.nx
	if this.head == nil {
		this.tail = nil
	}
	this.sz--
	return t, nil
}

func (this *linkedQ[T]) Peek() T {
	if this.head == nil {
		return *new(T)
	}
	return this.head.v
}

func (this *linkedQ[T]) Empty() bool {
	return this.head == nil
}

func (this *linkedQ[T]) Size() uint {
	return this.sz
}

func (this *linkedQ[T]) Clear() {
	this.head, this.tail, this.sz = nil, nil, 0
}
