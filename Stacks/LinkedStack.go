package Stacks

type lnode[T any] struct {
	v  T
	nx *lnode[T]
}

type linkedStack[T any] struct {
	top *lnode[T]
	sz  uint
}

// MakeLinkedStack returns an unbounded Stack backed by a singly linked
// list; Push never fails.
func MakeLinkedStack[T any]() Stack[T] {
	return &linkedStack[T]{}
}

func (this *linkedStack[T]) Push(item T) error {
	this.top = &lnode[T]{item, this.top}
	this.sz++
	return nil
}

func (this *linkedStack[T]) Pop() (T, error) {
	if this.top == nil {
		return *new(T), &EmptyStackError{}
	}
	t := this.top.v
	this.top = this.top.nx
	this.sz--
	return t, nil
}

func (this *linkedStack[T]) Peek() T {
	if this.top == nil {
		return *new(T)
	}
	return this.top.v
}

func (this *linkedStack[T]) Empty() bool {
	return this.top == nil
}

func (this *linkedStack[T]) Size() uint {
	return this.sz
}

func (this *linkedStack[T]) Clear() {
	this.top, this.sz = nil, 0
}
