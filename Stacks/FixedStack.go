package Stacks

type fixedStack[T any] struct {
	content []T
	sz      uint
}

// MakeFixedStack returns a Stack of fixed capacity; Push fails with
// FullStackError once capacity elements are held.
func MakeFixedStack[T any](capacity uint) Stack[T] {
	return &fixedStack[T]{make([]T, capacity), 0}
}

func (this *fixedStack[T]) Push(item T) error {
	if this.sz == uint(len(this.content)) {
		return &FullStackError{}
	}
	this.content[this.sz] = item
	this.sz++
	return nil
}

func (this *fixedStack[T]) Pop() (T, error) {
	if this.sz == 0 {
		return *new(T), &EmptyStackError{}
	}
	this.sz--
	t := this.content[this.sz]
	this.content[this.sz] = *new(T)
	return t, nil
}

func (this *fixedStack[T]) Peek() T {
	if this.sz == 0 {
		return *new(T)
	}
	return this.content[this.sz-1]
}

func (this *fixedStack[T]) Empty() bool {
	return this.sz == 0
}

func (this *fixedStack[T]) Size() uint {
	return this.sz
}

func (this *fixedStack[T]) Clear() {
	clear(this.content[:this.sz])
	this.sz = 0
}
