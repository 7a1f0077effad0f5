package Queues

// circular buffer; head is the index of the next Pop, tail of the next
// Push. sz disambiguates head==tail (empty vs full).
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns a Queue backed by a circular buffer of initCap
// elements that grows by 1.5x when full and never shrinks on its own.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap|1)}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.head < this.tail {
		copy(nc, this.content[this.head:this.tail])
	} else if this.sz > 0 {
		copy(nc, this.content[this.head:])
		copy(nc[uint(len(this.content))-this.head:], this.content[:this.tail])
	}
	this.head, this.tail = 0, this.sz%newLen
	this.content = nc
}

// Shrink the buffer down to the live element count.
func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz*3/2 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return t, nil
}

func (this circArrQ[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	}
	return this.content[this.head]
}
