package Stacks

// Stack is a LIFO sequence. Peek of an empty Stack returns the zero value
// of T without error, like the Queues here; Pop reports emptiness, and
// Push only fails on bounded implementations that are full.
type Stack[T any] interface {
	Push(item T) error
	Pop() (T, error)
	Peek() T
	Empty() bool
	Size() uint
	Clear()
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}

type FullStackError struct {
}

func (e *FullStackError) Error() string {
	return "Stack is full: cannot Push."
}
