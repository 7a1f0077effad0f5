package Queues

// Queue is an ordered, append-only-at-the-tail sequence consumed from the
// head. Peek of an empty Queue returns the zero value of T without error;
// only Pop distinguishes emptiness, so check Empty first when the zero
// value is meaningful.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
	Size() uint
	Clear()
}

// ArrayQueue is a Queue over a bounded circular buffer that regrows on
// demand and can be shrunk back down.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
