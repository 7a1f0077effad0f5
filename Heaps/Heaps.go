package Heaps

// Heap is a priority-ordered container: First always yields the minimum
// element under the active comparator. It is meant as a backing structure
// for bigger ones (see Queues.PriorityQueue) rather than direct use.
// Inserting or removing a nil item is a programming error and fails with
// NilItemError before anything is mutated; removing an absent item is a
// soft outcome reported through the bool, not an error.
type Heap[T any] interface {
	//Insert item into the Heap.
	Insert(item T) error
	//First returns the minimum element without removing it. Fails with
	//EmptyHeapError when no elements are present.
	First() (T, error)
	//RemoveFirst removes and returns the minimum element. Fails with
	//EmptyHeapError when no elements are present.
	RemoveFirst() (T, error)
	//Remove one occurrence comparing equal to item, reporting whether a
	//removal took place.
	Remove(item T) (bool, error)
	//Size is the current element count.
	Size() uint
}

type EmptyHeapError struct {
}

func (e *EmptyHeapError) Error() string {
	return "Heap is Empty: no first element."
}

type NilItemError struct {
}

func (e *NilItemError) Error() string {
	return "Heap: item is nil."
}
