package Trees

import (
	"github.com/g-m-twostay/go-structs/Queues"
)

// Above this size hint traversals stop preallocating a bounded circular
// buffer and fall back to a linked queue.
const arrayHint = 1 << 30

// newSeq picks the sequence producer for a traversal of sz elements. The
// choice is a performance optimization only; both queues grow correctly.
func newSeq[T any](sz uint) Queues.Queue[T] {
	if sz <= arrayHint {
		return Queues.MakeArrayQueue[T](sz)
	}
	return Queues.MakeLinkedQueue[T]()
}

// PreOrder returns the keys of u in node-left-right order. Recursive.
// Time: O(n)
func PreOrder[T any](u *BSTree[T]) Queues.Queue[T] {
	q := newSeq[T](u.sz)
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		q.Push(n.v)
		walk(n.l)
		walk(n.r)
	}
	walk(u.root)
	return q
}

// InOrder returns the keys of u in left-node-right order, which is
// ascending comparator order. Recursive.
// Time: O(n)
func InOrder[T any](u *BSTree[T]) Queues.Queue[T] {
	q := newSeq[T](u.sz)
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.l)
		q.Push(n.v)
		walk(n.r)
	}
	walk(u.root)
	return q
}

// PostOrder returns the keys of u in left-right-node order. Recursive.
// Time: O(n)
func PostOrder[T any](u *BSTree[T]) Queues.Queue[T] {
	q := newSeq[T](u.sz)
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.l)
		walk(n.r)
		q.Push(n.v)
	}
	walk(u.root)
	return q
}

// BreadthFirst returns the keys of u level by level, left to right within
// a level. The frontier is itself kept in a queue from the Queues package.
// Time: O(n)
func BreadthFirst[T any](u *BSTree[T]) Queues.Queue[T] {
	visited := newSeq[T](u.sz)
	frontier := newSeq[*node[T]](u.sz)
	for cur := u.root; cur != nil; {
		visited.Push(cur.v)
		if cur.l != nil {
			frontier.Push(cur.l)
		}
		if cur.r != nil {
			frontier.Push(cur.r)
		}
		if frontier.Empty() {
			cur = nil
		} else {
			cur, _ = frontier.Pop()
		}
	}
	return visited
}

// ToSlice exports the keys of u in ascending comparator order.
// Time: O(n)
func ToSlice[T any](u *BSTree[T]) []T {
	s := make([]T, 0, u.sz)
	next := u.InOrder()
	for v, ok := next(); ok; v, ok = next() {
		s = append(s, v)
	}
	return s
}
