package Heaps

import (
	Go_Structs "github.com/g-m-twostay/go-structs"
	"golang.org/x/exp/constraints"
)

// Binary is an array backed binary min-heap over a comparator. Invariant:
// for every live index i, cmp(data[i], data[(i-1)/2]) >= 0, so data[0]
// holds the minimum whenever sz > 0. The backing array grows by 1.5x when
// full and never shrinks.
// Not safe for concurrent use.
type Binary[T any] struct {
	data []T
	sz   uint
	cmp  Go_Structs.Cmp[T]
}

// MakeBinary returns an empty Binary heap of initCap capacity over the
// natural ascending order of T.
func MakeBinary[T constraints.Ordered](initCap uint) *Binary[T] {
	return MakeBinaryCmp[T](initCap, Go_Structs.Order[T]())
}

// MakeBinaryCmp returns an empty Binary heap of initCap capacity whose
// priorities are judged by cmp.
func MakeBinaryCmp[T any](initCap uint, cmp Go_Structs.Cmp[T]) *Binary[T] {
	return &Binary[T]{make([]T, initCap), 0, cmp}
}

func parent(i uint) uint {
	return (i - 1) / 2
}

func left(i uint) uint {
	return i*2 + 1
}

func right(i uint) uint {
	return i*2 + 2
}

// Insert [Heap.Insert]. Appends to the first free slot, resizing first if
// full, then sifts the new element up until the heap property holds again.
// Time: amortized O(log n); resize is O(n) but geometric growth keeps it
// infrequent.
func (u *Binary[T]) Insert(item T) error {
	if Go_Structs.IsNil(item) {
		return &NilItemError{}
	}
	if u.sz == uint(len(u.data)) {
		n := uint(len(u.data)) * 3 / 2
		if n <= u.sz {
			n = u.sz + 1
		}
		u.resize(n)
	}
	u.data[u.sz] = item
	u.sz++
	u.siftUp(u.sz - 1)
	return nil
}

// resize copies the live elements only; the remaining slots stay zero.
func (u *Binary[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	copy(nc, u.data[:u.sz])
	u.data = nc
}

// siftUp swaps data[i] with its parent while it compares less, stopping at
// the root or when the heap property is satisfied.
func (u *Binary[T]) siftUp(i uint) {
	for i > 0 && u.cmp(u.data[i], u.data[parent(i)]) < 0 {
		u.data[i], u.data[parent(i)] = u.data[parent(i)], u.data[i]
		i = parent(i)
	}
}

// siftDown swaps data[i] with the smaller of its children while either
// compares less, stopping when no child is smaller or children run out.
func (u *Binary[T]) siftDown(i uint) {
	for {
		next := i
		if l := left(i); l < u.sz && u.cmp(u.data[l], u.data[next]) < 0 {
			next = l
		}
		if r := right(i); r < u.sz && u.cmp(u.data[r], u.data[next]) < 0 {
			next = r
		}
		if next == i {
			return
		}
		u.data[i], u.data[next] = u.data[next], u.data[i]
		i = next
	}
}

// First [Heap.First]
// Time: O(1)
func (u *Binary[T]) First() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyHeapError{}
	}
	return u.data[0], nil
}

// RemoveFirst [Heap.RemoveFirst]
// Time: O(log n)
func (u *Binary[T]) RemoveFirst() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyHeapError{}
	}
	t := u.data[0]
	u.removeAt(0)
	return t, nil
}

// Remove [Heap.Remove]. Equality is cmp(item, x)==0: elements are only
// required to be ordered, not comparable. The target is located with a
// level bounded search rather than a plain linear scan.
// Time: O(n) worst case, frequently better.
func (u *Binary[T]) Remove(item T) (bool, error) {
	if Go_Structs.IsNil(item) {
		return false, &NilItemError{}
	}
	i := u.indexOf(item)
	if i >= u.sz {
		return false, nil
	}
	u.removeAt(i)
	return true, nil
}

// indexOf locates one element comparing equal to item, returning u.sz when
// absent. It scans level by level and counts, per level, the slots whose
// values pin item to that level (greater than the slot's parent, less than
// the slot): once every node of a level says that, item can't live in this
// level nor any deeper one and the search stops early. A heap supports no
// O(log n) arbitrary lookup; this only buys average case savings over the
// naive scan without an auxiliary index.
func (u *Binary[T]) indexOf(item T) uint {
	for nodes := uint(1); ; nodes <<= 1 {
		i, end := nodes-1, nodes*2-1
		if i >= u.sz {
			return u.sz
		}
		count := uint(0)
		for ; i < u.sz && i < end; i++ {
			if u.cmp(item, u.data[i]) == 0 {
				return i
			}
			if i > 0 && u.cmp(item, u.data[parent(i)]) > 0 && u.cmp(item, u.data[i]) < 0 {
				count++
			}
		}
		if count == nodes {
			return u.sz
		}
	}
}

// removeAt vacates slot i by moving the last element into it, then repairs
// the heap property in whichever direction it is violated. The moved
// element may come from a different subtree and compare less than the new
// parent, so a sift-down alone wouldn't restore the invariant.
func (u *Binary[T]) removeAt(i uint) {
	u.sz--
	if i == u.sz {
		u.data[u.sz] = *new(T)
		return
	}
	u.data[i] = u.data[u.sz]
	u.data[u.sz] = *new(T)
	if i > 0 && u.cmp(u.data[i], u.data[parent(i)]) < 0 {
		u.siftUp(i)
	} else {
		u.siftDown(i)
	}
}

// Size [Heap.Size]
// Time: O(1)
func (u *Binary[T]) Size() uint {
	return u.sz
}

// Copy returns an independent deep copy of the backing storage and count,
// with the same capacity and comparator.
// Time: O(n)
func (u *Binary[T]) Copy() *Binary[T] {
	nc := make([]T, len(u.data))
	copy(nc, u.data[:u.sz])
	return &Binary[T]{nc, u.sz, u.cmp}
}
