package Trees

import (
	Go_Structs "github.com/g-m-twostay/go-structs"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree ordered by an injected comparator. It does
// NOT balance itself: the worst case depth D is O(n) under adversarial
// insertion order (e.g. sorted input), while random input gives D=O(log n)
// on average.
// For every node, all keys in its left subtree compare strictly less than
// its key and all keys in its right subtree compare greater or equal, so
// repeated keys are allowed and route right on Insert.
// This struct holds a root pointer, the element count and the comparator.
// Not safe for concurrent use; every structure in this module assumes a
// single owning goroutine.
type BSTree[T any] struct {
	root *node[T]
	sz   uint
	cmp  Go_Structs.Cmp[T]
}

// New returns an empty BSTree over the natural ascending order of T.
func New[T constraints.Ordered]() *BSTree[T] {
	return NewCmp[T](Go_Structs.Order[T]())
}

// NewCmp returns an empty BSTree ordered by cmp.
func NewCmp[T any](cmp Go_Structs.Cmp[T]) *BSTree[T] {
	return &BSTree[T]{cmp: cmp}
}

// Insert [Tree.Insert]. Descends from the root going left on strictly less
// and right otherwise until an empty child slot takes the new node.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) error {
	if Go_Structs.IsNil(v) {
		return &NilKeyError{}
	}
	if u.root == nil {
		u.root = &node[T]{v: v}
	} else {
		for cur := u.root; ; {
			if u.cmp(v, cur.v) < 0 {
				if cur.l == nil {
					cur.l = &node[T]{v: v, p: cur}
					break
				}
				cur = cur.l
			} else {
				if cur.r == nil {
					cur.r = &node[T]{v: v, p: cur}
					break
				}
				cur = cur.r
			}
		}
	}
	u.sz++
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return u.root.locate(v, u.cmp) != nil
}

// Get returns the stored key comparing equal to v. Useful when T carries
// more state than the comparator looks at.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Get(v T) (T, bool) {
	if n := u.root.locate(v, u.cmp); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Remove [Tree.Remove]. An absent key (including an empty tree) returns
// false without error. A node with two children swaps its key with the
// in-order predecessor or successor, taken from whichever subtree is
// deeper, and that donor node (at most one child) is then spliced out; the
// depth tie-break bounds the follow-up splice depth, it is not a balancing
// guarantee.
// Time: O(n) due to the depth measurement in the two children case,
// O(D) otherwise; Space: O(1)
func (u *BSTree[T]) Remove(v T) bool {
	cur := u.root.locate(v, u.cmp)
	if cur == nil {
		return false
	}
	if cur.l != nil && cur.r != nil {
		var rep *node[T]
		if cur.l.depth() > cur.r.depth() {
			rep = cur.l.max()
		} else {
			rep = cur.r.min()
		}
		cur.v = rep.v
		cur = rep //has at most one child now
	}
	c := cur.l
	if c == nil {
		c = cur.r
	}
	if c != nil {
		c.p = cur.p
	}
	if cur.p == nil {
		u.root = c
	} else if cur.p.l == cur {
		cur.p.l = c
	} else {
		cur.p.r = c
	}
	cur.l, cur.r, cur.p = nil, nil, nil
	u.sz--
	return true
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.min().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.max().v, true
}

// Size [Tree.Size]
// Time: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Clear [Tree.Clear]. Dropping the root releases the whole node graph.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Copy returns a fully independent deep copy: new nodes, keys copied,
// parent links re-established. Mutating either tree never affects the
// other.
// Time: O(n)
func (u *BSTree[T]) Copy() *BSTree[T] {
	return &BSTree[T]{u.root.copy(nil), u.sz, u.cmp}
}

// Eq reports structural equality: identical shape with keys comparing
// equal at every corresponding position. Two trees holding the same keys
// in different shapes are not Eq even though their in-order sequences
// agree.
// Time: O(n)
func (u *BSTree[T]) Eq(o *BSTree[T]) bool {
	return u.sz == o.sz && eq(u.root, o.root, u.cmp)
}

// InOrder [Tree.InOrder]. The iterator is computed fresh on every call and
// doesn't mutate the tree.
// Time: f(): amortized O(1) at each call to the returned function.
func (u *BSTree[T]) InOrder() func() (T, bool) {
	st := make([]*node[T], 0, 8)
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		r, has = cur.v, true
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		return
	}
}
