package Trees

import (
	Go_Structs "github.com/g-m-twostay/go-structs"
)

// A node in the BSTree.
// l and r are the owned children; p is a non-owning back-reference to the
// parent (nil for the root), kept only so deletion can find the link slot
// that points at this node. It is never followed for traversal.
type node[T any] struct {
	v    T
	l, r *node[T]
	p    *node[T]
}

// locate the first node whose key compares equal to v, descending with the
// same left/right rule Insert uses. Returns nil if absent.
// Time: O(D); Space: O(1)
func (n *node[T]) locate(v T, cmp Go_Structs.Cmp[T]) *node[T] {
	for n != nil {
		if c := cmp(v, n.v); c == 0 {
			break
		} else if c < 0 {
			n = n.l
		} else {
			n = n.r
		}
	}
	return n
}

// min node of the subtree rooted at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func (n *node[T]) min() *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// max node of the subtree rooted at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func (n *node[T]) max() *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// depth is the max depth of the subtree rooted at n; 0 for nil. Recursive.
// Time: O(n)
func (n *node[T]) depth() uint {
	if n == nil {
		return 0
	}
	return max(n.l.depth(), n.r.depth()) + 1
}

// copy the subtree rooted at n into fully independent nodes whose parent
// back-references are re-established under p. Recursive.
// Time: O(n)
func (n *node[T]) copy(p *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	c := &node[T]{v: n.v, p: p}
	c.l = n.l.copy(c)
	c.r = n.r.copy(c)
	return c
}

// eq reports whether a and b root subtrees of identical shape with keys
// comparing equal at every corresponding position. Recursive.
func eq[T any](a, b *node[T], cmp Go_Structs.Cmp[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return cmp(a.v, b.v) == 0 && eq(a.l, b.l, cmp) && eq(a.r, b.r, cmp)
}
