package Trees

// Tree represents a tree like structure implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on an
// empty tree returns (x T, false); the value of x is undefined and
// shouldn't be used.
// An empty tree is a normal state, not an error: Remove of an absent key
// and Minimum/Maximum of an empty tree report through their return
// values, they never fail. Only Insert can fail, and only on a nil key.
type Tree[T any] interface {
	//Insert v to the Tree. Fails with NilKeyError if v is a nil
	//pointer/interface value, otherwise always succeeds.
	Insert(v T) error
	//Remove v from the Tree. Returns true if the Tree was modified,
	//false if v wasn't present. Never an error.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() uint
	//Clear drops every element.
	Clear()
	//InOrder returns a closure function f acting like an iterator. f
	//gives keys in the in-order traversal of the tree, i.e. ascending
	//comparator order.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
}

type NilKeyError struct {
}

func (e *NilKeyError) Error() string {
	return "Tree: key is nil: cannot Insert."
}
