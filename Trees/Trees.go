package Trees

import "fmt"

// Tree represents a search tree implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false); the value of x is undefined and
// shouldn't be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here. Methods implemented recursively
// are noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v
	//is already present; the tree is unchanged in that case.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v
	//isn't present.
	Remove(v T) bool
	//Has element v. Use this rather than the second return value of
	//other methods for membership checks, as Has is optimized for
	//this purpose in implementations.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//Empty reports whether the tree holds no elements.
	Empty() bool
	//Height of the tree; 0 for an empty tree, 1 for a single node.
	Height() uint
	//Balanced recomputes the height of every subtree and reports whether
	//the height rule holds everywhere. This is a diagnostic; the mutation
	//path never calls it.
	Balanced() bool
	//InOrder returns a closure function f acting like an iterator. f
	//gives nodes in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//Each call to InOrder computes a fresh traversal. The tree must not be
	//modified during the iteration of f, and f must be exhausted before the
	//tree is used again, otherwise it could corrupt the tree. There will be
	//no panic if such cases happen so design the algorithm with this in mind.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//or the recorded height at some node violates the properties of that
	//specific implementation. This is to be distinguished from whether the
	//tree is balanced or not.
	Corrupt() bool
}

// InvalidSliceError is the panic value of the checked bulk constructors
// when the given slice isn't sorted in strictly ascending order.
type InvalidSliceError struct {
	L, M1, M2, R any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending: %v preceding %v or %v preceding %v", e.L, e.M1, e.M2, e.R)
}
