package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by checking the heights of subtrees: after
// every Insert or Remove, the heights of the two subtrees of every node
// differ by at most 1.
// T is the type of values it will hold, S is the type of the variables
// used for storing the heights of different subtrees.
// This struct holds a root pointer and a corresponding nilPtr used
// as nil described in nodePtr.
// This tree needs to keep track of the height of each subtree, so the
// additional memory cost is size(S)*n. The height of the tree is less than
// 1.44*log2(n+2), so any unsigned S works unless T is smaller than a byte.
type AVLTree[T constraints.Ordered, S constraints.Unsigned] struct {
	root   nodePtr[T, S] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[T, S] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
	sz     uint
}

// MakeAVLTree returns an AVLTree satisfying the above definitions for nilPtr, root, and types.
// AVLTree shouldn't be created directly using struct literal.
func MakeAVLTree[T constraints.Ordered, S constraints.Unsigned]() *AVLTree[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	return &AVLTree[T, S]{z, z, 0}
}

// BuildAVLTree builds an AVLTree using the given sorted slice recursively. This is faster than
// repeatedly calling Insert. The given slice must be sorted in ascending order and mustn't
// contain duplicate elements.
// If safe==true, this function will check if the conditions are met and panic with InvalidSliceError
// if the conditions are broken. Otherwise, this function won't perform the check, and it is
// up to the user to ensure the conditions are met(otherwise the tree will be corrupt). It's
// suggested to set safe to false if the conditions are met as this can reduce some redundant
// checks and associated memory costs.
// Time: O(n).
func BuildAVLTree[T constraints.Ordered, S constraints.Unsigned](sli []T, safe bool) *AVLTree[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	var build func([]T) nodePtr[T, S]
	if safe {
		build = func(s []T) nodePtr[T, S] {
			if len(s) > 0 {
				mid := len(s) >> 1
				l, r := build(s[0:mid]), build(s[mid+1:])
				if (l == z || l.v < s[mid]) && (r == z || s[mid] < r.v) {
					return &node[T, S]{s[mid], l, r, max(l.h, r.h) + 1}
				} else {
					panic(InvalidSliceError{l.v, s[mid], s[mid], r.v})
				}
			} else {
				return z
			}
		}
	} else {
		build = func(s []T) nodePtr[T, S] {
			if len(s) > 0 {
				mid := len(s) >> 1
				l, r := build(s[0:mid]), build(s[mid+1:])
				return &node[T, S]{s[mid], l, r, max(l.h, r.h) + 1}
			} else {
				return z
			}
		}
	}
	return &AVLTree[T, S]{build(sli), z, uint(len(sli))}
}

// Size returns the number of elements in the tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Size() uint {
	return u.sz
}

// Empty reports whether the tree holds no elements.
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Empty() bool {
	return u.root == u.nilPtr
}

// Height of the tree: 0 when empty, 1 for a single node.
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Height() uint {
	return uint(u.root.h)
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false.
// On the unwind of a successful insertion every ancestor's height is
// recomputed and the first unbalanced ancestor is fixed by rebalance; the
// fixes above it degenerate to height updates.
func (u *AVLTree[T, S]) insert(curPtr *nodePtr[T, S], v T) bool {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &node[T, S]{v, u.nilPtr, u.nilPtr, 1}
		return true
	} else {
		inserted := false
		if v < cur.v {
			inserted = u.insert(&cur.l, v)
		} else if v == cur.v {
			return false
		} else {
			inserted = u.insert(&cur.r, v)
		}
		if inserted {
			rebalance(curPtr)
		}
		return inserted
	}

}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(log n)
func (u *AVLTree[T, S]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if the removal failed(v doesn't exist
// in u), otherwise true. A node with two children swaps its value with the
// in-order successor, then the successor is removed from the right subtree
// by the same recursion. Unlike insert, every ancestor on the unwind path
// may need a rotation, so rebalance runs at each level.
func (u *AVLTree[T, S]) remove(curPtr *nodePtr[T, S], v T) bool {
	if cur := *curPtr; cur == u.nilPtr {
		return false
	} else {
		deleted := false
		if v < cur.v {
			deleted = u.remove(&cur.l, v)
		} else if v == cur.v {
			deleted = true
			if cur.l == u.nilPtr {
				*curPtr = cur.r
			} else if cur.r == u.nilPtr {
				*curPtr = cur.l
			} else {
				t := cur.r
				for t.l != u.nilPtr {
					t = t.l
				}
				cur.v = t.v
				u.remove(&cur.r, t.v)
			}
		} else {
			deleted = u.remove(&cur.r, v)
		}
		if deleted && *curPtr != u.nilPtr {
			rebalance(curPtr)
		}
		return deleted
	}

}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(log n)
func (u *AVLTree[T, S]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

// Has [Tree.Has]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Minimum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Maximum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Predecessor [Tree.Predecessor]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// InOrder [Tree.InOrder]
// Uses morris traversal, so the returned closure must be exhausted before
// the tree is used again.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *AVLTree[T, S]) InOrder() func() (T, bool) {
	cur := u.root
	return func() (r T, has bool) {
		if cur == u.nilPtr {
			return
		} else {
			has = true
			for cur != u.nilPtr {
				if cur.l == u.nilPtr {
					r = cur.v
					cur = cur.r
					break
				} else {
					p := cur.l
					for p.r != u.nilPtr && p.r != cur {
						p = p.r
					}
					if p.r != cur {
						p.r = cur
						cur = cur.l
					} else {
						p.r = u.nilPtr
						r = cur.v
						cur = cur.r
						break
					}
				}
			}
			return
		}

	}
}

func (u *AVLTree[T, S]) balanced(c nodePtr[T, S]) (S, bool) {
	if c == u.nilPtr {
		return 0, true
	}
	lh, lb := u.balanced(c.l)
	rh, rb := u.balanced(c.r)
	return max(lh, rh) + 1, lb && rb && lh <= rh+1 && rh <= lh+1
}

// Balanced [Tree.Balanced]. Recursive.
// Time: O(n)
func (u *AVLTree[T, S]) Balanced() bool {
	_, b := u.balanced(u.root)
	return b
}

func (u *AVLTree[T, S]) badHeights(c nodePtr[T, S]) (S, bool) {
	if c == u.nilPtr {
		return 0, false
	}
	lh, lb := u.badHeights(c.l)
	rh, rb := u.badHeights(c.r)
	return c.h, lb || rb || c.h != max(lh, rh)+1
}

// Corrupt [Tree.Corrupt]. Recursive.
// Verifies that every recorded height matches its subtrees and that the
// in-order traversal is strictly ascending.
// Time: O(n)
func (u *AVLTree[T, S]) Corrupt() bool {
	if _, bad := u.badHeights(u.root); bad {
		return true
	}
	f := u.InOrder()
	if prev, has := f(); has {
		for v, ok := f(); ok; v, ok = f() {
			if v <= prev {
				return true
			}
			prev = v
		}
	}
	return false
}
