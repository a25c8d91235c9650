package Trees

import (
	"golang.org/x/exp/constraints"
)

// CAVLTree is the version of AVLTree for arbitrary T ordered by a
// user-supplied comparator. All methods are implemented exactly as AVLTree
// except for using Cmp for comparisons.
type CAVLTree[T any, S constraints.Unsigned] struct {
	root   nodePtr[T, S]
	nilPtr nodePtr[T, S]
	sz     uint
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	Cmp func(T, T) int
}

// MakeCAVLTree is the CAVLTree equivalence of MakeAVLTree.
func MakeCAVLTree[T any, S constraints.Unsigned](cmp func(T, T) int) *CAVLTree[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	return &CAVLTree[T, S]{z, z, 0, cmp}
}

// BuildCAVLTree is the CAVLTree equivalence of BuildAVLTree. The slice must
// be sorted ascending according to cmp.
func BuildCAVLTree[T any, S constraints.Unsigned](sli []T, cmp func(T, T) int, safe bool) *CAVLTree[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	var build func([]T) nodePtr[T, S]
	if safe {
		build = func(s []T) nodePtr[T, S] {
			if len(s) > 0 {
				mid := len(s) >> 1
				l, r := build(s[0:mid]), build(s[mid+1:])
				if (l == z || cmp(l.v, s[mid]) < 0) && (r == z || cmp(s[mid], r.v) < 0) {
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
	return &CAVLTree[T, S]{build(sli), z, uint(len(sli)), cmp}
}

func (u *CAVLTree[T, S]) Size() uint {
	return u.sz
}

func (u *CAVLTree[T, S]) Empty() bool {
	return u.root == u.nilPtr
}

func (u *CAVLTree[T, S]) Height() uint {
	return uint(u.root.h)
}

func (u *CAVLTree[T, S]) insert(curPtr *nodePtr[T, S], v T) bool {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &node[T, S]{v, u.nilPtr, u.nilPtr, 1}
		return true
	} else {
		inserted := false
		if order := u.Cmp(v, cur.v); order < 0 {
			inserted = u.insert(&cur.l, v)
		} else if order == 0 {
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

func (u *CAVLTree[T, S]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

func (u *CAVLTree[T, S]) remove(curPtr *nodePtr[T, S], v T) bool {
	if cur := *curPtr; cur == u.nilPtr {
		return false
	} else {
		deleted := false
		if order := u.Cmp(v, cur.v); order < 0 {
			deleted = u.remove(&cur.l, v)
		} else if order == 0 {
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

func (u *CAVLTree[T, S]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

func (u *CAVLTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if order := u.Cmp(v, cur.v); order < 0 {
			cur = cur.l
		} else if order == 0 {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

func (u *CAVLTree[T, S]) Minimum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.v, true
	}
}

func (u *CAVLTree[T, S]) Maximum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.v, true
	}
}

func (u *CAVLTree[T, S]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.Cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

func (u *CAVLTree[T, S]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.Cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

func (u *CAVLTree[T, S]) InOrder() func() (T, bool) {
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

func (u *CAVLTree[T, S]) balanced(c nodePtr[T, S]) (S, bool) {
	if c == u.nilPtr {
		return 0, true
	}
	lh, lb := u.balanced(c.l)
	rh, rb := u.balanced(c.r)
	return max(lh, rh) + 1, lb && rb && lh <= rh+1 && rh <= lh+1
}

func (u *CAVLTree[T, S]) Balanced() bool {
	_, b := u.balanced(u.root)
	return b
}

func (u *CAVLTree[T, S]) badHeights(c nodePtr[T, S]) (S, bool) {
	if c == u.nilPtr {
		return 0, false
	}
	lh, lb := u.badHeights(c.l)
	rh, rb := u.badHeights(c.r)
	return c.h, lb || rb || c.h != max(lh, rh)+1
}

func (u *CAVLTree[T, S]) Corrupt() bool {
	if _, bad := u.badHeights(u.root); bad {
		return true
	}
	f := u.InOrder()
	if prev, has := f(); has {
		for v, ok := f(); ok; v, ok = f() {
			if u.Cmp(v, prev) <= 0 {
				return true
			}
			prev = v
		}
	}
	return false
}
