package Trees

import (
	"cmp"
	"slices"
	"testing"
)

func descInt(a, b int) int {
	return cmp.Compare(b, a)
}

func TestCAVLTree_Desc(t *testing.T) {
	tree := MakeCAVLTree[int, uint8](descInt)
	content := make(map[int]struct{})
	for i0 := 0; i0 < tAddN; i0++ {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if tree.Insert(b) == in {
			t.Errorf("wrong insert result for key %v", b)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	if !tree.Balanced() || tree.Corrupt() {
		t.Error("bad tree")
	}
	s := collect(tree.InOrder())
	if slices.Reverse(s); !slices.IsSorted(s) {
		t.Error("traversal doesn't follow the comparator order")
	}
	if v, ok := tree.Minimum(); !ok || v != slices.Max(s) {
		t.Errorf("comparator minimum is %d", v)
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
		if tree.Insert(k) {
			t.Errorf("reinserted existing key %v", k)
		}
	}
	for k := range content {
		if !tree.Remove(k) {
			t.Errorf("failed to delete key %v", k)
		}
	}
	if !tree.Empty() {
		t.Errorf("tree not empty, size %d", tree.Size())
	}
}

func TestCAVLTree_Struct(t *testing.T) {
	type pair struct {
		k string
		n int
	}
	byN := func(a, b pair) int {
		return cmp.Compare(a.n, b.n)
	}
	tree := MakeCAVLTree[pair, uint8](byN)
	for i, k := range []string{"d", "a", "c", "b", "e"} {
		tree.Insert(pair{k, i})
	}
	if tree.Insert(pair{"x", 2}) { // same rank as "c" under byN
		t.Error("inserted a comparator-equal element")
	}
	if !tree.Has(pair{"ignored", 3}) {
		t.Error("lookup should only consult the comparator")
	}
	if !tree.Remove(pair{"", 0}) {
		t.Error("failed to remove by comparator equality")
	}
	if !tree.Balanced() || tree.Corrupt() {
		t.Error("bad tree")
	}
	if got := collect(tree.InOrder()); len(got) != 4 || !slices.IsSortedFunc(got, byN) {
		t.Errorf("wrong traversal %v", got)
	}
}

func TestCAVLTree_Build(t *testing.T) {
	content := make([]int, 1000)
	for i := range content {
		content[i] = -i
	}
	tree := BuildCAVLTree[int, uint8](content, descInt, true)
	if !tree.Balanced() || tree.Corrupt() {
		t.Fatal("bad tree after build")
	}
	if !slices.Equal(collect(tree.InOrder()), content) {
		t.Fatal("wrong traversal after build")
	}
	defer func() {
		if _, is := recover().(InvalidSliceError); !is {
			t.Error("checked build of a misordered slice didn't panic with InvalidSliceError")
		}
	}()
	BuildCAVLTree[int, uint8]([]int{1, 2, 3}, descInt, true)
}
