package bst

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algo_tool/pkg/treeprinter"
)

func buildTree(values ...int) *Tree[int] {
	tr := New[int]()
	for _, v := range values {
		tr.Insert(v)
	}
	return tr
}

func TestInsertSearch(t *testing.T) {
	tr := buildTree(10, 5, 20, 8, 30)

	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, 3, tr.Height())
	assert.Equal(t, []int{5, 8, 10, 20, 30}, tr.Inorder())

	assert.False(t, tr.Insert(8), "重复值不插入")
	assert.False(t, tr.InsertRecursive(20))
	assert.True(t, tr.InsertRecursive(25))
	assert.Equal(t, 6, tr.Len())

	for _, v := range []int{5, 8, 10, 20, 25, 30} {
		assert.True(t, tr.Search(v), "Search(%d)", v)
		assert.True(t, tr.SearchRecursive(v), "SearchRecursive(%d)", v)
	}
	assert.False(t, tr.Search(2))
	assert.False(t, tr.SearchRecursive(2))

	lo, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, 5, lo)
	hi, ok := tr.Max()
	require.True(t, ok)
	assert.Equal(t, 30, hi)
}

func TestEmptyTree(t *testing.T) {
	tr := New[string]()
	assert.Equal(t, 0, tr.Height())
	assert.Empty(t, tr.Inorder())
	assert.False(t, tr.Delete("x"))
	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)
	assert.Equal(t, "tree is empty\n", tr.PrintTree(treeprinter.StyleASCII))
}

func TestDeleteByHeight(t *testing.T) {
	tr := buildTree(10, 5, 20, 8, 30)

	// 两边一样高，用后继 20 替换
	require.True(t, tr.Delete(10))
	assert.Equal(t, 20, tr.root.value)
	assert.Equal(t, []int{5, 8, 20, 30}, tr.Inorder())

	// 左边更高，用前驱 8 替换
	require.True(t, tr.Delete(20))
	assert.Equal(t, 8, tr.root.value)
	assert.Equal(t, []int{5, 8, 30}, tr.Inorder())

	assert.False(t, tr.Delete(99))
	require.True(t, tr.Delete(5))
	require.True(t, tr.Delete(8))
	require.True(t, tr.Delete(30))
	assert.Equal(t, 0, tr.Len())
	assert.Nil(t, tr.root)
}

func TestDeleteMissingLeafKeepsTree(t *testing.T) {
	tr := buildTree(10, 5)
	// 找不到的值落在叶子上时不能把叶子删掉
	assert.False(t, tr.Delete(3))
	assert.Equal(t, []int{5, 10}, tr.Inorder())
}

func TestPrintTree(t *testing.T) {
	tr := buildTree(10, 5, 20, 8, 30)

	want := "" +
		"        .-->30\n" +
		"    .-->20\n" +
		"|-- 10\n" +
		"    |   .-->8\n" +
		"    '-->5\n"
	assert.Equal(t, want, tr.PrintTree(treeprinter.StyleASCII))

	unicode := tr.PrintTree(treeprinter.StyleUnicode)
	assert.Contains(t, unicode, "│── 10\n")
	assert.Contains(t, unicode, "    │   ┌──>8\n")
}

// 用 google/btree 当参照，随机插入删除后中序结果要一致
func TestAgainstBTree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tr := New[int]()
	ref := btree.NewOrderedG[int](4)

	for i := 0; i < 2000; i++ {
		v := rng.Intn(300)
		if rng.Intn(3) == 0 {
			_, found := ref.Delete(v)
			assert.Equal(t, found, tr.Delete(v), "Delete(%d)", v)
		} else {
			_, existed := ref.ReplaceOrInsert(v)
			assert.Equal(t, !existed, tr.Insert(v), "Insert(%d)", v)
		}
	}

	var want []int
	ref.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	assert.Equal(t, want, tr.Inorder())
	assert.Equal(t, ref.Len(), tr.Len())
}
