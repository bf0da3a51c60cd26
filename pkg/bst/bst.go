package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"algo_tool/pkg/treeprinter"
)

// Tree 普通二叉搜索树（不做平衡），重复的值直接忽略
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

type node[T constraints.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len 节点个数
func (t *Tree[T]) Len() int {
	return t.size
}

// Insert 迭代插入，返回是否插入了新节点
func (t *Tree[T]) Insert(value T) bool {
	if t.root == nil {
		t.root = &node[T]{value: value}
		t.size++
		return true
	}

	// 找到插入位置的父节点
	cur := t.root
	var parent *node[T]
	for cur != nil {
		parent = cur
		switch {
		case value < cur.value:
			cur = cur.left
		case value > cur.value:
			cur = cur.right
		default:
			return false
		}
	}

	n := &node[T]{value: value}
	if value < parent.value {
		parent.left = n
	} else {
		parent.right = n
	}
	t.size++
	return true
}

// InsertRecursive 递归插入，效果和 Insert 一样
func (t *Tree[T]) InsertRecursive(value T) bool {
	var inserted bool
	t.root = insert(t.root, value, &inserted)
	if inserted {
		t.size++
	}
	return inserted
}

func insert[T constraints.Ordered](n *node[T], value T, inserted *bool) *node[T] {
	if n == nil {
		*inserted = true
		return &node[T]{value: value}
	}
	if value < n.value {
		n.left = insert(n.left, value, inserted)
	} else if value > n.value {
		n.right = insert(n.right, value, inserted)
	}
	return n
}

// Search 迭代查找
func (t *Tree[T]) Search(value T) bool {
	cur := t.root
	for cur != nil {
		switch {
		case value < cur.value:
			cur = cur.left
		case value > cur.value:
			cur = cur.right
		default:
			return true
		}
	}
	return false
}

// SearchRecursive 递归查找
func (t *Tree[T]) SearchRecursive(value T) bool {
	return search(t.root, value) != nil
}

func search[T constraints.Ordered](n *node[T], value T) *node[T] {
	if n == nil {
		return nil
	}
	if value < n.value {
		return search(n.left, value)
	}
	if value > n.value {
		return search(n.right, value)
	}
	return n
}

// Delete 删除一个值，返回是否删除成功
// 有两个孩子时：左子树更高就用中序前驱替换，否则用中序后继，尽量让两边高度接近
func (t *Tree[T]) Delete(value T) bool {
	var deleted bool
	t.root = remove(t.root, value, &deleted)
	if deleted {
		t.size--
	}
	return deleted
}

func remove[T constraints.Ordered](n *node[T], value T, deleted *bool) *node[T] {
	if n == nil {
		return nil
	}

	if value < n.value {
		n.left = remove(n.left, value, deleted)
		return n
	}
	if value > n.value {
		n.right = remove(n.right, value, deleted)
		return n
	}

	*deleted = true
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}

	var ignored bool
	if height(n.left) > height(n.right) {
		pre := maxNode(n.left)
		n.value = pre.value
		n.left = remove(n.left, pre.value, &ignored)
	} else {
		succ := minNode(n.right)
		n.value = succ.value
		n.right = remove(n.right, succ.value, &ignored)
	}
	return n
}

// Height 树高，空树为 0
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}

func maxNode[T constraints.Ordered](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func minNode[T constraints.Ordered](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Min 最小值，空树返回 false
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return minNode(t.root).value, true
}

// Max 最大值，空树返回 false
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return maxNode(t.root).value, true
}

// Inorder 中序遍历（升序）
func (t *Tree[T]) Inorder() []T {
	out := make([]T, 0, t.size)
	var stack []*node[T]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.value)
		cur = cur.right
	}
	return out
}

// PrintTree 横向打印整棵树，右子树在上
func (t *Tree[T]) PrintTree(style treeprinter.Style) string {
	return treeprinter.PrintBinary(treeprinter.BinaryPrinter[*node[T]]{
		Root:  t.root,
		Left:  func(n *node[T]) *node[T] { return n.left },
		Right: func(n *node[T]) *node[T] { return n.right },
		GetValue: func(n *node[T]) string {
			return fmt.Sprintf("%v", n.value)
		},
		IsNil: func(n *node[T]) bool { return n == nil },
		Style: style,
	})
}
