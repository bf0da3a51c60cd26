package unionfind

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument 元素个数为负数或者索引越界时返回，用 errors.Is 判断
var ErrInvalidArgument = errors.New("invalid argument")

// MaxSize 元素个数上限，和 int32 下标能表示的范围一致
const MaxSize = math.MaxInt32

// UnionFind 是并查集结构，按秩合并 + 路径减半压缩
// 不是并发安全的，多个 goroutine 共享时需要外部加锁（Find 也会修改 parent）
type UnionFind struct {
	parent []int   // parent[i] = i 的父节点，parent[i] == i 表示根
	rank   []uint8 // rank[i] = 以 i 为根的子树高度上界，只对根有意义
	count  int     // 连通分量个数
}

// New 初始化并查集，元素范围为 [0, n)，n 不能超过 MaxSize
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
	}
	if n > MaxSize {
		return nil, fmt.Errorf("%w: size %d exceeds %d", ErrInvalidArgument, n, MaxSize)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &UnionFind{parent: parent, rank: make([]uint8, n), count: n}, nil
}

// Find 查找元素所在集合的根节点
// 路径减半：沿途每个节点都改为指向祖父节点，不需要第二遍也不需要递归
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}
	for p != uf.parent[p] {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}
	return p, nil
}

// Connected 判断两个元素是否在同一个集合，等价于 Find(p) == Find(q)
//
// Deprecated: 保留兼容，直接比较两次 Find 的结果即可
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	rootP, err := uf.Find(p)
	if err != nil {
		return false, err
	}
	rootQ, err := uf.Find(q)
	if err != nil {
		return false, err
	}
	return rootP == rootQ, nil
}

// Union 合并两个集合（按秩优化），返回是否真的发生了合并
// 秩相同时固定把 q 的根挂到 p 的根下面，树的形状依赖这个顺序，不要改
func (uf *UnionFind) Union(p, q int) (bool, error) {
	rootP, err := uf.Find(p)
	if err != nil {
		return false, err
	}
	rootQ, err := uf.Find(q)
	if err != nil {
		return false, err
	}
	if rootP == rootQ {
		return false, nil // 已经在同一个集合
	}

	if uf.rank[rootP] < uf.rank[rootQ] {
		uf.parent[rootP] = rootQ
	} else if uf.rank[rootP] > uf.rank[rootQ] {
		uf.parent[rootQ] = rootP
	} else {
		uf.parent[rootQ] = rootP
		uf.rank[rootP]++
	}
	uf.count--
	return true, nil
}

// Count 返回当前连通分量个数
func (uf *UnionFind) Count() int {
	return uf.count
}

// Len 返回元素总数 n
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

func (uf *UnionFind) validate(p int) error {
	n := len(uf.parent)
	if p < 0 || p >= n {
		return fmt.Errorf("%w: index %d is not between 0 and %d", ErrInvalidArgument, p, n-1)
	}
	return nil
}
