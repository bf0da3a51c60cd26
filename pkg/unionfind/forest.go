package unionfind

import (
	"fmt"

	"algo_tool/pkg/treeprinter"
)

// Components 返回每个连通分量的成员
// 分量内部升序，分量之间按最小成员升序；会顺带做路径压缩
func (uf *UnionFind) Components() [][]int {
	groups := make(map[int][]int, uf.count)
	var order []int
	for i := range uf.parent {
		root, _ := uf.Find(i) // i 一定合法
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], i)
	}

	// i 是升序遍历的，所以每个分量天然有序，order 也按首个成员排好了
	result := make([][]int, 0, len(order))
	for _, root := range order {
		result = append(result, groups[root])
	}
	return result
}

// ForestNode 是 Forest 输出的节点数据
type ForestNode struct {
	ID     int
	Rank   uint8
	IsRoot bool
}

func (n ForestNode) String() string {
	if n.IsRoot {
		return fmt.Sprintf("%d(r=%d)", n.ID, n.Rank)
	}
	return fmt.Sprintf("%d", n.ID)
}

// Forest 按 parent 指针还原当前的森林结构，每个根一棵树，子节点升序
// 直接读 parent，不调用 Find，所以不会改变树的形状
func (uf *UnionFind) Forest() []*treeprinter.MultiNode {
	_, roots := uf.buildForest()
	return roots
}

// Tree 返回 p 所在的那一棵树，同样不做路径压缩
func (uf *UnionFind) Tree(p int) (*treeprinter.MultiNode, error) {
	if err := uf.validate(p); err != nil {
		return nil, err
	}
	root := p
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	nodes, _ := uf.buildForest()
	return nodes[root], nil
}

func (uf *UnionFind) buildForest() (nodes, roots []*treeprinter.MultiNode) {
	nodes = make([]*treeprinter.MultiNode, len(uf.parent))
	for i := range uf.parent {
		nodes[i] = &treeprinter.MultiNode{Data: ForestNode{ID: i, Rank: uf.rank[i], IsRoot: uf.parent[i] == i}}
	}

	for i, p := range uf.parent {
		if p == i {
			roots = append(roots, nodes[i])
			continue
		}
		// i 升序遍历，Children 天然有序
		nodes[p].Children = append(nodes[p].Children, nodes[i])
	}
	return nodes, roots
}

// Render 用指定风格打印整个森林
func (uf *UnionFind) Render(style treeprinter.Style) string {
	return treeprinter.PrintForest(uf.Forest(), style, nil)
}

func (uf *UnionFind) String() string {
	return uf.Render(treeprinter.StyleASCII)
}
