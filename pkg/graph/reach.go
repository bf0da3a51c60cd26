package graph

import (
	"fmt"

	"algo_tool/pkg/unionfind"
)

// DirectedDFS 记录从一组起点出发可达的顶点
type DirectedDFS struct {
	marked []bool
	count  int
}

// NewDirectedDFS 多起点可达性搜索，起点必须都合法且至少一个
func NewDirectedDFS(g *Digraph, sources ...int) (*DirectedDFS, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no source vertex", ErrInvalidVertex)
	}
	for _, s := range sources {
		if err := g.validate(s); err != nil {
			return nil, err
		}
	}

	d := &DirectedDFS{marked: make([]bool, g.V())}
	var stack []int
	for _, s := range sources {
		if d.marked[s] {
			continue
		}
		d.marked[s] = true
		d.count++
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range g.adj[v] {
				if !d.marked[w] {
					d.marked[w] = true
					d.count++
					stack = append(stack, w)
				}
			}
		}
	}
	return d, nil
}

// Marked v 是否可达
func (d *DirectedDFS) Marked(v int) (bool, error) {
	if err := checkVertex(v, len(d.marked)); err != nil {
		return false, err
	}
	return d.marked[v], nil
}

// Count 可达顶点个数（包含起点）
func (d *DirectedDFS) Count() int {
	return d.count
}

// Reachable 升序返回所有可达顶点
func (d *DirectedDFS) Reachable() []int {
	var out []int
	for v, ok := range d.marked {
		if ok {
			out = append(out, v)
		}
	}
	return out
}

// WeakComponents 忽略边的方向，用并查集求弱连通分量
func WeakComponents(g *Digraph) *unionfind.UnionFind {
	uf, _ := unionfind.New(g.V()) // V 不会是负数
	for v, ws := range g.adj {
		for _, w := range ws {
			_, _ = uf.Union(v, w) // v、w 都是合法顶点
		}
	}
	return uf
}
