package graph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"
)

// ErrInvalidVertex 顶点编号越界或者顶点数为负数
var ErrInvalidVertex = errors.New("invalid vertex")

// Digraph 有向图，顶点编号 [0, V)，邻接表按加边顺序保存
type Digraph struct {
	adj [][]int
	e   int
}

func NewDigraph(v int) (*Digraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: number of vertices %d must be non-negative", ErrInvalidVertex, v)
	}
	return &Digraph{adj: make([][]int, v)}, nil
}

// V 顶点数
func (g *Digraph) V() int { return len(g.adj) }

// E 边数
func (g *Digraph) E() int { return g.e }

// AddEdge 添加有向边 v->w，允许自环和重边
func (g *Digraph) AddEdge(v, w int) error {
	if err := g.validate(v); err != nil {
		return err
	}
	if err := g.validate(w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], w)
	g.e++
	return nil
}

// Adj 返回 v 的出边邻居，调用方不要修改返回的切片
func (g *Digraph) Adj(v int) ([]int, error) {
	if err := g.validate(v); err != nil {
		return nil, err
	}
	return g.adj[v], nil
}

func (g *Digraph) validate(v int) error {
	return checkVertex(v, len(g.adj))
}

func checkVertex(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: vertex %d is not between 0 and %d", ErrInvalidVertex, v, n-1)
	}
	return nil
}

// ParseDOT 用 gographviz 解析 DOT 文本，返回图和每个顶点编号对应的名字
// 所有节点名都是规范写法的非负整数且不比节点个数大太多时，直接用数字做编号
// （V = 最大值+1，中间缺的编号是孤立点），否则按名字字典序编号
// 无向图 (graph {...}) 的每条边会同时加上两个方向
func ParseDOT(data []byte) (*Digraph, []string, error) {
	graphAst, err := gographviz.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("无法解析 DOT: %w", err)
	}
	dot := gographviz.NewGraph()
	if err := gographviz.Analyse(graphAst, dot); err != nil {
		return nil, nil, fmt.Errorf("无法分析 DOT 图: %w", err)
	}

	var rawNames []string
	for _, node := range dot.Nodes.Nodes {
		rawNames = append(rawNames, node.Name)
	}
	ids, names := assignIDs(rawNames)

	g, err := NewDigraph(len(names))
	if err != nil {
		return nil, nil, err
	}
	for _, edge := range dot.Edges.Edges {
		v, w := ids[edge.Src], ids[edge.Dst]
		if err := g.AddEdge(v, w); err != nil {
			return nil, nil, err
		}
		if !dot.Directed {
			if err := g.AddEdge(w, v); err != nil {
				return nil, nil, err
			}
		}
	}
	return g, names, nil
}

// 数字编号最多比节点个数多出这么多，再大就按名字编号，避免一个大数字撑爆内存
const maxNumericSlack = 1024

func assignIDs(rawNames []string) (map[string]int, []string) {
	ids := make(map[string]int, len(rawNames))

	numeric := true
	maxID := -1
	for _, raw := range rawNames {
		name := unquote(raw)
		n, err := strconv.Atoi(name)
		// "01" 和 "1" 会撞到同一个编号，只接受规范写法
		if err != nil || n < 0 || strconv.Itoa(n) != name || n >= len(rawNames)+maxNumericSlack {
			numeric = false
			break
		}
		maxID = max(maxID, n)
	}

	if numeric {
		names := make([]string, maxID+1)
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
		for _, raw := range rawNames {
			n, _ := strconv.Atoi(unquote(raw))
			ids[raw] = n
		}
		return ids, names
	}

	// DOT 里 "a" 和 a 是同一个节点，去掉引号后去重
	byName := make(map[string]int, len(rawNames))
	var names []string
	for _, raw := range rawNames {
		name := unquote(raw)
		if _, ok := byName[name]; !ok {
			byName[name] = 0
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for i, name := range names {
		byName[name] = i
	}
	for _, raw := range rawNames {
		ids[raw] = byName[unquote(raw)]
	}
	return ids, names
}

// DOT 里带引号的名字 gographviz 会原样保留引号
func unquote(name string) string {
	if strings.HasPrefix(name, `"`) {
		if s, err := strconv.Unquote(name); err == nil {
			return s
		}
	}
	return name
}

// HasCycle 判断有向图是否有环，有环时返回环路 [v0, v1, ..., v0]
// 三色标记：白色未访问，灰色在当前 DFS 路径上，黑色已经处理完
func HasCycle(g *Digraph) (bool, []int) {
	const (
		white = iota
		gray
		black
	)
	color := make([]int, g.V())
	edgeTo := make([]int, g.V())

	type frame struct {
		v    int
		next int
	}

	for s := 0; s < g.V(); s++ {
		if color[s] != white {
			continue
		}
		color[s] = gray
		stack := []frame{{v: s}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(g.adj[top.v]) {
				color[top.v] = black
				stack = stack[:len(stack)-1]
				continue
			}
			w := g.adj[top.v][top.next]
			top.next++

			switch color[w] {
			case white:
				color[w] = gray
				edgeTo[w] = top.v
				stack = append(stack, frame{v: w})
			case gray:
				// 回到了当前路径上的祖先，沿 edgeTo 倒推出环
				cycle := []int{w}
				for x := top.v; x != w; x = edgeTo[x] {
					cycle = append(cycle, x)
				}
				cycle = append(cycle, w)
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return true, cycle
			}
		}
	}
	return false, nil
}

// FormatPath 把顶点路径格式化成 "a → b → c"，names 为空时直接打印编号
func FormatPath(path []int, names []string) string {
	parts := make([]string, len(path))
	for i, v := range path {
		if v < len(names) {
			parts[i] = names[v]
		} else {
			parts[i] = strconv.Itoa(v)
		}
	}
	return strings.Join(parts, " → ")
}
