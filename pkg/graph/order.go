package graph

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// DepthFirstOrder 记录一次完整 DFS 的前序/后序编号
// 从 0 开始依次把未访问的顶点作为起点，邻居按加边顺序访问
type DepthFirstOrder struct {
	pre       []int // pre[v] = v 的前序编号
	post      []int // post[v] = v 的后序编号
	preorder  *linkedlistqueue.Queue
	postorder *linkedlistqueue.Queue
}

func NewDepthFirstOrder(g *Digraph) *DepthFirstOrder {
	o := &DepthFirstOrder{
		pre:       make([]int, g.V()),
		post:      make([]int, g.V()),
		preorder:  linkedlistqueue.New(),
		postorder: linkedlistqueue.New(),
	}

	marked := make([]bool, g.V())
	type frame struct {
		v    int
		next int
	}

	// 显式栈模拟递归，访问顺序和递归版本完全一致
	visit := func(v int, stack []frame) []frame {
		marked[v] = true
		o.pre[v] = o.preorder.Size()
		o.preorder.Enqueue(v)
		return append(stack, frame{v: v})
	}

	for s := 0; s < g.V(); s++ {
		if marked[s] {
			continue
		}
		stack := visit(s, nil)
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(g.adj[top.v]) {
				w := g.adj[top.v][top.next]
				top.next++
				if !marked[w] {
					stack = visit(w, stack)
				}
				continue
			}
			o.post[top.v] = o.postorder.Size()
			o.postorder.Enqueue(top.v)
			stack = stack[:len(stack)-1]
		}
	}
	return o
}

// Pre 返回 v 的前序编号
func (o *DepthFirstOrder) Pre(v int) (int, error) {
	if err := o.validate(v); err != nil {
		return 0, err
	}
	return o.pre[v], nil
}

// Post 返回 v 的后序编号
func (o *DepthFirstOrder) Post(v int) (int, error) {
	if err := o.validate(v); err != nil {
		return 0, err
	}
	return o.post[v], nil
}

// Preorder 前序序列
func (o *DepthFirstOrder) Preorder() []int {
	return toInts(o.preorder.Values())
}

// Postorder 后序序列
func (o *DepthFirstOrder) Postorder() []int {
	return toInts(o.postorder.Values())
}

// ReversePost 逆后序，无环图上就是一个拓扑序
func (o *DepthFirstOrder) ReversePost() []int {
	reverse := arraystack.New()
	for _, v := range o.postorder.Values() {
		reverse.Push(v)
	}
	// arraystack 的 Values 是 LIFO 顺序
	return toInts(reverse.Values())
}

func (o *DepthFirstOrder) validate(v int) error {
	return checkVertex(v, len(o.pre))
}

func toInts(values []interface{}) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = v.(int)
	}
	return out
}
