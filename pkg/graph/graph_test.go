package graph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algo_tool/pkg/graph"
)

func newTestGraph(t *testing.T, v int, edges [][2]int) *graph.Digraph {
	t.Helper()
	g, err := graph.NewDigraph(v)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// 0 -> 1 -> 3 -> 4
// 0 -> 2 -> 3
var diamond = [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}}

func TestDigraphValidate(t *testing.T) {
	_, err := graph.NewDigraph(-1)
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)

	g := newTestGraph(t, 3, [][2]int{{0, 1}, {0, 0}})
	assert.Equal(t, 3, g.V())
	assert.Equal(t, 2, g.E())

	assert.ErrorIs(t, g.AddEdge(0, 3), graph.ErrInvalidVertex)
	assert.ErrorIs(t, g.AddEdge(-1, 0), graph.ErrInvalidVertex)
	_, err = g.Adj(5)
	assert.EqualError(t, err, "invalid vertex: vertex 5 is not between 0 and 2")

	adj, err := g.Adj(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, adj)
}

func TestDepthFirstOrder(t *testing.T) {
	o := graph.NewDepthFirstOrder(newTestGraph(t, 5, diamond))

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"preorder", o.Preorder(), []int{0, 1, 3, 4, 2}},
		{"postorder", o.Postorder(), []int{4, 3, 1, 2, 0}},
		{"reverse postorder", o.ReversePost(), []int{0, 2, 1, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// pre(v)/post(v) 必须和序列里的位置一致
	for i, v := range o.Preorder() {
		pre, err := o.Pre(v)
		require.NoError(t, err)
		assert.Equal(t, i, pre)
	}
	for i, v := range o.Postorder() {
		post, err := o.Post(v)
		require.NoError(t, err)
		assert.Equal(t, i, post)
	}

	_, err := o.Pre(5)
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
	_, err = o.Post(-1)
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestDepthFirstOrderForest(t *testing.T) {
	// 两个不连通的部分，第二棵从 3 开始
	o := graph.NewDepthFirstOrder(newTestGraph(t, 5, [][2]int{{1, 0}, {3, 4}, {4, 2}}))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, o.Preorder())
	assert.Equal(t, []int{0, 1, 2, 4, 3}, o.Postorder())
}

func TestDepthFirstOrderLongChain(t *testing.T) {
	const n = 200000
	edges := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	o := graph.NewDepthFirstOrder(newTestGraph(t, n, edges))

	post, err := o.Post(0)
	require.NoError(t, err)
	assert.Equal(t, n-1, post)
	assert.Equal(t, 0, o.ReversePost()[0])
}

func TestHasCycle(t *testing.T) {
	tests := []struct {
		name      string
		v         int
		edges     [][2]int
		wantCycle []int
	}{
		{"dag", 5, diamond, nil},
		{"back edge", 5, append(append([][2]int{}, diamond...), [2]int{4, 1}), []int{1, 3, 4, 1}},
		{"self loop", 2, [][2]int{{0, 1}, {1, 1}}, []int{1, 1}},
		{"empty graph", 0, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			has, cycle := graph.HasCycle(newTestGraph(t, tt.v, tt.edges))
			assert.Equal(t, tt.wantCycle != nil, has)
			assert.Equal(t, tt.wantCycle, cycle)
		})
	}
}

func TestDirectedDFS(t *testing.T) {
	g := newTestGraph(t, 6, diamond)

	d, err := graph.NewDirectedDFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Count())
	assert.Equal(t, []int{1, 3, 4}, d.Reachable())

	ok, err := d.Marked(0)
	require.NoError(t, err)
	assert.False(t, ok)

	d, err = graph.NewDirectedDFS(g, 2, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5}, d.Reachable())
	assert.Equal(t, 4, d.Count())

	_, err = graph.NewDirectedDFS(g, 6)
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
	_, err = graph.NewDirectedDFS(g)
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
	_, err = d.Marked(6)
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestWeakComponents(t *testing.T) {
	g := newTestGraph(t, 5, [][2]int{{0, 1}, {2, 1}, {4, 4}})
	uf := graph.WeakComponents(g)

	assert.Equal(t, 3, uf.Count())
	want := [][]int{{0, 1, 2}, {3}, {4}}
	if diff := cmp.Diff(want, uf.Components()); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDOT(t *testing.T) {
	tests := []struct {
		name      string
		dot       string
		wantNames []string
		wantE     int
		wantAdj0  []int
	}{
		{
			name:      "named nodes sorted",
			dot:       `digraph G { c -> a; a -> b; d; }`,
			wantNames: []string{"a", "b", "c", "d"},
			wantE:     2,
			wantAdj0:  []int{1},
		},
		{
			name:      "numeric nodes keep ids",
			dot:       `digraph { 0 -> 2; 2 -> 5 }`,
			wantNames: []string{"0", "1", "2", "3", "4", "5"},
			wantE:     2,
			wantAdj0:  []int{2},
		},
		{
			name:      "undirected adds both directions",
			dot:       `graph { x -- y }`,
			wantNames: []string{"x", "y"},
			wantE:     2,
			wantAdj0:  []int{1},
		},
		{
			name:      "huge numeric id falls back to names",
			dot:       `digraph { 0 -> 9223372036854775806 }`,
			wantNames: []string{"0", "9223372036854775806"},
			wantE:     1,
			wantAdj0:  []int{1},
		},
		{
			name:      "leading zeros stay distinct",
			dot:       `digraph { "01" -> 1 }`,
			wantNames: []string{"01", "1"},
			wantE:     1,
			wantAdj0:  []int{1},
		},
		{
			name:      "quoted and bare name are one node",
			dot:       `digraph { "a" -> b; a -> c }`,
			wantNames: []string{"a", "b", "c"},
			wantE:     2,
			wantAdj0:  []int{1, 2},
		},
		{
			name:      "quoted names",
			dot:       `digraph { "pkg/b" -> "pkg/a" }`,
			wantNames: []string{"pkg/a", "pkg/b"},
			wantE:     1,
			wantAdj0:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, names, err := graph.ParseDOT([]byte(tt.dot))
			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, len(tt.wantNames), g.V())
			assert.Equal(t, tt.wantE, g.E())
			adj, err := g.Adj(0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdj0, adj)
		})
	}

	_, _, err := graph.ParseDOT([]byte(`digraph {`))
	assert.Error(t, err)
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "a → b → a", graph.FormatPath([]int{0, 1, 0}, []string{"a", "b"}))
	assert.Equal(t, "1 → 2", graph.FormatPath([]int{1, 2}, nil))
}
