package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"algo_tool/pkg/errorutil"
	"algo_tool/pkg/graph"
	"algo_tool/pkg/logutil"
	"algo_tool/pkg/toolutil"
	"algo_tool/pkg/treeprinter"
	"algo_tool/pkg/unionfind"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func loadDOT(cmd *cobra.Command, path string) (*graph.Digraph, []string, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	g, names, err := graph.ParseDOT(data)
	if err != nil {
		return nil, nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "DOT 输入非法", err)
	}
	logutil.Info("读取图: %s 个顶点, %s 条边", humanize.Comma(int64(g.V())), humanize.Comma(int64(g.E())))
	return g, names, nil
}

func joinNames(vs []int, names []string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = names[v]
	}
	return strings.Join(parts, " ")
}

func dfoCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "dfo",
		Short: "打印 DOT 有向图的深度优先前序/后序/逆后序",
		Long: `打印 DOT 有向图的深度优先前序/后序/逆后序，有环时打印一个环
Examples:

echo 'digraph { a -> b; a -> c; b -> d; c -> d }' | uftool dfo
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, names, err := loadDOT(cmd, input)
			if err != nil {
				return err
			}
			o := graph.NewDepthFirstOrder(g)

			rows := [][]string{{"vertex", "pre", "post"}}
			for v := 0; v < g.V(); v++ {
				pre, _ := o.Pre(v)
				post, _ := o.Post(v)
				rows = append(rows, []string{names[v], strconv.Itoa(pre), strconv.Itoa(post)})
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, toolutil.AlignTable(rows))
			fmt.Fprintf(out, "Preorder:  %s\n", joinNames(o.Preorder(), names))
			fmt.Fprintf(out, "Postorder: %s\n", joinNames(o.Postorder(), names))
			fmt.Fprintf(out, "Reverse postorder: %s\n", joinNames(o.ReversePost(), names))
			if has, cycle := graph.HasCycle(g); has {
				fmt.Fprintf(out, "Cycle: %s\n", graph.FormatPath(cycle, names))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "DOT 文件，- 表示标准输入")
	return cmd
}

func reachCmd() *cobra.Command {
	var (
		input   string
		sources string
		target  string
	)
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "打印从一组起点出发可达的顶点",
		Long: `打印从一组起点出发可达的顶点（按顶点编号升序）
Examples:

uftool reach -i deps.dot -s main,util
uftool reach -i deps.dot -s main -t log
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, names, err := loadDOT(cmd, input)
			if err != nil {
				return err
			}
			ids := make(map[string]int, len(names))
			for i, name := range names {
				ids[name] = i
			}

			var srcs []int
			for _, name := range toolutil.SplitList(sources) {
				id, ok := ids[name]
				if !ok {
					return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
						"起点不存在", fmt.Errorf("%w: %q", graph.ErrInvalidVertex, name))
				}
				srcs = append(srcs, id)
			}
			d, err := graph.NewDirectedDFS(g, srcs...)
			if err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "起点非法", err)
			}
			logutil.Info("可达顶点 %s 个", humanize.Comma(int64(d.Count())))
			fmt.Fprintln(cmd.OutOrStdout(), joinNames(d.Reachable(), names))

			if target != "" {
				id, ok := ids[target]
				if !ok {
					return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
						"目标不存在", fmt.Errorf("%w: %q", graph.ErrInvalidVertex, target))
				}
				marked, _ := d.Marked(id) // id 来自 names，一定合法
				fmt.Fprintf(cmd.OutOrStdout(), "%s reachable: %t\n", target, marked)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "DOT 文件，- 表示标准输入")
	cmd.Flags().StringVarP(&sources, "sources", "s", "", "起点名字，逗号分隔")
	cmd.Flags().StringVarP(&target, "target", "t", "", "额外判断这个顶点是否可达")
	_ = cmd.MarkFlagRequired("sources")
	return cmd
}

// forestLabel 用顶点名字代替编号，根节点带上秩
func forestLabel(names []string) func(*treeprinter.MultiNode) string {
	return func(n *treeprinter.MultiNode) string {
		fn := n.Data.(unionfind.ForestNode)
		if fn.IsRoot {
			return fmt.Sprintf("%s(r=%d)", names[fn.ID], fn.Rank)
		}
		return names[fn.ID]
	}
}

func ccCmd() *cobra.Command {
	var (
		input  string
		forest bool
		tree   string
		style  treeprinter.Style
	)
	cmd := &cobra.Command{
		Use:   "cc",
		Short: "用并查集求 DOT 图的弱连通分量",
		Long: `忽略边的方向，用并查集求 DOT 图的弱连通分量
每个分量一行，分量内按顶点编号升序
Examples:

echo 'digraph { a -> b; c -> b; d }' | uftool cc --forest
echo 'digraph { a -> b; c -> b; d }' | uftool cc --tree c
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, names, err := loadDOT(cmd, input)
			if err != nil {
				return err
			}
			uf := graph.WeakComponents(g)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d components\n", uf.Count())
			for _, comp := range uf.Components() {
				fmt.Fprintln(out, joinNames(comp, names))
			}
			if forest {
				fmt.Fprint(out, treeprinter.PrintForest(uf.Forest(), style, forestLabel(names)))
			}
			if tree != "" {
				v := slices.Index(names, tree)
				if v < 0 {
					return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
						"顶点不存在", fmt.Errorf("%w: %q", graph.ErrInvalidVertex, tree))
				}
				root, err := uf.Tree(v)
				if err != nil {
					return errorutil.NewExitError(errorutil.CodeInternalErr, err)
				}
				fmt.Fprint(out, treeprinter.PrintMultiTree(treeprinter.MultiTreePrinter{
					Root:     root,
					Style:    style,
					FormatFn: forestLabel(names),
				}))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "DOT 文件，- 表示标准输入")
	cmd.Flags().BoolVar(&forest, "forest", false, "打印并查集森林")
	cmd.Flags().StringVar(&tree, "tree", "", "只打印这个顶点所在的那棵树")
	cmd.Flags().Var(&style, "style", "森林打印风格 ascii/unicode")
	return cmd
}
