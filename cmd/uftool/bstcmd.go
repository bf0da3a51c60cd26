package main

import (
	"fmt"
	"strconv"
	"strings"

	"algo_tool/pkg/bst"
	"algo_tool/pkg/errorutil"
	"algo_tool/pkg/logutil"
	"algo_tool/pkg/toolutil"
	"algo_tool/pkg/treeprinter"

	"github.com/spf13/cobra"
)

func bstCmd() *cobra.Command {
	var (
		values    string
		deletes   string
		searches  string
		recursive bool
		style     treeprinter.Style
	)
	cmd := &cobra.Command{
		Use:   "bst",
		Short: "构建二叉搜索树，删除指定值后打印",
		Long: `构建二叉搜索树（不平衡），删除指定值后打印中序序列、树高和树形
删除有两个孩子的节点时，左子树更高用前驱替换，否则用后继替换
Examples:

uftool bst -v 10,5,20,8,30 -d 10 -s 8,10 --style unicode
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ins, err := toolutil.ParseIntList(values)
			if err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "--values 非法", err)
			}
			dels, err := toolutil.ParseIntList(deletes)
			if err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "--delete 非法", err)
			}
			finds, err := toolutil.ParseIntList(searches)
			if err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "--search 非法", err)
			}

			tr := bst.New[int]()
			for _, v := range ins {
				if recursive {
					tr.InsertRecursive(v)
				} else {
					tr.Insert(v)
				}
			}
			for _, v := range dels {
				if !tr.Delete(v) {
					logutil.Warn("删除的值 %d 不在树中", v)
				}
			}

			inorder := make([]string, 0, tr.Len())
			for _, v := range tr.Inorder() {
				inorder = append(inorder, strconv.Itoa(v))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Inorder: %s\n", strings.Join(inorder, " "))
			fmt.Fprintf(out, "Height: %d\n", tr.Height())
			if lo, ok := tr.Min(); ok {
				hi, _ := tr.Max()
				fmt.Fprintf(out, "Min: %d Max: %d\n", lo, hi)
			}
			for _, v := range finds {
				found := tr.Search(v)
				if recursive {
					found = tr.SearchRecursive(v)
				}
				fmt.Fprintf(out, "Search %d: %t\n", v, found)
			}
			fmt.Fprint(out, tr.PrintTree(style))
			return nil
		},
	}
	cmd.Flags().StringVarP(&values, "values", "v", "", "插入的值，逗号分隔")
	cmd.Flags().StringVarP(&deletes, "delete", "d", "", "删除的值，逗号分隔")
	cmd.Flags().StringVarP(&searches, "search", "s", "", "查找的值，逗号分隔")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "使用递归插入和查找")
	cmd.Flags().Var(&style, "style", "打印风格 ascii/unicode")
	return cmd
}
