package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"algo_tool/pkg/diffutil"
	"algo_tool/pkg/errorutil"
	"algo_tool/pkg/initutil"
	"algo_tool/pkg/logutil"
	"algo_tool/pkg/qqjson"
	"algo_tool/pkg/toolutil"
	"algo_tool/pkg/treeprinter"
	"algo_tool/pkg/unionfind"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type ufOptions struct {
	Input     string
	InFormat  qqjson.Format
	OutFormat qqjson.Format
	Trace     bool
	Forest    bool
	Groups    bool
	Style     treeprinter.Style
}

// ufSession 逐对处理输入，已经连通的跳过，否则合并并回显
type ufSession struct {
	opts    *ufOptions
	uf      *unionfind.UnionFind
	out     *bufio.Writer
	unions  [][2]int
	skipped int
}

func ufCmd() *cobra.Command {
	opts := &ufOptions{InFormat: qqjson.FormatText, OutFormat: qqjson.FormatText}

	cmd := &cobra.Command{
		Use:   "uf",
		Short: "读取元素个数 n 和若干数据对，动态维护连通分量",
		Long: `读取元素个数 n 和若干数据对，动态维护连通分量
Examples:

1. 文本输入（空白符分隔的整数，第一个是 n，后面每两个是一对）
printf '10\n4 3\n3 8\n6 5\n9 4\n2 1\n8 9\n' | uftool uf
4 3
3 8
6 5
9 4
2 1
5 components

已经连通的数据对 (8 9) 不会回显，n 最大为 2147483647

2. JSON 输入/输出
uftool uf -t json -o json -i pairs.json --groups
其中 pairs.json 为 {"n": 10, "pairs": [[4, 3], [3, 8]]}

3. 打印森林 / 跟踪每一次合并
uftool uf -i tinyUF.txt --forest --style unicode
uftool uf -i tinyUF.txt --trace
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUF(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "-", "输入文件，- 表示标准输入")
	cmd.Flags().VarP(&opts.InFormat, "type", "t", fmt.Sprintf("输入格式 %v", opts.InFormat.Values()))
	cmd.Flags().VarP(&opts.OutFormat, "output", "o", fmt.Sprintf("输出格式 %v", opts.OutFormat.Values()))
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "每次合并后左右对比打印森林的变化")
	cmd.Flags().BoolVar(&opts.Forest, "forest", false, "处理完后打印整个森林")
	cmd.Flags().BoolVar(&opts.Groups, "groups", false, "JSON 输出中包含每个分量的成员")
	cmd.Flags().Var(&opts.Style, "style", "森林打印风格 ascii/unicode")
	return cmd
}

func runUF(cmd *cobra.Command, opts *ufOptions) error {
	r, err := openInput(cmd, opts.Input)
	if err != nil {
		return err
	}
	defer r.Close()

	out := bufio.NewWriter(cmd.OutOrStdout())
	var s *ufSession
	if opts.InFormat == qqjson.FormatJSON {
		s, err = runJSONInput(r, opts, out)
	} else {
		s, err = runTextInput(r, opts, out)
	}
	if err == nil {
		cfg := initutil.GetConfig()
		logutil.Debug("日志级别 %s, 日志输出 %s", cfg.LogLevel.String(), cfg.LogFile)
		logutil.Info("处理 %s 对数据: 合并 %s 次, 跳过 %s 次, 剩余 %s 个分量",
			humanize.Comma(int64(len(s.unions)+s.skipped)),
			humanize.Comma(int64(len(s.unions))),
			humanize.Comma(int64(s.skipped)),
			humanize.Comma(int64(s.uf.Count())))
		err = s.finish()
	}

	// 出错时也把已经回显的数据对写出去
	if ferr := out.Flush(); ferr != nil && err == nil {
		err = errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "写输出失败", ferr)
	}
	return err
}

func newSession(n int, opts *ufOptions, out *bufio.Writer) (*ufSession, error) {
	uf, err := unionfind.New(n)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "元素个数非法", err)
	}
	logutil.Debug("新建并查集 n=%d", n)
	return &ufSession{opts: opts, uf: uf, out: out}, nil
}

func runTextInput(r io.Reader, opts *ufOptions, out *bufio.Writer) (*ufSession, error) {
	ir := toolutil.NewIntReader(r)
	n, err := ir.NextInt()
	if errors.Is(err, io.EOF) {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput, "缺少元素个数 n", err)
	}
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "读取元素个数失败", err)
	}

	s, err := newSession(n, opts, out)
	if err != nil {
		return nil, err
	}
	for {
		p, q, err := ir.NextPair()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "读取数据对失败", err)
		}
		if err := s.add(p, q); err != nil {
			return nil, err
		}
	}
}

func runJSONInput(r io.Reader, opts *ufOptions, out *bufio.Writer) (*ufSession, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "读取输入失败", err)
	}
	sess, err := qqjson.ParseSession(raw)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "JSON 输入非法", err)
	}

	s, err := newSession(sess.N, opts, out)
	if err != nil {
		return nil, err
	}
	for _, pair := range sess.Pairs {
		if err := s.add(pair[0], pair[1]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// add 处理一对数据
func (s *ufSession) add(p, q int) error {
	var before string
	if s.opts.Trace {
		before = s.uf.Render(s.opts.Style)
	}

	merged, err := s.uf.Union(p, q)
	if err != nil {
		msg := fmt.Sprintf("第 %d 对数据 (%d %d) 非法", len(s.unions)+s.skipped+1, p, q)
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, msg, err)
	}
	if !merged {
		s.skipped++
		logutil.Debug("跳过已连通的数据对 %d %d", p, q)
		return nil
	}
	s.unions = append(s.unions, [2]int{p, q})

	if s.opts.OutFormat == qqjson.FormatText {
		fmt.Fprintf(s.out, "%d %d\n", p, q)
	}
	if s.opts.Trace {
		diff := diffutil.CompareMultiline(before, s.uf.Render(s.opts.Style))
		if diffutil.HasChanges(diff) {
			fmt.Fprint(s.out, diffutil.FormatSideBySide(diff, fmt.Sprintf("* before union(%d, %d)", p, q), "* after"))
		}
	}
	return nil
}

func (s *ufSession) finish() error {
	if s.opts.OutFormat == qqjson.FormatJSON {
		report := &qqjson.Report{
			N:          s.uf.Len(),
			Components: s.uf.Count(),
			Unions:     s.unions,
			Skipped:    s.skipped,
		}
		if s.opts.Groups {
			report.Groups = s.uf.Components()
		}
		js, err := report.JSON()
		if err != nil {
			return errorutil.NewExitError(errorutil.CodeInternalErr, err)
		}
		fmt.Fprint(s.out, js)
	} else {
		fmt.Fprintf(s.out, "%d components\n", s.uf.Count())
	}

	if s.opts.Forest {
		fmt.Fprint(s.out, s.uf.Render(s.opts.Style))
	}
	return nil
}
