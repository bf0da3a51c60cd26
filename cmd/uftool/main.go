package main

import (
	"fmt"
	"io"
	"os"

	"algo_tool/pkg/errorutil"
	"algo_tool/pkg/initutil"
	"algo_tool/pkg/logutil"
	"algo_tool/pkg/qqjson"

	"github.com/spf13/cobra"
)

const TOOL_VERSION = "1.0.0+20261017"

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:     "uftool",
		Version: TOOL_VERSION,
		Short:   fmt.Sprintf("uftool v%s 并查集/图遍历/二叉搜索树小工具，支持 uf/cc/dfo/reach/bst 子命令", TOOL_VERSION),
		Long: "  _   _  _____  _              _ \n" +
			" | | | ||  ___|| |_  ___   ___ | |\n" +
			" | | | || |_   | __|/ _ \\ / _ \\| |\n" +
			" | |_| ||  _|  | |_| (_) | (_) | |\n" +
			"  \\___/ |_|     \\__|\\___/ \\___/|_|\n" +
			fmt.Sprintf("\nuftool v%s 并查集/图遍历/二叉搜索树小工具，支持 uf/cc/dfo/reach/bst 子命令\n", TOOL_VERSION),
	}

	rootCmd.AddCommand(ufCmd(), ccCmd(), dfoCmd(), reachCmd(), bstCmd())

	cfg := initutil.NewConfig()

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().VarP(&cfg.LogLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&cfg.LogFile, "log-file", "l", cfg.LogFile, "日志文件名(stderr/stdout 表示标准错误/标准输出)")
	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 阻止Cobra自动打印RunEs返回的错误内容
	rootCmd.SilenceErrors = true

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errorutil.NewExitError(errorutil.CodeInvalidUsage, err)
	})

	// PersistentPreRunE 回调，这个钩子会在用户的命令解析完成、flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cfg.ApplyEnv(cmd.Flags().Changed); err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError, "配置错误", err)
		}
		if err := initutil.InitSystem(cfg); err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError, "初始化日志失败", err)
		}
		return nil
	}

	return rootCmd
}

// run 执行命令并返回退出码，没有带退出码的错误都是 cobra 自己的参数校验错误
// 子命令选了 -o json 时错误也按 JSON 写到 stderr
func run(rootCmd *cobra.Command, stderr io.Writer) int {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return errorutil.CodeSuccess
	}
	if !errorutil.HasExitCode(err) {
		err = errorutil.NewExitError(errorutil.CodeInvalidUsage, err)
	}
	logutil.Error("命令执行失败: %v", err)
	logutil.Debug("根因: %v", errorutil.RootError(err))

	if wantsJSON(cmd) {
		js, code := errorutil.FormatErrorAndCode(err)
		fmt.Fprintln(stderr, js)
		return code
	}
	fmt.Fprintf(stderr, "uftool: %v\n", err)
	return errorutil.ExitCodeFromError(err)
}

func wantsJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	f := cmd.Flags().Lookup("output")
	return f != nil && f.Value.String() == string(qqjson.FormatJSON)
}

func main() {
	code := run(newRootCmd(), os.Stderr)
	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(code)
}
