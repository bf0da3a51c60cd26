package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"algo_tool/pkg/errorutil"

	"github.com/spf13/cobra"
)

// openInput 打开输入，空路径或者 "-" 表示标准输入
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput, "输入文件不存在", err)
		}
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "无法打开输入文件", err)
	}
	return f, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "读取输入失败", err)
	}
	return data, nil
}
