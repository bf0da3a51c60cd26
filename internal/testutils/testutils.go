package testutils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"algo_tool/pkg/diffutil"

	"github.com/spf13/cobra"
)

// RunCommand 执行 cobra 命令，stdin 作为标准输入，返回标准输出和错误
func RunCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if stderr.Len() > 0 {
		t.Logf("stderr:\n%s", stderr.String())
	}
	return stdout.String(), err
}

// WriteTempFile 在测试临时目录下写一个文件，返回完整路径
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写临时文件 %s 失败: %v", path, err)
	}
	return path
}

// AssertText 比较多行文本，不一致时左右对比打印差异
func AssertText(t *testing.T, want, got string) bool {
	t.Helper()
	if want == got {
		return true
	}
	diff := diffutil.CompareMultiline(want, got)
	t.Errorf("文本不一致:\n%s", diffutil.FormatSideBySide(diff, "* want", "* got"))
	return false
}
