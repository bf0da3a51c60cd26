package errorutil

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	CodeSuccess = 0 // 成功执行

	// 60–69: 用户输入或调用错误
	CodeInvalidUsage = 64 // 命令行用法错误（参数不合法等）
	CodeMissingInput = 65 // 缺失必须输入（如文件、路径等）
	CodeInvalidData  = 66 // 用户输入格式错误（数据非法、索引越界）

	// 70–79: 程序自身或依赖错误
	CodeIOError     = 72 // 文件或设备读写失败
	CodeInternalErr = 74 // 内部 bug、panic、未捕捉异常

	// 80–89: 配置相关
	CodeConfigError = 80 // 配置有误（环境变量、flag 取值）
)

// ExitErrorWithCode 带进程退出码的错误，只在 cmd 层构造，库代码返回普通的包装错误
type ExitErrorWithCode struct {
	Code    int    // 进程退出码
	Message string // 给用户看的说明，比如 "第 3 对数据 (4 10) 非法"
	Err     error
}

func (e *ExitErrorWithCode) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	case e.Message != "":
		return e.Message
	}
	return fmt.Sprintf("Exit with code: %d", e.Code)
}

func (e *ExitErrorWithCode) Unwrap() error {
	return e.Err
}

func NewExitError(code int, err error) error {
	return &ExitErrorWithCode{Code: code, Err: err}
}

// 带错误消息的错误
func NewExitErrorWithMessage(code int, message string, err error) error {
	return &ExitErrorWithCode{Code: code, Message: message, Err: err}
}

// ExitCodeFromError nil 对应 CodeSuccess，没有退出码的错误对应 CodeInternalErr
func ExitCodeFromError(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return CodeInternalErr
}

// 判断当前的错误是否是带退出码的错误
func HasExitCode(err error) bool {
	var exitErr *ExitErrorWithCode
	return errors.As(err, &exitErr)
}

// RootError 沿 Unwrap 链找到最底层的错误（通常是某个包的哨兵错误）
func RootError(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

// Report 错误的 JSON 形式，-o json 时写到标准错误
type Report struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"error,omitempty"`
	Cause   string `json:"cause,omitempty"` // 根因，和 Detail 相同时省略
}

// NewReport 从任意错误生成 Report，没有退出码的错误按内部错误处理
func NewReport(err error) Report {
	var exitErr *ExitErrorWithCode
	if !errors.As(err, &exitErr) {
		exitErr = &ExitErrorWithCode{Code: CodeInternalErr, Message: "未知错误", Err: err}
	}

	r := Report{Code: exitErr.Code, Message: exitErr.Message}
	if exitErr.Err != nil {
		r.Detail = exitErr.Err.Error()
		if cause := RootError(exitErr.Err).Error(); cause != r.Detail {
			r.Cause = cause
		}
	}
	return r
}

// FormatErrorAndCode 返回错误的 JSON 描述和对应的退出码
func FormatErrorAndCode(err error) (string, int) {
	r := NewReport(err)
	jsonBytes, _ := json.Marshal(r) // 只有字符串和整数，不会失败
	return string(jsonBytes), r.Code
}
