package qqjson

import "fmt"

// Format 输入/输出数据格式
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// 为了让 VarP 接收自定义类型，实现 flag.Value 接口(String Set Type)即可：
func (f *Format) String() string { return string(*f) }

func (f *Format) Set(val string) error {
	switch val {
	case string(FormatText), string(FormatJSON):
		*f = Format(val)
		return nil
	default:
		return fmt.Errorf("无效的 format 值: %s (可选 %v)", val, f.Values())
	}
}

func (f *Format) Type() string {
	return "format" // 这个字符串用于帮助文档与类型提示
}

// 列出所有的合法值
func (Format) Values() []string {
	return []string{string(FormatText), string(FormatJSON)}
}
