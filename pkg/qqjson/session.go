package qqjson

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrBadInput JSON 输入格式不对
var ErrBadInput = errors.New("bad json input")

// Session 一次并查集会话的输入
//
//	{"n": 10, "pairs": [[4, 3], [3, 8]]}
type Session struct {
	N     int
	Pairs [][2]int
}

// ParseSession 用 gjson 读取会话输入，pairs 可以省略
func ParseSession(raw []byte) (*Session, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: 不是合法的 JSON", ErrBadInput)
	}

	n, err := intOf(gjson.GetBytes(raw, "n"), "n")
	if err != nil {
		return nil, err
	}
	s := &Session{N: n}

	pairs := gjson.GetBytes(raw, "pairs")
	if !pairs.Exists() {
		return s, nil
	}
	if !pairs.IsArray() {
		return nil, fmt.Errorf("%w: pairs 必须是数组", ErrBadInput)
	}
	for i, item := range pairs.Array() {
		elems := item.Array()
		if !item.IsArray() || len(elems) != 2 {
			return nil, fmt.Errorf("%w: pairs.%d 必须是两个整数组成的数组: %s", ErrBadInput, i, item.Raw)
		}
		p, err := intOf(elems[0], fmt.Sprintf("pairs.%d.0", i))
		if err != nil {
			return nil, err
		}
		q, err := intOf(elems[1], fmt.Sprintf("pairs.%d.1", i))
		if err != nil {
			return nil, err
		}
		s.Pairs = append(s.Pairs, [2]int{p, q})
	}
	return s, nil
}

func intOf(r gjson.Result, path string) (int, error) {
	if !r.Exists() {
		return 0, fmt.Errorf("%w: 缺少 %s", ErrBadInput, path)
	}
	if r.Type != gjson.Number || r.Num != math.Trunc(r.Num) {
		return 0, fmt.Errorf("%w: %s 不是整数: %s", ErrBadInput, path, r.Raw)
	}
	return int(r.Int()), nil
}

// Report 一次会话的结果
type Report struct {
	N          int
	Components int
	Unions     [][2]int // 真正发生合并的数据对，按输入顺序
	Skipped    int      // 已经连通而跳过的数据对个数
	Groups     [][]int  // 可选，每个分量的成员
}

// JSON 用 sjson 逐个字段写入，再用 pretty 排版
func (r *Report) JSON() (string, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, value any) {
		if err == nil {
			doc, err = sjson.SetBytes(doc, path, value)
		}
	}

	set("n", r.N)
	set("components", r.Components)
	set("skipped", r.Skipped)
	// 空切片也要输出成 []，不能是 null
	unions := r.Unions
	if unions == nil {
		unions = [][2]int{}
	}
	set("unions", unions)
	if r.Groups != nil {
		set("groups", r.Groups)
	}
	if err != nil {
		return "", fmt.Errorf("生成 JSON 失败: %w", err)
	}
	return string(pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Indent: "    "})), nil
}
