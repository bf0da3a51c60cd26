package toolutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadToken 输入里出现了不是整数的 token
var ErrBadToken = errors.New("bad token")

// IntReader 按空白符切分输入，逐个读取整数
type IntReader struct {
	sc    *bufio.Scanner
	count int // 已经读取的 token 个数，报错时用来定位
}

func NewIntReader(r io.Reader) *IntReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &IntReader{sc: sc}
}

// NextInt 读取下一个整数，输入结束时返回 io.EOF
func (r *IntReader) NextInt() (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	r.count++
	tok := r.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: token #%d %q is not an integer", ErrBadToken, r.count, tok)
	}
	return v, nil
}

// NextPair 读取一对整数；只读到一个就结束时返回 io.ErrUnexpectedEOF
func (r *IntReader) NextPair() (int, int, error) {
	p, err := r.NextInt()
	if err != nil {
		return 0, 0, err
	}
	q, err := r.NextInt()
	if errors.Is(err, io.EOF) {
		return 0, 0, fmt.Errorf("token #%d: %w", r.count, io.ErrUnexpectedEOF)
	}
	if err != nil {
		return 0, 0, err
	}
	return p, q, nil
}

// ParseIntList 解析 "1,2, 3" 这种逗号分隔的整数列表，空串返回 nil
func ParseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrBadToken, p)
		}
		out = append(out, v)
	}
	return out, nil
}

// SplitList 解析逗号分隔的字符串列表，去掉空白和空项
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
