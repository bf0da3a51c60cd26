package treeprinter

import (
	"fmt"
	"strings"
)

// Style 控制打印时使用的连线字符
type Style int

const (
	StyleASCII   Style = 0
	StyleUnicode Style = 1
)

const (
	BranchUpper = 1
	BranchLower = 0
	BranchRoot  = -1
)

// 为了让 VarP 接收自定义类型，实现 flag.Value 接口(String Set Type)即可
func (s *Style) String() string {
	if *s == StyleUnicode {
		return "unicode"
	}
	return "ascii"
}

func (s *Style) Set(val string) error {
	switch val {
	case "ascii":
		*s = StyleASCII
	case "unicode":
		*s = StyleUnicode
	default:
		return fmt.Errorf("无效的 style 值: %s (可选 ascii/unicode)", val)
	}
	return nil
}

func (s *Style) Type() string {
	return "style"
}

type glyphs struct {
	vert     string
	upArrow  string
	dnArrow  string
	rootSign string
	branch   string
	last     string
	space    string
}

func glyphsOf(style Style) glyphs {
	if style == StyleUnicode {
		return glyphs{"│", "┌──>", "└──>", "│── ", "├── ", "└── ", "│   "}
	}
	return glyphs{"|", ".-->", "'-->", "|-- ", ".-- ", "'-- ", "|   "}
}

// BinaryPrinter 描述一棵二叉树，节点类型任意（指针、索引都可以）
type BinaryPrinter[T any] struct {
	Root     T
	Left     func(T) T
	Right    func(T) T
	GetValue func(T) string
	IsNil    func(T) bool
	Style    Style
}

// PrintBinary 把二叉树横着打印：右子树在上，根在中间，左子树在下
// 用显式栈代替递归，退化成链表的树也不会爆栈
func PrintBinary[T any](printer BinaryPrinter[T]) string {
	if printer.IsNil(printer.Root) {
		return "tree is empty\n"
	}
	g := glyphsOf(printer.Style)

	type frame struct {
		node    T
		pre     string
		pos     int
		printed bool
	}

	// 子节点的前缀：如果父节点到它的连线要穿过这一列，就补一条竖线
	childPre := func(f frame, childPos int) string {
		if f.pos != BranchRoot && f.pos != childPos {
			return f.pre + g.vert + "   "
		}
		return f.pre + "    "
	}

	var b strings.Builder
	stack := []frame{{node: printer.Root, pos: BranchRoot}}
	for len(stack) > 0 {
		idx := len(stack) - 1
		top := stack[idx]

		if !top.printed {
			stack[idx].printed = true
			if up := printer.Right(top.node); !printer.IsNil(up) {
				stack = append(stack, frame{node: up, pre: childPre(top, BranchUpper), pos: BranchUpper})
			}
			continue
		}

		stack = stack[:idx]
		val := printer.GetValue(top.node)
		switch top.pos {
		case BranchUpper:
			fmt.Fprintf(&b, "%s%s%s\n", top.pre, g.upArrow, val)
		case BranchLower:
			fmt.Fprintf(&b, "%s%s%s\n", top.pre, g.dnArrow, val)
		default:
			fmt.Fprintf(&b, "%s%s\n", g.rootSign, val)
		}
		if down := printer.Left(top.node); !printer.IsNil(down) {
			stack = append(stack, frame{node: down, pre: childPre(top, BranchLower), pos: BranchLower})
		}
	}
	return b.String()
}

// MultiNode 多叉树节点
type MultiNode struct {
	Data     any // 节点数据，可以是任意类型
	Children []*MultiNode
}

type MultiTreePrinter struct {
	Root     *MultiNode
	Style    Style
	FormatFn func(*MultiNode) string // 可选的自定义格式化函数
}

// PrintMultiTree 打印一棵多叉树
func PrintMultiTree(printer MultiTreePrinter) string {
	if printer.Root == nil {
		return "tree is empty\n"
	}
	var b strings.Builder
	writeMulti(&b, printer.Root, "", true, glyphsOf(printer.Style), printer.FormatFn)
	return b.String()
}

// PrintForest 依次打印多棵树，每棵树之间不留空行
func PrintForest(roots []*MultiNode, style Style, formatFn func(*MultiNode) string) string {
	if len(roots) == 0 {
		return "forest is empty\n"
	}
	var b strings.Builder
	g := glyphsOf(style)
	for _, root := range roots {
		writeMulti(&b, root, "", true, g, formatFn)
	}
	return b.String()
}

func writeMulti(b *strings.Builder, node *MultiNode, prefix string, isLast bool, g glyphs, formatFn func(*MultiNode) string) {
	if node == nil {
		return
	}

	// 使用 formatFn，如果没有就用默认 Data 的字符串
	label := fmt.Sprintf("%v", node.Data)
	if formatFn != nil {
		label = formatFn(node)
	}

	connector := g.branch
	if isLast {
		connector = g.last
	}
	fmt.Fprintf(b, "%s%s%s\n", prefix, connector, label)

	childPrefix := prefix + g.space
	if isLast {
		childPrefix = prefix + "    "
	}
	for i, child := range node.Children {
		writeMulti(b, child, childPrefix, i == len(node.Children)-1, g, formatFn)
	}
}
