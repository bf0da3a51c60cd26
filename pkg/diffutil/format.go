package diffutil

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatSideBySide 左右并排显示差异
// 左列按显示宽度补齐：制表符和中文都按终端里实际占的宽度算
func FormatSideBySide(diff []DiffLine, leftTitle, rightTitle string) string {
	cond := runewidth.NewCondition()
	// 模糊字符按照宽度1计算，框线字符(│└)才不会被当成双宽
	cond.EastAsianWidth = false

	width := cond.StringWidth(leftTitle)
	for _, d := range diff {
		width = max(width, cond.StringWidth(d.Left))
	}

	var out []string
	header := fmt.Sprintf("%s  %s  %s", cond.FillRight(leftTitle, width), " ", rightTitle)
	out = append(out, header)
	out = append(out, strings.Repeat("-", cond.StringWidth(header)))
	for _, d := range diff {
		out = append(out, strings.TrimRight(fmt.Sprintf("%s  %s  %s", cond.FillRight(d.Left, width), d.Mark, d.Right), " "))
	}
	return strings.Join(out, "\n") + "\n"
}
