package toolutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// AlignTable 把二维表格按列右对齐，列之间用一个空格隔开
// 宽度按显示宽度计算，中文表头也能对齐
func AlignTable(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillLeft(cell, widths[i])
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
