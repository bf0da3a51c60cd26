package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 行标记
const (
	MarkEqual   = "|"
	MarkDelete  = "-"
	MarkInsert  = "+"
	MarkChanged = "~"
)

type DiffLine struct {
	Left  string
	Right string
	Mark  string
}

// CompareMultiline 按行比较两段文本，相邻的删除+插入合并成修改行
func CompareMultiline(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(text1, text2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result []DiffLine
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		if d.Type == diffmatchpatch.DiffDelete && i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
			delLines := splitLines(d.Text)
			insLines := splitLines(diffs[i+1].Text)
			for j := 0; j < max(len(delLines), len(insLines)); j++ {
				var l, r string
				mark := MarkChanged
				switch {
				case j >= len(delLines):
					r, mark = insLines[j], MarkInsert
				case j >= len(insLines):
					l, mark = delLines[j], MarkDelete
				default:
					l, r = delLines[j], insLines[j]
				}
				result = append(result, DiffLine{Left: l, Right: r, Mark: mark})
			}
			i++
			continue
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, DiffLine{Left: line, Right: line, Mark: MarkEqual})
			case diffmatchpatch.DiffDelete:
				result = append(result, DiffLine{Left: line, Mark: MarkDelete})
			case diffmatchpatch.DiffInsert:
				result = append(result, DiffLine{Right: line, Mark: MarkInsert})
			}
		}
	}
	return result
}

// HasChanges 是否存在不相等的行
func HasChanges(diff []DiffLine) bool {
	for _, d := range diff {
		if d.Mark != MarkEqual {
			return true
		}
	}
	return false
}

// 去掉末尾换行后按行切分，空文本返回 nil
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
