package diffutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareMultiline(t *testing.T) {
	before := "'-- 0(r=0)\n'-- 1(r=0)\n'-- 2(r=0)\n"
	after := "'-- 0(r=0)\n'-- 1(r=1)\n    '-- 2\n"

	diff := CompareMultiline(before, after)
	want := []DiffLine{
		{Left: "'-- 0(r=0)", Right: "'-- 0(r=0)", Mark: MarkEqual},
		{Left: "'-- 1(r=0)", Right: "'-- 1(r=1)", Mark: MarkChanged},
		{Left: "'-- 2(r=0)", Right: "    '-- 2", Mark: MarkChanged},
	}
	assert.Equal(t, want, diff)
	assert.True(t, HasChanges(diff))
	assert.False(t, HasChanges(CompareMultiline(before, before)))
}

func TestCompareMultilineUneven(t *testing.T) {
	diff := CompareMultiline("a\nb\n", "a\nc\nd\n")
	want := []DiffLine{
		{Left: "a", Right: "a", Mark: MarkEqual},
		{Left: "b", Right: "c", Mark: MarkChanged},
		{Right: "d", Mark: MarkInsert},
	}
	assert.Equal(t, want, diff)
}

func TestFormatSideBySide(t *testing.T) {
	diff := []DiffLine{
		{Left: "└── 你好", Right: "└── 你好", Mark: MarkEqual},
		{Left: "x", Right: "", Mark: MarkDelete},
	}
	got := FormatSideBySide(diff, "* Before", "* After")
	want := "" +
		"* Before     * After\n" +
		"--------------------\n" +
		"└── 你好  |  └── 你好\n" +
		"x         -\n"
	assert.Equal(t, want, got)
}
