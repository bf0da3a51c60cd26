package toolutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algo_tool/pkg/toolutil"
)

func TestIntReader(t *testing.T) {
	r := toolutil.NewIntReader(strings.NewReader("10\n4 3\n\t3   8\n"))

	n, err := r.NextInt()
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	var got [][2]int
	for {
		p, q, err := r.NextPair()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, [2]int{p, q})
	}
	if diff := cmp.Diff([][2]int{{4, 3}, {3, 8}}, got); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestIntReaderErrors(t *testing.T) {
	r := toolutil.NewIntReader(strings.NewReader("1 x"))
	_, err := r.NextInt()
	require.NoError(t, err)
	_, err = r.NextInt()
	assert.ErrorIs(t, err, toolutil.ErrBadToken)
	assert.Contains(t, err.Error(), `token #2 "x"`)

	r = toolutil.NewIntReader(strings.NewReader("1 2 3"))
	_, _, err = r.NextPair()
	require.NoError(t, err)
	_, _, err = r.NextPair()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.False(t, errors.Is(err, io.EOF))
}

func TestParseIntList(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"1,2,3", []int{1, 2, 3}, false},
		{" 10 , -5 ", []int{10, -5}, false},
		{"1,,2", nil, true},
		{"a", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := toolutil.ParseIntList(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, toolutil.ErrBadToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, []string{"a", "b"}, toolutil.SplitList(" a,, b ,"))
}

func TestAlignTable(t *testing.T) {
	got := toolutil.AlignTable([][]string{
		{"v", "pre", "post"},
		{"10", "0", "12"},
		{"顶点", "1", "2"},
	})
	want := "" +
		"   v pre post\n" +
		"  10   0   12\n" +
		"顶点   1    2\n"
	assert.Equal(t, want, got)
}
