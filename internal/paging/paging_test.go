package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParam(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{"1", 1},
		{"", 0},
		{"0", 0},
		{"-2", 0},
		{"abc", 0},
		{"2.5", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseParam(tc.raw), "raw=%q", tc.raw)
	}
}

func TestNewWindowDefaults(t *testing.T) {
	w := NewWindow(0, 0, 6)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 6, w.Limit)

	w = NewWindow(-3, -1, 8)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 8, w.Limit)

	w = NewWindow(4, 10, 6)
	assert.Equal(t, 4, w.Page)
	assert.Equal(t, 10, w.Limit)
}

func TestWindowSkip(t *testing.T) {
	assert.Equal(t, int64(0), NewWindow(1, 6, 6).Skip())
	assert.Equal(t, int64(6), NewWindow(2, 6, 6).Skip())
	assert.Equal(t, int64(24), NewWindow(4, 8, 8).Skip())
}

func TestWindowTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{100, 8, 13},
	}
	for _, tc := range cases {
		w := NewWindow(1, tc.limit, tc.limit)
		assert.Equal(t, tc.want, w.TotalPages(tc.total), "total=%d limit=%d", tc.total, tc.limit)
	}
}

// ceil(total/limit) checked exhaustively over a small grid.
func TestWindowTotalPagesCeilProperty(t *testing.T) {
	for limit := 1; limit <= 10; limit++ {
		for total := int64(1); total <= 50; total++ {
			w := NewWindow(1, limit, limit)
			want := (total + int64(limit) - 1) / int64(limit)
			assert.Equal(t, want, w.TotalPages(total), "total=%d limit=%d", total, limit)
		}
	}
}
