package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"default", NewParams(), false},
		{"page zero is allowed", Params{Page: 0, PageSize: 10}, false},
		{"negative page is allowed", Params{Page: -3, PageSize: 10}, false},
		{"zero page size", Params{Page: 1, PageSize: 0}, true},
		{"negative page size", Params{Page: 1, PageSize: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPageSize)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 0, TotalPages(25, 0))
}

func TestPageNumbers(t *testing.T) {
	assert.Equal(t, []int{}, PageNumbers(0))
	assert.Equal(t, []int{}, PageNumbers(-1))
	assert.Equal(t, []int{1, 2, 3}, PageNumbers(3))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		start, end int
		wantLo     int
		wantHi     int
	}{
		{"inside", 25, 10, 20, 10, 20},
		{"partial last page", 25, 20, 30, 20, 25},
		{"past the end", 25, 30, 40, 25, 25},
		{"page zero", 25, -10, 0, 15, 15},
		{"negative page counts from end", 25, -20, -10, 5, 15},
		{"far negative", 25, -100, -90, 0, 0},
		{"empty input", 0, 0, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := Window(tt.n, tt.start, tt.end)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}

func TestApply(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{"page 1", Params{Page: 1, PageSize: 10}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"page 3 is partial", Params{Page: 3, PageSize: 10}, []int{20, 21, 22, 23, 24}},
		{"page 4 is empty, not capped", Params{Page: 4, PageSize: 10}, []int{}},
		{"page 0 is empty", Params{Page: 0, PageSize: 10}, []int{}},
		{"page -1 wraps like array slicing", Params{Page: -1, PageSize: 10}, []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14}},
		{"zero page size", Params{Page: 1, PageSize: 0}, []int{}},
		{"max int page is empty", Params{Page: math.MaxInt, PageSize: 10}, []int{}},
		{"min int page is empty", Params{Page: math.MinInt, PageSize: 10}, []int{}},
		{"huge page with huge size is empty", Params{Page: math.MaxInt / 2, PageSize: math.MaxInt / 2}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(items, tt.params)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("result is a copy", func(t *testing.T) {
		got := Apply(items, Params{Page: 1, PageSize: 2})
		got[0] = 99
		assert.Equal(t, 0, items[0])
	})

	t.Run("pages cover every item exactly once", func(t *testing.T) {
		for _, total := range []int{0, 1, 9, 10, 11, 25, 100} {
			sum := 0
			for page := 1; page <= TotalPages(total, 10); page++ {
				sum += len(Apply(items[:min(total, len(items))], Params{Page: page, PageSize: 10}))
			}
			assert.Equal(t, min(total, len(items)), sum, "total=%d", total)
		}
	})
}

func TestParams_StartEndSaturate(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		wantStart int
		wantEnd   int
	}{
		{"ordinary page", Params{Page: 3, PageSize: 10}, 20, 30},
		{"negative page", Params{Page: -1, PageSize: 10}, -20, -10},
		{"max int page", Params{Page: math.MaxInt, PageSize: 10}, math.MaxInt, math.MaxInt},
		{"min int page", Params{Page: math.MinInt, PageSize: 10}, math.MinInt, math.MinInt},
		{"min int page of size one", Params{Page: math.MinInt, PageSize: 1}, math.MinInt, math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStart, tt.params.Start())
			assert.Equal(t, tt.wantEnd, tt.params.End())
		})
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		totalCount int
		want       Meta
	}{
		{
			name:       "first page",
			params:     Params{Page: 1, PageSize: 10},
			totalCount: 25,
			want: Meta{
				CurrentPage: 1, PageSize: 10, TotalPages: 3, TotalItems: 25,
				PageNumbers: []int{1, 2, 3}, HasPrevious: false, HasNext: true,
			},
		},
		{
			name:       "last page",
			params:     Params{Page: 3, PageSize: 10},
			totalCount: 25,
			want: Meta{
				CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 25,
				PageNumbers: []int{1, 2, 3}, HasPrevious: true, HasNext: false,
			},
		},
		{
			name:       "beyond last page",
			params:     Params{Page: 4, PageSize: 10},
			totalCount: 25,
			want: Meta{
				CurrentPage: 4, PageSize: 10, TotalPages: 3, TotalItems: 25,
				PageNumbers: []int{1, 2, 3}, HasPrevious: true, HasNext: false,
			},
		},
		{
			name:       "empty",
			params:     Params{Page: 1, PageSize: 10},
			totalCount: 0,
			want: Meta{
				CurrentPage: 1, PageSize: 10, TotalPages: 0, TotalItems: 0,
				PageNumbers: []int{}, HasPrevious: false, HasNext: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMeta(tt.params, tt.totalCount)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, NewMeta(Params{Page: 2, PageSize: 10}, 25).InRange())
	assert.False(t, NewMeta(Params{Page: 4, PageSize: 10}, 25).InRange())
	assert.False(t, NewMeta(Params{Page: 0, PageSize: 10}, 25).InRange())
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"asc", "asc", false},
		{"DESC", "desc", false},
		{" asc ", "asc", false},
		{"", "", true},
		{"up", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortOrder(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSortOrder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
