package pagination

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Defaults and sort orders.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	SortOrderAsc    = "asc"
	SortOrderDesc   = "desc"
)

// Validation errors.
var (
	ErrInvalidPageSize  = errors.New("page size must be >= 1")
	ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")
)

// Params is a page request. Page is deliberately unrestricted: zero, negative
// and past-the-end pages are valid and produce an empty or partial window.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of items per page.
	PageSize int
}

// NewParams returns the first page with the default size.
func NewParams() Params {
	return Params{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Validate checks the page size. The page number is not validated.
func (p Params) Validate() error {
	if p.PageSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// Start is the zero-based index of the first item of the page. It may be
// negative for pages below 1. Results beyond the int range saturate.
func (p Params) Start() int {
	prev := p.Page - 1
	if p.Page == math.MinInt {
		prev = math.MinInt
	}
	return saturatingMul(prev, p.PageSize)
}

// End is the exclusive index one past the last item of the page.
func (p Params) End() int {
	return saturatingMul(p.Page, p.PageSize)
}

// saturatingMul returns a*b clamped to [math.MinInt, math.MaxInt] for b > 0.
func saturatingMul(a, b int) int {
	if b <= 0 {
		return a * b
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	if a < math.MinInt/b {
		return math.MinInt
	}
	return a * b
}

// TotalPages returns ceil(totalItems / pageSize), 0 for no items.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// PageNumbers returns 1..totalPages, or an empty slice.
func PageNumbers(totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	numbers := make([]int, totalPages)
	for i := range numbers {
		numbers[i] = i + 1
	}
	return numbers
}

// ParseSortOrder normalises a sort order flag value.
func ParseSortOrder(s string) (string, error) {
	order := strings.ToLower(strings.TrimSpace(s))
	switch order {
	case SortOrderAsc, SortOrderDesc:
		return order, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, s)
	}
}
