package pipeline

import (
	"fmt"

	"github.com/rshade/countrytable/internal/pagination"
)

// ItemsPerPage is the fixed page size of the country table.
const ItemsPerPage = 10

// SortOrder is the direction the next sort applies.
type SortOrder int

const (
	// Asc sorts A to Z.
	Asc SortOrder = iota
	// Desc sorts Z to A.
	Desc
)

// String returns "asc" or "desc".
func (o SortOrder) String() string {
	if o == Desc {
		return pagination.SortOrderDesc
	}
	return pagination.SortOrderAsc
}

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == Asc {
		return Desc
	}
	return Asc
}

// MarshalText implements encoding.TextMarshaler.
func (o SortOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ParseSortOrder parses "asc" or "desc" (case-insensitive).
func ParseSortOrder(s string) (SortOrder, error) {
	order, err := pagination.ParseSortOrder(s)
	if err != nil {
		return Asc, fmt.Errorf("parsing sort order: %w", err)
	}
	if order == pagination.SortOrderDesc {
		return Desc, nil
	}
	return Asc, nil
}

// ViewState is the user-controlled state of the table.
type ViewState struct {
	SortOrder        SortOrder
	SizeFilterText   string
	RegionFilterText string
	CurrentPage      int
	ItemsPerPage     int
}

// NewViewState returns the initial state: ascending, no filters, page 1.
func NewViewState() ViewState {
	return ViewState{
		SortOrder:    Asc,
		CurrentPage:  pagination.DefaultPage,
		ItemsPerPage: ItemsPerPage,
	}
}
