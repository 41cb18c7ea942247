package pagination

// Meta contains metadata about a paginated result.
type Meta struct {
	CurrentPage int   `json:"current_page" yaml:"current_page"`
	PageSize    int   `json:"page_size"    yaml:"page_size"`
	TotalPages  int   `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int   `json:"total_items"  yaml:"total_items"`
	PageNumbers []int `json:"page_numbers" yaml:"page_numbers"`
	HasPrevious bool  `json:"has_previous" yaml:"has_previous"`
	HasNext     bool  `json:"has_next"     yaml:"has_next"`
}

// NewMeta builds metadata for p over totalItems. CurrentPage is reported as
// requested, even when it lies outside 1..TotalPages.
func NewMeta(p Params, totalItems int) Meta {
	totalPages := TotalPages(totalItems, p.PageSize)
	return Meta{
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PageNumbers: PageNumbers(totalPages),
		HasPrevious: p.Page > 1 && totalPages > 0,
		HasNext:     p.Page < totalPages,
	}
}

// InRange reports whether the current page has any items.
func (m Meta) InRange() bool {
	return m.CurrentPage >= 1 && m.CurrentPage <= m.TotalPages
}
