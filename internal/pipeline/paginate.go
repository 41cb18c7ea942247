package pipeline

import (
	"github.com/rshade/countrytable/internal/country"
	"github.com/rshade/countrytable/internal/pagination"
)

// Page is the output of Paginate.
type Page struct {
	Rows        []country.Record
	TotalPages  int
	PageNumbers []int
}

// Paginate selects the rows of currentPage. Page 0 and pages past the end
// yield no rows, negative pages index back from the end, and nothing is
// clamped or rejected.
func Paginate(filtered []country.Record, currentPage, itemsPerPage int) Page {
	params := pagination.Params{Page: currentPage, PageSize: itemsPerPage}
	totalPages := pagination.TotalPages(len(filtered), itemsPerPage)
	return Page{
		Rows:        pagination.Apply(filtered, params),
		TotalPages:  totalPages,
		PageNumbers: pagination.PageNumbers(totalPages),
	}
}
