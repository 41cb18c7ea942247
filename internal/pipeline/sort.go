package pipeline

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rshade/countrytable/internal/country"
)

// DefaultLocale is the collation locale used when none is configured.
var DefaultLocale = language.English //nolint:gochecknoglobals // language tags are values, not state.

// Sorter orders records by name using a locale's collation rules.
type Sorter struct {
	locale language.Tag
}

// NewSorter returns a Sorter for locale. language.Und selects root collation.
func NewSorter(locale language.Tag) *Sorter {
	return &Sorter{locale: locale}
}

// Locale returns the collation locale.
func (s *Sorter) Locale() language.Tag {
	return s.locale
}

// Sort returns a new slice sorted by name in the given order, and the order
// the following sort should use. Equal names keep their relative order.
func (s *Sorter) Sort(records []country.Record, order SortOrder) ([]country.Record, SortOrder) {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []country.Record{}
	}

	// Collators keep internal buffers; one per call keeps Sorter safe to share.
	col := collate.New(s.locale)
	slices.SortStableFunc(sorted, func(a, b country.Record) int {
		c := col.CompareString(a.Name, b.Name)
		if order == Desc {
			return -c
		}
		return c
	})

	return sorted, order.Toggle()
}

// ApplySort sorts with the default locale. See Sorter.Sort.
func ApplySort(records []country.Record, order SortOrder) ([]country.Record, SortOrder) {
	return NewSorter(DefaultLocale).Sort(records, order)
}
