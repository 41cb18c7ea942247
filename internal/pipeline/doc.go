// Package pipeline implements the country table's data pipeline.
//
// Three pure stages turn the canonical record list into what a table shows:
//
//	ApplyFilter  size and region filters, evaluated per record
//	ApplySort    stable, locale-collated sort by name; returns the next order
//	Paginate     fixed-size page window plus page numbers
//
// Controller owns the canonical list and the ViewState, and is the only
// thing that mutates either. Sorting rewrites the canonical order; filters
// and page changes only affect the derived View.
package pipeline
