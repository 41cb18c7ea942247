// Package pagination provides page arithmetic shared by the pipeline and the CLI.
//
// This package contains:
//   - Params: page number and page size, with offset/limit derivation
//   - Meta: response metadata (total pages, page numbers, has next/previous)
//   - Window/Apply: slicing that never errors or clamps to the last page;
//     a page past the end is simply empty
//   - ParseSortOrder: validation for "asc"/"desc" flags
package pagination
