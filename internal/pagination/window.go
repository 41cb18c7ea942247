package pagination

// Window resolves [start, end) against a sequence of length n with
// JavaScript Array.prototype.slice rules: negative bounds count back from the
// end, bounds are truncated to [0, n], and an inverted range is empty.
//
//nolint:nonamedreturns // Named returns document the pair.
func Window(n, start, end int) (lo, hi int) {
	lo = resolveIndex(n, start)
	hi = resolveIndex(n, end)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func resolveIndex(n, i int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
		return i
	}
	if i > n {
		return n
	}
	return i
}

// Apply returns a copy of the page of items selected by p. It never returns
// nil and never fails; a page outside the data yields an empty slice.
func Apply[T any](items []T, p Params) []T {
	if p.PageSize <= 0 {
		return []T{}
	}
	lo, hi := Window(len(items), p.Start(), p.End())
	page := make([]T, hi-lo)
	copy(page, items[lo:hi])
	return page
}
