// Package pagination computes the page-number window a listing should
// display and clamps navigation requests to valid bounds.
package pagination

import "strconv"

// Entry is one slot in a pagination window: a page number, or an ellipsis
// marker standing in for a run of omitted pages.
type Entry struct {
	Page     int
	Ellipsis bool
}

// String renders the entry the way a pager displays it.
func (e Entry) String() string {
	if e.Ellipsis {
		return "…"
	}
	return strconv.Itoa(e.Page)
}

// PageCount returns the number of pages needed for total items at the
// given page size. An empty collection still occupies one (empty) page.
func PageCount(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 1 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Clamp forces page into [1, PageCount(total, pageSize)].
func Clamp(page, pageSize, total int) int {
	if page < 1 {
		return 1
	}
	if count := PageCount(total, pageSize); page > count {
		return count
	}
	return page
}

// BuildRange computes the window of page entries to display around page.
// siblingCount is how many neighbors flank the current page before an
// ellipsis appears. The first and last pages are always present; when the
// whole range fits (siblingCount*2+5 slots or fewer) no ellipsis is
// emitted.
func BuildRange(page, pageSize, total, siblingCount int) []Entry {
	if siblingCount < 0 {
		siblingCount = 0
	}
	pageCount := PageCount(total, pageSize)
	page = Clamp(page, pageSize, total)

	totalNumbers := siblingCount*2 + 5
	if pageCount <= totalNumbers {
		return numbered(1, pageCount)
	}

	left := page - siblingCount
	if left < 1 {
		left = 1
	}
	right := page + siblingCount
	if right > pageCount {
		right = pageCount
	}
	showLeftDots := left > 2
	showRightDots := right < pageCount-1
	if !showLeftDots {
		left = 2
	}
	if !showRightDots {
		right = pageCount - 1
	}

	entries := make([]Entry, 0, totalNumbers)
	entries = append(entries, Entry{Page: 1})
	if showLeftDots {
		entries = append(entries, Entry{Ellipsis: true})
	}
	entries = append(entries, numbered(left, right)...)
	if showRightDots {
		entries = append(entries, Entry{Ellipsis: true})
	}
	return append(entries, Entry{Page: pageCount})
}

func numbered(from, to int) []Entry {
	entries := make([]Entry, 0, to-from+1)
	for p := from; p <= to; p++ {
		entries = append(entries, Entry{Page: p})
	}
	return entries
}
