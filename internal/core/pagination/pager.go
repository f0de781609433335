package pagination

// Pager tracks the current position in a paged listing. Requests outside
// [1, PageCount] are clamped; a request for the page already shown is a
// no-op and fires no change notification.
type Pager struct {
	page         int
	pageSize     int
	total        int
	siblingCount int
	onChange     func(page, pageSize int)
}

// NewPager returns a pager positioned on page 1.
func NewPager(pageSize, total, siblingCount int) *Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	if siblingCount < 0 {
		siblingCount = 0
	}
	return &Pager{page: 1, pageSize: pageSize, total: total, siblingCount: siblingCount}
}

// OnChange registers the callback fired after every effective page change.
func (p *Pager) OnChange(fn func(page, pageSize int)) {
	p.onChange = fn
}

// Page returns the current page.
func (p *Pager) Page() int {
	return p.page
}

// PageSize returns the page size.
func (p *Pager) PageSize() int {
	return p.pageSize
}

// PageCount returns the last valid page.
func (p *Pager) PageCount() int {
	return PageCount(p.total, p.pageSize)
}

// SetTotal updates the item count, pulling the current page back into
// range if the collection shrank underneath it.
func (p *Pager) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.page = Clamp(p.page, p.pageSize, p.total)
}

// GoTo moves to the requested page, clamped into range, and returns the
// page actually landed on.
func (p *Pager) GoTo(page int) int {
	page = Clamp(page, p.pageSize, p.total)
	if page == p.page {
		return p.page
	}
	p.page = page
	if p.onChange != nil {
		p.onChange(p.page, p.pageSize)
	}
	return p.page
}

// Next advances one page, subject to clamping.
func (p *Pager) Next() int {
	return p.GoTo(p.page + 1)
}

// Prev steps back one page, subject to clamping.
func (p *Pager) Prev() int {
	return p.GoTo(p.page - 1)
}

// Window returns the page entries to display for the current position.
func (p *Pager) Window() []Entry {
	return BuildRange(p.page, p.pageSize, p.total, p.siblingCount)
}
