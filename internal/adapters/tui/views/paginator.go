package views

// Paginator keeps a cursor over a list and the page that contains it
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPaginator creates a paginator; a non-positive size means 5
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Paginator{pageSize: pageSize}
}

// SetTotal sets the number of items, clamping the cursor into range
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	if p.cursor >= total {
		p.cursor = total - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.follow()
}

// SetPageSize changes how many items fit on a page
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.pageSize = size
	p.follow()
}

// Cursor returns the absolute cursor index
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the cursor up; it reports whether it moved
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.follow()
	return true
}

// CursorDown moves the cursor down; it reports whether it moved
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.totalItems-1 {
		return false
	}
	p.cursor++
	p.follow()
	return true
}

// VisibleRange returns the [start, end) indices of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.totalItems)
}

// TotalPages returns the number of pages, at least 1
func (p *Paginator) TotalPages() int {
	if p.totalItems == 0 {
		return 1
	}
	return (p.totalItems + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the 1-based page number
func (p *Paginator) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

// NextPage jumps to the first item of the next page
func (p *Paginator) NextPage() bool {
	if p.pageOffset+p.pageSize >= p.totalItems {
		return false
	}
	p.pageOffset += p.pageSize
	p.cursor = p.pageOffset
	return true
}

// PrevPage jumps to the first item of the previous page
func (p *Paginator) PrevPage() bool {
	if p.pageOffset == 0 {
		return false
	}
	p.pageOffset = max(p.pageOffset-p.pageSize, 0)
	p.cursor = p.pageOffset
	return true
}

// Reset returns to the first item
func (p *Paginator) Reset() {
	p.cursor = 0
	p.pageOffset = 0
}

// follow snaps the page to the one containing the cursor
func (p *Paginator) follow() {
	p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
}
