package logic

// DefaultPageLinkSize is the number of page links shown around the current page
const DefaultPageLinkSize = 5

// PageEvent is a page change request: the index of the first row and the rows per page
type PageEvent struct {
	First int
	Rows  int
}

// PageState tracks the offset, page size, and total record count of a lazily loaded table
type PageState struct {
	First int // index of the first row on the current page, >= 0
	Rows  int // rows per page, > 0
	Total int // total records reported by the server, >= 0
}

// NewPageState creates a state positioned at the first page
func NewPageState(rows int) PageState {
	if rows <= 0 {
		rows = 1
	}
	return PageState{Rows: rows}
}

// Apply moves to the page described by e
func (p PageState) Apply(e PageEvent) PageState {
	if e.Rows > 0 {
		p.Rows = e.Rows
	}
	p.First = e.First
	if p.First < 0 {
		p.First = 0
	}
	return p
}

// RequestPage is the 1-based page number to request for the current offset
func (p PageState) RequestPage() int {
	return RequestPage(p.First, p.Rows)
}

// RequestPage computes floor(first/rows)+1
func RequestPage(first, rows int) int {
	if rows <= 0 {
		return 1
	}
	return first/rows + 1
}

// CurrentPage is the 0-based index of the current page
func (p PageState) CurrentPage() int {
	return p.RequestPage() - 1
}

// PageCount is the number of pages for Total records, at least 1
func (p PageState) PageCount() int {
	if p.Total <= 0 || p.Rows <= 0 {
		return 1
	}
	return (p.Total + p.Rows - 1) / p.Rows
}

// Goto returns the event for 0-based page index, or false when out of range
// or already on that page
func (p PageState) Goto(page int) (PageEvent, bool) {
	if page < 0 || page >= p.PageCount() || page == p.CurrentPage() {
		return PageEvent{}, false
	}
	return PageEvent{First: page * p.Rows, Rows: p.Rows}, true
}

// Next returns the event for the following page
func (p PageState) Next() (PageEvent, bool) {
	return p.Goto(p.CurrentPage() + 1)
}

// Prev returns the event for the preceding page
func (p PageState) Prev() (PageEvent, bool) {
	return p.Goto(p.CurrentPage() - 1)
}

// FirstPage returns the event for the first page
func (p PageState) FirstPage() (PageEvent, bool) {
	return p.Goto(0)
}

// LastPage returns the event for the last page
func (p PageState) LastPage() (PageEvent, bool) {
	return p.Goto(p.PageCount() - 1)
}

// WithRows returns the event for a rows-per-page change. The offset resets
// to the first page.
func (p PageState) WithRows(rows int) (PageEvent, bool) {
	if rows <= 0 || rows == p.Rows {
		return PageEvent{}, false
	}
	return PageEvent{First: 0, Rows: rows}, true
}

// ReportBounds returns the 1-based first and last row numbers shown and the total
func (p PageState) ReportBounds() (first, last, total int) {
	if p.Total <= 0 {
		return 0, 0, 0
	}
	first = p.First + 1
	last = p.First + p.Rows
	if last > p.Total {
		last = p.Total
	}
	if first > last {
		first = last
	}
	return first, last, p.Total
}

// PageLinks returns up to size 0-based page indexes centred on the current page
func (p PageState) PageLinks(size int) []int {
	if size <= 0 {
		size = DefaultPageLinkSize
	}
	count := p.PageCount()
	visible := size
	if count < visible {
		visible = count
	}

	current := p.CurrentPage()
	start := current - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible - 1
	if end > count-1 {
		end = count - 1
		start = end - visible + 1
		if start < 0 {
			start = 0
		}
	}

	links := make([]int, 0, visible)
	for i := start; i <= end; i++ {
		links = append(links, i)
	}
	return links
}

// CycleRows returns the option after (dir > 0) or before (dir < 0) current,
// wrapping around. An unknown current value yields the first option.
func CycleRows(options []int, current, dir int) int {
	if len(options) == 0 {
		return current
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return options[0]
	}
	n := len(options)
	if dir >= 0 {
		return options[(idx+1)%n]
	}
	return options[(idx-1+n)%n]
}
