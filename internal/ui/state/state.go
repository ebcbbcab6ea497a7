package state

import (
	"arttable/internal/domain"
	"arttable/internal/ui/logic"
)

// AppState contains all the application state except the selection, which
// the selection controller owns
type AppState struct {
	// Page data
	Records         []domain.Artwork // records of the page on screen
	Page            logic.PageState  // offset, rows per page, and total
	PageSizeOptions []int            // choices for rows per page

	// Request tracking
	LatestSeq  uint64          // sequence number of the newest page request
	Pending    logic.PageEvent // page the newest request is for
	Loading    bool            // a page request is in flight
	HasLoaded  bool            // at least one page arrived
	RetryEvent *logic.PageEvent

	// UI state
	Cursor        int // row under the cursor on the current page
	ShowHelp      bool
	StatusMessage string // status bar message
	StatusIsError bool
}

// NewAppState creates a new application state positioned at the first page
func NewAppState(rows int, options []int) *AppState {
	opts := make([]int, len(options))
	copy(opts, options)
	return &AppState{
		Records:         make([]domain.Artwork, 0),
		Page:            logic.NewPageState(rows),
		PageSizeOptions: opts,
	}
}

// NextSeq starts a request for e and returns its sequence number
func (s *AppState) NextSeq(e logic.PageEvent) uint64 {
	s.LatestSeq++
	s.Pending = e
	s.Loading = true
	return s.LatestSeq
}

// IsLatest reports whether seq belongs to the newest request
func (s *AppState) IsLatest(seq uint64) bool {
	return seq == s.LatestSeq
}

// ApplyPage replaces the records and moves to the requested offset. The total
// comes from the response. Records beyond the requested row count are dropped.
func (s *AppState) ApplyPage(e logic.PageEvent, page *domain.Page) {
	if e != (logic.PageEvent{First: s.Page.First, Rows: s.Page.Rows}) {
		s.Cursor = 0
	}
	s.Page = s.Page.Apply(e)
	s.Loading = false
	s.HasLoaded = true
	s.RetryEvent = nil
	if page == nil {
		s.Records = s.Records[:0]
		s.Page.Total = 0
	} else {
		s.Records = BoundRecords(page.Records, s.Page.Rows)
		s.Page.Total = page.TotalCount
	}
	s.ClampCursor()
}

// BoundRecords returns at most rows records
func BoundRecords(records []domain.Artwork, rows int) []domain.Artwork {
	if rows >= 0 && len(records) > rows {
		return records[:rows]
	}
	return records
}

// FailPage ends the in flight request without touching the data on screen
func (s *AppState) FailPage(e logic.PageEvent, err error) {
	s.Loading = false
	s.RetryEvent = &e
	s.SetError(err)
}

// CurrentRecord returns the record under the cursor
func (s *AppState) CurrentRecord() (domain.Artwork, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Records) {
		return domain.Artwork{}, false
	}
	return s.Records[s.Cursor], true
}

// RecordAt returns the record at index i of the current page
func (s *AppState) RecordAt(i int) (domain.Artwork, bool) {
	if i < 0 || i >= len(s.Records) {
		return domain.Artwork{}, false
	}
	return s.Records[i], true
}

// MoveCursor moves the cursor by delta rows, bounded by the page
func (s *AppState) MoveCursor(delta int) {
	s.Cursor += delta
	s.ClampCursor()
}

// ClampCursor keeps the cursor on an existing row
func (s *AppState) ClampCursor() {
	if s.Cursor >= len(s.Records) {
		s.Cursor = len(s.Records) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// SetStatus shows an informational message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows err in the status bar
func (s *AppState) SetError(err error) {
	if err == nil {
		return
	}
	s.StatusMessage = err.Error()
	s.StatusIsError = true
}

// ClearStatus removes the status message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
