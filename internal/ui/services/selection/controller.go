package selection

import (
	"arttable/internal/domain"
	"arttable/internal/eventbus"
)

// Controller is the bulk selection state machine. It owns the requested row
// count and mediates between row toggles and the "select first N" dialog.
//
//	Idle --header--> DialogOpen --header/cancel/submit--> Idle
type Controller struct {
	sel       *Service
	bus       Publisher
	mode      Mode
	requested *int
	max       int // upper bound for the requested count while the dialog is open
}

// NewController creates a controller in the Idle state. bus may be nil.
func NewController(sel *Service, bus Publisher) *Controller {
	return &Controller{sel: sel, bus: bus}
}

// Mode returns the current state
func (c *Controller) Mode() Mode {
	return c.mode
}

// DialogVisible reports whether the dialog is open
func (c *Controller) DialogVisible() bool {
	return c.mode == DialogOpen
}

// RequestedCount returns the count entered in the dialog, or nil
func (c *Controller) RequestedCount() *int {
	if c.requested == nil {
		return nil
	}
	n := *c.requested
	return &n
}

// Max is the largest count the dialog accepts
func (c *Controller) Max() int {
	return c.max
}

// Selection returns the underlying selection service
func (c *Controller) Selection() *Service {
	return c.sel
}

// HeaderToggle opens the dialog from Idle, and cancels it when open.
// pageLen is the number of records on the loaded page.
func (c *Controller) HeaderToggle(pageLen int) {
	if c.mode == DialogOpen {
		c.Cancel()
		return
	}
	c.Open(pageLen)
}

// Open enters DialogOpen with an empty count bounded by pageLen
func (c *Controller) Open(pageLen int) {
	if c.mode == DialogOpen {
		return
	}
	if pageLen < 0 {
		pageLen = 0
	}
	c.mode = DialogOpen
	c.requested = nil
	c.max = pageLen
	if c.bus != nil {
		c.bus.Publish(eventbus.DialogOpenedEvent{Max: pageLen})
	}
}

// SetRequested stores the dialog value clamped to [0, Max]. Nil clears it.
func (c *Controller) SetRequested(n *int) {
	if c.mode != DialogOpen {
		return
	}
	if n == nil {
		c.requested = nil
		return
	}
	v := Clamp(*n, 0, c.max)
	c.requested = &v
}

// Cancel closes the dialog without touching the selection
func (c *Controller) Cancel() {
	if c.mode != DialogOpen {
		return
	}
	c.close(false, 0)
}

// Submit replaces the selection with the first min(N, len(page)) records of
// page when the requested count N is positive. Otherwise the selection is
// kept. The dialog closes either way.
func (c *Controller) Submit(page []domain.Artwork) {
	if c.mode != DialogOpen {
		return
	}
	if c.requested == nil || *c.requested <= 0 {
		c.close(true, 0)
		return
	}

	n := FirstN(*c.requested, len(page))
	c.sel.Replace(page[:n])
	c.close(true, n)
}

// Cap is the selection size limit for row toggles, if a bulk request is active
func (c *Controller) Cap() *int {
	return c.RequestedCount()
}

// ToggleRow toggles one record, honouring the active cap
func (c *Controller) ToggleRow(record domain.Artwork) bool {
	return c.sel.Toggle(record, c.Cap())
}

func (c *Controller) close(submitted bool, count int) {
	c.mode = Idle
	c.requested = nil
	c.max = 0
	if c.bus != nil {
		c.bus.Publish(eventbus.DialogClosedEvent{Submitted: submitted, Count: count})
	}
}

// FirstN returns min(n, available), never negative
func FirstN(n, available int) int {
	return Clamp(n, 0, available)
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
