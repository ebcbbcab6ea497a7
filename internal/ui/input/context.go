package input

import (
	"arttable/internal/ui/services/selection"
	"arttable/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State      *state.AppState
	Controller *selection.Controller
}

// CurrentIndex returns the row under the cursor
func (c *ModelContext) CurrentIndex() int {
	return c.State.Cursor
}

// TotalItems returns the number of rows on the current page
func (c *ModelContext) TotalItems() int {
	return len(c.State.Records)
}

// HasSelection returns true if any records are selected
func (c *ModelContext) HasSelection() bool {
	return c.Controller.Selection().HasSelection()
}

// SelectedCount returns the number of selected records
func (c *ModelContext) SelectedCount() int {
	return c.Controller.Selection().GetCount()
}

// CurrentPage returns the 0-based page index
func (c *ModelContext) CurrentPage() int {
	return c.State.Page.CurrentPage()
}

// PageCount returns the number of pages
func (c *ModelContext) PageCount() int {
	return c.State.Page.PageCount()
}

// DialogMax returns the largest count the row dialog accepts
func (c *ModelContext) DialogMax() int {
	if c.Controller.DialogVisible() {
		return c.Controller.Max()
	}
	return len(c.State.Records)
}

// Loading reports whether a page request is in flight
func (c *ModelContext) Loading() bool {
	return c.State.Loading
}
