package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested    EventType = "PageRequested"
	EventPageLoaded       EventType = "PageLoaded"
	EventPageFailed       EventType = "PageFailed"
	EventStaleResponse    EventType = "StaleResponse"
	EventSelectionChanged EventType = "SelectionChanged"
	EventDialogOpened     EventType = "DialogOpened"
	EventDialogClosed     EventType = "DialogClosed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent is emitted when a page fetch is issued
type PageRequestedEvent struct {
	Seq   uint64
	Page  int
	Limit int
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PageLoadedEvent is emitted when a page fetch is applied to the table
type PageLoadedEvent struct {
	Seq        uint64
	Page       int
	Count      int
	TotalCount int
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// PageFailedEvent is emitted when a page fetch fails
type PageFailedEvent struct {
	Seq  uint64
	Page int
	Err  error
}

func (e PageFailedEvent) Type() EventType { return EventPageFailed }

// StaleResponseEvent is emitted when a response arrives after a newer request was issued
type StaleResponseEvent struct {
	Seq    uint64
	Latest uint64
}

func (e StaleResponseEvent) Type() EventType { return EventStaleResponse }

// SelectionChangedEvent is emitted whenever the selected set changes
type SelectionChangedEvent struct {
	Added   []int
	Removed []int
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// DialogOpenedEvent is emitted when the bulk selection dialog opens
type DialogOpenedEvent struct {
	Max int
}

func (e DialogOpenedEvent) Type() EventType { return EventDialogOpened }

// DialogClosedEvent is emitted when the bulk selection dialog closes
type DialogClosedEvent struct {
	Submitted bool
	Count     int
}

func (e DialogClosedEvent) Type() EventType { return EventDialogClosed }
