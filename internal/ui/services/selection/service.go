package selection

import (
	"arttable/internal/domain"
	"arttable/internal/eventbus"
	"arttable/internal/logic"
)

// Service handles selection logic
type Service struct {
	set   *Set
	store logic.RecordStore
	bus   Publisher
}

// NewService creates a new selection service. Only records known to store
// can be selected. bus may be nil.
func NewService(store logic.RecordStore, bus Publisher) *Service {
	return &Service{
		set:   NewSet(),
		store: store,
		bus:   bus,
	}
}

// Toggle adds or removes record. Adding is refused when the record was never
// fetched or when limit is set and already reached. It reports whether the
// selection changed.
func (s *Service) Toggle(record domain.Artwork, limit *int) bool {
	if s.set.Has(record.ID) {
		s.set.remove(record.ID)
		s.publish(nil, []int{record.ID})
		return true
	}

	if s.store != nil && !s.store.Has(record.ID) {
		return false
	}
	if limit != nil && s.set.Len() >= *limit {
		return false
	}

	s.set.add(record)
	s.publish([]int{record.ID}, nil)
	return true
}

// Replace discards the current selection and selects records
func (s *Service) Replace(records []domain.Artwork) {
	removed := s.set.IDs()
	s.set = NewSet()

	var added []int
	for _, r := range records {
		if s.store != nil && !s.store.Has(r.ID) {
			continue
		}
		if s.set.add(r) {
			added = append(added, r.ID)
		}
	}
	s.publish(added, removed)
}

// Clear removes every selected record
func (s *Service) Clear() {
	if s.set.Len() == 0 {
		return
	}
	removed := s.set.IDs()
	s.set = NewSet()
	s.publish(nil, removed)
}

// IsSelected checks if a record is selected
func (s *Service) IsSelected(id int) bool {
	return s.set.Has(id)
}

// GetSelected returns the selected records in selection order
func (s *Service) GetSelected() []domain.Artwork {
	return s.set.Records()
}

// GetSelectedIDs returns the selected ids in selection order
func (s *Service) GetSelectedIDs() []int {
	return s.set.IDs()
}

// GetCount returns the number of selected items
func (s *Service) GetCount() int {
	return s.set.Len()
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return s.set.Len() > 0
}

func (s *Service) publish(added, removed []int) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(eventbus.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   s.set.Len(),
	})
}
