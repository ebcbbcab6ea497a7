package selection

import (
	"arttable/internal/domain"
	"arttable/internal/eventbus"
)

// Publisher is the part of the event bus the selection services need
type Publisher interface {
	Publish(event eventbus.DomainEvent)
}

// Mode is the state of the bulk selection state machine
type Mode int

const (
	// Idle means no bulk selection dialog is open
	Idle Mode = iota
	// DialogOpen means the user is entering a row count
	DialogOpen
)

func (m Mode) String() string {
	switch m {
	case DialogOpen:
		return "dialog-open"
	default:
		return "idle"
	}
}

// Set is the set of selected records, keyed by id, in selection order
type Set struct {
	order   []int
	records map[int]domain.Artwork
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{records: make(map[int]domain.Artwork)}
}

// Has reports whether id is selected
func (s *Set) Has(id int) bool {
	_, ok := s.records[id]
	return ok
}

// Len is the number of selected records
func (s *Set) Len() int {
	return len(s.order)
}

// Records returns the selected records in selection order
func (s *Set) Records() []domain.Artwork {
	out := make([]domain.Artwork, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// IDs returns the selected ids in selection order
func (s *Set) IDs() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Set) add(r domain.Artwork) bool {
	if s.Has(r.ID) {
		return false
	}
	s.records[r.ID] = r
	s.order = append(s.order, r.ID)
	return true
}

func (s *Set) remove(id int) bool {
	if !s.Has(id) {
		return false
	}
	delete(s.records, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
