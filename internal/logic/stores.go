package logic

import (
	"sync"

	"arttable/internal/domain"
)

// MemoryRecordStore is an in-memory implementation of RecordStore.
// Records are only ever added; a later fetch of the same id replaces it.
type MemoryRecordStore struct {
	mu      sync.RWMutex
	records map[int]domain.Artwork
}

// NewMemoryRecordStore creates a new memory-based record store
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		records: make(map[int]domain.Artwork),
	}
}

func (s *MemoryRecordStore) GetRecord(id int) (domain.Artwork, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	return r, ok
}

func (s *MemoryRecordStore) AddRecords(records []domain.Artwork) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.records[r.ID] = r
	}
}

func (s *MemoryRecordStore) Has(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[id]
	return ok
}

func (s *MemoryRecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
