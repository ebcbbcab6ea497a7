package logic

import "arttable/internal/domain"

// RecordStore remembers every artwork that has been fetched in this session
type RecordStore interface {
	GetRecord(id int) (domain.Artwork, bool)
	AddRecords(records []domain.Artwork)
	Has(id int) bool
	Len() int
}
