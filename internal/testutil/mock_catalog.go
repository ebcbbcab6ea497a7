// Package testutil provides testing utilities for the catalog client and UI.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"time"

	"arttable/internal/domain"
)

// MockCatalogResponse overrides the response for the next requests.
type MockCatalogResponse struct {
	StatusCode int
	Body       string
	Delay      time.Duration
}

// MockCatalog is a configurable mock artworks API for testing.
// By default it serves Total synthetic records, paged by the page/limit query.
type MockCatalog struct {
	server *httptest.Server
	mu     sync.RWMutex

	Total    int
	override *MockCatalogResponse

	// Tracking
	RequestCount int
	LastQuery    url.Values
	LastHeader   http.Header
}

// NewMockCatalog creates a mock catalog serving total records.
func NewMockCatalog(total int) *MockCatalog {
	mock := &MockCatalog{Total: total}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastQuery = r.URL.Query()
		mock.LastHeader = r.Header.Clone()
		override := mock.override
		mock.mu.Unlock()

		if override != nil {
			if override.Delay > 0 {
				time.Sleep(override.Delay)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(override.StatusCode)
			fmt.Fprint(w, override.Body)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the API base URL of the mock.
func (m *MockCatalog) URL() string {
	return m.server.URL + "/api/v1"
}

// Close shuts down the server.
func (m *MockCatalog) Close() {
	m.server.Close()
}

// SetResponse makes every following request return resp. Nil restores paging.
func (m *MockCatalog) SetResponse(resp *MockCatalogResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.override = resp
}

// Requests returns the number of requests served so far.
func (m *MockCatalog) Requests() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// Query returns the query of the last request.
func (m *MockCatalog) Query() url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastQuery
}

// Header returns the headers of the last request.
func (m *MockCatalog) Header() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastHeader
}

func (m *MockCatalog) defaultHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/v1/artworks" {
		http.NotFound(w, r)
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 12
	}

	m.mu.RLock()
	total := m.Total
	m.mu.RUnlock()

	body := struct {
		Pagination domain.Pagination `json:"pagination"`
		Data       []domain.Artwork  `json:"data"`
	}{
		Pagination: domain.Pagination{
			Total:       total,
			Limit:       limit,
			Offset:      (page - 1) * limit,
			TotalPages:  (total + limit - 1) / limit,
			CurrentPage: page,
		},
		Data: Artworks((page-1)*limit, limit, total),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// Artworks returns synthetic records for offset..offset+limit, capped at total.
// Record ids are offset+1 based so they are unique across pages.
func Artworks(offset, limit, total int) []domain.Artwork {
	records := make([]domain.Artwork, 0, limit)
	for i := offset; i < offset+limit && i < total; i++ {
		records = append(records, domain.Artwork{
			ID:            i + 1,
			Title:         fmt.Sprintf("Artwork %d", i+1),
			ArtistDisplay: fmt.Sprintf("Artist %d", i%7),
		})
	}
	return records
}
