package domain

// Artwork is a single catalog record as shown in the table
type Artwork struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	ArtistDisplay string `json:"artist_display"`
}

// Pagination is the paging envelope returned alongside a page of records
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// Page is one fetched page of artworks
type Page struct {
	Records    []Artwork
	TotalCount int
	Number     int // 1-based page number that was requested
	Limit      int
}
