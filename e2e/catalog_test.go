//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
)

// newCatalogServer serves total synthetic artworks at /api/v1/artworks
func newCatalogServer(total int) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/artworks", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if page < 1 || limit < 1 {
			http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
			return
		}

		offset := (page - 1) * limit
		data := []map[string]any{}
		for i := offset; i < offset+limit && i < total; i++ {
			data = append(data, map[string]any{
				"id":             i + 1,
				"title":          fmt.Sprintf("Artwork %d", i+1),
				"artist_display": fmt.Sprintf("Artist %d", i%7),
			})
		}
		pages := (total + limit - 1) / limit

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"pagination": map[string]any{
				"total":        total,
				"limit":        limit,
				"offset":       offset,
				"total_pages":  pages,
				"current_page": page,
			},
			"data": data,
		})
	})
	return httptest.NewServer(mux)
}
