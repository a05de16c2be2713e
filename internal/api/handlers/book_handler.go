package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avilaj/bookwish-be/internal/services"
	"github.com/rs/zerolog/log"
)

// BookHandler handles HTTP requests for the external catalog search.
type BookHandler struct {
	service services.BookSearchProvider
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(service services.BookSearchProvider) *BookHandler {
	return &BookHandler{service: service}
}

// Search proxies a catalog search for the authenticated user.
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		http.Error(w, "Query parameter is required", http.StatusBadRequest)
		return
	}

	results, err := h.service.Search(r.Context(), query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("Book catalog request failed")
		http.Error(w, "Error requesting data: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
