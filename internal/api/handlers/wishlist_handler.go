package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avilaj/bookwish-be/internal/models"
	"github.com/avilaj/bookwish-be/internal/services"
	"github.com/rs/zerolog/log"
)

// WishlistHandler handles HTTP requests for the user's wishlist.
type WishlistHandler struct {
	service services.WishlistServiceProvider
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service services.WishlistServiceProvider) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// AddBookPayload defines the structure for wishlist insertion requests.
type AddBookPayload struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Publisher     string `json:"publisher"`
	PublishedDate string `json:"published_date"`
	Description   string `json:"description"`
	PageCount     int    `json:"page_count"`
	BuyLink       string `json:"buylink"`
	Language      string `json:"language"`
}

// List returns every book on the authenticated user's wishlist.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	books, err := h.service.ListBooks(user.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to list wishlist")
		http.Error(w, "Failed to retrieve wishlist", http.StatusInternalServerError)
		return
	}
	if len(books) == 0 {
		http.Error(w, "No books found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]models.WishlistBook{"books": books})
}

// Add saves a book to the authenticated user's wishlist.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload AddBookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	id, err := h.service.AddBook(user.ID, models.WishlistBook{
		Title:         payload.Title,
		Author:        payload.Author,
		Publisher:     payload.Publisher,
		PublishedDate: payload.PublishedDate,
		Description:   payload.Description,
		PageCount:     payload.PageCount,
		BuyLink:       payload.BuyLink,
		Language:      payload.Language,
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to add wishlist book")
		http.Error(w, "Failed to add book", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"message": "Book added", "book_id": id})
}

// Delete removes a book from the authenticated user's wishlist.
func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid book ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteBook(user.ID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "No books found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("user_id", user.ID).Int64("book_id", id).Msg("Failed to delete wishlist book")
		http.Error(w, "Failed to delete book", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"detail": "Book deleted"})
}
