package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avilaj/bookwish-be/internal/models"
)

const defaultBooksAPIURL = "https://www.googleapis.com/books/v1/volumes"

// BookSearchProvider defines the interface for the external catalog search.
type BookSearchProvider interface {
	Search(ctx context.Context, query string) ([]models.BookResult, error)
}

// BookService proxies search requests to the Google Books volumes API and
// flattens the responses into BookResult records.
type BookService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewBookService creates a new BookService.
func NewBookService(apiKey string) *BookService {
	return &BookService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBooksAPIURL,
		apiKey:  apiKey,
	}
}

// volume mirrors the subset of the Google Books response we read.
type volume struct {
	VolumeInfo struct {
		Title         string   `json:"title"`
		Authors       []string `json:"authors"`
		Publisher     string   `json:"publisher"`
		PublishedDate string   `json:"publishedDate"`
		Description   string   `json:"description"`
		PageCount     int      `json:"pageCount"`
		Language      string   `json:"language"`
		ImageLinks    struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
	SaleInfo struct {
		BuyLink string `json:"buyLink"`
	} `json:"saleInfo"`
}

type volumesResponse struct {
	Items []volume `json:"items"`
}

// Search queries the catalog for the given term and returns the flattened
// results. An unreachable catalog or a non-2xx response is an error; an
// empty result list is not.
func (s *BookService) Search(ctx context.Context, query string) ([]models.BookResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", "40")
	if s.apiKey != "" {
		params.Set("key", s.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("books API returned status %d", resp.StatusCode)
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	results := make([]models.BookResult, 0, len(payload.Items))
	for _, item := range payload.Items {
		info := item.VolumeInfo

		authors := "Unknown"
		if len(info.Authors) > 0 {
			authors = strings.Join(info.Authors, ", ")
		}

		results = append(results, models.BookResult{
			Title:         orUnknown(info.Title),
			Authors:       authors,
			Publisher:     orUnknown(info.Publisher),
			PublishedDate: orUnknown(info.PublishedDate),
			Image:         info.ImageLinks.Thumbnail,
			Description:   orDefault(info.Description, "No description available"),
			BuyLink:       item.SaleInfo.BuyLink,
			Language:      orUnknown(info.Language),
			PageCount:     info.PageCount,
		})
	}
	return results, nil
}

func orUnknown(s string) string {
	return orDefault(s, "Unknown")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
