package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const volumesFixture = `{
	"items": [
		{
			"volumeInfo": {
				"title": "Dune",
				"authors": ["Frank Herbert"],
				"publisher": "Chilton Books",
				"publishedDate": "1965-08-01",
				"description": "Paul Atreides on Arrakis.",
				"pageCount": 412,
				"language": "en",
				"imageLinks": {"thumbnail": "https://img.example.com/dune.jpg"}
			},
			"saleInfo": {"buyLink": "https://books.example.com/dune"}
		},
		{
			"volumeInfo": {
				"title": "Good Omens",
				"authors": ["Terry Pratchett", "Neil Gaiman"]
			},
			"saleInfo": {}
		}
	]
}`

func newStubBookService(t *testing.T, handler http.HandlerFunc) *BookService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewBookService("test-key")
	svc.baseURL = srv.URL
	return svc
}

func TestBookSearchFlattensVolumes(t *testing.T) {
	svc := newStubBookService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dune", r.URL.Query().Get("q"))
		assert.Equal(t, "40", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(volumesFixture))
	})

	results, err := svc.Search(context.Background(), "dune")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Dune", results[0].Title)
	assert.Equal(t, "Frank Herbert", results[0].Authors)
	assert.Equal(t, "https://img.example.com/dune.jpg", results[0].Image)
	assert.Equal(t, "https://books.example.com/dune", results[0].BuyLink)
	assert.Equal(t, 412, results[0].PageCount)

	// Missing fields fall back to placeholders; multiple authors are joined.
	assert.Equal(t, "Terry Pratchett, Neil Gaiman", results[1].Authors)
	assert.Equal(t, "Unknown", results[1].Publisher)
	assert.Equal(t, "No description available", results[1].Description)
	assert.Empty(t, results[1].BuyLink)
}

func TestBookSearchEmptyCatalog(t *testing.T) {
	svc := newStubBookService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	results, err := svc.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBookSearchUpstreamError(t *testing.T) {
	svc := newStubBookService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := svc.Search(context.Background(), "dune")
	assert.Error(t, err)
}
