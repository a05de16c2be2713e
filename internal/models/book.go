package models

// BookResult is a single flattened result from the external book catalog.
type BookResult struct {
	Title         string `json:"title"`
	Authors       string `json:"authors"`
	Publisher     string `json:"publisher"`
	PublishedDate string `json:"published_date"`
	Image         string `json:"image,omitempty"`
	Description   string `json:"description"`
	BuyLink       string `json:"buy_link,omitempty"`
	Language      string `json:"language"`
	PageCount     int    `json:"page_count"`
}
