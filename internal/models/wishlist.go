package models

import "time"

// WishlistBook is a book saved to a user's wishlist.
type WishlistBook struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Publisher     string    `json:"publisher"`
	PublishedDate string    `json:"published_date"`
	Description   string    `json:"description"`
	PageCount     int       `json:"page_count"`
	BuyLink       string    `json:"buylink"`
	Language      string    `json:"language"`
	CreatedAt     time.Time `json:"created_at"`
}
