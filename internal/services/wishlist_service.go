package services

import (
	"database/sql"

	"github.com/avilaj/bookwish-be/internal/models"
)

// WishlistServiceProvider defines the interface for wishlist services.
// All operations are scoped to the owning user.
type WishlistServiceProvider interface {
	ListBooks(userID int64) ([]models.WishlistBook, error)
	AddBook(userID int64, book models.WishlistBook) (int64, error)
	DeleteBook(userID, bookID int64) error
}

// WishlistService provides business logic for wishlist management.
type WishlistService struct {
	db *sql.DB
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(db *sql.DB) *WishlistService {
	return &WishlistService{db: db}
}

// ListBooks retrieves all wishlist entries belonging to the user.
func (s *WishlistService) ListBooks(userID int64) ([]models.WishlistBook, error) {
	rows, err := s.db.Query(`SELECT id, user_id, title, author, publisher, published_date,
		description, page_count, buylink, language, created_at
		FROM wishlist WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []models.WishlistBook
	for rows.Next() {
		var book models.WishlistBook
		if err := rows.Scan(&book.ID, &book.UserID, &book.Title, &book.Author, &book.Publisher,
			&book.PublishedDate, &book.Description, &book.PageCount, &book.BuyLink,
			&book.Language, &book.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

// AddBook saves a book to the user's wishlist and returns the new entry ID.
func (s *WishlistService) AddBook(userID int64, book models.WishlistBook) (int64, error) {
	stmt, err := s.db.Prepare(`INSERT INTO wishlist
		(user_id, title, author, publisher, published_date, description, page_count, buylink, language)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(userID, book.Title, book.Author, book.Publisher, book.PublishedDate,
		book.Description, book.PageCount, book.BuyLink, book.Language)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeleteBook removes a wishlist entry. Entries belonging to other users are
// invisible here, so deleting someone else's book reports ErrNotFound.
func (s *WishlistService) DeleteBook(userID, bookID int64) error {
	res, err := s.db.Exec("DELETE FROM wishlist WHERE id = ? AND user_id = ?", bookID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
