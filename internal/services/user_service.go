package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/avilaj/bookwish-be/internal/auth"
	"github.com/avilaj/bookwish-be/internal/models"
)

// Sentinel errors returned by the persistence-backed services.
var (
	ErrNotFound      = errors.New("services: not found")
	ErrUsernameTaken = errors.New("services: username already exists")
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(username, password string) (models.User, error)
	DeleteUser(id int64) error
	FindByUsername(username string) (models.User, error)
	FindByID(id int64) (models.User, error)
}

// UserService provides business logic for user management.
type UserService struct {
	db     *sql.DB
	hasher *auth.Hasher
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, hasher *auth.Hasher) *UserService {
	return &UserService{db: db, hasher: hasher}
}

// FindByUsername retrieves a single user by username, including the password
// hash. Returns ErrNotFound when no such user exists.
func (s *UserService) FindByUsername(username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// FindByID retrieves a single user by their ID.
func (s *UserService) FindByID(id int64) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateUser creates a new user, hashing their password. Returns
// ErrUsernameTaken when the username is already registered.
func (s *UserService) CreateUser(username, password string) (models.User, error) {
	if _, err := s.FindByUsername(username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	stmt, err := s.db.Prepare("INSERT INTO users(username, password_hash) VALUES(?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(username, hashed)
	if err != nil {
		return models.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}

	return s.FindByID(id)
}

// DeleteUser removes a user from the database. The wishlist rows cascade.
func (s *UserService) DeleteUser(id int64) error {
	res, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
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
