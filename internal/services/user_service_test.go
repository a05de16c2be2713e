package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, newTestHasher())

	created, err := users.CreateUser("alice", "wonderland")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.False(t, created.CreatedAt.IsZero())

	stored, err := users.FindByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "wonderland", stored.PasswordHash)
	assert.True(t, newTestHasher().Verify("wonderland", stored.PasswordHash))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, newTestHasher())

	_, err := users.CreateUser("alice", "wonderland")
	require.NoError(t, err)

	_, err = users.CreateUser("alice", "other-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestFindByUsernameNotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, newTestHasher())

	_, err := users.FindByUsername("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUserCascadesWishlist(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, newTestHasher())
	wishlist := NewWishlistService(db)

	created, err := users.CreateUser("alice", "wonderland")
	require.NoError(t, err)

	_, err = wishlist.AddBook(created.ID, sampleBook())
	require.NoError(t, err)

	require.NoError(t, users.DeleteUser(created.ID))

	_, err = users.FindByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	books, err := wishlist.ListBooks(created.ID)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestDeleteUserMissing(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, newTestHasher())

	assert.ErrorIs(t, users.DeleteUser(42), ErrNotFound)
}
