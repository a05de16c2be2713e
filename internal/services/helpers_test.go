package services

import (
	"database/sql"
	"testing"

	"github.com/avilaj/bookwish-be/internal/auth"
	"github.com/avilaj/bookwish-be/internal/database"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// newTestHasher keeps argon2 cheap so the suite stays fast.
func newTestHasher() *auth.Hasher {
	return &auth.Hasher{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16}
}
