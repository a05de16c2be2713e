package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "HS256", cfg.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "./bookwish.db", cfg.DatabasePath)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadUnsupportedAlgorithm(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("ALGORITHM", "none")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadCustomTTL(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("TOKEN_EXPIRE_MINUTES", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
}

func TestLoadBadTTL(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("TOKEN_EXPIRE_MINUTES", "soon")

	_, err := Load()
	require.Error(t, err)
}
