package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FIRESTORE_PROJECT_ID", "glamour-test")
	t.Setenv("ADMIN_KEY_HASH", "$2a$10$abcdefghijklmnopqrstuv")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, "products", cfg.FirestoreCollection)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigRequiresProjectID(t *testing.T) {
	t.Setenv("FIRESTORE_PROJECT_ID", "")
	t.Setenv("ADMIN_KEY_HASH", "hash")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigDerivesMediaBaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MEDIA_ENDPOINT", "minio.internal:9000")
	t.Setenv("MEDIA_BUCKET", "catalogue")
	t.Setenv("MEDIA_BASE_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://minio.internal:9000/catalogue", cfg.MediaBaseURL)

	t.Setenv("MEDIA_USE_SSL", "true")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://minio.internal:9000/catalogue", cfg.MediaBaseURL)
}

func TestLoadConfigKeepsExplicitMediaBaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MEDIA_BASE_URL", "https://cdn.example.com/catalogue")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/catalogue", cfg.MediaBaseURL)
}

func TestTestModeFlag(t *testing.T) {
	t.Setenv(testModeEnv, "1")
	RefreshTestMode()
	assert.True(t, InTestMode())

	t.Setenv(testModeEnv, "")
	RefreshTestMode()
	assert.False(t, InTestMode())
}
