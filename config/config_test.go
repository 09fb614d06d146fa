package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOCIALNET_API_HOST", "")
	t.Setenv("SOCIALNET_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultApiHost, cfg.ApiHost)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.UploadTimeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadAddsTrailingSlash(t *testing.T) {
	t.Setenv("SOCIALNET_API_HOST", "https://social.example.com/api")
	t.Setenv("SOCIALNET_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://social.example.com/api/", cfg.ApiHost)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("SOCIALNET_REQUEST_TIMEOUT", "0s")

	_, err := Load()
	assert.Error(t, err)
}
