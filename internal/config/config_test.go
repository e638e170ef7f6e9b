package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todogist/internal/todoist"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, todoist.DefaultBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "tasks.md", cfg.GistFilename)
	assert.Equal(t, float64(5), cfg.RateLimit)
	assert.Equal(t, 10, cfg.RateBurst)
	assert.Zero(t, cfg.ProjectID)
	assert.Empty(t, cfg.GistID)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TODOGIST_API_BASE_URL", "http://localhost:9999/sync/v9")
	t.Setenv("TODOGIST_PROJECT_ID", "2203")
	t.Setenv("TODOGIST_GIST_ID", "deadbeef")
	t.Setenv("TODOGIST_GIST_FILENAME", "board.md")
	t.Setenv("TODOGIST_RATE_LIMIT", "2.5")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/sync/v9", cfg.APIBaseURL)
	assert.Equal(t, int64(2203), cfg.ProjectID)
	assert.Equal(t, "deadbeef", cfg.GistID)
	assert.Equal(t, "board.md", cfg.GistFilename)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 10, cfg.RateBurst, "unset values still get defaults")
}
