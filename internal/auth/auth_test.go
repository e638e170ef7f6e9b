package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvProvider(t *testing.T) {
	t.Setenv("TODOIST_TOKEN", "tok_123")

	token, err := EnvProvider{Var: "TODOIST_TOKEN"}.GetToken()

	require.NoError(t, err)
	assert.Equal(t, "tok_123", token)
}

func TestEnvProviderMissing(t *testing.T) {
	t.Setenv("TODOIST_TOKEN", "")

	token, err := EnvProvider{Var: "TODOIST_TOKEN"}.GetToken()

	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "TODOIST_TOKEN")
}

type stubProvider struct {
	token string
	err   error
}

func (s stubProvider) GetToken() (string, error) { return s.token, s.err }

func TestFirstTokenStopsAtFirstSuccess(t *testing.T) {
	token, err := firstToken(
		stubProvider{err: errors.New("nope")},
		stubProvider{token: "second"},
		stubProvider{token: "third"},
	)

	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestFirstTokenCollectsAllFailures(t *testing.T) {
	_, err := firstToken(
		stubProvider{err: errors.New("source one down")},
		stubProvider{err: errors.New("source two down")},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "source one down")
	assert.Contains(t, err.Error(), "source two down")
}

func TestTodoistTokenFromEnv(t *testing.T) {
	t.Setenv("TODOIST_TOKEN", "tok_abc")

	token, err := TodoistToken()

	require.NoError(t, err)
	assert.Equal(t, "tok_abc", token)
}

func TestTodoistTokenMissingIsActionable(t *testing.T) {
	t.Setenv("TODOIST_TOKEN", "")

	_, err := TodoistToken()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TODOIST_TOKEN")
}

func TestGitHubTokenPrefersEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test")

	token, err := GitHubToken()

	require.NoError(t, err)
	assert.Equal(t, "ghp_test", token)
}
