// Package auth resolves the two credentials the exporter needs: the task
// service's API token and a GitHub token for the gist update. Each token is
// tried against an ordered chain of providers with a clear, actionable error
// when every provider fails.
package auth

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// TokenProvider obtains an authentication token from one source.
type TokenProvider interface {
	GetToken() (string, error)
}

// EnvProvider reads a token from a named environment variable.
type EnvProvider struct {
	Var string
}

// GetToken reads the configured environment variable.
// Returns an error if the variable is not set or is empty.
func (e EnvProvider) GetToken() (string, error) {
	token := os.Getenv(e.Var)
	if token == "" {
		return "", fmt.Errorf("%s environment variable not set or empty", e.Var)
	}
	return token, nil
}

// GhCliProvider obtains a GitHub token by shelling out to the GitHub CLI
// (`gh auth token`), respecting the user's gh authentication state.
type GhCliProvider struct{}

// GetToken shells out to `gh auth token` to retrieve the current token.
func (GhCliProvider) GetToken() (string, error) {
	cmd := exec.Command("gh", "auth", "token", "--hostname", "github.com")
	output, err := cmd.Output()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return "", errors.New("gh CLI not found in PATH")
		}
		return "", fmt.Errorf("gh auth token failed: %w", err)
	}

	token := strings.TrimSpace(string(output))
	if token == "" {
		return "", errors.New("gh auth token returned empty token")
	}
	return token, nil
}

// firstToken runs the providers in order and returns the first token found,
// or an error naming every failed source.
func firstToken(providers ...TokenProvider) (string, error) {
	var failures []string
	for _, p := range providers {
		token, err := p.GetToken()
		if err == nil {
			return token, nil
		}
		failures = append(failures, err.Error())
	}
	return "", errors.New(strings.Join(failures, "; "))
}

// TodoistToken returns the task service's API token from the TODOIST_TOKEN
// environment variable.
func TodoistToken() (string, error) {
	token, err := firstToken(EnvProvider{Var: "TODOIST_TOKEN"})
	if err != nil {
		return "", fmt.Errorf(
			"failed to obtain API token: %v.\n"+
				"Set TODOIST_TOKEN to the token shown in the service's integration settings", err)
	}
	return token, nil
}

// GitHubToken returns a GitHub token for the gist update, preferring the
// GITHUB_TOKEN environment variable and falling back to the gh CLI.
func GitHubToken() (string, error) {
	token, err := firstToken(EnvProvider{Var: "GITHUB_TOKEN"}, GhCliProvider{})
	if err != nil {
		return "", fmt.Errorf(
			"failed to obtain GitHub token: %v.\n"+
				"Please either:\n"+
				"  1. Set the GITHUB_TOKEN environment variable with a token that can edit gists, or\n"+
				"  2. Run 'gh auth login' to authenticate with the GitHub CLI", err)
	}
	return token, nil
}
