// Package gist publishes the rendered task document to a GitHub gist.
package gist

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Publisher updates a single file inside an existing gist.
type Publisher struct {
	gh  *github.Client
	log *log.Logger
}

// New creates a Publisher authenticating with the given GitHub token.
func New(token string, logger *log.Logger) *Publisher {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return NewWithClient(github.NewClient(oauth2.NewClient(context.Background(), src)), logger)
}

// NewWithClient creates a Publisher on an existing GitHub client. Used by
// tests to point at a fake server.
func NewWithClient(gh *github.Client, logger *log.Logger) *Publisher {
	return &Publisher{gh: gh, log: logger}
}

// Publish replaces filename's content in the gist and returns the gist's
// HTML URL. The gist must already exist; creating one on the fly would
// silently scatter output across gists when the id is mistyped.
func (p *Publisher) Publish(ctx context.Context, gistID, filename, content string) (string, error) {
	if _, _, err := p.gh.Gists.Get(ctx, gistID); err != nil {
		return "", fmt.Errorf("failed to look up gist %s (check the gist id and token scope): %w", gistID, err)
	}

	update := &github.Gist{
		Files: map[github.GistFilename]github.GistFile{
			github.GistFilename(filename): {Content: github.String(content)},
		},
	}

	updated, _, err := p.gh.Gists.Edit(ctx, gistID, update)
	if err != nil {
		return "", fmt.Errorf("failed to update gist %s: %w", gistID, err)
	}

	p.log.Debug("gist updated", "gist", gistID, "file", filename, "bytes", len(content))
	return updated.GetHTMLURL(), nil
}
