package gist

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPublisher(t *testing.T, handler http.Handler) *Publisher {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gh := github.NewClient(nil)
	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base

	return NewWithClient(gh, log.New(io.Discard))
}

func TestPublishEditsExistingGist(t *testing.T) {
	var patched struct {
		Files map[string]struct {
			Content string `json:"content"`
		} `json:"files"`
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/gists/abc123", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			io.WriteString(w, `{"id": "abc123"}`)
		case http.MethodPatch:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patched))
			io.WriteString(w, `{"id": "abc123", "html_url": "https://gist.github.com/abc123"}`)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	p := testPublisher(t, mux)

	url, err := p.Publish(context.Background(), "abc123", "tasks.md", "# Backlog\n")

	require.NoError(t, err)
	assert.Equal(t, "https://gist.github.com/abc123", url)
	require.Contains(t, patched.Files, "tasks.md")
	assert.Equal(t, "# Backlog\n", patched.Files["tasks.md"].Content)
}

func TestPublishFailsWhenGistMissing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gists/nope", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	p := testPublisher(t, mux)

	_, err := p.Publish(context.Background(), "nope", "tasks.md", "content")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}
