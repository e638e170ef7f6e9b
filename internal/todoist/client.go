// Package todoist provides a client for the task service's sync API.
// It implements a deep module interface - simple methods hiding the form
// encoding, authentication, and pagination details of the sync protocol.
package todoist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production sync API endpoint.
const DefaultBaseURL = "https://api.todoist.com/sync/v9"

// Client is a sync API client. All requests go through a shared rate
// limiter so that the archive fan-out stays within the service's budget.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	log        *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithRateLimit sets the outgoing request rate (requests per second).
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// New creates a sync API client authenticating with the given token.
func New(token string, logger *log.Logger, opts ...Option) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	c := &Client{
		httpClient: oauth2.NewClient(context.Background(), src),
		baseURL:    DefaultBaseURL,
		limiter:    rate.NewLimiter(rate.Limit(5), 10),
		log:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// postForm executes one form-encoded POST against the sync API and decodes
// the JSON response into out. This is a helper method to avoid repeating
// the encoding and status handling.
func (c *Client) postForm(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	c.log.Debug("sync api request", "path", path, "params", params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request to %s failed: %s: %s", path, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// Sections fetches all sections visible to the token, using a sync request
// restricted to the "sections" resource type.
func (c *Client) Sections(ctx context.Context) ([]Section, error) {
	params := url.Values{}
	params.Set("sync_token", "*")
	params.Set("resource_types", `["sections"]`)

	var resp struct {
		Sections []Section `json:"sections"`
	}
	if err := c.postForm(ctx, "/sync", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch sections: %w", err)
	}
	return resp.Sections, nil
}

// ProjectData fetches one project's metadata, live items, and sections.
func (c *Client) ProjectData(ctx context.Context, projectID int64) (ProjectData, error) {
	params := url.Values{}
	params.Set("project_id", strconv.FormatInt(projectID, 10))

	var data ProjectData
	if err := c.postForm(ctx, "/projects/get_data", params, &data); err != nil {
		return ProjectData{}, fmt.Errorf("failed to fetch project data: %w", err)
	}
	return data, nil
}

// FetchArchivePage fetches one page of archived items for the given query,
// resuming from cursor when it is non-empty. It satisfies the pipeline's
// page-fetch capability.
func (c *Client) FetchArchivePage(ctx context.Context, q ArchiveQuery, cursor string) (ArchivePage, error) {
	params := url.Values{}
	params.Set(q.Param, strconv.FormatInt(q.ID, 10))
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	var page ArchivePage
	if err := c.postForm(ctx, "/archive/items", params, &page); err != nil {
		return ArchivePage{}, fmt.Errorf("failed to fetch archived items (%s=%d): %w", q.Param, q.ID, err)
	}
	return page, nil
}
