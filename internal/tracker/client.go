// Package tracker is a minimal client for the remote issue tracker's
// REST API. It performs single issue-creation calls; it is not a general
// API client and keeps no state between calls.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nikola-golijanin/backlog-seeder/internal/catalog"
	"github.com/nikola-golijanin/backlog-seeder/internal/config"
)

const (
	acceptMediaType = "application/vnd.github+json"
	apiVersion      = "2022-11-28"

	// maxErrorBody caps how much of an error response is kept for diagnostics.
	maxErrorBody = 8 << 10
)

// APIError is a non-2xx response from the tracker. Body carries the raw
// response text verbatim for the operator.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tracker responded %d: %s", e.StatusCode, e.Body)
}

// Client submits issues to one repository of the tracker.
type Client struct {
	baseURL string
	owner   string
	repo    string
	token   string
	http    *http.Client
}

// New creates a Client from tracker configuration. If httpClient is nil,
// http.DefaultClient is used.
func New(cfg config.TrackerConfig, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("tracker: token must not be empty")
	}
	if cfg.Owner == "" || cfg.Repo == "" {
		return nil, fmt.Errorf("tracker: owner and repo must not be empty")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		owner:   cfg.Owner,
		repo:    cfg.Repo,
		token:   cfg.Token,
		http:    httpClient,
	}, nil
}

// createIssueRequest is the creation payload understood by the API.
type createIssueRequest struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

// CreateIssue performs one authenticated creation call. Any 2xx response
// is success; a non-2xx response returns *APIError. No retries.
func (c *Client) CreateIssue(ctx context.Context, issue catalog.Issue) error {
	if issue.Title == "" {
		return fmt.Errorf("tracker: issue title must not be empty")
	}

	payload, err := json.Marshal(createIssueRequest{
		Title:  issue.Title,
		Body:   issue.Body,
		Labels: issue.Labels,
	})
	if err != nil {
		return fmt.Errorf("tracker: marshal issue %q: %w", issue.Title, err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/issues", c.baseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("tracker: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", acceptMediaType)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tracker: create issue %q: %w", issue.Title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// The response body (the created issue) is not needed.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
