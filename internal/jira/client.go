// Package jira provides a client for the Jira Cloud REST API, limited to
// what time tracking needs: listing the user's issues and creating worklogs.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// startedLayout is the timestamp format Jira expects for worklog "started".
const startedLayout = "2006-01-02T15:04:05.000-0700"

// maxIssues caps how many issues a search follows pagination for.
const maxIssues = 500

// searchFields are the issue fields requested from search.
var searchFields = []string{"summary", "status", "timetracking"}

// Client is a Jira REST API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	email      string
	apiToken   string
	jql        string
	pageSize   int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithJQL sets the query FetchAssignedIssues runs.
func WithJQL(jql string) ClientOption {
	return func(c *Client) {
		c.jql = jql
	}
}

// WithPageSize sets the search page size.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient creates a new Jira API client.
func NewClient(baseURL, email, apiToken string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		email:    email,
		apiToken: apiToken,
		jql:      "assignee = currentUser() AND statusCategory != Done ORDER BY updated DESC",
		pageSize: 50,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the Jira instance base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes an HTTP request with authentication and returns the response body.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader) ([]byte, error) {
	endpoint := c.baseURL + path
	log := slog.With("op", op, "method", method, "path", path)

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, &Error{Op: op, Kind: KindNetwork, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("Jira request failed", "err", err)
		return nil, &Error{Op: op, Kind: KindNetwork, Err: fmt.Errorf("executing request: %w", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: op, Kind: KindNetwork, Err: fmt.Errorf("reading response body: %w", err)}
	}
	log.Debug("Jira request", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode >= 400 {
		return nil, statusError(op, resp.StatusCode, data)
	}

	return data, nil
}

// FetchAssignedIssues runs the configured JQL and returns every matching
// issue, following pagination up to maxIssues.
func (c *Client) FetchAssignedIssues(ctx context.Context) ([]Issue, error) {
	const op = "searching issues"

	var all []Issue
	token := ""
	for {
		jsonBody, err := json.Marshal(searchRequest{
			JQL:           c.jql,
			MaxResults:    c.pageSize,
			Fields:        searchFields,
			NextPageToken: token,
		})
		if err != nil {
			return nil, &Error{Op: op, Kind: KindMalformed, Err: fmt.Errorf("marshaling search request: %w", err)}
		}

		data, err := c.do(ctx, op, http.MethodPost, "/rest/api/3/search/jql", bytes.NewReader(jsonBody))
		if err != nil {
			return nil, err
		}

		var page searchResult
		if err := json.Unmarshal(data, &page); err != nil {
			return nil, &Error{Op: op, Kind: KindMalformed, Err: fmt.Errorf("parsing search results: %w", err)}
		}
		all = append(all, page.Issues...)

		if page.IsLast || page.NextPageToken == "" || len(page.Issues) == 0 {
			break
		}
		if len(all) >= maxIssues {
			slog.Warn("Issue search truncated", "limit", maxIssues)
			all = all[:maxIssues]
			break
		}
		token = page.NextPageToken
		slog.Debug("Jira pagination", "issuesSoFar", len(all))
	}

	slog.Debug("Jira issues fetched", "count", len(all))
	return all, nil
}

// SubmitWorklog records req against its issue and returns the new worklog ID.
func (c *Client) SubmitWorklog(ctx context.Context, req WorklogRequest) (string, error) {
	op := fmt.Sprintf("adding worklog to %s", req.IssueKey)
	if req.IssueKey == "" {
		return "", &Error{Op: op, Kind: KindRejected, Message: "issue key is required"}
	}
	if req.Minutes <= 0 {
		return "", &Error{Op: op, Kind: KindRejected, Message: "duration must be positive"}
	}

	body := worklogCreation{
		Started:          req.Started.Format(startedLayout),
		TimeSpentSeconds: int64(req.Minutes) * 60,
	}
	if strings.TrimSpace(req.Comment) != "" {
		body.Comment = makeADFDocument(req.Comment)
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", &Error{Op: op, Kind: KindMalformed, Err: fmt.Errorf("marshaling worklog: %w", err)}
	}

	path := fmt.Sprintf("/rest/api/3/issue/%s/worklog", url.PathEscape(req.IssueKey))
	data, err := c.do(ctx, op, http.MethodPost, path, bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}

	var wl Worklog
	if err := json.Unmarshal(data, &wl); err != nil {
		return "", &Error{Op: op, Kind: KindMalformed, Err: fmt.Errorf("parsing worklog response: %w", err)}
	}
	if wl.ID == "" {
		return "", &Error{Op: op, Kind: KindMalformed, Message: "response has no worklog id"}
	}
	return wl.ID, nil
}
