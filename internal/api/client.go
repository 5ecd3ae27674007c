package api

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

	"github.com/google/uuid"
)

// Client handles HTTP communication with the story API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// APIError is a non-2xx response. Message holds the server's "error" field when present.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error (%d)", e.StatusCode)
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Logger: logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	reqURL := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Debug("request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return fmt.Errorf("request to %s failed: %w", reqURL, err)
	}
	defer resp.Body.Close()

	c.Logger.Debug("request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start),
	)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(respBody, apiErr)
		return apiErr
	}

	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}
	return nil
}

// Search runs a semantic search with the given filters.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Story, error) {
	var stories []Story
	if err := c.do(ctx, http.MethodPost, "/api/stories/search", req, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

// Random returns a random story, or nil when the server has none to offer.
func (c *Client) Random(ctx context.Context) (*Story, error) {
	var story *Story
	if err := c.do(ctx, http.MethodGet, "/api/stories/random", nil, &story); err != nil {
		return nil, err
	}
	return story, nil
}

func (c *Client) Recent(ctx context.Context) ([]Story, error) {
	return c.list(ctx, "/api/stories/recent")
}

func (c *Client) Top(ctx context.Context) ([]Story, error) {
	return c.list(ctx, "/api/stories/top")
}

func (c *Client) list(ctx context.Context, path string) ([]Story, error) {
	var stories []Story
	if err := c.do(ctx, http.MethodGet, path, nil, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

// Story fetches a single story by id.
func (c *Client) Story(ctx context.Context, id string) (*Story, error) {
	var story *Story
	if err := c.do(ctx, http.MethodGet, "/api/stories/"+url.PathEscape(id), nil, &story); err != nil {
		return nil, err
	}
	if story == nil {
		return nil, fmt.Errorf("story %s: empty response", id)
	}
	return story, nil
}

func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := c.do(ctx, http.MethodGet, "/api/stats", nil, &stats)
	return stats, err
}

func (c *Client) Moods(ctx context.Context) ([]string, error) {
	var moods []string
	if err := c.do(ctx, http.MethodGet, "/api/moods", nil, &moods); err != nil {
		return nil, err
	}
	return moods, nil
}
