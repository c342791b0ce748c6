package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lead_dashboard/internal/domain"
)

const userAgent = "LeadDashboard/1.0"

// Config holds the Leads Endpoint configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the comment-to-lead backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// New creates a new backend client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger.With("backend", cfg.BaseURL),
	}
}

// BaseURL returns the backend the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchLeads returns the full lead collection. A missing leads field is an
// empty collection.
func (c *Client) FetchLeads(ctx context.Context) ([]domain.Lead, error) {
	var resp APIResponse
	if err := c.get(ctx, "/leads", true, &resp); err != nil {
		return nil, err
	}

	leads := c.transform(resp.Leads)

	c.logger.Debug("fetched leads",
		"count", len(leads),
		"total_leads", string(resp.TotalLeads),
	)

	return leads, nil
}

// Health fetches the backend status document. It needs no API key.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.get(ctx, "/", false, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) get(ctx context.Context, path string, withKey bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &TransportError{Op: "create request", Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if withKey {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "execute request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		if resp.StatusCode == http.StatusUnauthorized {
			return ErrInvalidAPIKey
		}
		return &HTTPError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: "decode response", Err: fmt.Errorf("%s: %w", path, err)}
	}

	return nil
}

func (c *Client) transform(records []json.RawMessage) []domain.Lead {
	leads := make([]domain.Lead, 0, len(records))

	for i, raw := range records {
		var r LeadRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			c.logger.Warn("malformed lead record, using empty values",
				"index", i,
				"error", err,
			)
			r = LeadRecord{}
		}

		leads = append(leads, domain.Lead{
			Timestamp:   string(r.Timestamp),
			Source:      string(r.Source),
			UserID:      string(r.UserID),
			CommentText: string(r.CommentText),
			PostID:      string(r.PostID),
			Priority:    string(r.Priority),
			AIResponse:  string(r.AIResponse),
		})
	}

	return leads
}
