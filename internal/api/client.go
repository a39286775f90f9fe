package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the proxy's usage-analytics management API. All methods
// are safe for concurrent use.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

func NewClient(baseURL, managementKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		key:     managementKey,
		http: &http.Client{
			Timeout: 12 * time.Second,
		},
	}
}

// Health probes the backend. A nil error means the backend is reachable and
// willing to serve the management API.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.newRequest(ctx, "/v0/management/usage/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend health status: %s", resp.Status)
	}
	return nil
}

// ListRecords fetches one page of usage records. Ordering is always the
// server's; the caller never re-sorts.
func (c *Client) ListRecords(ctx context.Context, q ListQuery) (*ListResult, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("page_size", strconv.Itoa(q.PageSize))
	if q.SortBy != "" {
		params.Set("sort_by", q.SortBy)
	}
	if q.SortOrder != "" {
		params.Set("sort_order", q.SortOrder)
	}
	addRange(params, q.Start, q.End)
	if q.Model != "" {
		params.Set("model", q.Model)
	}
	if q.Provider != "" {
		params.Set("provider", q.Provider)
	}

	var out ListResult
	if err := c.getJSON(ctx, "/v0/management/usage/requests", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecord fetches one record with its full request/response payloads.
func (c *Client) GetRecord(ctx context.Context, id int64) (*Record, error) {
	var out Record
	path := "/v0/management/usage/requests/" + strconv.FormatInt(id, 10)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivityHeatmap fetches the daily activity feed for the trailing window of
// the given number of days.
func (c *Client) ActivityHeatmap(ctx context.Context, days int) (*Heatmap, error) {
	params := url.Values{}
	params.Set("days", strconv.Itoa(days))
	var out Heatmap
	if err := c.getJSON(ctx, "/v0/management/usage/heatmap", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ModelStats(ctx context.Context, start, end *time.Time) (*ModelStatsResult, error) {
	params := url.Values{}
	addRange(params, start, end)
	var out ModelStatsResult
	if err := c.getJSON(ctx, "/v0/management/usage/models", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProviderStats(ctx context.Context, start, end *time.Time) (*ProviderStatsResult, error) {
	params := url.Values{}
	addRange(params, start, end)
	var out ProviderStatsResult
	if err := c.getJSON(ctx, "/v0/management/usage/providers", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UsageSummary(ctx context.Context, start, end *time.Time) (*UsageSummary, error) {
	params := url.Values{}
	addRange(params, start, end)
	var out UsageSummary
	if err := c.getJSON(ctx, "/v0/management/usage/summary", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RequestTimeline(ctx context.Context, start, end *time.Time) (*Timeline, error) {
	params := url.Values{}
	addRange(params, start, end)
	var out Timeline
	if err := c.getJSON(ctx, "/v0/management/usage/timeline", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FilterOptions fetches the distinct model/provider values for the range.
func (c *Client) FilterOptions(ctx context.Context, start, end *time.Time) (*FilterOptions, error) {
	params := url.Values{}
	addRange(params, start, end)
	var out FilterOptions
	if err := c.getJSON(ctx, "/v0/management/usage/options", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func addRange(params url.Values, start, end *time.Time) {
	if start != nil {
		params.Set("start_time", start.Format(time.RFC3339))
	}
	if end != nil {
		params.Set("end_time", end.Format(time.RFC3339))
	}
}

func (c *Client) newRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}
	return req, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := c.newRequest(ctx, path, params)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s failed: HTTP %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
