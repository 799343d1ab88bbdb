package osuapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"
)

// DeltaClient reads rank counts from the alternative tracker backing the
// delta scoring regime. The tracker exposes counts for thresholds
// {1, 8, 25, 50} only.
type DeltaClient struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

func NewDeltaClient(baseURL string, requestsPerSecond float64) *DeltaClient {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &DeltaClient{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

func (c *DeltaClient) CountAtRank(ctx context.Context, username string, threshold int) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	endpoint := fmt.Sprintf("%s/players/%s/rank-counts?max_rank=%s",
		c.baseURL, url.PathEscape(username), strconv.Itoa(threshold))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build delta request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return 0, fmt.Errorf("%w: unexpected status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var payload struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: undecodable delta response: %v", ErrProviderUnavailable, err)
	}
	if payload.Count < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrProviderUnavailable, payload.Count)
	}
	return payload.Count, nil
}

var _ RankCountProvider = (*DeltaClient)(nil)
