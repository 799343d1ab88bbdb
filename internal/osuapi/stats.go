package osuapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// StatsClient counts a player's leaderboard entries through the osu!Stats
// getScores endpoint. It backs the standard scoring regime.
type StatsClient struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

func NewStatsClient(baseURL string, requestsPerSecond float64) *StatsClient {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &StatsClient{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

type statsScoresRequest struct {
	AccMin         float64 `json:"accMin"`
	AccMax         float64 `json:"accMax"`
	RankMin        int     `json:"rankMin"`
	RankMax        int     `json:"rankMax"`
	SortBy         int     `json:"sortBy"`
	SortOrder      int     `json:"sortOrder"`
	Page           int     `json:"page"`
	Username       string  `json:"u1"`
	ResultsPerPage int     `json:"resultsPerPage"`
}

// CountAtRank asks osu!Stats how many scores the player holds at rank
// <= threshold. The response is a positional JSON array; the total count is
// the second element.
func (c *StatsClient) CountAtRank(ctx context.Context, username string, threshold int) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	body, err := json.Marshal(statsScoresRequest{
		AccMax:         100,
		RankMin:        1,
		RankMax:        threshold,
		SortBy:         2,
		Page:           1,
		Username:       username,
		ResultsPerPage: 1,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode stats request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/getScores", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build stats request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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

	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: undecodable stats response: %v", ErrProviderUnavailable, err)
	}
	if len(payload) < 2 {
		return 0, fmt.Errorf("%w: stats response missing count element", ErrProviderUnavailable)
	}

	var count int
	if err := json.Unmarshal(payload[1], &count); err != nil {
		return 0, fmt.Errorf("%w: undecodable stats count: %v", ErrProviderUnavailable, err)
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrProviderUnavailable, count)
	}
	return count, nil
}

var _ RankCountProvider = (*StatsClient)(nil)
