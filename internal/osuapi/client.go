package osuapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// Client talks to the osu! API v2 using client-credentials OAuth2.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// ClientConfig holds the osu! API credentials and endpoints.
type ClientConfig struct {
	ClientID     int
	ClientSecret string
	BaseURL      string // e.g. https://osu.ppy.sh/api/v2
	TokenURL     string // e.g. https://osu.ppy.sh/oauth/token
	// RequestsPerSecond bounds outbound calls; osu! enforces 60/min.
	RequestsPerSecond float64
}

// NewClient builds the API client. The oauth2 transport refreshes the token
// transparently.
func NewClient(ctx context.Context, cfg ClientConfig) *Client {
	creds := clientcredentials.Config{
		ClientID:     strconv.Itoa(cfg.ClientID),
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       []string{"public"},
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: creds.Client(ctx),
		baseURL:    cfg.BaseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type userResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	CountryCode string `json:"country_code"`
	IsBot       bool   `json:"is_bot"`
	IsDeleted   bool   `json:"is_deleted"`
}

func (c *Client) GetProfileByName(ctx context.Context, username string) (*Profile, error) {
	return c.getProfile(ctx, url.PathEscape(username)+"?key=username")
}

func (c *Client) GetProfileByID(ctx context.Context, osuID sharedtypes.OsuID) (*Profile, error) {
	return c.getProfile(ctx, fmt.Sprintf("%d?key=id", osuID))
}

func (c *Client) getProfile(ctx context.Context, userPath string) (*Profile, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+userPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: undecodable profile response: %v", ErrProviderUnavailable, err)
	}

	status := AccountStatusNormal
	if user.IsBot {
		status = AccountStatusBot
	}
	if user.IsDeleted {
		status = AccountStatusDeleted
	}
	return &Profile{
		OsuID:       sharedtypes.OsuID(user.ID),
		Username:    user.Username,
		CountryCode: user.CountryCode,
		Status:      status,
	}, nil
}

var _ ProfileProvider = (*Client)(nil)
