// Package spotify is a minimal Spotify Web API client covering the
// refresh-token exchange and the two playback-state endpoints.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// requestTimeout bounds every outbound call so a stalled upstream
// cannot block a request indefinitely.
const requestTimeout = 10 * time.Second

// Config holds the credentials and endpoints for a Client.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	TokenURL     string
	BaseURL      string
}

// Client calls the Spotify Web API on behalf of a single account.
// Access tokens are obtained per call and never cached.
type Client struct {
	oauth        oauth2.Config
	refreshToken string
	baseURL      string
	httpClient   *http.Client
}

// NewClient creates a Client from the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		refreshToken: cfg.RefreshToken,
		baseURL:      cfg.BaseURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
	}
}

// Token exchanges the configured refresh token for a short-lived access
// token. A non-success response from the token endpoint is returned as
// a *TokenError carrying the upstream status code and body.
func (c *Client) Token(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	src := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: c.refreshToken})

	tok, err := src.Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return "", &TokenError{
				StatusCode: retrieveErr.Response.StatusCode,
				Body:       string(retrieveErr.Body),
			}
		}
		return "", fmt.Errorf("exchanging refresh token: %w", err)
	}

	return tok.AccessToken, nil
}

// CurrentlyPlaying reports the account's live playback state. A 204 or
// 404 means nothing is loaded in the player and returns (nil, nil).
func (c *Client) CurrentlyPlaying(ctx context.Context, token string) (*CurrentlyPlaying, error) {
	body, status, err := c.get(ctx, token, "/me/player/currently-playing")
	if err != nil {
		return nil, err
	}

	if status == http.StatusNoContent || status == http.StatusNotFound {
		return nil, nil
	}
	if status < 200 || status >= 300 {
		return nil, &UpstreamError{Endpoint: "currently-playing", StatusCode: status}
	}

	var playing CurrentlyPlaying
	if err := json.Unmarshal(body, &playing); err != nil {
		return nil, fmt.Errorf("parsing currently-playing response: %w", err)
	}

	return &playing, nil
}

// RecentlyPlayed returns the most recently played track, or (nil, nil)
// when the account has no listening history.
func (c *Client) RecentlyPlayed(ctx context.Context, token string) (*PlayedItem, error) {
	body, status, err := c.get(ctx, token, "/me/player/recently-played?limit=1")
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		return nil, &UpstreamError{Endpoint: "recently-played", StatusCode: status}
	}

	var resp recentlyPlayedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing recently-played response: %w", err)
	}

	if len(resp.Items) == 0 {
		return nil, nil
	}

	return &resp.Items[0], nil
}

// get performs a single bearer-authenticated GET request.
func (c *Client) get(ctx context.Context, token, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading response body: %w", err)
	}

	return body, resp.StatusCode, nil
}
