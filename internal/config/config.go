// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
)

// ErrMissingCredentials is returned when SPOTIFY_ID, SPOTIFY_SECRET or
// SPOTIFY_REFRESH_TOKEN is not set.
var ErrMissingCredentials = errors.New("missing SPOTIFY_ID, SPOTIFY_SECRET or SPOTIFY_REFRESH_TOKEN environment variable")

// Config holds all service configuration. The three Spotify secrets are
// required; everything else has a default.
type Config struct {
	ClientID     string `env:"SPOTIFY_ID"`
	ClientSecret string `env:"SPOTIFY_SECRET"`
	RefreshToken string `env:"SPOTIFY_REFRESH_TOKEN"`

	Addr string `env:"ADDR" env-default:"127.0.0.1:8080"`

	// URL overrides exist so tests can point the client at a fake
	// upstream; production deployments never set them.
	TokenURL   string `env:"SPOTIFY_TOKEN_URL"`
	APIBaseURL string `env:"SPOTIFY_API_URL" env-default:"https://api.spotify.com/v1"`

	CacheMaxAge               int     `env:"CACHE_MAX_AGE" env-default:"60"`
	CacheStaleWhileRevalidate int     `env:"CACHE_SWR" env-default:"30"`
	RequestsPerSecond         float64 `env:"RATE_LIMIT_RPS" env-default:"5"`
	Debug                     bool    `env:"DEBUG" env-default:"false"`
}

// Load reads configuration from environment variables.
// Returns ErrMissingCredentials if any Spotify secret is not set.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.TokenURL == "" {
		cfg.TokenURL = spotifyauth.TokenURL
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, ErrMissingCredentials
	}

	return &cfg, nil
}
