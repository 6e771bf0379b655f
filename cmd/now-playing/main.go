// Command now-playing serves the Spotify now-playing JSON API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/justestif/go-spotify-now-playing/internal/config"
	"github.com/justestif/go-spotify-now-playing/internal/nowplaying"
	"github.com/justestif/go-spotify-now-playing/internal/spotify"
	"github.com/justestif/go-spotify-now-playing/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}
	defer logger.Sync()

	client := spotify.NewClient(spotify.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RefreshToken: cfg.RefreshToken,
		TokenURL:     cfg.TokenURL,
		BaseURL:      cfg.APIBaseURL,
	})

	service := nowplaying.NewService(client, logger)

	server := web.NewServer(web.ServerConfig{
		Addr:                      cfg.Addr,
		Source:                    service,
		Logger:                    logger,
		CacheMaxAge:               cfg.CacheMaxAge,
		CacheStaleWhileRevalidate: cfg.CacheStaleWhileRevalidate,
		RequestsPerSecond:         cfg.RequestsPerSecond,
	})

	return server.Run()
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
