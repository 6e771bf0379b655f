package nowplaying

import (
	"context"

	"go.uber.org/zap"

	"github.com/justestif/go-spotify-now-playing/internal/spotify"
)

// PlaybackClient is the subset of the Spotify client the pipeline needs.
type PlaybackClient interface {
	Token(ctx context.Context) (string, error)
	CurrentlyPlaying(ctx context.Context, token string) (*spotify.CurrentlyPlaying, error)
	RecentlyPlayed(ctx context.Context, token string) (*spotify.PlayedItem, error)
}

// Service runs the playback pipeline: token exchange, live playback
// query, recently-played fallback.
type Service struct {
	client PlaybackClient
	logger *zap.SugaredLogger
}

// NewService creates a Service backed by the given client.
func NewService(client PlaybackClient, logger *zap.SugaredLogger) *Service {
	return &Service{client: client, logger: logger}
}

// Current resolves the account's playback state. Token-exchange failure
// is the only error surfaced; query failures are absorbed and degrade
// to the fallback or an offline result. There are no retries. The
// result is "playing" only for an actively playing item of type track;
// anything else falls through to the recently-played history.
func (s *Service) Current(ctx context.Context) (TrackInfo, error) {
	token, err := s.client.Token(ctx)
	if err != nil {
		return TrackInfo{}, err
	}

	playing, err := s.client.CurrentlyPlaying(ctx, token)
	if err != nil {
		s.logger.Warnw("currently-playing query failed, falling back", "error", err)
	} else if isActiveTrack(playing) {
		return playingInfo(playing), nil
	}

	item, err := s.client.RecentlyPlayed(ctx, token)
	if err != nil {
		s.logger.Warnw("recently-played query failed, reporting offline", "error", err)
		return offlineInfo(), nil
	}
	if item == nil {
		return offlineInfo(), nil
	}

	return lastPlayedInfo(item), nil
}

func isActiveTrack(p *spotify.CurrentlyPlaying) bool {
	return p != nil && p.IsPlaying && p.CurrentlyPlayingType == "track" && p.Item != nil
}
