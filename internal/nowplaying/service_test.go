package nowplaying

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/justestif/go-spotify-now-playing/internal/spotify"
)

type fakeClient struct {
	token     string
	tokenErr  error
	playing   *spotify.CurrentlyPlaying
	queryErr  error
	recent    *spotify.PlayedItem
	recentErr error
}

func (f *fakeClient) Token(ctx context.Context) (string, error) {
	return f.token, f.tokenErr
}

func (f *fakeClient) CurrentlyPlaying(ctx context.Context, token string) (*spotify.CurrentlyPlaying, error) {
	return f.playing, f.queryErr
}

func (f *fakeClient) RecentlyPlayed(ctx context.Context, token string) (*spotify.PlayedItem, error) {
	return f.recent, f.recentErr
}

func testTrack(name string) spotify.Track {
	var track spotify.Track
	track.Name = name
	track.DurationMs = 261000
	track.Artists = []struct {
		Name string `json:"name"`
	}{{Name: "Radiohead"}, {Name: "Thom Yorke"}}
	track.Album.Images = []struct {
		URL string `json:"url"`
	}{{URL: "https://i.scdn.co/image/large"}}
	track.ExternalURLs.Spotify = "https://open.spotify.com/track/abc123"
	return track
}

func activeTrack(name string) *spotify.CurrentlyPlaying {
	track := testTrack(name)
	return &spotify.CurrentlyPlaying{
		IsPlaying:            true,
		ProgressMs:           44100,
		CurrentlyPlayingType: "track",
		Item:                 &track,
	}
}

func playedItem(name string) *spotify.PlayedItem {
	return &spotify.PlayedItem{
		Track:    testTrack(name),
		PlayedAt: "2026-08-29T10:15:00Z",
	}
}

func TestCurrent(t *testing.T) {
	errToken := &spotify.TokenError{StatusCode: 401, Body: `{"error":"invalid_grant"}`}
	errUpstream := &spotify.UpstreamError{Endpoint: "currently-playing", StatusCode: 500}

	tests := []struct {
		name       string
		client     *fakeClient
		wantStatus string
		wantErr    error
	}{
		{
			name: "active track is playing",
			client: &fakeClient{
				token:   "access-token",
				playing: activeTrack("Karma Police"),
			},
			wantStatus: StatusPlaying,
		},
		{
			name: "paused playback falls through to history",
			client: &fakeClient{
				token: "access-token",
				playing: &spotify.CurrentlyPlaying{
					IsPlaying:            false,
					CurrentlyPlayingType: "track",
				},
				recent: playedItem("Pyramid Song"),
			},
			wantStatus: StatusLastPlayed,
		},
		{
			name: "podcast episode falls through to history",
			client: &fakeClient{
				token: "access-token",
				playing: &spotify.CurrentlyPlaying{
					IsPlaying:            true,
					CurrentlyPlayingType: "episode",
				},
				recent: playedItem("Pyramid Song"),
			},
			wantStatus: StatusLastPlayed,
		},
		{
			name: "nothing loaded falls through to history",
			client: &fakeClient{
				token:  "access-token",
				recent: playedItem("Pyramid Song"),
			},
			wantStatus: StatusLastPlayed,
		},
		{
			name: "playback query failure is absorbed",
			client: &fakeClient{
				token:    "access-token",
				queryErr: errUpstream,
				recent:   playedItem("Pyramid Song"),
			},
			wantStatus: StatusLastPlayed,
		},
		{
			name: "no history means offline",
			client: &fakeClient{
				token: "access-token",
			},
			wantStatus: StatusOffline,
		},
		{
			name: "history failure degrades to offline",
			client: &fakeClient{
				token:     "access-token",
				recentErr: &spotify.UpstreamError{Endpoint: "recently-played", StatusCode: 503},
			},
			wantStatus: StatusOffline,
		},
		{
			name: "token failure is surfaced",
			client: &fakeClient{
				tokenErr: errToken,
			},
			wantErr: errToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.client, zap.NewNop().Sugar())

			info, err := service.Current(context.Background())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Current() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Current() error = %v", err)
			}

			if info.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", info.Status, tt.wantStatus)
			}
		})
	}
}

func TestCurrentPlayingFields(t *testing.T) {
	client := &fakeClient{token: "access-token", playing: activeTrack("Karma Police")}
	service := NewService(client, zap.NewNop().Sugar())

	info, err := service.Current(context.Background())
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	if !info.IsPlaying {
		t.Error("IsPlaying = false, want true")
	}
	if info.TrackName != "Karma Police" {
		t.Errorf("TrackName = %q", info.TrackName)
	}
	if info.ArtistName != "Radiohead, Thom Yorke" {
		t.Errorf("ArtistName = %q, want joined names", info.ArtistName)
	}
	if info.AlbumArtURL != "https://i.scdn.co/image/large" {
		t.Errorf("AlbumArtURL = %q", info.AlbumArtURL)
	}
	if info.SongURL != "https://open.spotify.com/track/abc123" {
		t.Errorf("SongURL = %q", info.SongURL)
	}
	if info.ProgressMs != 44100 {
		t.Errorf("ProgressMs = %d, want 44100", info.ProgressMs)
	}
	if info.DurationMs != 261000 {
		t.Errorf("DurationMs = %d, want 261000", info.DurationMs)
	}
}

func TestCurrentLastPlayedFields(t *testing.T) {
	client := &fakeClient{token: "access-token", recent: playedItem("Pyramid Song")}
	service := NewService(client, zap.NewNop().Sugar())

	info, err := service.Current(context.Background())
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	if info.IsPlaying {
		t.Error("IsPlaying = true, want false")
	}
	if info.TrackName != "Pyramid Song" {
		t.Errorf("TrackName = %q", info.TrackName)
	}
	if info.ProgressMs != 0 {
		t.Errorf("ProgressMs = %d, want 0", info.ProgressMs)
	}
	if info.DurationMs != 261000 {
		t.Errorf("DurationMs = %d, want 261000", info.DurationMs)
	}
}

func TestCurrentOfflineShape(t *testing.T) {
	client := &fakeClient{token: "access-token"}
	service := NewService(client, zap.NewNop().Sugar())

	info, err := service.Current(context.Background())
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	want := TrackInfo{Status: StatusOffline, IsPlaying: false}
	if info != want {
		t.Errorf("Current() = %+v, want %+v", info, want)
	}
}
