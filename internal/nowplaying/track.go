// Package nowplaying resolves a listener's playback state into the
// normalized payload served to the frontend.
package nowplaying

import "github.com/justestif/go-spotify-now-playing/internal/spotify"

// Playback status values.
const (
	StatusPlaying    = "playing"
	StatusLastPlayed = "last_played"
	StatusOffline    = "offline"
	StatusError      = "error"
)

// TrackInfo is the fixed response shape served to the frontend.
// AlbumArtURL is omitted when the upstream track has no images;
// ProgressMs and DurationMs are always present and zero when offline.
type TrackInfo struct {
	Status      string `json:"status"`
	IsPlaying   bool   `json:"isPlaying"`
	TrackName   string `json:"trackName,omitempty"`
	ArtistName  string `json:"artistName,omitempty"`
	AlbumArtURL string `json:"albumArtUrl,omitempty"`
	SongURL     string `json:"songUrl,omitempty"`
	ProgressMs  int    `json:"progressMs"`
	DurationMs  int    `json:"durationMs"`
	Error       string `json:"error,omitempty"`
}

// ErrorInfo builds the payload for a failed request.
func ErrorInfo(err error) TrackInfo {
	return TrackInfo{
		Status:    StatusError,
		IsPlaying: false,
		Error:     err.Error(),
	}
}

func playingInfo(p *spotify.CurrentlyPlaying) TrackInfo {
	return trackInfo(p.Item, StatusPlaying, true, p.ProgressMs)
}

func lastPlayedInfo(item *spotify.PlayedItem) TrackInfo {
	return trackInfo(&item.Track, StatusLastPlayed, false, 0)
}

func offlineInfo() TrackInfo {
	return TrackInfo{Status: StatusOffline, IsPlaying: false}
}

func trackInfo(t *spotify.Track, status string, isPlaying bool, progressMs int) TrackInfo {
	return TrackInfo{
		Status:      status,
		IsPlaying:   isPlaying,
		TrackName:   t.Name,
		ArtistName:  t.ArtistNames(),
		AlbumArtURL: t.AlbumArtURL(),
		SongURL:     t.URL(),
		ProgressMs:  progressMs,
		DurationMs:  t.DurationMs,
	}
}
