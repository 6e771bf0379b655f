package spotify

import "strings"

// Track is the track object as it appears in playback responses.
type Track struct {
	Name       string `json:"name"`
	DurationMs int    `json:"duration_ms"`
	Artists    []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

// ArtistNames joins all artist names with ", ".
func (t *Track) ArtistNames() string {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// AlbumArtURL returns the first album image URL, or "" when the album
// has no images.
func (t *Track) AlbumArtURL() string {
	if len(t.Album.Images) == 0 {
		return ""
	}
	return t.Album.Images[0].URL
}

// URL returns the track's public Spotify page.
func (t *Track) URL() string {
	return t.ExternalURLs.Spotify
}

// CurrentlyPlaying is the response from /me/player/currently-playing.
// Item is a pointer because nothing may be loaded in the player.
type CurrentlyPlaying struct {
	IsPlaying            bool   `json:"is_playing"`
	ProgressMs           int    `json:"progress_ms"`
	CurrentlyPlayingType string `json:"currently_playing_type"`
	Item                 *Track `json:"item"`
}

// PlayedItem is one history entry from /me/player/recently-played.
type PlayedItem struct {
	Track    Track  `json:"track"`
	PlayedAt string `json:"played_at"`
}

// recentlyPlayedResponse is the envelope for /me/player/recently-played.
type recentlyPlayedResponse struct {
	Items []PlayedItem `json:"items"`
}
