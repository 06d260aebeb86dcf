package core

import (
	"fmt"
	"strings"
)

// ResourceKind is the catalog type a Spotify URI refers to.
type ResourceKind string

const (
	KindTrack    ResourceKind = "track"
	KindEpisode  ResourceKind = "episode"
	KindAlbum    ResourceKind = "album"
	KindPlaylist ResourceKind = "playlist"
	KindArtist   ResourceKind = "artist"
	KindShow     ResourceKind = "show"
)

// TrackURI returns the Spotify URI for a track ID.
func TrackURI(id string) string { return "spotify:track:" + id }

// EpisodeURI returns the Spotify URI for a podcast episode ID.
func EpisodeURI(id string) string { return "spotify:episode:" + id }

// AlbumURI returns the Spotify URI for an album ID.
func AlbumURI(id string) string { return "spotify:album:" + id }

// PlaylistURI returns the Spotify URI for a playlist ID.
func PlaylistURI(id string) string { return "spotify:playlist:" + id }

// ParseURI splits a "spotify:<kind>:<id>" string into its kind and ID.
func ParseURI(uri string) (ResourceKind, string, error) {
	parts := strings.Split(uri, ":")
	if len(parts) != 3 || parts[0] != "spotify" || parts[1] == "" || parts[2] == "" {
		return "", "", fmt.Errorf("invalid spotify uri: %q", uri)
	}
	return ResourceKind(parts[1]), parts[2], nil
}

// IsContextKind reports whether the kind plays as a context (album, playlist,
// artist, show) rather than as an entry in a uris list.
func (k ResourceKind) IsContextKind() bool {
	switch k {
	case KindAlbum, KindPlaylist, KindArtist, KindShow:
		return true
	}
	return false
}
