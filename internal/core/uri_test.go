package core

import "testing"

func TestParseURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		wantKind ResourceKind
		wantID   string
		wantErr  bool
	}{
		{
			name:     "track",
			uri:      "spotify:track:3n3Ppam7vgaVa1iaRUc9Lp",
			wantKind: KindTrack,
			wantID:   "3n3Ppam7vgaVa1iaRUc9Lp",
		},
		{
			name:     "episode",
			uri:      "spotify:episode:4rOoJ6Egrf8K2IrywzwOMk",
			wantKind: KindEpisode,
			wantID:   "4rOoJ6Egrf8K2IrywzwOMk",
		},
		{
			name:     "playlist",
			uri:      "spotify:playlist:37i9dQZF1DXcBWIGoYBM5M",
			wantKind: KindPlaylist,
			wantID:   "37i9dQZF1DXcBWIGoYBM5M",
		},
		{
			name:    "missing id",
			uri:     "spotify:track:",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			uri:     "http://open.spotify.com/track/abc",
			wantErr: true,
		},
		{
			name:    "empty",
			uri:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, id, err := ParseURI(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseURI(%q) expected error, got kind=%q id=%q", tt.uri, kind, id)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseURI(%q) unexpected error: %v", tt.uri, err)
			}
			if kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", kind, tt.wantKind)
			}
			if id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestURIConstructors(t *testing.T) {
	if got := TrackURI("abc"); got != "spotify:track:abc" {
		t.Errorf("TrackURI = %q", got)
	}
	if got := EpisodeURI("abc"); got != "spotify:episode:abc" {
		t.Errorf("EpisodeURI = %q", got)
	}
	if got := AlbumURI("abc"); got != "spotify:album:abc" {
		t.Errorf("AlbumURI = %q", got)
	}
	if got := PlaylistURI("abc"); got != "spotify:playlist:abc" {
		t.Errorf("PlaylistURI = %q", got)
	}
}

func TestIsContextKind(t *testing.T) {
	if KindTrack.IsContextKind() {
		t.Error("track should not be a context kind")
	}
	if KindEpisode.IsContextKind() {
		t.Error("episode should not be a context kind")
	}
	for _, k := range []ResourceKind{KindAlbum, KindPlaylist, KindArtist, KindShow} {
		if !k.IsContextKind() {
			t.Errorf("%s should be a context kind", k)
		}
	}
}

func TestRepeatModeValid(t *testing.T) {
	for _, m := range []RepeatMode{RepeatOff, RepeatTrack, RepeatContext} {
		if !m.Valid() {
			t.Errorf("%s should be valid", m)
		}
	}
	if RepeatMode("all").Valid() {
		t.Error("unknown mode should be invalid")
	}
}
