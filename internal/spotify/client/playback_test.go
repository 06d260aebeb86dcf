package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestPlaybackVerbs(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
		wantQuery  map[string]string
	}{
		{
			name:       "pause with device",
			call:       func(c *Client) error { return c.Pause(context.Background(), "DEV1") },
			wantMethod: http.MethodPut,
			wantPath:   "/me/player/pause",
			wantQuery:  map[string]string{"device_id": "DEV1"},
		},
		{
			name:       "next",
			call:       func(c *Client) error { return c.Next(context.Background(), "") },
			wantMethod: http.MethodPost,
			wantPath:   "/me/player/next",
		},
		{
			name:       "previous",
			call:       func(c *Client) error { return c.Previous(context.Background(), "") },
			wantMethod: http.MethodPost,
			wantPath:   "/me/player/previous",
		},
		{
			name:       "seek",
			call:       func(c *Client) error { return c.Seek(context.Background(), 15000, "DEV1") },
			wantMethod: http.MethodPut,
			wantPath:   "/me/player/seek",
			wantQuery:  map[string]string{"position_ms": "15000", "device_id": "DEV1"},
		},
		{
			name:       "volume",
			call:       func(c *Client) error { return c.SetVolume(context.Background(), 40, "") },
			wantMethod: http.MethodPut,
			wantPath:   "/me/player/volume",
			wantQuery:  map[string]string{"volume_percent": "40"},
		},
		{
			name:       "repeat context",
			call:       func(c *Client) error { return c.SetRepeat(context.Background(), "context", "DEV1") },
			wantMethod: http.MethodPut,
			wantPath:   "/me/player/repeat",
			wantQuery:  map[string]string{"state": "context", "device_id": "DEV1"},
		},
		{
			name:       "shuffle on",
			call:       func(c *Client) error { return c.SetShuffle(context.Background(), true, "") },
			wantMethod: http.MethodPut,
			wantPath:   "/me/player/shuffle",
			wantQuery:  map[string]string{"state": "true"},
		},
		{
			name:       "queue add",
			call:       func(c *Client) error { return c.AddToQueue(context.Background(), "spotify:track:abc", "DEV1") },
			wantMethod: http.MethodPost,
			wantPath:   "/me/player/queue",
			wantQuery:  map[string]string{"uri": "spotify:track:abc", "device_id": "DEV1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, seen := newTestServer(t, http.StatusNoContent, nil)
			c, _ := New("TOKEN", WithBaseURL(srv.URL))

			if err := tt.call(c); err != nil {
				t.Fatalf("call error: %v", err)
			}

			if len(*seen) != 1 {
				t.Fatalf("server saw %d requests, want 1", len(*seen))
			}
			req := (*seen)[0]
			if req.Method != tt.wantMethod {
				t.Errorf("method = %s, want %s", req.Method, tt.wantMethod)
			}
			if req.Path != tt.wantPath {
				t.Errorf("path = %s, want %s", req.Path, tt.wantPath)
			}
			for k, v := range tt.wantQuery {
				if req.Query[k] != v {
					t.Errorf("query %s = %q, want %q", k, req.Query[k], v)
				}
			}
		})
	}
}

func TestTransferPlayback(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusNoContent, nil)
	c, _ := New("TOKEN", WithBaseURL(srv.URL))

	if err := c.TransferPlayback(context.Background(), "DEV2", true); err != nil {
		t.Fatalf("TransferPlayback() error: %v", err)
	}

	req := (*seen)[0]
	if req.Path != "/me/player" || req.Method != http.MethodPut {
		t.Errorf("got %s %s, want PUT /me/player", req.Method, req.Path)
	}
	want := `"device_ids":["DEV2"]`
	if !strings.Contains(string(req.Body), want) {
		t.Errorf("body = %s, want it to contain %s", req.Body, want)
	}
}
