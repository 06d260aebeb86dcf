package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	data := `
[spotify]
access_token = "file-token"
device_id = "file-device"

[player]
repeat = "context"
shuffle = true
episodes = ["ep1", "ep2"]

[rotation]
enabled = true
max_concurrent = 3
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Spotify.AccessToken != "file-token" {
		t.Errorf("AccessToken = %q", cfg.Spotify.AccessToken)
	}
	if cfg.Spotify.DeviceID != "file-device" {
		t.Errorf("DeviceID = %q", cfg.Spotify.DeviceID)
	}
	if cfg.Player.Repeat != "context" {
		t.Errorf("Repeat = %q", cfg.Player.Repeat)
	}
	if !cfg.Player.Shuffle {
		t.Error("Shuffle = false, want true")
	}
	if len(cfg.Player.Episodes) != 2 {
		t.Errorf("Episodes = %v", cfg.Player.Episodes)
	}
	if !cfg.Rotation.Enabled {
		t.Error("Rotation.Enabled = false, want true")
	}
	if cfg.Rotation.MaxConcurrent != 3 {
		t.Errorf("MaxConcurrent = %d, want 3", cfg.Rotation.MaxConcurrent)
	}

	// Defaults fill the rest
	if cfg.Spotify.BaseURL != "https://api.spotify.com/v1" {
		t.Errorf("BaseURL = %q", cfg.Spotify.BaseURL)
	}
	if cfg.Spotify.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.Spotify.TimeoutSeconds)
	}
	if cfg.Rotation.HoldSeconds != 5 {
		t.Errorf("HoldSeconds = %d, want 5", cfg.Rotation.HoldSeconds)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[spotify]
access_token = "file-token"
device_id = "file-device"
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SPOTIFY_ACCESS_TOKEN", "env-token")
	t.Setenv("SPOTIFY_DEVICE_ID", "env-device")
	t.Setenv("PLAYERX_LOG_LEVEL", "debug")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Spotify.AccessToken != "env-token" {
		t.Errorf("AccessToken = %q, env should win over the file", cfg.Spotify.AccessToken)
	}
	if cfg.Spotify.DeviceID != "env-device" {
		t.Errorf("DeviceID = %q, env should win over the file", cfg.Spotify.DeviceID)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad repeat mode",
			mutate:  func(c *Config) { c.Player.Repeat = "all" },
			wantErr: true,
		},
		{
			name:    "blank episode entry",
			mutate:  func(c *Config) { c.Player.Episodes = []string{"ok", "  "} },
			wantErr: true,
		},
		{
			name:    "negative max_concurrent",
			mutate:  func(c *Config) { c.Rotation.MaxConcurrent = -1 },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Spotify.TimeoutSeconds = -5 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
