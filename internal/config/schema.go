package config

// Config is the root configuration structure.
type Config struct {
	Spotify   SpotifyConfig   `toml:"spotify"`
	Player    PlayerConfig    `toml:"player"`
	Rotation  RotationConfig  `toml:"rotation"`
	Librespot LibrespotConfig `toml:"librespot"`
	Log       LogConfig       `toml:"log"`
}

// SpotifyConfig holds Web API settings. The access token is an opaque bearer
// credential supplied externally; its expiry is not tracked here.
type SpotifyConfig struct {
	AccessToken    string `toml:"access_token"`
	DeviceID       string `toml:"device_id"`
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// PlayerConfig holds default playback settings and the configured episode
// rotation list.
type PlayerConfig struct {
	Repeat   string   `toml:"repeat"`
	Shuffle  bool     `toml:"shuffle"`
	Episodes []string `toml:"episodes"`
}

// RotationConfig holds settings for the shuffled rotation loop.
type RotationConfig struct {
	Enabled       bool    `toml:"enabled"`
	MaxConcurrent int     `toml:"max_concurrent"`
	HoldSeconds   int     `toml:"hold_seconds"`
	RatePerSecond float64 `toml:"rate_per_second"`
}

// LibrespotConfig holds the launch settings for the headless Connect daemon.
type LibrespotConfig struct {
	Binary  string `toml:"binary"`
	Name    string `toml:"name"`
	Backend string `toml:"backend"`
	Device  string `toml:"device"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}
