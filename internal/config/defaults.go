package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Spotify: SpotifyConfig{
			BaseURL:        "https://api.spotify.com/v1",
			TimeoutSeconds: 30,
		},
		Player: PlayerConfig{
			Repeat: "off",
		},
		Rotation: RotationConfig{
			MaxConcurrent: 5,
			HoldSeconds:   5,
			RatePerSecond: 1,
		},
		Librespot: LibrespotConfig{
			Binary:  "librespot",
			Name:    "PlayerXDevice",
			Backend: "pipe",
			Device:  "/dev/null",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	if c.Spotify.BaseURL == "" {
		c.Spotify.BaseURL = d.Spotify.BaseURL
	}
	if c.Spotify.TimeoutSeconds == 0 {
		c.Spotify.TimeoutSeconds = d.Spotify.TimeoutSeconds
	}

	if c.Player.Repeat == "" {
		c.Player.Repeat = d.Player.Repeat
	}

	if c.Rotation.MaxConcurrent == 0 {
		c.Rotation.MaxConcurrent = d.Rotation.MaxConcurrent
	}
	if c.Rotation.HoldSeconds == 0 {
		c.Rotation.HoldSeconds = d.Rotation.HoldSeconds
	}
	if c.Rotation.RatePerSecond == 0 {
		c.Rotation.RatePerSecond = d.Rotation.RatePerSecond
	}

	if c.Librespot.Binary == "" {
		c.Librespot.Binary = d.Librespot.Binary
	}
	if c.Librespot.Name == "" {
		c.Librespot.Name = d.Librespot.Name
	}
	if c.Librespot.Backend == "" {
		c.Librespot.Backend = d.Librespot.Backend
	}
	if c.Librespot.Device == "" {
		c.Librespot.Device = d.Librespot.Device
	}

	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
