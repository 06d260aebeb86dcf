package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads configuration from standard locations with environment
// overrides. Search order: ~/.playerxrc, $XDG_CONFIG_HOME/playerx/config.toml,
// ~/.config/playerx/config.toml. A .env file in the working directory is
// loaded first so the documented SPOTIFY_* variables can live there.
func Load() (*Config, error) {
	cfg := &Config{}

	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".playerxrc"),
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "playerx", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
// SPOTIFY_ACCESS_TOKEN and SPOTIFY_DEVICE_ID are the documented interface;
// env always wins over the file.
func applyEnvOverrides(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SPOTIFY_ACCESS_TOKEN"); v != "" {
		cfg.Spotify.AccessToken = v
	}
	if v := os.Getenv("SPOTIFY_DEVICE_ID"); v != "" {
		cfg.Spotify.DeviceID = v
	}
	if v := os.Getenv("PLAYERX_BASE_URL"); v != "" {
		cfg.Spotify.BaseURL = v
	}
	if v := os.Getenv("PLAYERX_TIMEOUT_SECONDS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Spotify.TimeoutSeconds = i
		}
	}
	if v := os.Getenv("PLAYERX_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
