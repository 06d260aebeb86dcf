package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/PIAAR/PlayerXSpotty/internal/config"
	apperrors "github.com/PIAAR/PlayerXSpotty/internal/errors"
	"github.com/PIAAR/PlayerXSpotty/internal/logging"
	"github.com/PIAAR/PlayerXSpotty/internal/spotify/client"
	"github.com/PIAAR/PlayerXSpotty/internal/spotify/player"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "playerx",
	Short: "Control Spotify playback on a Connect device",
	Long: `PlayerX issues playback commands against the Spotify Web API:
play tracks, episodes, albums or playlists on a named Connect device,
toggle shuffle and repeat, or rotate through a configured episode list.

The bearer credential comes from SPOTIFY_ACCESS_TOKEN and the default
target device from SPOTIFY_DEVICE_ID.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.playerxrc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidConfig, err)
	}

	logger = logging.New(os.Stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(logging.ParseLevel(cfg.Log.Level))
	}

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Format(err))
		os.Exit(1)
	}
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}

// getClient builds a Web API client from the loaded configuration.
func getClient() (*client.Client, error) {
	if cfg.Spotify.AccessToken == "" {
		return nil, apperrors.WithSuggestion(apperrors.ErrNotAuthenticated,
			"Set SPOTIFY_ACCESS_TOKEN or add access_token to the config file")
	}

	opts := []client.Option{
		client.WithTimeout(time.Duration(cfg.Spotify.TimeoutSeconds) * time.Second),
	}
	if cfg.Spotify.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(cfg.Spotify.BaseURL))
	}

	c, err := client.New(cfg.Spotify.AccessToken, opts...)
	if err != nil {
		return nil, err
	}

	if Verbose() {
		c.SetVerbose(true, logger.Debugf)
	}

	return c, nil
}

// getPlayer builds a device-scoped player. An explicit deviceArg (ID or
// name) is resolved against the device list; otherwise the configured
// SPOTIFY_DEVICE_ID is passed through unvalidated, per backend semantics.
func getPlayer(ctx context.Context, deviceArg string) (*player.Player, error) {
	c, err := getClient()
	if err != nil {
		return nil, err
	}

	p := player.New(c)

	if deviceArg != "" {
		deviceID, err := resolveDevice(ctx, c, deviceArg)
		if err != nil {
			return nil, err
		}
		p.SetDevice(deviceID)
	} else if cfg.Spotify.DeviceID != "" {
		p.SetDevice(cfg.Spotify.DeviceID)
	}

	return p, nil
}

// resolveDevice maps a device ID or (partial) name to a device ID.
func resolveDevice(ctx context.Context, c *client.Client, nameOrID string) (string, error) {
	devices, err := c.GetDevices(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get devices: %w", err)
	}

	// First try exact ID match
	for _, d := range devices {
		if d.ID == nameOrID {
			return d.ID, nil
		}
	}

	// Then try case-insensitive name match
	nameLower := strings.ToLower(nameOrID)
	for _, d := range devices {
		if strings.ToLower(d.Name) == nameLower {
			return d.ID, nil
		}
	}

	// Finally try partial name match
	for _, d := range devices {
		if strings.Contains(strings.ToLower(d.Name), nameLower) {
			return d.ID, nil
		}
	}

	return "", apperrors.WithSuggestion(
		fmt.Errorf("%w: %q", apperrors.ErrDeviceNotFound, nameOrID),
		"Run 'playerx devices' to see available devices")
}
