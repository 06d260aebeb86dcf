package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/PIAAR/PlayerXSpotty/internal/librespot"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run a headless librespot device",
	Long: `Launch librespot as a child process so this host registers as a
Spotify Connect device. The daemon runs until interrupted; use the devices
command from another shell to confirm it appeared.`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(cmd *cobra.Command, args []string) error {
	if cfg.Spotify.AccessToken == "" {
		return fmt.Errorf("no access token configured; set SPOTIFY_ACCESS_TOKEN")
	}

	d, err := librespot.New(librespot.Options{
		Binary:  cfg.Librespot.Binary,
		Name:    cfg.Librespot.Name,
		Token:   cfg.Spotify.AccessToken,
		Backend: cfg.Librespot.Backend,
		Device:  cfg.Librespot.Device,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := d.Start(ctx); err != nil {
		return fmt.Errorf("failed to start librespot: %w", err)
	}

	logger.Info("librespot started", "name", cfg.Librespot.Name, "pid", d.PID())

	if err := d.Wait(); err != nil {
		if ctx.Err() != nil {
			logger.Info("librespot stopped")
			return nil
		}
		return fmt.Errorf("librespot exited: %w", err)
	}

	return nil
}
