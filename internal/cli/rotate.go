package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/PIAAR/PlayerXSpotty/internal/config"
	"github.com/PIAAR/PlayerXSpotty/internal/core"
	"github.com/PIAAR/PlayerXSpotty/internal/rotation"
)

var (
	rotateDevice string
	rotateOnce   bool
)

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate through configured episodes",
	Long: `Continuously issue play commands for the configured episode pool in
shuffled order. The [rotation] enabled flag is re-read from the config file
before each cycle, so the loop can be stopped by editing the file while it
runs. Ctrl-C also stops it.`,
	RunE: runRotate,
}

func init() {
	rotateCmd.Flags().StringVarP(&rotateDevice, "device", "d", "", "Target device name or ID")
	rotateCmd.Flags().BoolVar(&rotateOnce, "once", false, "Run a single cycle and exit")
	rootCmd.AddCommand(rotateCmd)
}

func runRotate(cmd *cobra.Command, args []string) error {
	episodes := cfg.Player.Episodes
	if len(episodes) == 0 {
		return fmt.Errorf("no episodes configured under [player] episodes")
	}

	uris := make([]string, len(episodes))
	for i, id := range episodes {
		uris[i] = core.EpisodeURI(id)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p, err := getPlayer(ctx, rotateDevice)
	if err != nil {
		return err
	}

	// Check the token up front so a stale credential fails here instead of
	// on every command of the first cycle.
	c, err := getClient()
	if err != nil {
		return err
	}
	user, err := c.GetCurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("token check failed: %w", err)
	}
	logger.Debug("token accepted", "user", user.ID)

	enabled := rotationEnabled
	if rotateOnce {
		ran := false
		enabled = func() bool {
			if ran {
				return false
			}
			ran = true
			return true
		}
	}

	r := rotation.New(p, rotation.Options{
		URIs:          uris,
		MaxConcurrent: cfg.Rotation.MaxConcurrent,
		Hold:          time.Duration(cfg.Rotation.HoldSeconds) * time.Second,
		Rate:          cfg.Rotation.RatePerSecond,
		Enabled:       enabled,
		Logger:        logger,
	})

	logger.Info("starting rotation", "episodes", len(uris), "max_concurrent", cfg.Rotation.MaxConcurrent)

	if err := r.Run(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Info("rotation stopped")
			return nil
		}
		return fmt.Errorf("rotation failed: %w", err)
	}

	logger.Info("rotation disabled, exiting")
	return nil
}

// rotationEnabled re-reads the config file so the loop can be switched off
// without restarting the process. Read errors keep the last known setting.
func rotationEnabled() bool {
	var (
		fresh *config.Config
		err   error
	)
	if cfgFile != "" {
		fresh, err = config.LoadFrom(cfgFile)
	} else {
		fresh, err = config.Load()
	}
	if err != nil {
		return cfg.Rotation.Enabled
	}
	cfg.Rotation.Enabled = fresh.Rotation.Enabled
	return fresh.Rotation.Enabled
}
