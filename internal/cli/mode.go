package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PIAAR/PlayerXSpotty/internal/core"
)

var modeDevice string

var shuffleCmd = &cobra.Command{
	Use:   "shuffle <on|off>",
	Short: "Toggle shuffle mode",
	Long:  `Turn shuffle mode on or off.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShuffle,
}

var repeatCmd = &cobra.Command{
	Use:   "repeat <off|track|context>",
	Short: "Set repeat mode",
	Long: `Set the repeat mode. "track" repeats the current track, "context"
repeats the current album or playlist, and "off" disables repeat.`,
	Args: cobra.ExactArgs(1),
	RunE: runRepeat,
}

var seekCmd = &cobra.Command{
	Use:   "seek <seconds>",
	Short: "Seek within the current track",
	Long:  `Seek to a position (in seconds) within the currently playing track.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSeek,
}

func init() {
	for _, cmd := range []*cobra.Command{shuffleCmd, repeatCmd, seekCmd} {
		cmd.Flags().StringVarP(&modeDevice, "device", "d", "", "Target device name or ID")
		rootCmd.AddCommand(cmd)
	}
}

func runShuffle(cmd *cobra.Command, args []string) error {
	var on bool
	switch args[0] {
	case "on":
		on = true
	case "off":
		on = false
	default:
		return fmt.Errorf("invalid shuffle state: %s (use on or off)", args[0])
	}

	ctx := context.Background()

	p, err := getPlayer(ctx, modeDevice)
	if err != nil {
		return err
	}

	if err := p.Shuffle(ctx, on); err != nil {
		return fmt.Errorf("failed to set shuffle: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]bool{"shuffle": on})
	} else if on {
		fmt.Println("🔀 Shuffle on")
	} else {
		fmt.Println("Shuffle off")
	}

	return nil
}

func runRepeat(cmd *cobra.Command, args []string) error {
	mode := core.RepeatMode(args[0])
	if !mode.Valid() {
		return fmt.Errorf("invalid repeat mode: %s (use off, track, or context)", args[0])
	}

	ctx := context.Background()

	p, err := getPlayer(ctx, modeDevice)
	if err != nil {
		return err
	}

	if err := p.Repeat(ctx, mode); err != nil {
		return fmt.Errorf("failed to set repeat: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"repeat": string(mode)})
	} else {
		fmt.Printf("🔁 Repeat: %s\n", mode)
	}

	return nil
}

func runSeek(cmd *cobra.Command, args []string) error {
	var seconds int
	if _, err := fmt.Sscanf(args[0], "%d", &seconds); err != nil {
		return fmt.Errorf("invalid position: %s", args[0])
	}
	if seconds < 0 {
		return fmt.Errorf("position must not be negative")
	}

	ctx := context.Background()

	p, err := getPlayer(ctx, modeDevice)
	if err != nil {
		return err
	}

	if err := p.Seek(ctx, seconds*1000); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]int{"position": seconds})
	} else {
		fmt.Printf("⏩ Seeked to %s\n", formatDuration(seconds*1000))
	}

	return nil
}
