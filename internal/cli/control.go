package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var controlDevice string

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback",
	Long:  `Pause the current playback.`,
	RunE:  runPause,
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume playback",
	Long:  `Resume paused playback.`,
	RunE:  runResume,
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Skip to next track",
	Long:  `Skip to the next track in the queue.`,
	RunE:  runNext,
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Go to previous track",
	Long:  `Go back to the previous track.`,
	RunE:  runPrev,
}

var volumeCmd = &cobra.Command{
	Use:   "volume [level]",
	Short: "Set or show volume",
	Long: `Set the playback volume (0-100), or show the current volume when
no level is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVolume,
}

func init() {
	for _, cmd := range []*cobra.Command{pauseCmd, resumeCmd, nextCmd, prevCmd, volumeCmd} {
		cmd.Flags().StringVarP(&controlDevice, "device", "d", "", "Target device name or ID")
		rootCmd.AddCommand(cmd)
	}
}

func runPause(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := getPlayer(ctx, controlDevice)
	if err != nil {
		return err
	}

	if err := p.Pause(ctx); err != nil {
		return fmt.Errorf("failed to pause: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "paused"})
	} else {
		fmt.Println("⏸ Paused")
	}

	return nil
}

func runResume(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := getPlayer(ctx, controlDevice)
	if err != nil {
		return err
	}

	if err := p.Play(ctx); err != nil {
		return fmt.Errorf("failed to resume: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "playing"})
	} else {
		fmt.Println("▶ Resumed")
	}

	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := getPlayer(ctx, controlDevice)
	if err != nil {
		return err
	}

	if err := p.Next(ctx); err != nil {
		return fmt.Errorf("failed to skip: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "skipped"})
	} else {
		fmt.Println("⏭ Skipped to next track")
	}

	return nil
}

func runPrev(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := getPlayer(ctx, controlDevice)
	if err != nil {
		return err
	}

	if err := p.Prev(ctx); err != nil {
		return fmt.Errorf("failed to go back: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "previous"})
	} else {
		fmt.Println("⏮ Previous track")
	}

	return nil
}

func runVolume(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := getPlayer(ctx, controlDevice)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		state, err := p.GetState(ctx)
		if err != nil {
			return fmt.Errorf("failed to get playback state: %w", err)
		}
		if JSONOutput() {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]int{"volume": state.Volume})
		} else {
			fmt.Printf("🔊 Volume: %d%%\n", state.Volume)
		}
		return nil
	}

	level, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid volume level: %s", args[0])
	}
	if level < 0 || level > 100 {
		return fmt.Errorf("volume must be between 0 and 100")
	}

	if err := p.Volume(ctx, level); err != nil {
		return fmt.Errorf("failed to set volume: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]int{"volume": level})
	} else {
		fmt.Printf("🔊 Volume: %d%%\n", level)
	}

	return nil
}
