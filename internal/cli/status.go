package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/PIAAR/PlayerXSpotty/internal/core"
	"github.com/PIAAR/PlayerXSpotty/internal/watch"
)

var (
	statusFollow   bool
	statusInterval time.Duration
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current playback status",
	Long: `Show what is currently playing, on which device, and the playback
settings. With --follow, keep watching and print a line for each change.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&statusFollow, "follow", "f", false, "Keep watching for playback changes")
	statusCmd.Flags().DurationVar(&statusInterval, "interval", time.Second, "Polling interval for --follow")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := getPlayer(ctx, "")
	if err != nil {
		return err
	}

	state, err := p.GetState(ctx)
	if err != nil {
		return fmt.Errorf("failed to get playback state: %w", err)
	}

	if JSONOutput() {
		if err := json.NewEncoder(os.Stdout).Encode(state); err != nil {
			return err
		}
	} else {
		printState(state)
	}

	if !statusFollow {
		return nil
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w := watch.NewWatcher(p, statusInterval)
	go func() {
		_ = w.Start(ctx)
	}()

	for ev := range w.Events() {
		printEvent(ev)
	}

	return nil
}

func printState(state *core.PlaybackState) {
	if state == nil || !state.HasTrack() {
		fmt.Println("Nothing playing")
		return
	}

	icon := stylePaused.Render("⏸")
	if state.IsPlaying {
		icon = stylePlaying.Render("▶")
	}

	fmt.Printf("%s %s\n", icon, styleTitle.Render(state.Track.Title))
	fmt.Printf("  %s\n", styleMuted.Render(fmt.Sprintf("%s · %s", state.Track.Artist, state.Track.Album)))

	progress := int(state.Progress.Milliseconds())
	total := int(state.Track.Duration.Milliseconds())
	fmt.Printf("  %s %s / %s (%.0f%%)\n", formatProgress(progress, total, 24),
		formatDuration(progress), formatDuration(total), state.ProgressPercent())

	if state.Device != nil {
		fmt.Printf("  %s\n", styleMuted.Render(fmt.Sprintf("on %s · vol %d%%", deviceSummary(state.Device), state.Volume)))
	}

	var modes []string
	if state.Shuffle {
		modes = append(modes, "shuffle")
	}
	if state.Repeat != core.RepeatOff {
		modes = append(modes, "repeat "+string(state.Repeat))
	}
	if len(modes) > 0 {
		line := modes[0]
		for _, m := range modes[1:] {
			line += ", " + m
		}
		fmt.Printf("  %s\n", styleMuted.Render(line))
	}
}

func printEvent(ev watch.Event) {
	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]any{
			"event": eventName(ev.Type),
			"time":  ev.Timestamp.Format(time.RFC3339),
			"state": ev.Current,
		})
		return
	}

	ts := styleMuted.Render(ev.Timestamp.Format("15:04:05"))
	switch ev.Type {
	case watch.EventTrackChange:
		if ev.Current.HasTrack() {
			fmt.Printf("%s ♪ %s — %s\n", ts, ev.Current.Track.Artist, ev.Current.Track.Title)
		}
	case watch.EventPause:
		fmt.Printf("%s ⏸ paused\n", ts)
	case watch.EventResume:
		fmt.Printf("%s ▶ resumed\n", ts)
	case watch.EventVolumeChange:
		fmt.Printf("%s 🔊 volume %d%%\n", ts, ev.Current.Volume)
	case watch.EventDeviceChange:
		fmt.Printf("%s ⇄ now on %s\n", ts, deviceSummary(ev.Current.Device))
	}
}

func eventName(t watch.EventType) string {
	switch t {
	case watch.EventTrackChange:
		return "track_change"
	case watch.EventPause:
		return "pause"
	case watch.EventResume:
		return "resume"
	case watch.EventVolumeChange:
		return "volume_change"
	case watch.EventDeviceChange:
		return "device_change"
	default:
		return "unknown"
	}
}
