package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PIAAR/PlayerXSpotty/internal/spotify/client"
)

var queueDevice string

var queueCmd = &cobra.Command{
	Use:   "queue [uri|id...]",
	Short: "Show or add to the playback queue",
	Long: `Without arguments, show the upcoming queue. With arguments, add
tracks or episodes to the end of the queue. Bare IDs need --track or
--episode, same as the play command.`,
	RunE: runQueue,
}

func init() {
	queueCmd.Flags().StringVarP(&queueDevice, "device", "d", "", "Target device name or ID")
	queueCmd.Flags().BoolVar(&playEpisode, "episode", false, "Treat bare IDs as episode IDs")
	queueCmd.Flags().BoolVar(&playTrack, "track", false, "Treat bare IDs as track IDs")
	rootCmd.AddCommand(queueCmd)
}

func runQueue(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 {
		return showQueue(ctx)
	}

	p, err := getPlayer(ctx, queueDevice)
	if err != nil {
		return err
	}

	uris, err := resolveResourceURIs(args)
	if err != nil {
		return err
	}

	for _, uri := range uris {
		if err := p.AddToQueue(ctx, uri); err != nil {
			return fmt.Errorf("failed to queue %s: %w", uri, err)
		}
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"status": "queued",
			"uris":   uris,
		})
	} else {
		fmt.Printf("➕ Queued %d item(s)\n", len(uris))
	}

	return nil
}

func showQueue(ctx context.Context) error {
	c, err := getClient()
	if err != nil {
		return err
	}

	queue, err := c.GetQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to get queue: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(queue)
	}

	if queue.CurrentlyPlaying != nil {
		fmt.Printf("%s %s — %s\n", stylePlaying.Render("▶"),
			trackArtist(queue.CurrentlyPlaying), queue.CurrentlyPlaying.Name)
	}

	if len(queue.Queue) == 0 {
		fmt.Println(styleMuted.Render("Queue is empty"))
		return nil
	}

	t := NewTable("#", "TITLE", "ARTIST", "LENGTH")
	for i, track := range queue.Queue {
		t.Row(fmt.Sprintf("%d", i+1),
			truncateString(track.Name, 40),
			truncateString(trackArtist(&track), 30),
			formatDuration(track.DurationMS))
	}
	t.Flush()

	return nil
}

// trackArtist picks the display artist: joined artist names for tracks, the
// show name for episodes.
func trackArtist(track *client.Track) string {
	if track.Show != nil {
		return track.Show.Name
	}
	if len(track.Artists) == 0 {
		return ""
	}
	name := track.Artists[0].Name
	for _, a := range track.Artists[1:] {
		name += ", " + a.Name
	}
	return name
}
