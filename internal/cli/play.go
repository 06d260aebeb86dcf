package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PIAAR/PlayerXSpotty/internal/core"
)

var (
	playDevice  string
	playEpisode bool
	playTrack   bool
	playShuffle bool
)

var playCmd = &cobra.Command{
	Use:   "play [uri|id...]",
	Short: "Start or resume playback",
	Long: `Start playback of one or more tracks, episodes, or a single album,
playlist or show. Without arguments, resumes current playback.

Arguments may be full Spotify URIs or bare IDs combined with --track or
--episode.

Examples:
  playerx play                                    # Resume playback
  playerx play spotify:track:3n3Ppam7vgaVa1iaRUc9Lp
  playerx play --episode 4rOoJ6Egrf8K2IrywzwOMk   # Play an episode by ID
  playerx play spotify:playlist:37i9dQZF1DXcBWIGoYBM5M --shuffle
  playerx play --device Kitchen spotify:track:xxx # Play on a named device`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&playDevice, "device", "d", "", "Target device name or ID")
	playCmd.Flags().BoolVar(&playEpisode, "episode", false, "Treat bare IDs as episode IDs")
	playCmd.Flags().BoolVar(&playTrack, "track", false, "Treat bare IDs as track IDs")
	playCmd.Flags().BoolVar(&playShuffle, "shuffle", false, "Enable shuffle mode before playing")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := getPlayer(ctx, playDevice)
	if err != nil {
		return err
	}

	if playShuffle {
		if err := p.Shuffle(ctx, true); err != nil {
			if Verbose() {
				fmt.Fprintf(os.Stderr, "Warning: could not enable shuffle: %v\n", err)
			}
		}
	}

	if len(args) == 0 {
		if err := p.Play(ctx); err != nil {
			return fmt.Errorf("failed to resume playback: %w", err)
		}
		if !JSONOutput() {
			fmt.Println("▶ Resumed playback")
		}
		return nil
	}

	uris, err := resolveResourceURIs(args)
	if err != nil {
		return err
	}

	// A single context URI (album, playlist, show) plays as a context;
	// everything else plays as an ordered uris list.
	if len(uris) == 1 {
		if kind, _, err := core.ParseURI(uris[0]); err == nil && kind.IsContextKind() {
			if err := p.PlayContext(ctx, uris[0], 0); err != nil {
				return fmt.Errorf("failed to play %s: %w", kind, err)
			}
			outputPlayResult(uris)
			return nil
		}
	}

	if err := p.PlayURIs(ctx, uris); err != nil {
		return fmt.Errorf("failed to play: %w", err)
	}

	outputPlayResult(uris)
	return nil
}

// resolveResourceURIs turns CLI arguments into Spotify URIs. Full URIs pass
// through; bare IDs need --track or --episode to pick the resource kind.
func resolveResourceURIs(args []string) ([]string, error) {
	uris := make([]string, 0, len(args))
	for _, arg := range args {
		if _, _, err := core.ParseURI(arg); err == nil {
			uris = append(uris, arg)
			continue
		}

		switch {
		case playEpisode:
			uris = append(uris, core.EpisodeURI(arg))
		case playTrack:
			uris = append(uris, core.TrackURI(arg))
		default:
			return nil, fmt.Errorf("%q is not a spotify URI; pass --track or --episode to play bare IDs", arg)
		}
	}
	return uris, nil
}

func outputPlayResult(uris []string) {
	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"status": "playing",
			"uris":   uris,
		})
		return
	}

	if len(uris) == 1 {
		fmt.Printf("▶ Playing %s\n", uris[0])
	} else {
		fmt.Printf("▶ Playing %d items\n", len(uris))
	}
}
