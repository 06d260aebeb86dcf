package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PIAAR/PlayerXSpotty/internal/core"
)

var episodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "List configured podcast episodes",
	Long: `List the podcast episode IDs configured under [player] episodes in
the config file. These form the pool the rotate command draws from.`,
	RunE: runEpisodes,
}

func init() {
	rootCmd.AddCommand(episodesCmd)
}

func runEpisodes(cmd *cobra.Command, args []string) error {
	episodes := cfg.Player.Episodes

	if JSONOutput() {
		if episodes == nil {
			episodes = []string{}
		}
		return json.NewEncoder(os.Stdout).Encode(episodes)
	}

	if len(episodes) == 0 {
		fmt.Println("No episodes configured. Add IDs under [player] episodes in the config file.")
		return nil
	}

	t := NewTable("#", "ID", "URI")
	for i, id := range episodes {
		t.Row(fmt.Sprintf("%d", i+1), id, core.EpisodeURI(id))
	}
	t.Flush()

	return nil
}
