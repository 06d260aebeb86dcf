package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Long: `Fetch the profile behind the configured access token. Useful as a
quick check that the token is still accepted before issuing playback
commands.`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	c, err := getClient()
	if err != nil {
		return err
	}

	user, err := c.GetCurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to get user profile: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(user)
	}

	name := user.DisplayName
	if name == "" {
		name = user.ID
	}
	fmt.Printf("%s\n", styleTitle.Render(name))
	fmt.Printf("  %s\n", styleMuted.Render(fmt.Sprintf("id %s · %s · %s", user.ID, user.Product, user.Country)))

	return nil
}
