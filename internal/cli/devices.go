package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PIAAR/PlayerXSpotty/internal/core"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List available playback devices",
	Long: `List the Spotify Connect devices currently registered with the
backend, including headless daemons such as librespot.`,
	RunE: runDevices,
}

var transferCmd = &cobra.Command{
	Use:   "transfer <device>",
	Short: "Transfer playback to another device",
	Long:  `Transfer the current playback session to the named device.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTransfer,
}

var transferPlay bool

func init() {
	transferCmd.Flags().BoolVar(&transferPlay, "play", true, "Start playback after transfer")
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(transferCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := getPlayer(ctx, "")
	if err != nil {
		return err
	}

	devices, err := p.GetDevices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(devices)
	}

	if len(devices) == 0 {
		fmt.Println("No devices found. Is a Spotify client or daemon running?")
		return nil
	}

	t := NewTable("", "NAME", "TYPE", "ID", "VOLUME")
	for _, d := range devices {
		volume := "-"
		if d.Volume != nil {
			volume = fmt.Sprintf("%d%%", *d.Volume)
		}
		name := d.Name
		if d.IsActive {
			name = stylePlaying.Render(name)
		}
		t.Row(statusIcon(d.IsActive), name, string(d.Type), d.ID, volume)
	}
	t.Flush()

	return nil
}

func runTransfer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	c, err := getClient()
	if err != nil {
		return err
	}

	deviceID, err := resolveDevice(ctx, c, args[0])
	if err != nil {
		return err
	}

	p, err := getPlayer(ctx, "")
	if err != nil {
		return err
	}

	if err := p.TransferPlayback(ctx, deviceID, transferPlay); err != nil {
		return fmt.Errorf("failed to transfer playback: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"transferred": deviceID})
	} else {
		fmt.Printf("Transferred playback to %s\n", args[0])
	}

	return nil
}

// deviceSummary is a compact one-line rendering used by status output.
func deviceSummary(d *core.Device) string {
	if d == nil {
		return "unknown device"
	}
	return fmt.Sprintf("%s (%s)", d.Name, d.Type)
}
