// ABOUTME: CLI command showing the installation's current state.
// ABOUTME: Data paths, catalog seeding, active profile, and device id.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/prefs"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show data paths, seeding state, and the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		fmt.Printf("%s\n", color.New(color.Bold).Sprint("fittrack status"))
		fmt.Printf("  data dir    %s\n", cfg.GetDataDir())
		fmt.Printf("  config      %s\n", faint.Sprint(config.GetConfigPath()))

		seeding := "on (catalog replaced at startup)"
		if !cfg.ShouldSeed() {
			seeding = "off"
		}
		fmt.Printf("  seeding     %s\n", seeding)

		foods, err := store.ListFoods()
		if err != nil {
			return fmt.Errorf("failed to list foods: %w", err)
		}
		fmt.Printf("  catalog     %d foods (%d built-in)\n", len(foods), storage.DefaultCatalogSize())

		profiles, err := store.ListProfiles()
		if err != nil {
			return fmt.Errorf("failed to list profiles: %w", err)
		}
		fmt.Printf("  profiles    %d\n", len(profiles))

		switch id, err := prefsStore.ActiveProfile(); {
		case err == nil:
			name := fmt.Sprintf("id %d", id)
			if p, perr := store.GetProfile(id); perr == nil {
				name = fmt.Sprintf("%s (id %d)", p.Name, p.ID)
			}
			fmt.Printf("  active      %s\n", name)
		case errors.Is(err, prefs.ErrNotSet):
			fmt.Printf("  active      %s\n", faint.Sprint("none"))
		default:
			return fmt.Errorf("failed to read active profile: %w", err)
		}

		deviceID, err := prefsStore.DeviceID()
		if err != nil {
			return fmt.Errorf("failed to read device id: %w", err)
		}
		fmt.Printf("  device id   %s\n", faint.Sprint(deviceID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
