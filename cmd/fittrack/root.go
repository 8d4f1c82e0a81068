// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Opens storage and prefs in PersistentPre/PostRunE, seeds the catalog.
package main

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/prefs"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	store      *storage.Store
	prefsStore *prefs.Prefs
	dataDir    string
	log        = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Local-first fitness tracker",
	Long: `Fittrack is a CLI tool for tracking food intake, runs, and
derived health metrics across multiple local profiles.

QUICK START:

  $ fittrack profile add Alice --age 30 --height 170 --weight 60
  $ fittrack profile use 1                # Select the active profile
  $ fittrack log Apple                    # Log eating an apple
  $ fittrack log "White rice" --qty 2     # Two servings
  $ fittrack summary                      # Calories consumed today
  $ fittrack route add 5.2                # Record a 5.2 km run
  $ fittrack estimate bmr                 # Basal metabolic rate

CATALOG:

  The food catalog is reset to the built-in list on every startup.
  Set "seed_catalog": false in the config to keep your own catalog.

  $ fittrack food list                    # Browse the catalog

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for
  use with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in a single SQLite file at ~/.local/share/fittrack.
  Preferences (active profile) are kept in a local key-value store.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't touch storage
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}

		// Reseeding is best-effort: a failed seed leaves the catalog
		// as-is and must not block startup.
		if cfg.ShouldSeed() {
			if err := store.SeedCatalog(); err != nil {
				log.WithError(err).Warn("food catalog seeding failed")
			}
		}

		prefsStore, err = prefs.Open(cfg.PrefsDir())
		if err != nil {
			_ = store.Close()
			return fmt.Errorf("open prefs: %w", err)
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if prefsStore != nil {
			if err := prefsStore.Close(); err != nil {
				log.WithError(err).Warn("closing prefs store failed")
			}
		}
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for the database and prefs (default: XDG data dir)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// activeProfileID resolves the profile to act on: an explicit --profile
// flag wins, otherwise the prefs selection, otherwise an error telling
// the user how to pick one.
func activeProfileID(flagValue int64) (int64, error) {
	if flagValue > 0 {
		return flagValue, nil
	}
	id, err := prefsStore.ActiveProfile()
	if err != nil {
		any, herr := store.HasProfiles()
		if herr == nil && !any {
			return 0, fmt.Errorf("no profiles yet - run 'fittrack profile add' first")
		}
		return 0, fmt.Errorf("no active profile - run 'fittrack profile use <id>' or pass --profile")
	}
	return id, nil
}
