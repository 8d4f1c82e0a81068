// ABOUTME: CLI command for logging food consumption.
// ABOUTME: Looks the food up by name and records a quantity multiplier.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	logQty     float64
	logAt      string
	logProfile int64
)

var logCmd = &cobra.Command{
	Use:   "log <food>",
	Short: "Log eating a food from the catalog",
	Long: `Log that the active profile ate a food. The food is looked up by its
catalog name; quantity is a serving multiplier.

Examples:
  fittrack log Apple
  fittrack log "White rice" --qty 2
  fittrack log Banana --at "2026-08-29 08:30"
  fittrack log Egg --profile 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID(logProfile)
		if err != nil {
			return err
		}

		food, err := store.GetFoodByName(args[0])
		if err != nil {
			return err
		}

		c := models.NewConsumption(profileID, food.ID)
		if logQty > 0 {
			c.WithQuantity(logQty)
		}
		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			c.WithConsumedAt(t)
		}

		if _, err := store.LogConsumption(c); err != nil {
			return fmt.Errorf("failed to log consumption: %w", err)
		}

		color.Green("✓ Logged %s", food.Name)
		fmt.Printf("  %.1f × %.0f kcal = %.0f kcal at %s\n",
			c.Quantity, food.Calories, c.Quantity*food.Calories,
			c.ConsumedAt.Format("15:04"))
		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		models.TimestampLayout,
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	logCmd.Flags().Float64Var(&logQty, "qty", 0, "serving multiplier (default 1.0)")
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	logCmd.Flags().Int64Var(&logProfile, "profile", 0, "profile id (default: active profile)")
	rootCmd.AddCommand(logCmd)
}
