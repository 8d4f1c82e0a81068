// ABOUTME: CLI command for the per-day calorie summary.
// ABOUTME: Shows the day's consumption entries and their calorie sum.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	summaryDate    string
	summaryProfile int64
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"s"},
	Short:   "Calories consumed on a calendar day",
	Long: `Show the consumption log and total calories for one calendar day.

Examples:
  fittrack summary                    # Today, active profile
  fittrack summary --date 2026-08-29
  fittrack summary --profile 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID(summaryProfile)
		if err != nil {
			return err
		}

		day := time.Now()
		if summaryDate != "" {
			t, err := time.ParseInLocation("2006-01-02", summaryDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", summaryDate)
			}
			day = t
		}

		entries, err := store.ListConsumptions(profileID, day)
		if err != nil {
			return fmt.Errorf("failed to list consumptions: %w", err)
		}

		total, err := store.CalorieSum(profileID, day)
		if err != nil {
			return fmt.Errorf("failed to sum calories: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s\n", color.New(color.Bold).Sprint(day.Format("2006-01-02")))
		if len(entries) == 0 {
			fmt.Println("  nothing logged")
		}
		for _, c := range entries {
			fmt.Printf("  %s %s %.1f × %.0f = %.0f kcal\n",
				faint.Sprint(c.ConsumedAt.Format("15:04")),
				padRight(c.FoodName, 20),
				c.Quantity, c.FoodCalories, c.Quantity*c.FoodCalories)
		}
		fmt.Printf("  %s %.0f kcal\n", color.New(color.Bold).Sprint("total"), total)

		// Show the margin against the stored metabolic rate when known
		if p, err := store.GetProfile(profileID); err == nil && p.BMR != nil {
			fmt.Printf("  %s\n", faint.Sprintf("BMR %.0f kcal/day, margin %+.0f", *p.BMR, total-*p.BMR))
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "calendar day (YYYY-MM-DD, default today)")
	summaryCmd.Flags().Int64Var(&summaryProfile, "profile", 0, "profile id (default: active profile)")
	rootCmd.AddCommand(summaryCmd)
}
