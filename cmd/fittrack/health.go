// ABOUTME: CLI command for daily health snapshots.
// ABOUTME: Uses the derived provider; platform adapters slot in the same way.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/estimate"
	"github.com/harperreed/fittrack/internal/health"
	"github.com/spf13/cobra"
)

var (
	healthDate    string
	healthProfile int64
	healthSex     string
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Aggregated health metrics",
}

var healthSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show the day's health snapshot",
	Long: `Show the aggregated health figures for one calendar day.

Without a platform health SDK the figures are derived estimates: steps
and active calories from the day's recorded routes, heart rate limits
from the Tanaka formula.

Examples:
  fittrack health snapshot
  fittrack health snapshot --date 2026-08-29 --profile 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID(healthProfile)
		if err != nil {
			return err
		}

		day := time.Now()
		if healthDate != "" {
			t, err := time.ParseInLocation("2006-01-02", healthDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", healthDate)
			}
			day = t
		}

		provider := health.NewDerived(store, profileID, estimate.ParseSex(healthSex))

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := provider.Initialize(ctx); err != nil {
			return err
		}

		snap, err := provider.FetchSnapshot(ctx, day)
		if err != nil {
			return fmt.Errorf("failed to fetch snapshot: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n",
			color.New(color.Bold).Sprint(snap.Day.Format("2006-01-02")),
			faint.Sprintf("(%s)", snap.Source))
		fmt.Printf("  steps            %d\n", snap.Steps)
		fmt.Printf("  active calories  %.0f kcal\n", snap.ActiveCalories)
		fmt.Printf("  sleep            %.1f h\n", snap.SleepHours)
		fmt.Printf("  resting HR       %.0f bpm\n", snap.RestingHeartRate)
		fmt.Printf("  max HR           %.0f bpm\n", snap.MaxHeartRate)
		return nil
	},
}

func init() {
	healthSnapshotCmd.Flags().StringVar(&healthDate, "date", "", "calendar day (YYYY-MM-DD, default today)")
	healthSnapshotCmd.Flags().Int64Var(&healthProfile, "profile", 0, "profile id (default: active profile)")
	healthSnapshotCmd.Flags().StringVar(&healthSex, "sex", "", "sex for stride estimation (male/female)")

	healthCmd.AddCommand(healthSnapshotCmd)
	rootCmd.AddCommand(healthCmd)
}
