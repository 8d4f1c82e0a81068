// ABOUTME: CLI commands for derived estimates from profile biometrics.
// ABOUTME: BMR, steps for a distance, and Tanaka max heart rate.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/estimate"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	estimateProfile int64
	estimateSex     string
)

var estimateCmd = &cobra.Command{
	Use:     "estimate",
	Aliases: []string{"e"},
	Short:   "Derived estimates from the profile's biometrics",
}

var estimateBMRCmd = &cobra.Command{
	Use:   "bmr",
	Short: "Basal metabolic rate (Mifflin-St Jeor)",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := estimateTarget()
		if err != nil {
			return err
		}

		bmr := estimate.BMR(p.WeightKg, p.HeightCm, p.Age, estimate.ParseSex(estimateSex))
		fmt.Printf("%s: %.0f kcal/day\n", color.New(color.Bold).Sprint("BMR"), bmr)
		if p.BMR != nil && *p.BMR != bmr {
			fmt.Printf("  stored at registration: %.0f kcal/day\n", *p.BMR)
		}
		return nil
	},
}

var estimateStepsCmd = &cobra.Command{
	Use:   "steps <distance-km>",
	Short: "Steps needed to cover a distance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		distance, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid distance: %s", args[0])
		}

		p, err := estimateTarget()
		if err != nil {
			return err
		}

		sex := estimate.ParseSex(estimateSex)
		steps := estimate.StepsForDistance(distance, p.HeightCm, sex)
		stride := estimate.StrideLengthM(p.HeightCm, sex)
		fmt.Printf("%s: %d (stride %.2f m)\n", color.New(color.Bold).Sprint("steps"), steps, stride)
		return nil
	},
}

var estimateMaxHRCmd = &cobra.Command{
	Use:   "maxhr",
	Short: "Maximum heart rate (Tanaka)",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := estimateTarget()
		if err != nil {
			return err
		}

		fmt.Printf("%s: %.0f bpm\n", color.New(color.Bold).Sprint("max HR"),
			estimate.MaxHeartRate(p.Age))
		return nil
	},
}

func estimateTarget() (*models.Profile, error) {
	id, err := activeProfileID(estimateProfile)
	if err != nil {
		return nil, err
	}
	return store.GetProfile(id)
}

func init() {
	estimateCmd.PersistentFlags().Int64Var(&estimateProfile, "profile", 0, "profile id (default: active profile)")
	estimateCmd.PersistentFlags().StringVar(&estimateSex, "sex", "", "sex for formulas that use one (male/female)")

	estimateCmd.AddCommand(estimateBMRCmd)
	estimateCmd.AddCommand(estimateStepsCmd)
	estimateCmd.AddCommand(estimateMaxHRCmd)
	rootCmd.AddCommand(estimateCmd)
}
