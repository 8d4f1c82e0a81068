// ABOUTME: CLI commands for managing local user profiles.
// ABOUTME: Handles add, list, show, rm, and active profile selection.
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
	profileAge    int
	profileHeight float64
	profileWeight float64
	profileSex    string
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Manage local user profiles",
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new profile",
	Long: `Register a new local profile with static biometrics.

The basal metabolic rate is precomputed from the biometrics and stored
with the profile.

Examples:
  fittrack profile add Alice --age 30 --height 170 --weight 60
  fittrack profile add Bob --age 42 --height 182 --weight 85 --sex male`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if profileAge <= 0 || profileHeight <= 0 || profileWeight <= 0 {
			return fmt.Errorf("--age, --height, and --weight are required and must be positive")
		}

		p := models.NewProfile(name, profileAge, profileHeight, profileWeight)
		bmr := estimate.BMR(profileWeight, profileHeight, profileAge, estimate.ParseSex(profileSex))
		p.WithBMR(bmr)

		id, err := store.CreateProfile(p)
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		// First profile becomes the active one automatically
		if _, err := prefsStore.ActiveProfile(); err != nil {
			_ = prefsStore.SetActiveProfile(id)
		}

		color.Green("✓ Registered %s", name)
		fmt.Printf("  id %d, BMR %.0f kcal/day\n", id, bmr)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := store.ListProfiles()
		if err != nil {
			return fmt.Errorf("failed to list profiles: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles registered.")
			return nil
		}

		activeID, _ := prefsStore.ActiveProfile()
		faint := color.New(color.Faint)
		for _, p := range profiles {
			marker := " "
			if p.ID == activeID {
				marker = color.GreenString("*")
			}
			fmt.Printf("%s %s %s\n", marker, faint.Sprintf("%d", p.ID), p.Name)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a profile's biometrics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid profile id: %s", args[0])
		}

		p, err := store.GetProfile(id)
		if err != nil {
			return err
		}

		fmt.Printf("%s (id %d)\n", color.New(color.Bold).Sprint(p.Name), p.ID)
		fmt.Printf("  age     %d\n", p.Age)
		fmt.Printf("  height  %.1f cm\n", p.HeightCm)
		fmt.Printf("  weight  %.1f kg\n", p.WeightKg)
		if p.BMR != nil {
			fmt.Printf("  BMR     %.0f kcal/day\n", *p.BMR)
		}
		fmt.Printf("  created %s\n", p.CreatedAt.Format("2006-01-02"))
		return nil
	},
}

var profileRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a profile and its logged data",
	Long: `Delete a profile. Their consumption log and recorded routes are
removed with it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid profile id: %s", args[0])
		}

		if err := store.DeleteProfile(id); err != nil {
			return err
		}

		if activeID, perr := prefsStore.ActiveProfile(); perr == nil && activeID == id {
			_ = prefsStore.ClearActiveProfile()
		}

		color.Green("✓ Deleted profile %d", id)
		return nil
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Select the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid profile id: %s", args[0])
		}

		p, err := store.GetProfile(id)
		if err != nil {
			return err
		}

		if err := prefsStore.SetActiveProfile(id); err != nil {
			return fmt.Errorf("failed to set active profile: %w", err)
		}

		color.Green("✓ Active profile: %s", p.Name)
		return nil
	},
}

func init() {
	profileAddCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileAddCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileAddCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
	profileAddCmd.Flags().StringVar(&profileSex, "sex", "", "sex for the BMR formula (male/female)")

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileRmCmd)
	profileCmd.AddCommand(profileUseCmd)
	rootCmd.AddCommand(profileCmd)
}
