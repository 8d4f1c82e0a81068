// ABOUTME: CLI commands for browsing and editing the food catalog.
// ABOUTME: Catalog edits do not survive restarts unless seeding is off.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var foodDescription string

var foodCmd = &cobra.Command{
	Use:     "food",
	Aliases: []string{"f"},
	Short:   "Browse and edit the food catalog",
}

var foodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the food catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := store.ListFoods()
		if err != nil {
			return fmt.Errorf("failed to list foods: %w", err)
		}
		if len(foods) == 0 {
			fmt.Println("Food catalog is empty.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, f := range foods {
			desc := ""
			if f.Description != "" {
				desc = faint.Sprintf(" (%s)", f.Description)
			}
			fmt.Printf("%s %s %s kcal%s\n",
				faint.Sprintf("%3d", f.ID),
				padRight(f.Name, 20),
				fmt.Sprintf("%4.0f", f.Calories),
				desc)
		}
		return nil
	},
}

var foodAddCmd = &cobra.Command{
	Use:   "add <name> <calories>",
	Short: "Add a catalog entry",
	Long: `Add a food to the catalog.

Note: startup seeding replaces the whole catalog, so custom entries
disappear on the next run unless "seed_catalog": false is set in the
config.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid calorie value: %s", args[1])
		}

		f := models.NewFood(args[0], calories, foodDescription)
		id, err := store.CreateFood(f)
		if err != nil {
			return fmt.Errorf("failed to create food: %w", err)
		}

		color.Green("✓ Added %s", f.Name)
		fmt.Printf("  id %d, %.0f kcal\n", id, f.Calories)
		if cfg.ShouldSeed() {
			color.Yellow("  note: catalog seeding is on; this entry is replaced at next startup")
		}
		return nil
	},
}

var foodRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a catalog entry",
	Long: `Delete a food from the catalog. Fails while any logged consumption
still references it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid food id: %s", args[0])
		}

		if err := store.DeleteFood(id); err != nil {
			return err
		}

		color.Green("✓ Deleted food %d", id)
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	foodAddCmd.Flags().StringVar(&foodDescription, "description", "", "free-text description")

	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodRmCmd)
	rootCmd.AddCommand(foodCmd)
}
