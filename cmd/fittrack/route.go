// ABOUTME: CLI commands for recorded run routes.
// ABOUTME: Points come in as a lat,lon list or a JSON file from a recorder.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	routeAt         string
	routeProfile    int64
	routePoints     []string
	routePointsFile string
	routeLimit      int
)

var routeCmd = &cobra.Command{
	Use:     "route",
	Aliases: []string{"r"},
	Short:   "Record and browse run routes",
}

var routeAddCmd = &cobra.Command{
	Use:   "add <distance-km>",
	Short: "Record a completed run",
	Long: `Record a completed run with its total distance and, optionally, the
GPS points captured along the way.

Examples:
  fittrack route add 5.2
  fittrack route add 5.2 --point 41.39,2.16 --point 41.40,2.17
  fittrack route add 10.5 --points-file track.json --at "2026-08-29 07:00"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID(routeProfile)
		if err != nil {
			return err
		}

		distance, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid distance: %s", args[0])
		}

		points, err := collectPoints()
		if err != nil {
			return err
		}

		r := models.NewRoute(profileID, distance, points)
		if routeAt != "" {
			t, err := parseTime(routeAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", routeAt)
			}
			r.WithRecordedAt(t)
		}

		id, err := store.CreateRoute(r)
		if err != nil {
			return fmt.Errorf("failed to create route: %w", err)
		}

		color.Green("✓ Recorded %.2f km run", distance)
		fmt.Printf("  id %d, %d points\n", id, len(points))
		return nil
	},
}

var routeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded runs, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID(routeProfile)
		if err != nil {
			return err
		}

		routes, err := store.ListRoutes(profileID, routeLimit)
		if err != nil {
			return fmt.Errorf("failed to list routes: %w", err)
		}
		if len(routes) == 0 {
			fmt.Println("No routes recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range routes {
			fmt.Printf("%s %s %6.2f km  %d points\n",
				faint.Sprintf("%3d", r.ID),
				faint.Sprint(r.RecordedAt.Format("2006-01-02 15:04")),
				r.DistanceKm, len(r.Points))
		}
		return nil
	},
}

var routeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a route with its GPS points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid route id: %s", args[0])
		}

		r, err := store.GetRoute(id)
		if err != nil {
			return err
		}

		fmt.Printf("%s %.2f km, profile %d\n",
			color.New(color.Bold).Sprint(r.RecordedAt.Format("2006-01-02 15:04")),
			r.DistanceKm, r.ProfileID)
		for _, pt := range r.Points {
			fmt.Printf("  %.5f, %.5f\n", pt.Lat, pt.Lon)
		}
		return nil
	},
}

// collectPoints merges --point flags and --points-file into one list.
func collectPoints() ([]models.RoutePoint, error) {
	var points []models.RoutePoint

	for _, raw := range routePoints {
		parts := strings.Split(raw, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid point %q (use lat,lon)", raw)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in %q", raw)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in %q", raw)
		}
		points = append(points, models.RoutePoint{Lat: lat, Lon: lon})
	}

	if routePointsFile != "" {
		data, err := os.ReadFile(routePointsFile)
		if err != nil {
			return nil, fmt.Errorf("read points file: %w", err)
		}
		var filePoints []models.RoutePoint
		if err := json.Unmarshal(data, &filePoints); err != nil {
			return nil, fmt.Errorf("parse points file: %w", err)
		}
		points = append(points, filePoints...)
	}

	return points, nil
}

func init() {
	routeAddCmd.Flags().StringVar(&routeAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	routeAddCmd.Flags().StringArrayVar(&routePoints, "point", nil, "GPS point as lat,lon (repeatable)")
	routeAddCmd.Flags().StringVar(&routePointsFile, "points-file", "", "JSON file with [{\"lat\":..,\"lon\":..}] points")
	routeListCmd.Flags().IntVarP(&routeLimit, "limit", "n", 20, "max number of results")

	routeCmd.PersistentFlags().Int64Var(&routeProfile, "profile", 0, "profile id (default: active profile)")
	routeCmd.AddCommand(routeAddCmd)
	routeCmd.AddCommand(routeListCmd)
	routeCmd.AddCommand(routeShowCmd)
	rootCmd.AddCommand(routeCmd)
}
