// ABOUTME: MCP tool implementations for the fitness tracker.
// ABOUTME: Exposes food logging, calorie summaries, routes, and profiles.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/estimate"
	"github.com/harperreed/fittrack/internal/health"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log that a profile ate a food from the catalog",
	}, s.handleLogFood)

	// calorie_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calorie_summary",
		Description: "Sum the calories a profile consumed on a calendar day",
	}, s.handleCalorieSummary)

	// list_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_foods",
		Description: "List the food catalog ordered by name",
	}, s.handleListFoods)

	// list_profiles
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_profiles",
		Description: "List the local user profiles",
	}, s.handleListProfiles)

	// add_route
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_route",
		Description: "Record a completed run with distance and GPS points",
	}, s.handleAddRoute)

	// list_routes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_routes",
		Description: "List a profile's recorded runs, most recent first",
	}, s.handleListRoutes)

	// health_snapshot
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "health_snapshot",
		Description: "Estimated health figures for a profile's calendar day",
	}, s.handleHealthSnapshot)
}

// Tool input/output types

type logFoodInput struct {
	ProfileID  int64   `json:"profile_id" jsonschema:"Profile id"`
	Food       string  `json:"food" jsonschema:"Food catalog name (e.g. Apple)"`
	Quantity   float64 `json:"quantity,omitempty" jsonschema:"Serving multiplier, defaults to 1.0"`
	ConsumedAt string  `json:"consumed_at,omitempty" jsonschema:"Timestamp (YYYY-MM-DD HH:MM), defaults to now"`
}

type logFoodOutput struct {
	ID       int64   `json:"id"`
	Food     string  `json:"food"`
	Calories float64 `json:"calories"`
	Message  string  `json:"message"`
}

type calorieSummaryInput struct {
	ProfileID int64  `json:"profile_id" jsonschema:"Profile id"`
	Date      string `json:"date,omitempty" jsonschema:"Calendar day (YYYY-MM-DD), defaults to today"`
}

type calorieSummaryOutput struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Entries  int     `json:"entries"`
	Message  string  `json:"message"`
}

type addRouteInput struct {
	ProfileID  int64               `json:"profile_id" jsonschema:"Profile id"`
	DistanceKm float64             `json:"distance_km" jsonschema:"Total distance in kilometers"`
	Points     []models.RoutePoint `json:"points,omitempty" jsonschema:"GPS coordinate samples"`
}

type routeOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type listRoutesInput struct {
	ProfileID int64 `json:"profile_id" jsonschema:"Profile id"`
	Limit     int   `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type healthSnapshotInput struct {
	ProfileID int64  `json:"profile_id" jsonschema:"Profile id"`
	Date      string `json:"date,omitempty" jsonschema:"Calendar day (YYYY-MM-DD), defaults to today"`
	Sex       string `json:"sex,omitempty" jsonschema:"Sex for stride estimation (male/female)"`
}

type healthSnapshotOutput struct {
	Date             string  `json:"date"`
	Steps            int     `json:"steps"`
	ActiveCalories   float64 `json:"active_calories"`
	SleepHours       float64 `json:"sleep_hours"`
	RestingHeartRate float64 `json:"resting_heart_rate"`
	MaxHeartRate     float64 `json:"max_heart_rate"`
	Source           string  `json:"source"`
	Message          string  `json:"message"`
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, logFoodOutput, error) {
	food, err := s.repo.GetFoodByName(input.Food)
	if err != nil {
		return nil, logFoodOutput{}, fmt.Errorf("food not found: %s", input.Food)
	}

	c := models.NewConsumption(input.ProfileID, food.ID)
	if input.Quantity > 0 {
		c.WithQuantity(input.Quantity)
	}
	if input.ConsumedAt != "" {
		t, err := parseTimestamp(input.ConsumedAt)
		if err != nil {
			return nil, logFoodOutput{}, fmt.Errorf("invalid timestamp: %s", input.ConsumedAt)
		}
		c.WithConsumedAt(t)
	}

	id, err := s.repo.LogConsumption(c)
	if err != nil {
		return nil, logFoodOutput{}, fmt.Errorf("failed to log consumption: %w", err)
	}

	kcal := c.Quantity * food.Calories
	return nil, logFoodOutput{
		ID:       id,
		Food:     food.Name,
		Calories: kcal,
		Message:  fmt.Sprintf("Logged %.1f × %s (%.0f kcal)", c.Quantity, food.Name, kcal),
	}, nil
}

func (s *Server) handleCalorieSummary(ctx context.Context, req *mcp.CallToolRequest, input calorieSummaryInput) (*mcp.CallToolResult, calorieSummaryOutput, error) {
	day := time.Now()
	if input.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			return nil, calorieSummaryOutput{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", input.Date)
		}
		day = t
	}

	total, err := s.repo.CalorieSum(input.ProfileID, day)
	if err != nil {
		return nil, calorieSummaryOutput{}, fmt.Errorf("failed to sum calories: %w", err)
	}

	entries, err := s.repo.ListConsumptions(input.ProfileID, day)
	if err != nil {
		return nil, calorieSummaryOutput{}, fmt.Errorf("failed to list consumptions: %w", err)
	}

	dateStr := day.Format("2006-01-02")
	return nil, calorieSummaryOutput{
		Date:     dateStr,
		Calories: total,
		Entries:  len(entries),
		Message:  fmt.Sprintf("%.0f kcal over %d entries on %s", total, len(entries), dateStr),
	}, nil
}

func (s *Server) handleListFoods(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	foods, err := s.repo.ListFoods()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list foods: %w", err)
	}
	if len(foods) == 0 {
		return nil, map[string]any{"message": "Food catalog is empty."}, nil
	}
	return nil, foods, nil
}

func (s *Server) handleListProfiles(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	profiles, err := s.repo.ListProfiles()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, map[string]any{"message": "No profiles registered."}, nil
	}
	return nil, profiles, nil
}

func (s *Server) handleAddRoute(ctx context.Context, req *mcp.CallToolRequest, input addRouteInput) (*mcp.CallToolResult, routeOutput, error) {
	r := models.NewRoute(input.ProfileID, input.DistanceKm, input.Points)

	id, err := s.repo.CreateRoute(r)
	if err != nil {
		return nil, routeOutput{}, fmt.Errorf("failed to create route: %w", err)
	}

	return nil, routeOutput{
		ID:      id,
		Message: fmt.Sprintf("Recorded %.2f km route (ID: %d)", input.DistanceKm, id),
	}, nil
}

func (s *Server) handleListRoutes(ctx context.Context, req *mcp.CallToolRequest, input listRoutesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	routes, err := s.repo.ListRoutes(input.ProfileID, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list routes: %w", err)
	}
	if len(routes) == 0 {
		return nil, map[string]any{"message": "No routes recorded."}, nil
	}
	return nil, routes, nil
}

func (s *Server) handleHealthSnapshot(ctx context.Context, req *mcp.CallToolRequest, input healthSnapshotInput) (*mcp.CallToolResult, healthSnapshotOutput, error) {
	day := time.Now()
	if input.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			return nil, healthSnapshotOutput{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", input.Date)
		}
		day = t
	}

	provider := health.NewDerived(s.repo, input.ProfileID, estimate.ParseSex(input.Sex))
	if err := provider.Initialize(ctx); err != nil {
		return nil, healthSnapshotOutput{}, err
	}

	snap, err := provider.FetchSnapshot(ctx, day)
	if err != nil {
		return nil, healthSnapshotOutput{}, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	dateStr := snap.Day.Format("2006-01-02")
	return nil, healthSnapshotOutput{
		Date:             dateStr,
		Steps:            snap.Steps,
		ActiveCalories:   snap.ActiveCalories,
		SleepHours:       snap.SleepHours,
		RestingHeartRate: snap.RestingHeartRate,
		MaxHeartRate:     snap.MaxHeartRate,
		Source:           snap.Source,
		Message:          fmt.Sprintf("%d steps, %.0f active kcal on %s (%s)", snap.Steps, snap.ActiveCalories, dateStr, snap.Source),
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
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
