// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fittrack://catalog and fittrack://summary/today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://catalog - the full food catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://catalog",
		Name:        "Food Catalog",
		Description: "The reference food catalog with calorie values",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	// fittrack://summary/today - today's consumption per profile
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://summary/today",
		Name:        "Today's Summary",
		Description: "Calories consumed today for every profile",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	foods, err := s.repo.ListFoods()
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	data, err := json.MarshalIndent(foods, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://catalog",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := time.Now()

	profiles, err := s.repo.ListProfiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	summaries := make([]map[string]any, 0, len(profiles))
	for _, p := range profiles {
		total, err := s.repo.CalorieSum(p.ID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to sum calories: %w", err)
		}
		entries, err := s.repo.ListConsumptions(p.ID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to list consumptions: %w", err)
		}
		summaries = append(summaries, map[string]any{
			"profile_id": p.ID,
			"name":       p.Name,
			"calories":   total,
			"entries":    len(entries),
		})
	}

	result := map[string]any{
		"date":     today.Format("2006-01-02"),
		"profiles": summaries,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://summary/today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
