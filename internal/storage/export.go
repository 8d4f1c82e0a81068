// ABOUTME: Export and import functionality for fitness data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for fitness data.
type ExportData struct {
	Version      string                `json:"version" yaml:"version"`
	ExportedAt   time.Time             `json:"exported_at" yaml:"exported_at"`
	Tool         string                `json:"tool" yaml:"tool"`
	Profiles     []*models.Profile     `json:"profiles" yaml:"profiles"`
	Foods        []*models.Food        `json:"foods" yaml:"foods"`
	Consumptions []*models.Consumption `json:"consumptions" yaml:"consumptions"`
	Routes       []*models.Route       `json:"routes" yaml:"routes"`
}

// GetAllData retrieves all data for export.
func (s *Store) GetAllData() (*ExportData, error) {
	profiles, err := s.ListProfiles()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	foods, err := s.ListFoods()
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	consumptions, err := s.allConsumptions()
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}

	var routes []*models.Route
	for _, p := range profiles {
		rs, err := s.ListRoutes(p.ID, 0)
		if err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		routes = append(routes, rs...)
	}

	return &ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "fittrack",
		Profiles:     profiles,
		Foods:        foods,
		Consumptions: consumptions,
		Routes:       routes,
	}, nil
}

// allConsumptions reads every consumption row, unscoped by profile or
// day. Export-only; the application queries are always day-scoped.
func (s *Store) allConsumptions() ([]*models.Consumption, error) {
	query := `
		SELECT c.id, c.profile_id, c.food_id, c.consumed_at, c.quantity, f.name, f.calories
		FROM consumptions c
		INNER JOIN foods f ON f.id = c.food_id
		ORDER BY c.consumed_at
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consumptions []*models.Consumption
	for rows.Next() {
		var c models.Consumption
		var consumedAt string
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.FoodID, &consumedAt, &c.Quantity, &c.FoodName, &c.FoodCalories); err != nil {
			return nil, err
		}
		t, err := time.ParseInLocation(models.TimestampLayout, consumedAt, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse consumed_at: %w", err)
		}
		c.ConsumedAt = t
		consumptions = append(consumptions, &c)
	}
	return consumptions, rows.Err()
}

// ImportData imports data from an export file. Rows keep their
// original ids so cross-references stay intact; colliding ids fail
// with the driver's constraint error.
func (s *Store) ImportData(data *ExportData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range data.Profiles {
		if _, err := tx.Exec(
			`INSERT INTO profiles (id, name, age, height_cm, weight_kg, bmr, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Age, p.HeightCm, p.WeightKg, p.BMR,
			p.CreatedAt.Format(models.TimestampLayout),
		); err != nil {
			return fmt.Errorf("import profile %d: %w", p.ID, err)
		}
	}

	for _, f := range data.Foods {
		if _, err := tx.Exec(
			`INSERT INTO foods (id, name, calories, description) VALUES (?, ?, ?, ?)
			 ON CONFLICT(name) DO NOTHING`,
			f.ID, f.Name, f.Calories, f.Description,
		); err != nil {
			return fmt.Errorf("import food %q: %w", f.Name, err)
		}
	}

	for _, c := range data.Consumptions {
		if _, err := tx.Exec(
			`INSERT INTO consumptions (id, profile_id, food_id, consumed_at, quantity) VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.ProfileID, c.FoodID,
			c.ConsumedAt.Format(models.TimestampLayout), c.Quantity,
		); err != nil {
			return fmt.Errorf("import consumption %d: %w", c.ID, err)
		}
	}

	for _, r := range data.Routes {
		points, err := r.EncodePoints()
		if err != nil {
			return fmt.Errorf("import route %d: %w", r.ID, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO routes (id, profile_id, recorded_at, distance_km, points) VALUES (?, ?, ?, ?, ?)`,
			r.ID, r.ProfileID,
			r.RecordedAt.Format(models.TimestampLayout), r.DistanceKm, points,
		); err != nil {
			return fmt.Errorf("import route %d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// ExportJSON exports all data as pretty-printed JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from a JSON export.
func (s *Store) ImportJSON(raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse import file: %w", err)
	}
	return s.ImportData(&data)
}

// ExportMarkdown renders a human-readable summary of all data.
func (s *Store) ExportMarkdown() (string, error) {
	data, err := s.GetAllData()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Fittrack Export\n\n")
	fmt.Fprintf(&b, "Exported: %s\n\n", data.ExportedAt.Format("2006-01-02 15:04"))

	b.WriteString("## Profiles\n\n")
	if len(data.Profiles) == 0 {
		b.WriteString("_No profiles._\n\n")
	} else {
		b.WriteString("| ID | Name | Age | Height (cm) | Weight (kg) |\n")
		b.WriteString("|----|------|-----|-------------|-------------|\n")
		for _, p := range data.Profiles {
			fmt.Fprintf(&b, "| %d | %s | %d | %.1f | %.1f |\n",
				p.ID, p.Name, p.Age, p.HeightCm, p.WeightKg)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Food Catalog\n\n")
	b.WriteString("| Name | kcal | Description |\n")
	b.WriteString("|------|------|-------------|\n")
	for _, f := range data.Foods {
		fmt.Fprintf(&b, "| %s | %.0f | %s |\n", f.Name, f.Calories, f.Description)
	}
	b.WriteString("\n")

	b.WriteString("## Consumption Log\n\n")
	if len(data.Consumptions) == 0 {
		b.WriteString("_No consumptions logged._\n\n")
	} else {
		b.WriteString("| When | Profile | Food | Qty | kcal |\n")
		b.WriteString("|------|---------|------|-----|------|\n")
		for _, c := range data.Consumptions {
			fmt.Fprintf(&b, "| %s | %d | %s | %.1f | %.0f |\n",
				c.ConsumedAt.Format("2006-01-02 15:04"),
				c.ProfileID, c.FoodName, c.Quantity, c.Quantity*c.FoodCalories)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Routes\n\n")
	if len(data.Routes) == 0 {
		b.WriteString("_No routes recorded._\n")
	} else {
		b.WriteString("| When | Profile | Distance (km) | Points |\n")
		b.WriteString("|------|---------|---------------|--------|\n")
		for _, r := range data.Routes {
			fmt.Fprintf(&b, "| %s | %d | %.2f | %d |\n",
				r.RecordedAt.Format("2006-01-02 15:04"),
				r.ProfileID, r.DistanceKm, len(r.Points))
		}
	}

	return b.String(), nil
}
