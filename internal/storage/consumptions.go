// ABOUTME: Consumption logging and the per-day calorie aggregation.
// ABOUTME: Day ranges are computed from time.Time, then formatted once.
package storage

import (
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// LogConsumption stores a consumption event and returns its generated
// id. A zero ConsumedAt defaults to now; either way the timestamp is
// normalized to the fixed storage layout. Quantity is stored as given;
// the 1.0 default lives in models.NewConsumption.
func (s *Store) LogConsumption(c *models.Consumption) (int64, error) {
	if c.ConsumedAt.IsZero() {
		c.ConsumedAt = time.Now()
	}
	res, err := s.db.Exec(
		`INSERT INTO consumptions (profile_id, food_id, consumed_at, quantity) VALUES (?, ?, ?, ?)`,
		c.ProfileID,
		c.FoodID,
		c.ConsumedAt.Format(models.TimestampLayout),
		c.Quantity,
	)
	if err != nil {
		return 0, fmt.Errorf("log consumption: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("log consumption: %w", err)
	}
	c.ID = id
	return id, nil
}

// ListConsumptions retrieves a profile's consumptions for one calendar
// day, joined with the food name and calories, oldest first.
func (s *Store) ListConsumptions(profileID int64, day time.Time) ([]*models.Consumption, error) {
	start, end := dayRange(day)
	query := `
		SELECT c.id, c.profile_id, c.food_id, c.consumed_at, c.quantity, f.name, f.calories
		FROM consumptions c
		INNER JOIN foods f ON f.id = c.food_id
		WHERE c.profile_id = ? AND c.consumed_at BETWEEN ? AND ?
		ORDER BY c.consumed_at
	`
	rows, err := s.db.Query(query, profileID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}
	defer rows.Close()

	var consumptions []*models.Consumption
	for rows.Next() {
		var c models.Consumption
		var consumedAt string
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.FoodID, &consumedAt, &c.Quantity, &c.FoodName, &c.FoodCalories); err != nil {
			return nil, fmt.Errorf("scan consumption: %w", err)
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

// CalorieSum computes the calories a profile consumed on one calendar
// day: Σ(quantity × food calories) over the inner join with foods.
// Returns 0 when no rows match, never an SQL NULL.
func (s *Store) CalorieSum(profileID int64, day time.Time) (float64, error) {
	start, end := dayRange(day)
	query := `
		SELECT COALESCE(SUM(c.quantity * f.calories), 0)
		FROM consumptions c
		INNER JOIN foods f ON f.id = c.food_id
		WHERE c.profile_id = ? AND c.consumed_at BETWEEN ? AND ?
	`
	var total float64
	if err := s.db.QueryRow(query, profileID, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("calorie sum: %w", err)
	}
	return total, nil
}

// dayRange returns the inclusive [00:00:00, 23:59:59] endpoints of the
// given day, formatted with the storage layout. The layout is
// zero-padded, so string comparison in SQL matches time order.
func dayRange(day time.Time) (string, string) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	end := time.Date(y, m, d, 23, 59, 59, 0, day.Location())
	return start.Format(models.TimestampLayout), end.Format(models.TimestampLayout)
}
