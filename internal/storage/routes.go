// ABOUTME: Route CRUD operations for SQLite storage.
// ABOUTME: GPS points round-trip through a JSON TEXT column.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// CreateRoute stores a completed run recording and returns its id.
func (s *Store) CreateRoute(r *models.Route) (int64, error) {
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}
	points, err := r.EncodePoints()
	if err != nil {
		return 0, fmt.Errorf("create route: %w", err)
	}
	res, err := s.db.Exec(
		`INSERT INTO routes (profile_id, recorded_at, distance_km, points) VALUES (?, ?, ?, ?)`,
		r.ProfileID,
		r.RecordedAt.Format(models.TimestampLayout),
		r.DistanceKm,
		points,
	)
	if err != nil {
		return 0, fmt.Errorf("create route: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create route: %w", err)
	}
	r.ID = id
	return id, nil
}

// GetRoute retrieves a route by id, including its points.
func (s *Store) GetRoute(id int64) (*models.Route, error) {
	query := `
		SELECT id, profile_id, recorded_at, distance_km, points
		FROM routes
		WHERE id = ?
	`
	r, err := scanRoute(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("route not found: %d", id)
		}
		return nil, fmt.Errorf("get route: %w", err)
	}
	return r, nil
}

// ListRoutes retrieves a profile's routes, most recent first.
// A limit of 0 means no limit.
func (s *Store) ListRoutes(profileID int64, limit int) ([]*models.Route, error) {
	query := `
		SELECT id, profile_id, recorded_at, distance_km, points
		FROM routes
		WHERE profile_id = ?
		ORDER BY recorded_at DESC
	`
	args := []any{profileID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	var routes []*models.Route
	for rows.Next() {
		r, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func scanRoute(row rowScanner) (*models.Route, error) {
	var r models.Route
	var recordedAt, points string
	if err := row.Scan(&r.ID, &r.ProfileID, &recordedAt, &r.DistanceKm, &points); err != nil {
		return nil, err
	}
	t, err := time.ParseInLocation(models.TimestampLayout, recordedAt, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parse recorded_at: %w", err)
	}
	r.RecordedAt = t
	if err := r.DecodePoints(points); err != nil {
		return nil, err
	}
	return &r, nil
}
