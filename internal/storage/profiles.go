// ABOUTME: Profile CRUD operations for SQLite storage.
// ABOUTME: Profile deletion cascades to consumptions and routes.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// CreateProfile stores a new profile and returns its generated id.
func (s *Store) CreateProfile(p *models.Profile) (int64, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO profiles (name, age, height_cm, weight_kg, bmr, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := s.db.Exec(query,
		p.Name,
		p.Age,
		p.HeightCm,
		p.WeightKg,
		p.BMR,
		p.CreatedAt.Format(models.TimestampLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("create profile: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create profile: %w", err)
	}
	p.ID = id
	return id, nil
}

// GetProfile retrieves a profile by id.
func (s *Store) GetProfile(id int64) (*models.Profile, error) {
	query := `
		SELECT id, name, age, height_cm, weight_kg, bmr, created_at
		FROM profiles
		WHERE id = ?
	`
	p, err := scanProfile(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile not found: %d", id)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// ListProfiles retrieves all profiles ordered by id.
func (s *Store) ListProfiles() ([]*models.Profile, error) {
	query := `
		SELECT id, name, age, height_cm, weight_kg, bmr, created_at
		FROM profiles
		ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("list profiles: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// HasProfiles reports whether any profile exists. Used to decide
// between the registration and login flows.
func (s *Store) HasProfiles() (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM profiles`).Scan(&n); err != nil {
		return false, fmt.Errorf("count profiles: %w", err)
	}
	return n > 0, nil
}

// DeleteProfile removes a profile. Their consumptions and routes are
// removed by the cascade constraints.
func (s *Store) DeleteProfile(id int64) error {
	res, err := s.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("profile not found: %d", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	var p models.Profile
	var createdAt string
	if err := row.Scan(&p.ID, &p.Name, &p.Age, &p.HeightCm, &p.WeightKg, &p.BMR, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.ParseInLocation(models.TimestampLayout, createdAt, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	p.CreatedAt = t
	return &p, nil
}
