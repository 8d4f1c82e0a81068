// ABOUTME: Food catalog CRUD operations for SQLite storage.
// ABOUTME: Deletion is restricted while consumptions reference a food.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

// CreateFood stores a catalog entry and returns its generated id.
// Duplicate names surface as the driver's UNIQUE constraint error.
func (s *Store) CreateFood(f *models.Food) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO foods (name, calories, description) VALUES (?, ?, ?)`,
		f.Name, f.Calories, f.Description,
	)
	if err != nil {
		return 0, fmt.Errorf("create food: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create food: %w", err)
	}
	f.ID = id
	return id, nil
}

// GetFood retrieves a catalog entry by id.
func (s *Store) GetFood(id int64) (*models.Food, error) {
	f, err := scanFood(s.db.QueryRow(
		`SELECT id, name, calories, description FROM foods WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("food not found: %d", id)
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return f, nil
}

// GetFoodByName retrieves a catalog entry by its unique name.
func (s *Store) GetFoodByName(name string) (*models.Food, error) {
	f, err := scanFood(s.db.QueryRow(
		`SELECT id, name, calories, description FROM foods WHERE name = ?`, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("food not found: %s", name)
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return f, nil
}

// ListFoods retrieves the full catalog ordered by name.
func (s *Store) ListFoods() ([]*models.Food, error) {
	rows, err := s.db.Query(
		`SELECT id, name, calories, description FROM foods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	var foods []*models.Food
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("list foods: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// DeleteFood removes a catalog entry. Fails with the driver's
// constraint error while any consumption still references it.
func (s *Store) DeleteFood(id int64) error {
	res, err := s.db.Exec(`DELETE FROM foods WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("food not found: %d", id)
	}
	return nil
}

func scanFood(row rowScanner) (*models.Food, error) {
	var f models.Food
	if err := row.Scan(&f.ID, &f.Name, &f.Calories, &f.Description); err != nil {
		return nil, err
	}
	return &f, nil
}
