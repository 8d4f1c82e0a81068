// ABOUTME: Food catalog seeding with the fixed default item list.
// ABOUTME: Replaces the foods table contents inside one transaction.
package storage

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

// defaultCatalog is the fixed reference catalog inserted at startup.
var defaultCatalog = []models.Food{
	{Name: "Apple", Calories: 95, Description: "Medium raw apple with skin"},
	{Name: "Banana", Calories: 105, Description: "Medium banana"},
	{Name: "Orange", Calories: 62, Description: "Medium navel orange"},
	{Name: "White rice", Calories: 205, Description: "One cup cooked"},
	{Name: "Whole wheat bread", Calories: 81, Description: "One slice"},
	{Name: "Chicken breast", Calories: 165, Description: "100 g grilled, skinless"},
	{Name: "Ground beef", Calories: 250, Description: "100 g cooked, 80/20"},
	{Name: "Salmon", Calories: 208, Description: "100 g baked fillet"},
	{Name: "Egg", Calories: 78, Description: "One large boiled egg"},
	{Name: "Whole milk", Calories: 149, Description: "One cup"},
	{Name: "Cheddar cheese", Calories: 113, Description: "One 28 g slice"},
	{Name: "Plain yogurt", Calories: 149, Description: "One cup whole milk yogurt"},
	{Name: "Oatmeal", Calories: 158, Description: "One cup cooked"},
	{Name: "Pasta", Calories: 221, Description: "One cup cooked spaghetti"},
	{Name: "Potato", Calories: 161, Description: "Medium baked with skin"},
	{Name: "Black beans", Calories: 227, Description: "One cup cooked"},
	{Name: "Broccoli", Calories: 55, Description: "One cup cooked"},
	{Name: "Carrot", Calories: 25, Description: "Medium raw carrot"},
	{Name: "Avocado", Calories: 240, Description: "One whole medium avocado"},
	{Name: "Almonds", Calories: 164, Description: "28 g, about 23 almonds"},
	{Name: "Peanut butter", Calories: 188, Description: "Two tablespoons"},
	{Name: "Olive oil", Calories: 119, Description: "One tablespoon"},
	{Name: "Dark chocolate", Calories: 170, Description: "28 g, 70-85% cocoa"},
	{Name: "Orange juice", Calories: 112, Description: "One cup fresh"},
	{Name: "Coffee with milk", Calories: 30, Description: "One cup, splash of whole milk"},
}

// DefaultCatalogSize returns the number of items in the fixed catalog.
func DefaultCatalogSize() int {
	return len(defaultCatalog)
}

// SeedCatalog replaces the foods table contents with the fixed default
// catalog inside one transaction. It runs on every startup, so rows
// added outside the catalog do not survive a restart. Callers treat a
// failure here as non-fatal: log it and continue with whatever the
// table holds.
func (s *Store) SeedCatalog() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Consumptions reference foods with ON DELETE RESTRICT, so the
	// wipe only succeeds on a table nothing points into; otherwise
	// fall back to upserting the catalog over the existing rows.
	if _, err := tx.Exec(`DELETE FROM foods`); err == nil {
		for _, f := range defaultCatalog {
			if _, err := tx.Exec(
				`INSERT INTO foods (name, calories, description) VALUES (?, ?, ?)`,
				f.Name, f.Calories, f.Description,
			); err != nil {
				return fmt.Errorf("seed food %q: %w", f.Name, err)
			}
		}
		return tx.Commit()
	}

	for _, f := range defaultCatalog {
		if _, err := tx.Exec(
			`INSERT INTO foods (name, calories, description) VALUES (?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET calories = excluded.calories, description = excluded.description`,
			f.Name, f.Calories, f.Description,
		); err != nil {
			return fmt.Errorf("seed food %q: %w", f.Name, err)
		}
	}
	return tx.Commit()
}
