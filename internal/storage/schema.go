// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines profiles, foods, consumptions, and routes tables.
package storage

import "fmt"

// initSchema creates the tables and indexes if they do not exist.
// All statements run inside one transaction so a partial schema never
// persists; any failure rolls back and propagates to the caller.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		height_cm REAL NOT NULL,
		weight_kg REAL NOT NULL,
		bmr REAL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS foods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		calories REAL NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS consumptions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile_id INTEGER NOT NULL,
		food_id INTEGER NOT NULL,
		consumed_at TEXT NOT NULL,
		quantity REAL NOT NULL DEFAULT 1.0,
		FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE,
		FOREIGN KEY (food_id) REFERENCES foods(id) ON DELETE RESTRICT
	);

	CREATE TABLE IF NOT EXISTS routes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile_id INTEGER NOT NULL,
		recorded_at TEXT NOT NULL,
		distance_km REAL NOT NULL,
		points TEXT NOT NULL DEFAULT '[]',
		FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_routes_profile_recorded ON routes(profile_id, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_consumptions_profile_consumed ON consumptions(profile_id, consumed_at);
	CREATE INDEX IF NOT EXISTS idx_consumptions_food ON consumptions(food_id);
	`

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	if _, err := tx.Exec(schema); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create schema: %w", err)
	}
	return tx.Commit()
}
