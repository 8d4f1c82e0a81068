// ABOUTME: Tests for Repository interface implementations.
// ABOUTME: Verifies CRUD, constraints, and the calorie aggregation on SQLite.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fittrack.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func mustCreateProfile(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	id, err := s.CreateProfile(models.NewProfile(name, 30, 170, 60))
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	return id
}

func mustCreateFood(t *testing.T, s *Store, name string, calories float64) int64 {
	t.Helper()
	id, err := s.CreateFood(models.NewFood(name, calories, ""))
	if err != nil {
		t.Fatalf("CreateFood failed: %v", err)
	}
	return id
}

func TestSchemaIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fittrack.db")

	s1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Opening again runs initSchema over the existing tables
	s2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer s2.Close()

	if _, err := s2.ListFoods(); err != nil {
		t.Errorf("ListFoods after reopen failed: %v", err)
	}
}

func TestCreateAndGetProfile(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	p := models.NewProfile("Alice", 30, 170, 60).WithBMR(1350)
	id, err := s.CreateProfile(p)
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	if id != 1 {
		t.Errorf("Expected first profile id 1, got %d", id)
	}

	got, err := s.GetProfile(id)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Name != "Alice" {
		t.Errorf("Name mismatch: got %q, want %q", got.Name, "Alice")
	}
	if got.Age != 30 || got.HeightCm != 170 || got.WeightKg != 60 {
		t.Errorf("Biometrics mismatch: got %+v", got)
	}
	if got.BMR == nil || *got.BMR != 1350 {
		t.Errorf("BMR mismatch: got %v, want 1350", got.BMR)
	}
}

func TestHasProfiles(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	any, err := s.HasProfiles()
	if err != nil {
		t.Fatalf("HasProfiles failed: %v", err)
	}
	if any {
		t.Error("Expected no profiles in fresh database")
	}

	mustCreateProfile(t, s, "Alice")

	any, err = s.HasProfiles()
	if err != nil {
		t.Fatalf("HasProfiles failed: %v", err)
	}
	if !any {
		t.Error("Expected HasProfiles true after insert")
	}
}

func TestListProfiles(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	mustCreateProfile(t, s, "Alice")
	mustCreateProfile(t, s, "Bob")

	profiles, err := s.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("Expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].Name != "Alice" || profiles[1].Name != "Bob" {
		t.Errorf("Unexpected order: %q, %q", profiles[0].Name, profiles[1].Name)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	if _, err := s.GetProfile(42); err == nil {
		t.Error("Expected error for missing profile")
	}
}

func TestFoodUniqueName(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	mustCreateFood(t, s, "Apple", 95)
	if _, err := s.CreateFood(models.NewFood("Apple", 100, "duplicate")); err == nil {
		t.Error("Expected UNIQUE constraint error for duplicate food name")
	}
}

func TestListFoodsOrderedByName(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	mustCreateFood(t, s, "Banana", 105)
	mustCreateFood(t, s, "Apple", 95)
	mustCreateFood(t, s, "Carrot", 25)

	foods, err := s.ListFoods()
	if err != nil {
		t.Fatalf("ListFoods failed: %v", err)
	}
	if len(foods) != 3 {
		t.Fatalf("Expected 3 foods, got %d", len(foods))
	}
	want := []string{"Apple", "Banana", "Carrot"}
	for i, name := range want {
		if foods[i].Name != name {
			t.Errorf("foods[%d] = %q, want %q", i, foods[i].Name, name)
		}
	}
}

func TestGetFoodByName(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	mustCreateFood(t, s, "Apple", 95)

	f, err := s.GetFoodByName("Apple")
	if err != nil {
		t.Fatalf("GetFoodByName failed: %v", err)
	}
	if f.Calories != 95 {
		t.Errorf("Calories mismatch: got %v, want 95", f.Calories)
	}

	if _, err := s.GetFoodByName("Pizza"); err == nil {
		t.Error("Expected error for missing food name")
	}
}

func TestLogConsumptionDefaultsToNow(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	profileID := mustCreateProfile(t, s, "Alice")
	foodID := mustCreateFood(t, s, "Apple", 95)

	before := time.Now().Add(-time.Second)
	c := models.NewConsumption(profileID, foodID)
	if _, err := s.LogConsumption(c); err != nil {
		t.Fatalf("LogConsumption failed: %v", err)
	}
	after := time.Now().Add(time.Second)

	if c.ConsumedAt.Before(before) || c.ConsumedAt.After(after) {
		t.Errorf("Expected ConsumedAt defaulted to now, got %v", c.ConsumedAt)
	}
	if c.Quantity != 1.0 {
		t.Errorf("Expected default quantity 1.0, got %v", c.Quantity)
	}

	// The stored row round-trips through the fixed layout
	entries, err := s.ListConsumptions(profileID, time.Now())
	if err != nil {
		t.Fatalf("ListConsumptions failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 consumption, got %d", len(entries))
	}
	stored := entries[0].ConsumedAt.Format(models.TimestampLayout)
	reparsed, err := time.ParseInLocation(models.TimestampLayout, stored, time.Local)
	if err != nil {
		t.Fatalf("Stored timestamp %q does not match layout: %v", stored, err)
	}
	if !reparsed.Equal(entries[0].ConsumedAt) {
		t.Errorf("Timestamp lost precision: %v vs %v", reparsed, entries[0].ConsumedAt)
	}
}

func TestLogConsumptionZeroQuantityStored(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	profileID := mustCreateProfile(t, s, "Alice")
	foodID := mustCreateFood(t, s, "Apple", 95)

	// An explicit zero serving is a valid value, not the unset sentinel
	c := models.NewConsumption(profileID, foodID).WithQuantity(0)
	if _, err := s.LogConsumption(c); err != nil {
		t.Fatalf("LogConsumption failed: %v", err)
	}

	entries, err := s.ListConsumptions(profileID, time.Now())
	if err != nil {
		t.Fatalf("ListConsumptions failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 consumption, got %d", len(entries))
	}
	if entries[0].Quantity != 0 {
		t.Errorf("Expected stored quantity 0, got %v", entries[0].Quantity)
	}

	total, err := s.CalorieSum(profileID, time.Now())
	if err != nil {
		t.Fatalf("CalorieSum failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected 0 kcal for a zero-serving log, got %v", total)
	}
}

func TestCalorieSumEmpty(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	profileID := mustCreateProfile(t, s, "Alice")

	total, err := s.CalorieSum(profileID, time.Now())
	if err != nil {
		t.Fatalf("CalorieSum failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected 0 for empty log, got %v", total)
	}
}

func TestCalorieSumQuantityMultiplier(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	profileID := mustCreateProfile(t, s, "Alice")
	foodID := mustCreateFood(t, s, "Rice", 100)

	c := models.NewConsumption(profileID, foodID).WithQuantity(2)
	if _, err := s.LogConsumption(c); err != nil {
		t.Fatalf("LogConsumption failed: %v", err)
	}

	total, err := s.CalorieSum(profileID, time.Now())
	if err != nil {
		t.Fatalf("CalorieSum failed: %v", err)
	}
	if total != 200 {
		t.Errorf("Expected 200, got %v", total)
	}
}

func TestCalorieSumScenario(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	profileID, err := s.CreateProfile(models.NewProfile("Alice", 30, 170, 60))
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	if profileID != 1 {
		t.Fatalf("Expected profile id 1, got %d", profileID)
	}

	appleID := mustCreateFood(t, s, "Apple", 95)
	today := time.Now()

	if _, err := s.LogConsumption(models.NewConsumption(profileID, appleID).WithConsumedAt(today)); err != nil {
		t.Fatalf("LogConsumption failed: %v", err)
	}

	total, err := s.CalorieSum(profileID, today)
	if err != nil {
		t.Fatalf("CalorieSum failed: %v", err)
	}
	if total != 95 {
		t.Errorf("Expected 95, got %v", total)
	}

	second := models.NewConsumption(profileID, appleID).WithQuantity(2).WithConsumedAt(today)
	if _, err := s.LogConsumption(second); err != nil {
		t.Fatalf("LogConsumption failed: %v", err)
	}

	total, err = s.CalorieSum(profileID, today)
	if err != nil {
		t.Fatalf("CalorieSum failed: %v", err)
	}
	if total != 285 {
		t.Errorf("Expected 285, got %v", total)
	}
}

func TestCalorieSumScopedToDay(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	profileID := mustCreateProfile(t, s, "Alice")
	foodID := mustCreateFood(t, s, "Apple", 95)

	yesterday := time.Now().AddDate(0, 0, -1)
	if _, err := s.LogConsumption(models.NewConsumption(profileID, foodID).WithConsumedAt(yesterday)); err != nil {
		t.Fatalf("LogConsumption failed: %v", err)
	}

	total, err := s.CalorieSum(profileID, time.Now())
	if err != nil {
		t.Fatalf("CalorieSum failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected 0 for today, got %v", total)
	}

	total, err = s.CalorieSum(profileID, yesterday)
	if err != nil {
		t.Fatalf("CalorieSum failed: %v", err)
	}
	if total != 95 {
		t.Errorf("Expected 95 for yesterday, got %v", total)
	}
}

func TestCalorieSumScopedToProfile(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	alice := mustCreateProfile(t, s, "Alice")
	bob := mustCreateProfile(t, s, "Bob")
	foodID := mustCreateFood(t, s, "Apple", 95)

	if _, err := s.LogConsumption(models.NewConsumption(alice, foodID)); err != nil {
		t.Fatalf("LogConsumption failed: %v", err)
	}

	total, err := s.CalorieSum(bob, time.Now())
	if err != nil {
		t.Fatalf("CalorieSum failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected 0 for other profile, got %v", total)
	}
}

func TestDeleteFoodRestrictedWhileReferenced(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	profileID := mustCreateProfile(t, s, "Alice")
	foodID := mustCreateFood(t, s, "Apple", 95)

	if _, err := s.LogConsumption(models.NewConsumption(profileID, foodID)); err != nil {
		t.Fatalf("LogConsumption failed: %v", err)
	}

	if err := s.DeleteFood(foodID); err == nil {
		t.Error("Expected restrict error deleting referenced food")
	}

	// Still present
	if _, err := s.GetFood(foodID); err != nil {
		t.Errorf("Food should survive restricted delete: %v", err)
	}
}

func TestDeleteProfileCascades(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	profileID := mustCreateProfile(t, s, "Alice")
	foodID := mustCreateFood(t, s, "Apple", 95)

	if _, err := s.LogConsumption(models.NewConsumption(profileID, foodID)); err != nil {
		t.Fatalf("LogConsumption failed: %v", err)
	}
	if _, err := s.CreateRoute(models.NewRoute(profileID, 5.2, nil)); err != nil {
		t.Fatalf("CreateRoute failed: %v", err)
	}

	if err := s.DeleteProfile(profileID); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}

	entries, err := s.ListConsumptions(profileID, time.Now())
	if err != nil {
		t.Fatalf("ListConsumptions failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected consumptions cascaded, found %d", len(entries))
	}

	routes, err := s.ListRoutes(profileID, 0)
	if err != nil {
		t.Fatalf("ListRoutes failed: %v", err)
	}
	if len(routes) != 0 {
		t.Errorf("Expected routes cascaded, found %d", len(routes))
	}

	// Food is untouched after the cascade
	if err := s.DeleteFood(foodID); err != nil {
		t.Errorf("DeleteFood after cascade failed: %v", err)
	}
}

func TestForeignKeyEnforcedOnInsert(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	// Neither profile 1 nor food 1 exists
	if _, err := s.LogConsumption(models.NewConsumption(1, 1)); err == nil {
		t.Error("Expected FK error for dangling references")
	}
}

func TestCreateAndGetRoute(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	profileID := mustCreateProfile(t, s, "Alice")

	points := []models.RoutePoint{
		{Lat: 41.38879, Lon: 2.15899},
		{Lat: 41.38902, Lon: 2.16012},
	}
	r := models.NewRoute(profileID, 5.2, points)
	id, err := s.CreateRoute(r)
	if err != nil {
		t.Fatalf("CreateRoute failed: %v", err)
	}

	got, err := s.GetRoute(id)
	if err != nil {
		t.Fatalf("GetRoute failed: %v", err)
	}
	if got.DistanceKm != 5.2 {
		t.Errorf("Distance mismatch: got %v, want 5.2", got.DistanceKm)
	}
	if len(got.Points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(got.Points))
	}
	if got.Points[0] != points[0] || got.Points[1] != points[1] {
		t.Errorf("Points mismatch: got %+v", got.Points)
	}
}

func TestListRoutesDescending(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	profileID := mustCreateProfile(t, s, "Alice")

	old := models.NewRoute(profileID, 3, nil).WithRecordedAt(time.Now().Add(-48 * time.Hour))
	mid := models.NewRoute(profileID, 5, nil).WithRecordedAt(time.Now().Add(-24 * time.Hour))
	recent := models.NewRoute(profileID, 10, nil)

	for _, r := range []*models.Route{old, mid, recent} {
		if _, err := s.CreateRoute(r); err != nil {
			t.Fatalf("CreateRoute failed: %v", err)
		}
	}

	routes, err := s.ListRoutes(profileID, 0)
	if err != nil {
		t.Fatalf("ListRoutes failed: %v", err)
	}
	if len(routes) != 3 {
		t.Fatalf("Expected 3 routes, got %d", len(routes))
	}
	if routes[0].DistanceKm != 10 || routes[2].DistanceKm != 3 {
		t.Errorf("Expected most recent first: %v, %v, %v",
			routes[0].DistanceKm, routes[1].DistanceKm, routes[2].DistanceKm)
	}

	limited, err := s.ListRoutes(profileID, 2)
	if err != nil {
		t.Fatalf("ListRoutes with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 routes with limit, got %d", len(limited))
	}
}
