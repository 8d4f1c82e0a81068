// ABOUTME: Repository interface for fitness data storage.
// ABOUTME: Defines the contract for profiles, foods, consumptions, and routes.
package storage

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// Repository defines the storage interface for fitness data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Profile operations
	CreateProfile(p *models.Profile) (int64, error)
	GetProfile(id int64) (*models.Profile, error)
	ListProfiles() ([]*models.Profile, error)
	HasProfiles() (bool, error)
	DeleteProfile(id int64) error

	// Food catalog operations
	CreateFood(f *models.Food) (int64, error)
	GetFood(id int64) (*models.Food, error)
	GetFoodByName(name string) (*models.Food, error)
	ListFoods() ([]*models.Food, error)
	DeleteFood(id int64) error
	SeedCatalog() error

	// Consumption operations
	LogConsumption(c *models.Consumption) (int64, error)
	ListConsumptions(profileID int64, day time.Time) ([]*models.Consumption, error)
	CalorieSum(profileID int64, day time.Time) (float64, error)

	// Route operations
	CreateRoute(r *models.Route) (int64, error)
	GetRoute(id int64) (*models.Route, error)
	ListRoutes(profileID int64, limit int) ([]*models.Route, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
