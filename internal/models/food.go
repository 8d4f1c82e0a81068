// ABOUTME: Food model for the reference catalog of loggable items.
// ABOUTME: Names are unique; calories are kcal per serving.
package models

// Food represents one entry in the reference food catalog.
type Food struct {
	ID          int64
	Name        string
	Calories    float64 // kcal per serving
	Description string
}

// NewFood creates a Food catalog entry.
func NewFood(name string, calories float64, description string) *Food {
	return &Food{
		Name:        name,
		Calories:    calories,
		Description: description,
	}
}
