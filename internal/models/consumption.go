// ABOUTME: Consumption model for logged food intake events.
// ABOUTME: Append-only; quantity is a serving multiplier defaulting to 1.0.
package models

import "time"

// TimestampLayout is the fixed layout rows are persisted with.
// Zero-padded so stored values sort lexicographically.
const TimestampLayout = "2006-01-02 15:04:05"

// Consumption represents a single "ate this" log event.
type Consumption struct {
	ID         int64
	ProfileID  int64
	FoodID     int64
	ConsumedAt time.Time
	Quantity   float64

	// FoodName and FoodCalories are populated on joined reads only.
	FoodName     string
	FoodCalories float64
}

// NewConsumption creates a Consumption with quantity 1.0 and no
// timestamp; the store defaults a zero ConsumedAt to now.
func NewConsumption(profileID, foodID int64) *Consumption {
	return &Consumption{
		ProfileID: profileID,
		FoodID:    foodID,
		Quantity:  1.0,
	}
}

// WithQuantity sets the serving multiplier.
func (c *Consumption) WithQuantity(qty float64) *Consumption {
	c.Quantity = qty
	return c
}

// WithConsumedAt sets an explicit timestamp.
func (c *Consumption) WithConsumedAt(t time.Time) *Consumption {
	c.ConsumedAt = t
	return c
}
