// ABOUTME: Health data provider interface and snapshot type.
// ABOUTME: Implementations are injected at composition time, never globals.
package health

import (
	"context"
	"time"
)

// Snapshot holds the aggregated health figures for one calendar day.
type Snapshot struct {
	Day              time.Time `json:"day"`
	Steps            int       `json:"steps"`
	ActiveCalories   float64   `json:"active_calories"`
	SleepHours       float64   `json:"sleep_hours"`
	RestingHeartRate float64   `json:"resting_heart_rate"`
	MaxHeartRate     float64   `json:"max_heart_rate"`
	Source           string    `json:"source"`
}

// Provider supplies daily health snapshots. Platform SDK adapters and
// the derived estimator both satisfy this; the caller picks one when
// wiring the application together.
type Provider interface {
	// Initialize prepares the provider (permission checks, warm-up).
	Initialize(ctx context.Context) error

	// FetchSnapshot returns the snapshot for the given calendar day.
	FetchSnapshot(ctx context.Context, day time.Time) (*Snapshot, error)
}
