// ABOUTME: Derived health provider computing estimates from stored data.
// ABOUTME: Steps and calories come from routes; heart rate from Tanaka.
package health

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/estimate"
	"github.com/harperreed/fittrack/internal/storage"
)

// Derived estimates a day's health figures from the profile's
// biometrics and recorded routes, for platforms without a health SDK.
type Derived struct {
	repo      storage.Repository
	profileID int64
	sex       estimate.Sex
}

// NewDerived creates a derived provider for one profile.
func NewDerived(repo storage.Repository, profileID int64, sex estimate.Sex) *Derived {
	return &Derived{repo: repo, profileID: profileID, sex: sex}
}

// Initialize verifies the profile exists.
func (d *Derived) Initialize(ctx context.Context) error {
	if _, err := d.repo.GetProfile(d.profileID); err != nil {
		return fmt.Errorf("initialize derived provider: %w", err)
	}
	return nil
}

// FetchSnapshot computes the estimated snapshot for one calendar day.
// Sleep is not derivable from stored data and reports zero.
func (d *Derived) FetchSnapshot(ctx context.Context, day time.Time) (*Snapshot, error) {
	p, err := d.repo.GetProfile(d.profileID)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	routes, err := d.repo.ListRoutes(d.profileID, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	var distanceKm float64
	for _, r := range routes {
		if sameDay(r.RecordedAt, day) {
			distanceKm += r.DistanceKm
		}
	}

	return &Snapshot{
		Day:              day,
		Steps:            estimate.StepsForDistance(distanceKm, p.HeightCm, d.sex),
		ActiveCalories:   estimate.RunningCalories(distanceKm, p.WeightKg),
		SleepHours:       0,
		RestingHeartRate: 70, // population average; no measured source
		MaxHeartRate:     estimate.MaxHeartRate(p.Age),
		Source:           "derived",
	}, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
