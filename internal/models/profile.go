// ABOUTME: Profile model for local user identities and biometrics.
// ABOUTME: Profiles are immutable after creation; the app switches between them.
package models

import "time"

// Profile represents one local user profile with static biometrics.
type Profile struct {
	ID        int64
	Name      string
	Age       int
	HeightCm  float64
	WeightKg  float64
	BMR       *float64 // precomputed metabolic rate, optional
	CreatedAt time.Time
}

// NewProfile creates a new Profile with the current timestamp.
func NewProfile(name string, age int, heightCm, weightKg float64) *Profile {
	return &Profile{
		Name:      name,
		Age:       age,
		HeightCm:  heightCm,
		WeightKg:  weightKg,
		CreatedAt: time.Now(),
	}
}

// WithBMR sets a precomputed basal metabolic rate.
func (p *Profile) WithBMR(bmr float64) *Profile {
	p.BMR = &bmr
	return p
}
