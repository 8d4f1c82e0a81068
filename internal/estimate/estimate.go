// ABOUTME: Derived health estimates: BMR, stride length, max heart rate.
// ABOUTME: Pure arithmetic over profile biometrics, no I/O.
package estimate

import "math"

// Sex selects the coefficient set for formulas that have one.
type Sex int

const (
	SexUnspecified Sex = iota
	SexMale
	SexFemale
)

// ParseSex maps a string to a Sex, defaulting to SexUnspecified.
func ParseSex(s string) Sex {
	switch s {
	case "male", "m":
		return SexMale
	case "female", "f":
		return SexFemale
	default:
		return SexUnspecified
	}
}

// BMR estimates the basal metabolic rate in kcal/day using the
// Mifflin-St Jeor equation. SexUnspecified uses the midpoint of the
// male (+5) and female (-161) constants.
func BMR(weightKg, heightCm float64, ageYears int, sex Sex) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch sex {
	case SexMale:
		return base + 5
	case SexFemale:
		return base - 161
	default:
		return base - 78
	}
}

// StrideLengthM estimates walking stride length in meters from height.
// Standard height multipliers: 0.415 for men, 0.413 for women.
func StrideLengthM(heightCm float64, sex Sex) float64 {
	heightM := heightCm / 100
	switch sex {
	case SexMale:
		return heightM * 0.415
	case SexFemale:
		return heightM * 0.413
	default:
		return heightM * 0.414
	}
}

// StepsForDistance estimates the step count needed to cover a distance.
func StepsForDistance(distanceKm, heightCm float64, sex Sex) int {
	stride := StrideLengthM(heightCm, sex)
	if stride <= 0 {
		return 0
	}
	return int(math.Round(distanceKm * 1000 / stride))
}

// MaxHeartRate estimates maximum heart rate in bpm with the Tanaka
// formula: 208 - 0.7 × age.
func MaxHeartRate(ageYears int) float64 {
	return 208 - 0.7*float64(ageYears)
}

// WalkingCalories estimates kcal burned walking a distance.
// Net cost of level walking is roughly 0.53 kcal per kg per km.
func WalkingCalories(distanceKm, weightKg float64) float64 {
	return 0.53 * weightKg * distanceKm
}

// RunningCalories estimates kcal burned running a distance.
// Net cost of level running is roughly 1.036 kcal per kg per km.
func RunningCalories(distanceKm, weightKg float64) float64 {
	return 1.036 * weightKg * distanceKm
}
