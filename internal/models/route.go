// ABOUTME: Route model for recorded run sessions with GPS points.
// ABOUTME: Points serialize to JSON for the single TEXT column in storage.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// RoutePoint is one GPS coordinate sample along a route.
type RoutePoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Route represents one completed run recording. Read-only after insert.
type Route struct {
	ID         int64
	ProfileID  int64
	RecordedAt time.Time
	DistanceKm float64
	Points     []RoutePoint
}

// NewRoute creates a Route recorded now.
func NewRoute(profileID int64, distanceKm float64, points []RoutePoint) *Route {
	return &Route{
		ProfileID:  profileID,
		RecordedAt: time.Now(),
		DistanceKm: distanceKm,
		Points:     points,
	}
}

// WithRecordedAt sets an explicit recording timestamp.
func (r *Route) WithRecordedAt(t time.Time) *Route {
	r.RecordedAt = t
	return r
}

// EncodePoints serializes the point list for storage.
func (r *Route) EncodePoints() (string, error) {
	if len(r.Points) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(r.Points)
	if err != nil {
		return "", fmt.Errorf("encode route points: %w", err)
	}
	return string(data), nil
}

// DecodePoints restores the point list from its stored form.
func (r *Route) DecodePoints(raw string) error {
	if raw == "" {
		r.Points = nil
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &r.Points); err != nil {
		return fmt.Errorf("decode route points: %w", err)
	}
	return nil
}
