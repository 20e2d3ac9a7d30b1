// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

// Package event manages cultural events: festivals, exhibitions, readings.
// Events optionally anchor to a heritage place and feed the "upcoming"
// sections of the place endpoints.
package event

import "time"

// Event is a scheduled cultural happening.
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	PlaceID     *string    `json:"place_id,omitempty"`
	Location    string     `json:"location,omitempty"` // Free-text venue when no place anchor
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}
