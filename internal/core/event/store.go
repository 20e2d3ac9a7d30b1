// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package event

import "context"

// Repository defines the data access contract for events.
type Repository interface {

	// ListUpcoming returns events that have not ended yet, soonest first,
	// optionally restricted to one place. placeID == "" means all places.
	ListUpcoming(context context.Context, placeID string, limit, offset int) ([]*Event, int, error)

	// FindByID returns the event with the given id, or NotFound.
	FindByID(context context.Context, id string) (*Event, error)

	// Create persists a new event.
	Create(context context.Context, event *Event) error

	// Exists reports whether an active event with the given id exists.
	Exists(context context.Context, id string) (bool, error)
}
