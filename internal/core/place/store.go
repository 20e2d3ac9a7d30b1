// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package place

import "context"

// Repository defines the persistence contract for heritage places.
type Repository interface {
	// List returns a page of bare place rows matching the filter, plus the
	// total match count.
	List(context context.Context, filter Filter, limit, offset int) ([]*Place, int, error)

	// FindByID loads one place with its heritage detail, features and media
	// attached. Upcoming events are composed at the service layer.
	FindByID(context context.Context, id string) (*Place, error)

	// Create persists a place together with its optional detail, features
	// and media in a single transaction.
	Create(context context.Context, place *Place) error

	// ListCoordinates returns every active place as a lean row (identity and
	// coordinates only) for in-process proximity scoring.
	ListCoordinates(context context.Context) ([]*Place, error)

	// ListMedia returns a place's gallery, optionally restricted to one
	// media kind ("" means all kinds).
	ListMedia(context context.Context, placeID string, kind string) ([]Media, error)

	// Stats aggregates place counts per wilaya and feature counts per
	// subtype.
	Stats(context context.Context) (*Stats, error)
}
