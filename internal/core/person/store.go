// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package person

import "context"

// Repository defines the data access contract for the contributor graph.
type Repository interface {

	// List returns a paginated slice of people and the total count,
	// optionally narrowed by a case-insensitive name search.
	List(context context.Context, search string, limit, offset int) ([]*Person, int, error)

	// FindByID returns the person with the given id, or NotFound.
	FindByID(context context.Context, id string) (*Person, error)

	// Create persists a new person.
	Create(context context.Context, person *Person) error

	// ListContributions returns a person's credited works, newest first.
	ListContributions(context context.Context, personID string) ([]*Contribution, error)
}
