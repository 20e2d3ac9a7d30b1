// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package work

import "context"

// # Work Data Access

// Repository defines the data access contract for the catalogue.
type Repository interface {

	/*
		List returns a filtered, paginated slice of works and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Facets, free-text query, status)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Work: Matching works with categories and tags hydrated
		  - int: Total count of records matching the filter
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Work, int, error)

	/*
		FindByID returns the fully hydrated work: specialization variant,
		categories, tags, publishers and contributors.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Work: The hydrated aggregate
		  - error: apperr.NotFound if missing or soft-deleted
	*/
	FindByID(context context.Context, id string) (*Work, error)

	/*
		Create persists the work, its specialization variant (when present)
		and all classification edges in a single transaction. Tag names are
		resolved in-transaction via the slug upsert.

		Parameters:
		  - context: context.Context
		  - work: *Work

		Returns:
		  - error: Storage or constraint failures; everything rolls back
	*/
	Create(context context.Context, work *Work) error

	/*
		Update patches the work's mutable columns and replaces the
		classification edges wholesale in one transaction. The replacement
		only runs for edge sets the caller actually supplied (non-nil).
		Duplicate contributor edges are idempotent no-ops on this path.

		Parameters:
		  - context: context.Context
		  - work: *Work (Target id plus modified attributes)

		Returns:
		  - error: apperr.NotFound if missing, or execution failures
	*/
	Update(context context.Context, work *Work) error

	/*
		SoftDelete stamps deleted_at without touching moderation status.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: apperr.NotFound if missing or already deleted
	*/
	SoftDelete(context context.Context, id string) error

	/*
		UpdateStatus overwrites the moderation status without touching the
		validation trail. Used by submission and archival.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - status: Status

		Returns:
		  - error: apperr.NotFound if missing
	*/
	UpdateStatus(context context.Context, id string, status Status) error

	/*
		Moderate applies a review decision: sets the status, always stamps
		the validator and validation timestamp, and overwrites the rejection
		reason only when one is supplied.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - status: Status (publie or rejete)
		  - validatorID: string (Moderator UUID)
		  - reason: *string (nil leaves any previous reason untouched)

		Returns:
		  - error: apperr.NotFound if missing
	*/
	Moderate(context context.Context, id string, status Status, validatorID string, reason *string) error
}
