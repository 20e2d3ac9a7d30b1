// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package comment

import "context"

// Repository defines the persistence contract for comment threads.
type Repository interface {
	// ListByTarget returns a page of published, non-deleted top-level
	// comments for one target, newest first, each with its published
	// replies attached. The total counts top-level comments only.
	ListByTarget(context context.Context, kind TargetKind, targetID string, limit, offset int) ([]*Comment, int, error)

	// FindByID loads a single non-deleted comment regardless of status.
	FindByID(context context.Context, id string) (*Comment, error)

	// Create persists a new comment.
	Create(context context.Context, comment *Comment) error

	// UpdateBody replaces the comment text.
	UpdateBody(context context.Context, id, body string) error

	// SoftDelete stamps deleted_at. Moderation status is left untouched.
	SoftDelete(context context.Context, id string) error

	// UpdateStatus overwrites the moderation status directly; comment
	// moderation has no transition rules.
	UpdateStatus(context context.Context, id string, status Status) error
}
