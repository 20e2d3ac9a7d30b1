// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/turathdz/turath/internal/platform/apperr"
	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/internal/platform/validate"
	"github.com/turathdz/turath/pkg/uuid"
)

// maxBodyLength bounds a comment body.
const maxBodyLength = 4000

// TargetChecker answers existence checks for a commentable resource. The
// work and event services both satisfy it.
type TargetChecker interface {
	Exists(context context.Context, id string) (bool, error)
}

// Service orchestrates comment threads and their moderation.
type Service struct {
	repo   Repository
	works  TargetChecker
	events TargetChecker
	logger *slog.Logger
}

// NewService builds the comment service with its target existence checkers.
func NewService(repo Repository, works, events TargetChecker, logger *slog.Logger) *Service {
	return &Service{repo: repo, works: works, events: events, logger: logger}
}

// ListForTarget returns the published thread page for one work or event.
func (service *Service) ListForTarget(context context.Context, kind TargetKind, targetID string, limit, offset int) ([]*Comment, int, error) {
	if !kind.IsValid() {
		return nil, 0, apperr.ValidationError("Unknown comment target kind")
	}
	return service.repo.ListByTarget(context, kind, targetID, limit, offset)
}

/*
CreateComment validates and posts a comment as the acting user.

Description: The target resource must exist; a reply's parent must be a
live top-level comment on the same target. Ratings are optional and bounded
to the 1..5 scale. New comments are published immediately; moderation acts
after the fact.

Parameters:
  - context: context.Context
  - actor: The authenticated author
  - comment: Target, body, optional parent and rating

Returns:
  - error: Validation failure, missing target, or repository error
*/
func (service *Service) CreateComment(context context.Context, actor sec.Actor, comment *Comment) error {
	validator := &validate.Validator{}
	validator.Required("body", comment.Body).MaxLen("body", comment.Body, maxBodyLength)
	validator.Custom("target_kind", !comment.TargetKind.IsValid(), "Must be one of: work, event")
	validator.UUID("target_id", comment.TargetID)
	if comment.Rating != nil {
		validator.Range("rating", *comment.Rating, 1, 5)
	}
	if comment.ParentID != nil {
		validator.UUID("parent_id", *comment.ParentID)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	exists, err := service.checker(comment.TargetKind).Exists(context, comment.TargetID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound(string(comment.TargetKind))
	}

	if comment.ParentID != nil {
		parent, err := service.repo.FindByID(context, *comment.ParentID)
		if err != nil {
			return err
		}
		if parent.TargetKind != comment.TargetKind || parent.TargetID != comment.TargetID {
			return apperr.ValidationError("Parent comment belongs to a different target")
		}
		if parent.ParentID != nil {
			return apperr.ValidationError("Replies to replies are not supported")
		}
	}

	comment.ID = uuid.New()
	comment.AuthorID = actor.UserID
	comment.Status = StatusPublished

	if err := service.repo.Create(context, comment); err != nil {
		return err
	}

	service.logger.Info("comment posted",
		slog.String("comment_id", comment.ID),
		slog.String("target_kind", string(comment.TargetKind)),
		slog.String("target_id", comment.TargetID),
	)
	return nil
}

// UpdateComment replaces a comment's body. Only the author may edit; admins
// moderate rather than rewrite other people's words.
func (service *Service) UpdateComment(context context.Context, actor sec.Actor, id, body string) (*Comment, error) {
	validator := &validate.Validator{}
	validator.Required("body", body).MaxLen("body", body, maxBodyLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	comment, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(comment.AuthorID) {
		return nil, apperr.Forbidden("Only the author can edit a comment")
	}

	if err := service.repo.UpdateBody(context, id, body); err != nil {
		return nil, err
	}
	comment.Body = body
	return comment, nil
}

// DeleteComment stamps deleted_at. The author or an admin may delete; the
// moderation status is deliberately left as-is.
func (service *Service) DeleteComment(context context.Context, actor sec.Actor, id string) error {
	comment, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if !actor.Owns(comment.AuthorID) && !actor.IsAdmin() {
		return apperr.Forbidden("Only the author or an administrator can delete a comment")
	}
	return service.repo.SoftDelete(context, id)
}

// Moderate overwrites a comment's moderation status. Unlike work
// moderation there is no transition graph: any known status can be set
// from any other.
func (service *Service) Moderate(context context.Context, actor sec.Actor, id string, status Status) error {
	if !status.IsValid() {
		return apperr.ValidationError(fmt.Sprintf("Unknown comment status %q", status))
	}

	if err := service.repo.UpdateStatus(context, id, status); err != nil {
		return err
	}

	service.logger.Info("comment moderated",
		slog.String("comment_id", id),
		slog.String("status", string(status)),
		slog.String("moderator_id", actor.UserID),
	)
	return nil
}

// checker routes an existence probe to the service owning the target kind.
func (service *Service) checker(kind TargetKind) TargetChecker {
	if kind == TargetEvent {
		return service.events
	}
	return service.works
}
