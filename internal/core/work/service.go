// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package work

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/turathdz/turath/internal/core/person"
	"github.com/turathdz/turath/internal/platform/apperr"
	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/internal/platform/validate"
	"github.com/turathdz/turath/pkg/slug"
	"github.com/turathdz/turath/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic of the catalogue: submission,
// classification, moderation and discovery.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Discovery

/*
ListWorks retrieves a paginated and filtered collection of works.

Description: Facets are conjunctive; free-text queries rank title matches
before description-only matches, then newest first.

Parameters:
  - context: context.Context
  - filter: Filter (Facets, free-text query, status)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Work: Slice of matching works
  - int: Total count of records matching the filter
  - error: System or repository level errors
*/
func (service *Service) ListWorks(context context.Context, filter Filter, limit, offset int) ([]*Work, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetWork fetches a single fully hydrated work by UUID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Work: Aggregate with specialization, classification and contributors
  - error: apperr.NotFound if no match is found
*/
func (service *Service) GetWork(context context.Context, id string) (*Work, error) {
	return service.repo.FindByID(context, id)
}

// Exists reports whether an active work with the given id exists. Comment
// creation uses it as the target existence check.
func (service *Service) Exists(context context.Context, id string) (bool, error) {
	_, err := service.repo.FindByID(context, id)
	if err != nil {
		if appErr := apperr.As(err); appErr != nil && appErr.Code == "NOT_FOUND" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// # Submission

/*
CreateWork registers a new work as a draft owned by the acting user.

Description: Validates the mandatory core fields (title, kind, language),
decodes the specialization payload against the declared kind, applies the
principal-contributor convention, and persists everything atomically. An
unrecognised or malformed specialization payload is skipped with a log line
rather than failing the submission: drafts without details are legitimate.

Parameters:
  - context: context.Context
  - actor: sec.Actor (Becomes the work's creator)
  - work: *Work (Core fields plus classification inputs)
  - specPayload: json.RawMessage (Variant payload matching work.Kind, optional)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateWork(context context.Context, actor sec.Actor, work *Work, specPayload json.RawMessage) error {

	// Mandatory core attributes
	validator := &validate.Validator{}
	validator.Required(FieldTitle, work.Title).MaxLen(FieldTitle, work.Title, 500)
	validator.Required(FieldKind, string(work.Kind)).
		Custom(FieldKind, work.Kind != "" && !work.Kind.IsValid(), fmt.Sprintf("Must be one of: %v", Kinds()))
	validator.Required(FieldLanguageCode, work.LanguageCode)

	service.validateContributors(validator, work)

	if err := validator.Err(); err != nil {
		return err
	}

	// Identity, slug, ownership and initial lifecycle state
	if work.ID == "" {
		work.ID = uuid.New()
	}
	if work.Slug == "" {
		work.Slug = slug.From(work.Title)
	}
	work.CreatedBy = actor.UserID
	work.Status = StatusDraft

	// Specialization decode; a skip is logged, never fatal
	work.Specialization = DecodeSpecialization(work.Kind, specPayload)
	if work.Specialization == nil && len(specPayload) > 0 && string(specPayload) != "null" {
		service.logger.Warn("specialization payload skipped",
			slog.String("work_id", work.ID),
			slog.String("kind", string(work.Kind)),
		)
	}

	service.applyPrincipalConvention(work, true)

	return service.repo.Create(context, work)
}

/*
UpdateWork applies modifications to an existing work.

Description: Only the work's creator or an administrator may update it.
Classification edge sets that are supplied replace the stored sets wholesale;
omitted sets are left untouched. A supplied specialization payload replaces
the variant row.

Parameters:
  - context: context.Context
  - actor: sec.Actor
  - work: *Work (Target id plus modified attributes)
  - specPayload: json.RawMessage (Optional replacement variant payload)

Returns:
  - error: apperr.Forbidden, validation or persistence errors
*/
func (service *Service) UpdateWork(context context.Context, actor sec.Actor, work *Work, specPayload json.RawMessage) error {

	existing, err := service.repo.FindByID(context, work.ID)
	if err != nil {
		return err
	}
	if !actor.Owns(existing.CreatedBy) && !actor.IsAdmin() {
		return apperr.Forbidden("Only the creator or an administrator may modify this work")
	}

	validator := &validate.Validator{}
	if work.Title != "" {
		validator.MaxLen(FieldTitle, work.Title, 500)
	}
	if work.Slug != "" {
		validator.Slug(FieldSlug, work.Slug)
	}

	// Kind is immutable once created; the variant payload decodes against
	// the stored kind.
	work.Kind = existing.Kind

	service.validateContributors(validator, work)

	if err := validator.Err(); err != nil {
		return err
	}

	if len(specPayload) > 0 {
		work.Specialization = DecodeSpecialization(work.Kind, specPayload)
		if work.Specialization == nil && string(specPayload) != "null" {
			service.logger.Warn("specialization payload skipped",
				slog.String("work_id", work.ID),
				slog.String("kind", string(work.Kind)),
			)
		}
	}

	service.applyPrincipalConvention(work, len(existing.Contributors) == 0)

	return service.repo.Update(context, work)
}

/*
DeleteWork soft-deletes a work.

Description: Stamps deleted_at; the moderation status is left exactly as it
was. Only the creator or an administrator may delete.

Parameters:
  - context: context.Context
  - actor: sec.Actor
  - id: string (UUID)

Returns:
  - error: apperr.Forbidden or persistence errors
*/
func (service *Service) DeleteWork(context context.Context, actor sec.Actor, id string) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if !actor.Owns(existing.CreatedBy) && !actor.IsAdmin() {
		return apperr.Forbidden("Only the creator or an administrator may delete this work")
	}

	return service.repo.SoftDelete(context, id)
}

// # Moderation

/*
Submit places a work in the moderation queue.

Description: Drafts enter review for the first time; published or rejected
works re-enter it (resubmission). Pending works are already queued and
archived works are frozen, both are invalid sources.

Parameters:
  - context: context.Context
  - actor: sec.Actor (Must be the creator or an administrator)
  - id: string (UUID)

Returns:
  - error: apperr.Forbidden, apperr.InvalidStatus or persistence errors
*/
func (service *Service) Submit(context context.Context, actor sec.Actor, id string) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if !actor.Owns(existing.CreatedBy) && !actor.IsAdmin() {
		return apperr.Forbidden("Only the creator or an administrator may submit this work")
	}
	if !existing.Status.Submittable() {
		return apperr.InvalidStatus(fmt.Sprintf("Cannot submit a work in status %q", existing.Status))
	}

	return service.repo.UpdateStatus(context, id, StatusPending)
}

/*
Transition applies a moderation decision to a work.

Description: The only legal review outcomes are publie and rejete; any other
target is an invalid-status error before the store is touched. The decision
always stamps the validator identity and timestamp. The rejection reason is
persisted only when supplied — moderators approving a previously rejected
work do not silently erase its history.

Parameters:
  - context: context.Context
  - actor: sec.Actor (The moderator; recorded as validator)
  - id: string (UUID)
  - target: Status (publie or rejete)
  - reason: *string (Optional rejection reason)

Returns:
  - error: apperr.InvalidStatus, apperr.NotFound or persistence errors
*/
func (service *Service) Transition(context context.Context, actor sec.Actor, id string, target Status, reason *string) error {
	if target != StatusPublished && target != StatusRejected {
		return apperr.InvalidStatus(fmt.Sprintf("Moderation target must be %q or %q", StatusPublished, StatusRejected))
	}

	return service.repo.Moderate(context, id, target, actor.UserID, reason)
}

/*
Archive freezes a work permanently.

Description: Archive is reachable from any moderation state and is terminal.
The work stays readable; it simply never re-enters the lifecycle.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: apperr.NotFound or persistence errors
*/
func (service *Service) Archive(context context.Context, id string) error {
	return service.repo.UpdateStatus(context, id, StatusArchived)
}

// # Internal Helpers

// validateContributors checks every supplied contribution edge against the
// closed role enum and the person id format.
func (service *Service) validateContributors(validator *validate.Validator, work *Work) {
	for index, contribution := range work.Contributors {
		field := fmt.Sprintf("%s[%d]", FieldContributors, index)
		validator.UUID(field+".person_id", contribution.PersonID)
		validator.Custom(field+".role", !contribution.Role.IsValid(),
			fmt.Sprintf("Must be one of: %v", person.Roles()))
	}
	for index, link := range work.Publishers {
		field := fmt.Sprintf("%s[%d]", FieldPublishers, index)
		validator.UUID(field+".publisher_id", link.PublisherID)
		validator.Required(field+".role", link.Role)
	}
}

// applyPrincipalConvention marks the first contributor as principal when a
// previously contributor-less work gains contributors and none is flagged.
// This is an application convention, not a database constraint.
func (service *Service) applyPrincipalConvention(work *Work, firstAttachment bool) {
	if !firstAttachment || len(work.Contributors) == 0 {
		return
	}
	for _, contribution := range work.Contributors {
		if contribution.IsPrincipal {
			return
		}
	}
	work.Contributors[0].IsPrincipal = true
}
