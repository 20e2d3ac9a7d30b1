// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

/*
Package work provides the HTTP interface for catalogue discovery,
submission and moderation.

# Routing Strategy

  - Public (v1): Discovery endpoints accessible to all visitors; only
    published works are visible without a moderator token.
  - Contributor (v1): Submission endpoints for authenticated contributors.
  - Moderator/Admin (v1): Review decisions and archival.

The handler translates between the web/JSON layer and the internal domain
[Service].
*/
package work

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	personpkg "github.com/turathdz/turath/internal/core/person"
	"github.com/turathdz/turath/internal/platform/middleware"
	requestutil "github.com/turathdz/turath/internal/platform/request"
	"github.com/turathdz/turath/internal/platform/respond"
	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/pkg/pagination"
	"github.com/turathdz/turath/pkg/query"
)

// Handler implements the HTTP layer for the catalogue.
type Handler struct {
	service *Service
}

// NewHandler constructs a new work [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the catalogue endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery
	router.Get("/", handler.listWorks)
	router.Get("/{id}", handler.getWork)

	// ## Submission (Contributor Protected)
	router.Group(func(contributor chi.Router) {
		contributor.Use(middleware.RequireRole(sec.RoleContributor))

		contributor.Post("/", handler.createWork)
		contributor.Patch("/{id}", handler.updateWork)
		contributor.Delete("/{id}", handler.deleteWork)
		contributor.Post("/{id}/submit", handler.submitWork)
	})

	// ## Moderation
	router.Group(func(moderator chi.Router) {
		moderator.Use(middleware.RequireRole(sec.RoleModerator))
		moderator.Post("/{id}/moderate", handler.moderateWork)
	})
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/{id}/archive", handler.archiveWork)
	})

	return router
}

// # Discovery Endpoints

/*
GET /api/v1/works.

Description: Retrieves a paginated, filtered list of works. Visitors only
ever see published works; moderators may request any status explicitly.

Request:
  - q: string (Case-insensitive substring over title/description)
  - kind: string (book, film, album, article, scientific_article, craft, art_piece)
  - status: []string (Moderator only)
  - language: string (ISO-639-1)
  - year_from, year_to: int (Inclusive range)
  - category: string (Category UUID)
  - tag: string (Tag UUID)
  - person: string (Contributor UUID)
  - limit, page: int

Response:
  - 200: []Work: Paginated list with categories and tags hydrated
*/
func (handler *Handler) listWorks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Query:      queryParams.Get("q"),
		Language:   queryParams.Get("language"),
		CategoryID: queryParams.Get("category"),
		TagID:      queryParams.Get("tag"),
		PersonID:   queryParams.Get("person"),
	}

	if kind, ok := ParseKind(queryParams.Get("kind")); ok {
		filter.Kind = kind
	}
	if year, ok := query.Int(queryParams.Get("year_from")); ok {
		filter.YearFrom = &year
	}
	if year, ok := query.Int(queryParams.Get("year_to")); ok {
		filter.YearTo = &year
	}

	// Status visibility: the public catalogue is published works only.
	filter.Status = []Status{StatusPublished}
	if actor, err := requestutil.Actor(request); err == nil && actor.CanModerate() {
		if requested := parseStatusSlice(queryParams["status"]); len(requested) > 0 {
			filter.Status = requested
		}
	}

	works, total, err := handler.service.ListWorks(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, works, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/works/{id}.

Response:
  - 200: Work: Full aggregate with specialization (null when absent),
    categories, tags, publishers and contributors
  - 404: ErrNotFound: Work not found or soft-deleted
*/
func (handler *Handler) getWork(writer http.ResponseWriter, request *http.Request) {
	work, err := handler.service.GetWork(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, work)
}

// # Request Payloads

// workRequest defines the inbound JSON schema for work creation and update.
// The specialization payload stays raw until the service dispatches it
// against the work's kind.
type workRequest struct {
	Title          string                   `json:"title"`
	Kind           string                   `json:"kind"`
	LanguageCode   string                   `json:"language_code"`
	Year           *int                     `json:"year"`
	Description    string                   `json:"description"`
	Specialization json.RawMessage          `json:"specialization"`
	CategoryIDs    []string                 `json:"category_ids"`
	TagNames       []string                 `json:"tag_names"`
	Publishers     []PublisherLink          `json:"publishers"`
	Contributors   []personpkg.Contribution `json:"contributors"`
}

// # Submission Endpoints

/*
POST /api/v1/works.

Description: Creates a new draft work owned by the authenticated user. The
kind is parsed case-insensitively; the specialization payload must match it
or is skipped.

Response:
  - 201: Work: Created draft
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Missing or invalid token
*/
func (handler *Handler) createWork(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.Actor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input workRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// An unrecognised kind is passed through raw so validation reports the
	// closed enum instead of a missing field.
	kind, ok := ParseKind(input.Kind)
	if !ok {
		kind = Kind(input.Kind)
	}
	work := &Work{
		Title:        input.Title,
		Kind:         kind,
		LanguageCode: input.LanguageCode,
		Year:         input.Year,
		Description:  input.Description,
		CategoryIDs:  input.CategoryIDs,
		TagNames:     input.TagNames,
		Publishers:   input.Publishers,
		Contributors: input.Contributors,
	}

	if err := handler.service.CreateWork(request.Context(), actor, work, input.Specialization); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, work)
}

/*
PATCH /api/v1/works/{id}.

Description: Partial update; only the creator or an administrator may
modify a work. Supplied classification sets replace the stored sets.

Response:
  - 200: Work: Updated work
  - 403: ErrForbidden: Not the creator
  - 404: ErrNotFound: Work not found
*/
func (handler *Handler) updateWork(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.Actor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input workRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	work := &Work{
		ID:           requestutil.ID(request, "id"),
		Title:        input.Title,
		LanguageCode: input.LanguageCode,
		Year:         input.Year,
		Description:  input.Description,
		CategoryIDs:  input.CategoryIDs,
		TagNames:     input.TagNames,
		Publishers:   input.Publishers,
		Contributors: input.Contributors,
	}

	if err := handler.service.UpdateWork(request.Context(), actor, work, input.Specialization); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, work)
}

/*
DELETE /api/v1/works/{id}.

Description: Soft-deletes the work; the moderation status is untouched.

Response:
  - 204: No Content
  - 403: ErrForbidden: Not the creator
  - 404: ErrNotFound: Work not found
*/
func (handler *Handler) deleteWork(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.Actor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteWork(request.Context(), actor, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Moderation Endpoints

/*
POST /api/v1/works/{id}/submit.

Description: Places the work in the moderation queue. Valid from brouillon
and, for resubmission, from publie or rejete.

Response:
  - 204: No Content
  - 422: INVALID_STATUS: Work not in a submittable state
*/
func (handler *Handler) submitWork(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.Actor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Submit(request.Context(), actor, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// moderateRequest is the review decision payload.
type moderateRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason"`
}

/*
POST /api/v1/works/{id}/moderate.

Description: Applies a review decision. Only publie and rejete are legal
targets; the validator and timestamp are always stamped and the rejection
reason is only written when supplied.

Response:
  - 204: No Content
  - 422: INVALID_STATUS: Illegal target status
  - 404: ErrNotFound: Work not found
*/
func (handler *Handler) moderateWork(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.Actor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input moderateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.Transition(request.Context(), actor, requestutil.ID(request, "id"), Status(input.Status), input.Reason)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/works/{id}/archive.

Description: Freezes the work permanently (terminal state).

Response:
  - 204: No Content
  - 404: ErrNotFound: Work not found
*/
func (handler *Handler) archiveWork(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Archive(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Helpers

// parseStatusSlice accepts both repeated parameters and comma-separated
// lists (?status=publie,rejete), keeping only recognised status values.
func parseStatusSlice(values []string) []Status {
	var result []Status
	for _, raw := range values {
		for _, value := range query.StringSlice(raw) {
			status := Status(value)
			if status.IsValid() {
				result = append(result, status)
			}
		}
	}
	return result
}
