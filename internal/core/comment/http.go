// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/turathdz/turath/internal/platform/middleware"
	requestutil "github.com/turathdz/turath/internal/platform/request"
	"github.com/turathdz/turath/internal/platform/respond"
	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/pkg/pagination"
)

// Handler exposes the comment endpoints. Thread listing and posting are
// mounted under the target resource (/works/{id}/comments,
// /events/{id}/comments); per-comment operations live under /comments.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the /comments router for per-comment operations.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(member chi.Router) {
		member.Use(middleware.RequireRole(sec.RoleMember))
		member.Patch("/{id}", handler.updateComment)
		member.Delete("/{id}", handler.deleteComment)
	})

	router.Group(func(moderator chi.Router) {
		moderator.Use(middleware.RequireRole(sec.RoleModerator))
		moderator.Post("/{id}/moderate", handler.moderateComment)
	})

	return router
}

// TargetRoutes returns the thread router for one target kind, meant to be
// mounted at <resource>/{id}/comments. The {id} URL parameter resolves
// through the parent route context.
func (handler *Handler) TargetRoutes(kind TargetKind) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listThread(kind))

	router.Group(func(member chi.Router) {
		member.Use(middleware.RequireRole(sec.RoleMember))
		member.Post("/", handler.createComment(kind))
	})

	return router
}

/*
GET /api/v1/works/{id}/comments (and /events/{id}/comments).

Response:
  - 200: []Comment: Published top-level comments, newest first, with their
    published replies attached
*/
func (handler *Handler) listThread(kind TargetKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		paginationParams := pagination.FromRequest(request)

		comments, total, err := handler.service.ListForTarget(request.Context(), kind,
			requestutil.ID(request, "id"), paginationParams.Limit, paginationParams.Offset())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Paginated(writer, comments, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
	}
}

// createCommentRequest defines the inbound JSON schema for posting.
type createCommentRequest struct {
	Body     string  `json:"body"`
	ParentID *string `json:"parent_id"`
	Rating   *int    `json:"rating"`
}

/*
POST /api/v1/works/{id}/comments (and /events/{id}/comments).

Response:
  - 201: Comment: The posted comment, published immediately
  - 404: Target does not exist
  - 422: Validation failure (empty body, bad rating, reply-to-reply)
*/
func (handler *Handler) createComment(kind TargetKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		actor, err := requestutil.Actor(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		payload := createCommentRequest{}
		if err := requestutil.DecodeJSON(request, &payload); err != nil {
			respond.Error(writer, request, err)
			return
		}

		comment := &Comment{
			TargetKind: kind,
			TargetID:   requestutil.ID(request, "id"),
			ParentID:   payload.ParentID,
			Body:       payload.Body,
			Rating:     payload.Rating,
		}

		if err := handler.service.CreateComment(request.Context(), actor, comment); err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Created(writer, comment)
	}
}

// updateCommentRequest defines the inbound JSON schema for edits.
type updateCommentRequest struct {
	Body string `json:"body"`
}

// PATCH /api/v1/comments/{id}. Author only.
func (handler *Handler) updateComment(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.Actor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := updateCommentRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.UpdateComment(request.Context(), actor, requestutil.ID(request, "id"), payload.Body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment)
}

// DELETE /api/v1/comments/{id}. Author or admin.
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.Actor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComment(request.Context(), actor, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// moderateCommentRequest defines the inbound JSON schema for moderation.
type moderateCommentRequest struct {
	Status string `json:"status"`
}

/*
POST /api/v1/comments/{id}/moderate. Moderator or admin.

Response:
  - 204: Status overwritten
  - 422: Unknown status value
*/
func (handler *Handler) moderateComment(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.Actor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := moderateCommentRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Moderate(request.Context(), actor, requestutil.ID(request, "id"), Status(payload.Status)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
