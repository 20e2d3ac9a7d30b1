// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package event

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/turathdz/turath/internal/platform/middleware"
	requestutil "github.com/turathdz/turath/internal/platform/request"
	"github.com/turathdz/turath/internal/platform/respond"
	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/pkg/pagination"
)

// Handler exposes the /events endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listUpcoming)
	router.Get("/{id}", handler.getEvent)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/", handler.createEvent)
	})

	return router
}

/*
GET /api/v1/events.

Request:
  - place: string (Optional place UUID filter)
  - limit, page: int

Response:
  - 200: []Event: Upcoming events, soonest first
*/
func (handler *Handler) listUpcoming(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	placeID := request.URL.Query().Get("place")

	events, total, err := handler.service.ListUpcoming(request.Context(), placeID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	event, err := handler.service.GetEvent(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

// createEventRequest defines the inbound JSON schema for event creation.
type createEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	PlaceID     *string    `json:"place_id"`
	Location    string     `json:"location"`
}

/*
POST /api/v1/events.

Response:
  - 201: Event: Created event
  - 400: ErrInvalidJSON/Validation: Invalid input data
*/
func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.Actor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createEventRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event := &Event{
		Title:       input.Title,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		PlaceID:     input.PlaceID,
		Location:    input.Location,
	}

	if err := handler.service.CreateEvent(request.Context(), actor, event); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, event)
}
