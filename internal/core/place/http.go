// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package place

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/turathdz/turath/internal/platform/apperr"
	"github.com/turathdz/turath/internal/platform/middleware"
	requestutil "github.com/turathdz/turath/internal/platform/request"
	"github.com/turathdz/turath/internal/platform/respond"
	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/pkg/pagination"
	"github.com/turathdz/turath/pkg/query"
)

// Handler exposes the /places endpoints.
type Handler struct {
	service *Service

	// apiKeyHash guards the operator cache-flush endpoint.
	apiKeyHash string
}

// NewHandler builds the place HTTP handler.
func NewHandler(service *Service, apiKeyHash string) *Handler {
	return &Handler{service: service, apiKeyHash: apiKeyHash}
}

// Routes assembles the place router. Discovery endpoints are public;
// creation is admin-only and the cache flush is keyed for operators.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPlaces)
	router.Get("/nearby", handler.nearby)
	router.Get("/stats", handler.getStats)
	router.Get("/{id}", handler.getPlace)
	router.Get("/{id}/gallery", handler.getGallery)

	router.Group(func(operator chi.Router) {
		operator.Use(middleware.RequireAPIKey(handler.apiKeyHash))
		operator.Delete("/stats/cache", handler.flushStatsCache)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/", handler.createPlace)
	})

	return router
}

/*
GET /api/v1/places.

Request:
  - wilaya: string (Optional wilaya UUID facet)
  - subtype: string (Optional heritage feature subtype facet)
  - q: string (Optional free-text name match)
  - with_events: bool (Keep only places with upcoming events)
  - limit, page: int

Response:
  - 200: []Place: Matching places, name order
*/
func (handler *Handler) listPlaces(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		WilayaID:   values.Get("wilaya"),
		Subtype:    values.Get("subtype"),
		Query:      values.Get("q"),
		WithEvents: values.Get("with_events") == "true",
	}

	places, total, err := handler.service.ListPlaces(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, places, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/places/nearby.

Request:
  - lat, lon: float (Required query point, decimal degrees)
  - radius: float (Required inclusive radius in kilometres)
  - limit: int (Optional result cap)

Response:
  - 200: []NearbyPlace: Matches with distances, closest first
  - 422: Missing or out-of-range coordinates
*/
func (handler *Handler) nearby(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	latitude, latOK := query.Float(values.Get("lat"))
	longitude, lonOK := query.Float(values.Get("lon"))
	radius, radiusOK := query.Float(values.Get("radius"))
	if !latOK || !lonOK || !radiusOK {
		respond.Error(writer, request, apperr.ValidationError("lat, lon and radius are required numeric parameters"))
		return
	}
	limit, _ := query.Int(values.Get("limit"))

	matches, err := handler.service.Nearby(request.Context(), latitude, longitude, radius, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, matches)
}

// GET /api/v1/places/stats.
func (handler *Handler) getStats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.GetStats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

// DELETE /api/v1/places/stats/cache. Operator endpoint, X-API-Key guarded.
func (handler *Handler) flushStatsCache(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.FlushStatsCache(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
GET /api/v1/places/{id}.

Response:
  - 200: Place: The place with detail, features, gallery and upcoming events
  - 404: Unknown or deleted place
*/
func (handler *Handler) getPlace(writer http.ResponseWriter, request *http.Request) {
	place, err := handler.service.GetPlace(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, place)
}

/*
GET /api/v1/places/{id}/gallery.

Request:
  - kind: string (Optional: photo, video or audio)

Response:
  - 200: []Media: Gallery entries, oldest first
*/
func (handler *Handler) getGallery(writer http.ResponseWriter, request *http.Request) {
	gallery, err := handler.service.ListGallery(request.Context(), requestutil.ID(request, "id"), request.URL.Query().Get("kind"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, gallery)
}

// createPlaceRequest defines the inbound JSON schema for place registration.
type createPlaceRequest struct {
	Name       string  `json:"name"`
	AnchorKind string  `json:"anchor_kind"`
	AnchorID   string  `json:"anchor_id"`
	WilayaID   string  `json:"wilaya_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`

	Detail *struct {
		Description string            `json:"description"`
		History     string            `json:"history"`
		Features    []HeritageFeature `json:"features"`
	} `json:"detail"`

	Media []struct {
		Kind    string `json:"kind"`
		URL     string `json:"url"`
		Caption string `json:"caption"`
	} `json:"media"`
}

/*
POST /api/v1/places. Admin only.

Response:
  - 201: Place: The registered place
  - 422: Validation failure
*/
func (handler *Handler) createPlace(writer http.ResponseWriter, request *http.Request) {
	payload := createPlaceRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	place := &Place{
		Name:       payload.Name,
		AnchorKind: AnchorKind(payload.AnchorKind),
		AnchorID:   payload.AnchorID,
		WilayaID:   payload.WilayaID,
		Latitude:   payload.Latitude,
		Longitude:  payload.Longitude,
	}
	if payload.Detail != nil {
		place.Detail = &HeritageDetail{
			Description: payload.Detail.Description,
			History:     payload.Detail.History,
			Features:    payload.Detail.Features,
		}
	}
	for _, media := range payload.Media {
		place.Media = append(place.Media, Media{
			Kind:    MediaKind(media.Kind),
			URL:     media.URL,
			Caption: media.Caption,
		})
	}

	if err := handler.service.CreatePlace(request.Context(), place); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, place)
}
