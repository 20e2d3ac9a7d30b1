// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package person

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/turathdz/turath/internal/platform/middleware"
	requestutil "github.com/turathdz/turath/internal/platform/request"
	"github.com/turathdz/turath/internal/platform/respond"
	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/pkg/pagination"
)

// Handler exposes the /people endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPeople)
	router.Get("/{id}", handler.getPerson)
	router.Get("/{id}/contributions", handler.listContributions)

	router.Group(func(restricted chi.Router) {
		restricted.Use(middleware.RequireRole(sec.RoleContributor))
		restricted.Post("/", handler.createPerson)
	})

	return router
}

/*
GET /api/v1/people.

Request:
  - q: string (Case-insensitive name search)
  - limit, page: int

Response:
  - 200: []Person: Paginated list of contributors
*/
func (handler *Handler) listPeople(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	search := request.URL.Query().Get("q")

	people, total, err := handler.service.ListPeople(request.Context(), search, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, people, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPerson(writer http.ResponseWriter, request *http.Request) {
	person, err := handler.service.GetPerson(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, person)
}

func (handler *Handler) listContributions(writer http.ResponseWriter, request *http.Request) {
	contributions, err := handler.service.ListContributions(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contributions)
}

// createPersonRequest defines the inbound JSON schema for person creation.
type createPersonRequest struct {
	FullName  string `json:"full_name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
}

/*
POST /api/v1/people.

Response:
  - 201: Person: Created contributor
  - 400: ErrInvalidJSON/Validation: Invalid input data
*/
func (handler *Handler) createPerson(writer http.ResponseWriter, request *http.Request) {
	var input createPersonRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	person := &Person{
		FullName:  input.FullName,
		BirthYear: input.BirthYear,
		DeathYear: input.DeathYear,
		Bio:       input.Bio,
		PhotoURL:  input.PhotoURL,
	}

	if err := handler.service.CreatePerson(request.Context(), person); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, person)
}
