// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package taxonomy

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/turathdz/turath/internal/platform/middleware"
	requestutil "github.com/turathdz/turath/internal/platform/request"
	"github.com/turathdz/turath/internal/platform/respond"
	"github.com/turathdz/turath/internal/platform/sec"
)

// Handler exposes the vocabulary endpoints under /taxonomy.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /taxonomy subtree. Reads are public; creation is
// reserved to administrators.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/categories", handler.listCategories)
	router.Get("/categories/{id}", handler.getCategory)
	router.Get("/tags", handler.listTags)
	router.Get("/tags/{id}", handler.getTag)
	router.Get("/languages", handler.listLanguages)
	router.Get("/materials", handler.listMaterials)
	router.Get("/techniques", handler.listTechniques)
	router.Get("/publishers", handler.listPublishers)
	router.Get("/publishers/{id}", handler.getPublisher)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/categories", handler.createCategory)
		admin.Post("/tags", handler.createTag)
		admin.Post("/languages", handler.createLanguage)
		admin.Post("/materials", handler.createMaterial)
		admin.Post("/techniques", handler.createTechnique)
		admin.Post("/publishers", handler.createPublisher)
	})

	return router
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.GetCategory(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category := &Category{Name: input.Name, Description: input.Description}
	if err := handler.service.CreateCategory(request.Context(), category); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, category)
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	tag, err := handler.service.GetTag(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

// createTag piggybacks on resolution so that posting an existing name is
// an idempotent 201 with the existing row.
func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.ResolveTag(request.Context(), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tag)
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	languages, err := handler.service.ListLanguages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, languages)
}

func (handler *Handler) createLanguage(writer http.ResponseWriter, request *http.Request) {
	var input Language
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateLanguage(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listMaterials(writer http.ResponseWriter, request *http.Request) {
	materials, err := handler.service.ListMaterials(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, materials)
}

func (handler *Handler) createMaterial(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	material := &Material{Name: input.Name}
	if err := handler.service.CreateMaterial(request.Context(), material); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, material)
}

func (handler *Handler) listTechniques(writer http.ResponseWriter, request *http.Request) {
	techniques, err := handler.service.ListTechniques(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, techniques)
}

func (handler *Handler) createTechnique(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	technique := &Technique{Name: input.Name}
	if err := handler.service.CreateTechnique(request.Context(), technique); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, technique)
}

func (handler *Handler) listPublishers(writer http.ResponseWriter, request *http.Request) {
	publishers, err := handler.service.ListPublishers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publishers)
}

func (handler *Handler) getPublisher(writer http.ResponseWriter, request *http.Request) {
	publisher, err := handler.service.GetPublisher(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publisher)
}

func (handler *Handler) createPublisher(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	publisher := &Publisher{Name: input.Name, Country: input.Country}
	if err := handler.service.CreatePublisher(request.Context(), publisher); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, publisher)
}
