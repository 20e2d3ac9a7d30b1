// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package taxonomy

import (
	"context"
	"log/slog"

	"github.com/turathdz/turath/internal/platform/validate"
	"github.com/turathdz/turath/pkg/slug"
	"github.com/turathdz/turath/pkg/uuid"
)

// Service orchestrates vocabulary reads and admin-curated writes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) GetCategory(context context.Context, id string) (*Category, error) {
	return service.repo.GetCategory(context, id)
}

func (service *Service) CreateCategory(context context.Context, category *Category) error {
	validator := &validate.Validator{}
	validator.Required("name", category.Name).MaxLen("name", category.Name, 120)
	if err := validator.Err(); err != nil {
		return err
	}

	if category.ID == "" {
		category.ID = uuid.New()
	}
	if category.Slug == "" {
		category.Slug = slug.From(category.Name)
	}

	return service.repo.CreateCategory(context, category)
}

func (service *Service) ListTags(context context.Context) ([]*Tag, error) {
	return service.repo.ListTags(context)
}

func (service *Service) GetTag(context context.Context, id string) (*Tag, error) {
	return service.repo.GetTag(context, id)
}

// ResolveTag returns the id of the tag matching name, creating the tag if
// it does not exist yet. Resolution is idempotent: names that collapse to
// the same canonical slug resolve to the same tag row.
func (service *Service) ResolveTag(context context.Context, name string) (*Tag, error) {
	validator := &validate.Validator{}
	validator.Required("name", name).MaxLen("name", name, 120)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	canonical := slug.From(name)
	id, err := service.repo.ResolveTag(context, name, canonical)
	if err != nil {
		return nil, err
	}

	return &Tag{ID: id, Name: name, Slug: canonical}, nil
}

func (service *Service) ListLanguages(context context.Context) ([]*Language, error) {
	return service.repo.ListLanguages(context)
}

func (service *Service) CreateLanguage(context context.Context, language *Language) error {
	validator := &validate.Validator{}
	validator.Required("code", language.Code).MaxLen("code", language.Code, 8)
	validator.Required("name", language.Name)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.CreateLanguage(context, language)
}

func (service *Service) ListMaterials(context context.Context) ([]*Material, error) {
	return service.repo.ListMaterials(context)
}

func (service *Service) CreateMaterial(context context.Context, material *Material) error {
	validator := &validate.Validator{}
	validator.Required("name", material.Name).MaxLen("name", material.Name, 120)
	if err := validator.Err(); err != nil {
		return err
	}

	if material.ID == "" {
		material.ID = uuid.New()
	}
	if material.Slug == "" {
		material.Slug = slug.From(material.Name)
	}

	return service.repo.CreateMaterial(context, material)
}

func (service *Service) ListTechniques(context context.Context) ([]*Technique, error) {
	return service.repo.ListTechniques(context)
}

func (service *Service) CreateTechnique(context context.Context, technique *Technique) error {
	validator := &validate.Validator{}
	validator.Required("name", technique.Name).MaxLen("name", technique.Name, 120)
	if err := validator.Err(); err != nil {
		return err
	}

	if technique.ID == "" {
		technique.ID = uuid.New()
	}
	if technique.Slug == "" {
		technique.Slug = slug.From(technique.Name)
	}

	return service.repo.CreateTechnique(context, technique)
}

func (service *Service) ListPublishers(context context.Context) ([]*Publisher, error) {
	return service.repo.ListPublishers(context)
}

func (service *Service) GetPublisher(context context.Context, id string) (*Publisher, error) {
	return service.repo.GetPublisher(context, id)
}

func (service *Service) CreatePublisher(context context.Context, publisher *Publisher) error {
	validator := &validate.Validator{}
	validator.Required("name", publisher.Name).MaxLen("name", publisher.Name, 200)
	if err := validator.Err(); err != nil {
		return err
	}

	if publisher.ID == "" {
		publisher.ID = uuid.New()
	}
	if publisher.Slug == "" {
		publisher.Slug = slug.From(publisher.Name)
	}

	return service.repo.CreatePublisher(context, publisher)
}
