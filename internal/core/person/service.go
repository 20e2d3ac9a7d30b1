// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package person

import (
	"context"
	"time"

	"github.com/turathdz/turath/internal/platform/validate"
	"github.com/turathdz/turath/pkg/slug"
	"github.com/turathdz/turath/pkg/uuid"
)

// Service orchestrates contributor management.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (service *Service) ListPeople(context context.Context, search string, limit, offset int) ([]*Person, int, error) {
	return service.repo.List(context, search, limit, offset)
}

func (service *Service) GetPerson(context context.Context, id string) (*Person, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) ListContributions(context context.Context, personID string) ([]*Contribution, error) {
	return service.repo.ListContributions(context, personID)
}

/*
CreatePerson registers a new contributor.

Description: Validates the name and the birth/death year pair, then assigns
a UUID v7 identity and a URL slug before persisting.

Parameters:
  - context: context.Context
  - person: *Person (The entity to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreatePerson(context context.Context, person *Person) error {
	validator := &validate.Validator{}
	validator.Required("full_name", person.FullName).MaxLen("full_name", person.FullName, 200)

	currentYear := time.Now().Year()
	if person.BirthYear != nil {
		validator.Range("birth_year", *person.BirthYear, 1, currentYear)
	}
	if person.DeathYear != nil {
		validator.Range("death_year", *person.DeathYear, 1, currentYear)
		if person.BirthYear != nil {
			validator.Custom("death_year", *person.DeathYear < *person.BirthYear, "Cannot precede birth year")
		}
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if person.ID == "" {
		person.ID = uuid.New()
	}
	if person.Slug == "" {
		person.Slug = slug.From(person.FullName)
	}

	return service.repo.Create(context, person)
}
