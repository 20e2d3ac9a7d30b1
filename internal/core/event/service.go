// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package event

import (
	"context"

	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/internal/platform/validate"
	"github.com/turathdz/turath/pkg/slug"
	"github.com/turathdz/turath/pkg/uuid"
)

// Service orchestrates event scheduling and discovery.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (service *Service) ListUpcoming(context context.Context, placeID string, limit, offset int) ([]*Event, int, error) {
	return service.repo.ListUpcoming(context, placeID, limit, offset)
}

// UpcomingByPlace is the short-list form used to decorate place details.
func (service *Service) UpcomingByPlace(context context.Context, placeID string, limit int) ([]*Event, error) {
	events, _, err := service.repo.ListUpcoming(context, placeID, limit, 0)
	return events, err
}

func (service *Service) GetEvent(context context.Context, id string) (*Event, error) {
	return service.repo.FindByID(context, id)
}

// Exists reports whether an active event with the given id exists. Comment
// creation uses it as the target existence check.
func (service *Service) Exists(context context.Context, id string) (bool, error) {
	return service.repo.Exists(context, id)
}

func (service *Service) CreateEvent(context context.Context, actor sec.Actor, event *Event) error {
	validator := &validate.Validator{}
	validator.Required("title", event.Title).MaxLen("title", event.Title, 300)
	validator.Custom("starts_at", event.StartsAt.IsZero(), "This field is required")
	if event.EndsAt != nil {
		validator.Custom("ends_at", event.EndsAt.Before(event.StartsAt), "Cannot precede starts_at")
	}
	if event.PlaceID != nil {
		validator.UUID("place_id", *event.PlaceID)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if event.ID == "" {
		event.ID = uuid.New()
	}
	if event.Slug == "" {
		event.Slug = slug.From(event.Title)
	}
	event.CreatedBy = actor.UserID

	return service.repo.Create(context, event)
}
