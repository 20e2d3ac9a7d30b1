// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package place

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turathdz/turath/internal/core/event"
	"github.com/turathdz/turath/internal/platform/constants"
	"github.com/turathdz/turath/internal/platform/validate"
	"github.com/turathdz/turath/pkg/geo"
	"github.com/turathdz/turath/pkg/slice"
	"github.com/turathdz/turath/pkg/slug"
	"github.com/turathdz/turath/pkg/uuid"
)

// upcomingEventsLimit bounds the events sidebar on the place detail view.
const upcomingEventsLimit = 5

// Service orchestrates heritage place discovery and registration.
//
// It composes three backends: the PostgreSQL repository for the canonical
// data, the event service for the detail view's upcoming-events sidebar,
// and Redis for the statistics cache.
type Service struct {
	repo     Repository
	events   *event.Service
	cache    *redis.Client
	statsTTL time.Duration
	logger   *slog.Logger
}

// NewService builds the place service.
//
// # Parameters
//   - repo: Place persistence backend.
//   - events: Event service used to decorate place details.
//   - cache: Redis client holding the statistics aggregation.
//   - statsTTL: Staleness bound for the cached statistics.
//   - logger: Structured logger.
func NewService(repo Repository, events *event.Service, cache *redis.Client, statsTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		events:   events,
		cache:    cache,
		statsTTL: statsTTL,
		logger:   logger,
	}
}

// ListPlaces returns a filtered, paginated page of places.
func (service *Service) ListPlaces(context context.Context, filter Filter, limit, offset int) ([]*Place, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

// GetPlace loads a place with its heritage detail, gallery and upcoming
// events. A failure fetching the events sidebar is logged and tolerated;
// the canonical place data is still served.
func (service *Service) GetPlace(context context.Context, id string) (*Place, error) {
	place, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	upcoming, err := service.events.UpcomingByPlace(context, place.ID, upcomingEventsLimit)
	if err != nil {
		service.logger.Warn("upcoming events lookup failed",
			slog.String("place_id", place.ID),
			slog.String("error", err.Error()),
		)
	} else {
		place.UpcomingEvents = upcoming
	}

	return place, nil
}

/*
Nearby returns the places within radiusKm of the query point, closest
first.

Description: Candidates are fetched as lean coordinate rows and scored
in-process with the great-circle distance from pkg/geo. The radius check is
inclusive, so a candidate sitting exactly on the boundary — including the
degenerate zero-distance case of a place at the query point itself — is
part of the result.

Parameters:
  - context: context.Context
  - latitude, longitude: Query point in decimal degrees
  - radiusKm: Inclusive search radius in kilometres
  - limit: Maximum number of results

Returns:
  - []NearbyPlace: Matches sorted by ascending distance
  - error: Validation failure or repository error
*/
func (service *Service) Nearby(context context.Context, latitude, longitude, radiusKm float64, limit int) ([]NearbyPlace, error) {
	validator := &validate.Validator{}
	validator.Latitude("lat", latitude)
	validator.Longitude("lon", longitude)
	validator.Custom("radius", radiusKm <= 0, "Must be a positive number of kilometres")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultNearbyLimit
	}

	candidates, err := service.repo.ListCoordinates(context)
	if err != nil {
		return nil, err
	}

	scored := slice.Map(candidates, func(candidate *Place) NearbyPlace {
		return NearbyPlace{
			Place:      candidate,
			DistanceKm: geo.Distance(latitude, longitude, candidate.Latitude, candidate.Longitude),
		}
	})
	matches := slice.Filter(scored, func(match NearbyPlace) bool {
		return match.DistanceKm <= radiusKm
	})
	if matches == nil {
		matches = []NearbyPlace{}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// defaultNearbyLimit applies when the caller omits the limit parameter.
const defaultNearbyLimit = 20

// GetStats serves the grouped place statistics, reading through the Redis
// cache. A cold or unreachable cache falls back to the live aggregation; a
// failed cache write is logged but never surfaces to the caller.
func (service *Service) GetStats(context context.Context) (*Stats, error) {
	cached, err := service.cache.Get(context, constants.RedisPrefixPlaceStats).Result()
	if err == nil {
		stats := &Stats{}
		if unmarshalErr := json.Unmarshal([]byte(cached), stats); unmarshalErr == nil {
			return stats, nil
		}
		// Unreadable payload: treat as a miss and recompute.
	} else if !errors.Is(err, redis.Nil) {
		service.logger.Warn("stats cache read failed", slog.String("error", err.Error()))
	}

	stats, err := service.repo.Stats(context)
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(stats); marshalErr == nil {
		if setErr := service.cache.Set(context, constants.RedisPrefixPlaceStats, payload, service.statsTTL).Err(); setErr != nil {
			service.logger.Warn("stats cache write failed", slog.String("error", setErr.Error()))
		}
	}

	return stats, nil
}

// FlushStatsCache drops the cached statistics so the next read recomputes
// them. Exposed to operators for use after bulk imports.
func (service *Service) FlushStatsCache(context context.Context) error {
	if err := service.cache.Del(context, constants.RedisPrefixPlaceStats).Err(); err != nil {
		return err
	}
	service.logger.Info("place stats cache flushed")
	return nil
}

// CreatePlace validates and persists a new heritage place with its optional
// detail, features and media. Identity fields (id, slug) are generated when
// absent.
func (service *Service) CreatePlace(context context.Context, place *Place) error {
	validator := &validate.Validator{}
	validator.Required("name", place.Name).MaxLen("name", place.Name, 300)
	validator.Custom("anchor_kind", !place.AnchorKind.IsValid(), "Must be one of: wilaya, daira, commune, locality")
	validator.UUID("anchor_id", place.AnchorID)
	validator.UUID("wilaya_id", place.WilayaID)
	validator.Latitude("latitude", place.Latitude)
	validator.Longitude("longitude", place.Longitude)

	if place.Detail != nil {
		for _, feature := range place.Detail.Features {
			validator.Custom("features.kind", !feature.Kind.IsValid(), "Must be one of: monument, vestige")
			validator.Required("features.subtype", feature.Subtype)
			validator.Required("features.name", feature.Name)
		}
	}
	for _, media := range place.Media {
		validator.Custom("media.kind", !media.Kind.IsValid(), "Must be one of: photo, video, audio")
		validator.Required("media.url", media.URL)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if place.ID == "" {
		place.ID = uuid.New()
	}
	if place.Slug == "" {
		place.Slug = slug.From(place.Name)
	}

	return service.repo.Create(context, place)
}

// ListGallery returns a place's media, optionally restricted to one kind.
func (service *Service) ListGallery(context context.Context, placeID string, kind string) ([]Media, error) {
	if kind != "" && !MediaKind(kind).IsValid() {
		validator := &validate.Validator{}
		validator.Custom("kind", true, "Must be one of: photo, video, audio")
		return nil, validator.Err()
	}
	return service.repo.ListMedia(context, placeID, kind)
}
