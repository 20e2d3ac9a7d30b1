// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package place

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turathdz/turath/internal/platform/apperr"
	"github.com/turathdz/turath/pkg/geo"
	"github.com/turathdz/turath/pkg/uuid"
)

// fakeRepository serves canned coordinate rows and records creates, which
// is all the proximity and registration tests need.
type fakeRepository struct {
	coordinates []*Place
	created     *Place
}

func (f *fakeRepository) List(context.Context, Filter, int, int) ([]*Place, int, error) {
	return nil, 0, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Place, error) {
	for _, place := range f.coordinates {
		if place.ID == id {
			return place, nil
		}
	}
	return nil, apperr.NotFound("place")
}

func (f *fakeRepository) Create(_ context.Context, place *Place) error {
	f.created = place
	return nil
}

func (f *fakeRepository) ListCoordinates(context.Context) ([]*Place, error) {
	return f.coordinates, nil
}

func (f *fakeRepository) ListMedia(context.Context, string, string) ([]Media, error) {
	return []Media{}, nil
}

func (f *fakeRepository) Stats(context.Context) (*Stats, error) {
	return &Stats{}, nil
}

func newTestService(repo Repository) *Service {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	return NewService(repo, nil, nil, 0, logger)
}

// Reference coordinates used across the proximity tests.
var (
	algiersCasbah = &Place{ID: uuid.New(), Name: "Casbah d'Alger", Latitude: 36.7838, Longitude: 3.0606}
	tipasaRuins   = &Place{ID: uuid.New(), Name: "Tipasa", Latitude: 36.5942, Longitude: 2.4433}
	constantine   = &Place{ID: uuid.New(), Name: "Pont Sidi M'Cid", Latitude: 36.3686, Longitude: 6.6147}
	timgad        = &Place{ID: uuid.New(), Name: "Timgad", Latitude: 35.4847, Longitude: 6.4686}
)

func TestNearby_AlgiersOrdering(t *testing.T) {
	repo := &fakeRepository{coordinates: []*Place{timgad, constantine, tipasaRuins, algiersCasbah}}
	service := newTestService(repo)

	// Query from central Algiers: the Casbah is a stone's throw away,
	// Tipasa about 60 km west, everything else far outside the radius.
	matches, err := service.Nearby(context.Background(), 36.7754, 3.0588, 120, 10)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, algiersCasbah.ID, matches[0].Place.ID)
	assert.Equal(t, tipasaRuins.ID, matches[1].Place.ID)
	assert.Less(t, matches[0].DistanceKm, matches[1].DistanceKm)
}

func TestNearby_ZeroDistanceIncluded(t *testing.T) {
	repo := &fakeRepository{coordinates: []*Place{algiersCasbah}}
	service := newTestService(repo)

	// Querying from the candidate's exact coordinates must not drop it to
	// floating-point noise in the arccosine argument.
	matches, err := service.Nearby(context.Background(), algiersCasbah.Latitude, algiersCasbah.Longitude, 1, 10)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, float64(0), matches[0].DistanceKm)
}

func TestNearby_RadiusIsInclusive(t *testing.T) {
	repo := &fakeRepository{coordinates: []*Place{tipasaRuins}}
	service := newTestService(repo)

	// A candidate sitting exactly on the boundary stays in the result.
	exact := geo.Distance(36.7754, 3.0588, tipasaRuins.Latitude, tipasaRuins.Longitude)
	matches, err := service.Nearby(context.Background(), 36.7754, 3.0588, exact, 10)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, tipasaRuins.ID, matches[0].Place.ID)
}

func TestNearby_LimitTruncates(t *testing.T) {
	repo := &fakeRepository{coordinates: []*Place{timgad, constantine, tipasaRuins, algiersCasbah}}
	service := newTestService(repo)

	matches, err := service.Nearby(context.Background(), 36.7754, 3.0588, 10000, 2)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, algiersCasbah.ID, matches[0].Place.ID)
	assert.Equal(t, tipasaRuins.ID, matches[1].Place.ID)
}

func TestNearby_ValidatesCoordinates(t *testing.T) {
	service := newTestService(&fakeRepository{})

	_, err := service.Nearby(context.Background(), 95, 3.0588, 50, 10)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.Nearby(context.Background(), 36.77, 3.05, -1, 10)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestCreatePlace_GeneratesIdentity(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	place := &Place{
		Name:       "Mausolée Royal de Maurétanie",
		AnchorKind: AnchorCommune,
		AnchorID:   uuid.New(),
		WilayaID:   uuid.New(),
		Latitude:   36.5744,
		Longitude:  2.5542,
		Detail: &HeritageDetail{
			Description: "Tombeau circulaire numide",
			Features: []HeritageFeature{
				{Kind: FeatureMonument, Subtype: "mausolee", Name: "Tombeau de la Chrétienne"},
			},
		},
	}

	require.NoError(t, service.CreatePlace(context.Background(), place))
	require.NotNil(t, repo.created)
	assert.NotEmpty(t, repo.created.ID)
	assert.Equal(t, "mausolee-royal-de-mauretanie", repo.created.Slug)
}

func TestCreatePlace_RejectsBadAnchorAndFeatures(t *testing.T) {
	service := newTestService(&fakeRepository{})

	err := service.CreatePlace(context.Background(), &Place{
		Name:       "Site sans ancrage valide",
		AnchorKind: AnchorKind("region"),
		AnchorID:   uuid.New(),
		WilayaID:   uuid.New(),
		Latitude:   36.0,
		Longitude:  3.0,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	err = service.CreatePlace(context.Background(), &Place{
		Name:       "Site avec vestige anonyme",
		AnchorKind: AnchorWilaya,
		AnchorID:   uuid.New(),
		WilayaID:   uuid.New(),
		Latitude:   36.0,
		Longitude:  3.0,
		Detail: &HeritageDetail{
			Features: []HeritageFeature{{Kind: FeatureVestige, Subtype: "ruine_romaine", Name: ""}},
		},
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestListGallery_RejectsUnknownKind(t *testing.T) {
	service := newTestService(&fakeRepository{})

	_, err := service.ListGallery(context.Background(), uuid.New(), "hologram")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
