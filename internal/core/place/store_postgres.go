// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package place

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/turathdz/turath/internal/platform/apperr"
	"github.com/turathdz/turath/internal/platform/database/schema"
	"github.com/turathdz/turath/internal/platform/dberr"
	"github.com/turathdz/turath/pkg/uuid"
)

// placeRepository implements [Repository] using pgx.
type placeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the PostgreSQL-backed place repository.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &placeRepository{pool: pool}
}

// List pages through active places. Filters compose as AND clauses; the
// subtype and with_events facets are EXISTS sub-queries so the page rows
// never fan out.
func (repository *placeRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Place, int, error) {

	var builder strings.Builder
	arguments := []any{}
	argID := 1

	builder.WriteString(fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s,
		       COUNT(*) OVER() AS total
		FROM %s p
		WHERE p.%s IS NULL
	`,
		schema.GeoPlace.ID, schema.GeoPlace.Name, schema.GeoPlace.Slug,
		schema.GeoPlace.AnchorKind, schema.GeoPlace.AnchorID, schema.GeoPlace.WilayaID,
		schema.GeoPlace.Latitude, schema.GeoPlace.Longitude,
		schema.GeoPlace.CreatedAt, schema.GeoPlace.UpdatedAt,
		schema.GeoPlace.Table,
		schema.GeoPlace.DeletedAt,
	))

	if filter.WilayaID != "" {
		builder.WriteString(fmt.Sprintf(" AND p.%s = $%d", schema.GeoPlace.WilayaID, argID))
		arguments = append(arguments, filter.WilayaID)
		argID++
	}

	if filter.Query != "" {
		builder.WriteString(fmt.Sprintf(" AND p.%s ILIKE '%%' || $%d || '%%'", schema.GeoPlace.Name, argID))
		arguments = append(arguments, filter.Query)
		argID++
	}

	if filter.Subtype != "" {
		builder.WriteString(fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM %s d
			JOIN %s f ON f.%s = d.%s
			WHERE d.%s = p.%s AND f.%s = $%d
		)`,
			schema.GeoPlaceDetail.Table,
			schema.GeoHeritageFeature.Table, schema.GeoHeritageFeature.DetailID, schema.GeoPlaceDetail.ID,
			schema.GeoPlaceDetail.PlaceID, schema.GeoPlace.ID,
			schema.GeoHeritageFeature.Subtype, argID,
		))
		arguments = append(arguments, filter.Subtype)
		argID++
	}

	if filter.WithEvents {
		builder.WriteString(fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM %s e
			WHERE e.%s = p.%s
			  AND e.%s IS NULL
			  AND COALESCE(e.%s, e.%s) >= NOW()
		)`,
			schema.CoreEvent.Table,
			schema.CoreEvent.PlaceID, schema.GeoPlace.ID,
			schema.CoreEvent.DeletedAt,
			schema.CoreEvent.EndsAt, schema.CoreEvent.StartsAt,
		))
	}

	builder.WriteString(fmt.Sprintf(" ORDER BY p.%s ASC", schema.GeoPlace.Name))
	builder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	arguments = append(arguments, limit, offset)

	rows, err := repository.pool.Query(context, builder.String(), arguments...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_places")
	}
	defer rows.Close()

	places := []*Place{}
	total := 0
	for rows.Next() {
		place := &Place{}
		err := rows.Scan(
			&place.ID, &place.Name, &place.Slug,
			&place.AnchorKind, &place.AnchorID, &place.WilayaID,
			&place.Latitude, &place.Longitude,
			&place.CreatedAt, &place.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan place row: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_places")
	}

	return places, total, nil
}

// FindByID loads the place row, then its optional heritage detail (with
// features) and gallery. A missing detail row is not an error: the place
// simply has no long-form description yet.
func (repository *placeRepository) FindByID(context context.Context, id string) (*Place, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.GeoPlace.ID, schema.GeoPlace.Name, schema.GeoPlace.Slug,
		schema.GeoPlace.AnchorKind, schema.GeoPlace.AnchorID, schema.GeoPlace.WilayaID,
		schema.GeoPlace.Latitude, schema.GeoPlace.Longitude,
		schema.GeoPlace.CreatedAt, schema.GeoPlace.UpdatedAt,
		schema.GeoPlace.Table,
		schema.GeoPlace.ID, schema.GeoPlace.DeletedAt,
	)

	place := &Place{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&place.ID, &place.Name, &place.Slug,
		&place.AnchorKind, &place.AnchorID, &place.WilayaID,
		&place.Latitude, &place.Longitude,
		&place.CreatedAt, &place.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("place")
		}
		return nil, dberr.Wrap(err, "find_place")
	}

	if err := repository.loadDetail(context, place); err != nil {
		return nil, err
	}

	media, err := repository.ListMedia(context, place.ID, "")
	if err != nil {
		return nil, err
	}
	place.Media = media

	return place, nil
}

// loadDetail attaches the heritage detail and its feature rows, if any.
func (repository *placeRepository) loadDetail(context context.Context, place *Place) error {

	query := fmt.Sprintf(`
		SELECT d.%s, COALESCE(d.%s, ''), COALESCE(d.%s, ''), d.%s
		FROM %s d
		WHERE d.%s = $1
	`,
		schema.GeoPlaceDetail.ID, schema.GeoPlaceDetail.Description,
		schema.GeoPlaceDetail.History, schema.GeoPlaceDetail.AvgRating,
		schema.GeoPlaceDetail.Table,
		schema.GeoPlaceDetail.PlaceID,
	)

	var detailID string
	detail := &HeritageDetail{}
	err := repository.pool.QueryRow(context, query, place.ID).Scan(
		&detailID, &detail.Description, &detail.History, &detail.AvgRating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return dberr.Wrap(err, "find_place_detail")
	}

	featureQuery := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.GeoHeritageFeature.Kind, schema.GeoHeritageFeature.Subtype, schema.GeoHeritageFeature.Name,
		schema.GeoHeritageFeature.Table,
		schema.GeoHeritageFeature.DetailID,
		schema.GeoHeritageFeature.Name,
	)

	rows, err := repository.pool.Query(context, featureQuery, detailID)
	if err != nil {
		return dberr.Wrap(err, "list_heritage_features")
	}
	defer rows.Close()

	detail.Features = []HeritageFeature{}
	for rows.Next() {
		feature := HeritageFeature{}
		if err := rows.Scan(&feature.Kind, &feature.Subtype, &feature.Name); err != nil {
			return fmt.Errorf("postgres: failed to scan heritage feature: %w", err)
		}
		detail.Features = append(detail.Features, feature)
	}
	if err := rows.Err(); err != nil {
		return dberr.Wrap(err, "list_heritage_features")
	}

	place.Detail = detail
	return nil
}

// Create writes the place, its optional detail with features, and its media
// atomically.
func (repository *placeRepository) Create(context context.Context, place *Place) error {

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s
	`,
		schema.GeoPlace.Table,
		schema.GeoPlace.ID, schema.GeoPlace.Name, schema.GeoPlace.Slug,
		schema.GeoPlace.AnchorKind, schema.GeoPlace.AnchorID, schema.GeoPlace.WilayaID,
		schema.GeoPlace.Latitude, schema.GeoPlace.Longitude,
		schema.GeoPlace.CreatedAt, schema.GeoPlace.UpdatedAt,
	)

	err = transaction.QueryRow(context, query,
		place.ID, place.Name, place.Slug,
		place.AnchorKind, place.AnchorID, place.WilayaID,
		place.Latitude, place.Longitude,
	).Scan(&place.CreatedAt, &place.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_place")
	}

	if place.Detail != nil {
		detailQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s)
			VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		`,
			schema.GeoPlaceDetail.Table,
			schema.GeoPlaceDetail.ID, schema.GeoPlaceDetail.PlaceID,
			schema.GeoPlaceDetail.Description, schema.GeoPlaceDetail.History,
		)

		detailID := uuid.New()
		if _, err := transaction.Exec(context, detailQuery, detailID, place.ID, place.Detail.Description, place.Detail.History); err != nil {
			return dberr.Wrap(err, "create_place_detail")
		}

		if len(place.Detail.Features) > 0 {
			featureQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)",
				schema.GeoHeritageFeature.Table,
				schema.GeoHeritageFeature.ID, schema.GeoHeritageFeature.DetailID,
				schema.GeoHeritageFeature.Kind, schema.GeoHeritageFeature.Subtype, schema.GeoHeritageFeature.Name,
			)
			batch := &pgx.Batch{}
			for _, feature := range place.Detail.Features {
				batch.Queue(featureQuery, uuid.New(), detailID, feature.Kind, feature.Subtype, feature.Name)
			}
			if err := transaction.SendBatch(context, batch).Close(); err != nil {
				return dberr.Wrap(err, "create_heritage_features")
			}
		}
	}

	if len(place.Media) > 0 {
		mediaQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, NULLIF($5, ''))",
			schema.GeoPlaceMedia.Table,
			schema.GeoPlaceMedia.ID, schema.GeoPlaceMedia.PlaceID,
			schema.GeoPlaceMedia.Kind, schema.GeoPlaceMedia.URL, schema.GeoPlaceMedia.Caption,
		)
		batch := &pgx.Batch{}
		for index := range place.Media {
			if place.Media[index].ID == "" {
				place.Media[index].ID = uuid.New()
			}
			batch.Queue(mediaQuery, place.Media[index].ID, place.ID,
				place.Media[index].Kind, place.Media[index].URL, place.Media[index].Caption)
		}
		if err := transaction.SendBatch(context, batch).Close(); err != nil {
			return dberr.Wrap(err, "create_place_media")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}
	return nil
}

// ListCoordinates returns every active place as identity plus coordinates.
// The proximity endpoint scores these in-process.
func (repository *placeRepository) ListCoordinates(context context.Context) ([]*Place, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.GeoPlace.ID, schema.GeoPlace.Name, schema.GeoPlace.Slug,
		schema.GeoPlace.WilayaID, schema.GeoPlace.Latitude, schema.GeoPlace.Longitude,
		schema.GeoPlace.Table,
		schema.GeoPlace.DeletedAt,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_place_coordinates")
	}
	defer rows.Close()

	places := []*Place{}
	for rows.Next() {
		place := &Place{}
		err := rows.Scan(&place.ID, &place.Name, &place.Slug,
			&place.WilayaID, &place.Latitude, &place.Longitude)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan coordinate row: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_place_coordinates")
	}

	return places, nil
}

// ListMedia returns the gallery rows for a place, oldest first.
func (repository *placeRepository) ListMedia(context context.Context, placeID string, kind string) ([]Media, error) {

	var builder strings.Builder
	arguments := []any{placeID}

	builder.WriteString(fmt.Sprintf(`
		SELECT %s, %s, %s, COALESCE(%s, ''), %s
		FROM %s
		WHERE %s = $1
	`,
		schema.GeoPlaceMedia.ID, schema.GeoPlaceMedia.Kind, schema.GeoPlaceMedia.URL,
		schema.GeoPlaceMedia.Caption, schema.GeoPlaceMedia.CreatedAt,
		schema.GeoPlaceMedia.Table,
		schema.GeoPlaceMedia.PlaceID,
	))

	if kind != "" {
		builder.WriteString(fmt.Sprintf(" AND %s = $2", schema.GeoPlaceMedia.Kind))
		arguments = append(arguments, kind)
	}

	builder.WriteString(fmt.Sprintf(" ORDER BY %s ASC", schema.GeoPlaceMedia.CreatedAt))

	rows, err := repository.pool.Query(context, builder.String(), arguments...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_place_media")
	}
	defer rows.Close()

	gallery := []Media{}
	for rows.Next() {
		media := Media{}
		if err := rows.Scan(&media.ID, &media.Kind, &media.URL, &media.Caption, &media.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan media row: %w", err)
		}
		gallery = append(gallery, media)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_place_media")
	}

	return gallery, nil
}

// Stats aggregates active places per wilaya and heritage features per
// subtype, most numerous first.
func (repository *placeRepository) Stats(context context.Context) (*Stats, error) {

	stats := &Stats{
		ByWilaya:  []WilayaCount{},
		BySubtype: []SubtypeCount{},
	}

	wilayaQuery := fmt.Sprintf(`
		SELECT w.%s, w.%s, COUNT(*) AS total
		FROM %s p
		JOIN %s w ON w.%s = p.%s
		WHERE p.%s IS NULL
		GROUP BY w.%s, w.%s
		ORDER BY total DESC, w.%s ASC
	`,
		schema.GeoWilaya.ID, schema.GeoWilaya.Name,
		schema.GeoPlace.Table,
		schema.GeoWilaya.Table, schema.GeoWilaya.ID, schema.GeoPlace.WilayaID,
		schema.GeoPlace.DeletedAt,
		schema.GeoWilaya.ID, schema.GeoWilaya.Name,
		schema.GeoWilaya.Name,
	)

	rows, err := repository.pool.Query(context, wilayaQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "place_stats_by_wilaya")
	}
	defer rows.Close()

	for rows.Next() {
		count := WilayaCount{}
		if err := rows.Scan(&count.WilayaID, &count.Name, &count.Count); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan wilaya count: %w", err)
		}
		stats.ByWilaya = append(stats.ByWilaya, count)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "place_stats_by_wilaya")
	}

	subtypeQuery := fmt.Sprintf(`
		SELECT f.%s, COUNT(*) AS total
		FROM %s f
		JOIN %s d ON d.%s = f.%s
		JOIN %s p ON p.%s = d.%s
		WHERE p.%s IS NULL
		GROUP BY f.%s
		ORDER BY total DESC, f.%s ASC
	`,
		schema.GeoHeritageFeature.Subtype,
		schema.GeoHeritageFeature.Table,
		schema.GeoPlaceDetail.Table, schema.GeoPlaceDetail.ID, schema.GeoHeritageFeature.DetailID,
		schema.GeoPlace.Table, schema.GeoPlace.ID, schema.GeoPlaceDetail.PlaceID,
		schema.GeoPlace.DeletedAt,
		schema.GeoHeritageFeature.Subtype,
		schema.GeoHeritageFeature.Subtype,
	)

	subtypeRows, err := repository.pool.Query(context, subtypeQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "place_stats_by_subtype")
	}
	defer subtypeRows.Close()

	for subtypeRows.Next() {
		count := SubtypeCount{}
		if err := subtypeRows.Scan(&count.Subtype, &count.Count); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan subtype count: %w", err)
		}
		stats.BySubtype = append(stats.BySubtype, count)
	}
	if err := subtypeRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "place_stats_by_subtype")
	}

	return stats, nil
}
