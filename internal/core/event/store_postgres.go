// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/turathdz/turath/internal/platform/database/schema"
	"github.com/turathdz/turath/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListUpcoming treats an event as upcoming while its end (or its start,
// when open-ended) is still in the future.
func (repository *PostgresRepository) ListUpcoming(context context.Context, placeID string, limit, offset int) ([]*Event, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, %s, %s, COALESCE(%s, ''), %s, %s, %s, COALESCE(%s, ''), %s, %s, %s,
			COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s IS NULL AND COALESCE(%s, %s) >= NOW()
	`,
		schema.CoreEvent.ID, schema.CoreEvent.Title, schema.CoreEvent.Slug, schema.CoreEvent.Description,
		schema.CoreEvent.StartsAt, schema.CoreEvent.EndsAt, schema.CoreEvent.PlaceID, schema.CoreEvent.Location,
		schema.CoreEvent.CreatedBy, schema.CoreEvent.CreatedAt, schema.CoreEvent.UpdatedAt,
		schema.CoreEvent.Table,
		schema.CoreEvent.DeletedAt, schema.CoreEvent.EndsAt, schema.CoreEvent.StartsAt,
	))

	if placeID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.CoreEvent.PlaceID, argID))
		args = append(args, placeID)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC", schema.CoreEvent.StartsAt))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_upcoming_events")
	}
	defer rows.Close()

	events := make([]*Event, 0)
	var totalCount int

	for rows.Next() {
		event := &Event{}
		err := rows.Scan(
			&event.ID, &event.Title, &event.Slug, &event.Description,
			&event.StartsAt, &event.EndsAt, &event.PlaceID, &event.Location,
			&event.CreatedBy, &event.CreatedAt, &event.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_event")
		}
		events = append(events, event)
	}

	return events, totalCount, rows.Err()
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Event, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, COALESCE(%s, ''), %s, %s, %s, COALESCE(%s, ''), %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CoreEvent.ID, schema.CoreEvent.Title, schema.CoreEvent.Slug, schema.CoreEvent.Description,
		schema.CoreEvent.StartsAt, schema.CoreEvent.EndsAt, schema.CoreEvent.PlaceID, schema.CoreEvent.Location,
		schema.CoreEvent.CreatedBy, schema.CoreEvent.CreatedAt, schema.CoreEvent.UpdatedAt,
		schema.CoreEvent.Table,
		schema.CoreEvent.ID, schema.CoreEvent.DeletedAt,
	)

	event := &Event{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&event.ID, &event.Title, &event.Slug, &event.Description,
		&event.StartsAt, &event.EndsAt, &event.PlaceID, &event.Location,
		&event.CreatedBy, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_event")
	}

	return event, nil
}

func (repository *PostgresRepository) Create(context context.Context, event *Event) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), $9)
		RETURNING %s, %s
	`,
		schema.CoreEvent.Table,
		schema.CoreEvent.ID, schema.CoreEvent.Title, schema.CoreEvent.Slug, schema.CoreEvent.Description,
		schema.CoreEvent.StartsAt, schema.CoreEvent.EndsAt, schema.CoreEvent.PlaceID, schema.CoreEvent.Location,
		schema.CoreEvent.CreatedBy,
		schema.CoreEvent.CreatedAt, schema.CoreEvent.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		event.ID, event.Title, event.Slug, event.Description,
		event.StartsAt, event.EndsAt, event.PlaceID, event.Location,
		event.CreatedBy,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_event")
	}

	return nil
}

func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s IS NULL)`,
		schema.CoreEvent.Table, schema.CoreEvent.ID, schema.CoreEvent.DeletedAt)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "event_exists")
	}
	return exists, nil
}
