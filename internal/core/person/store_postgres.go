// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package person

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

func (repository *PostgresRepository) List(context context.Context, search string, limit, offset int) ([]*Person, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, COALESCE(%s, ''), COALESCE(%s, ''), %s, %s,
			COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s IS NULL
	`,
		schema.CorePerson.ID, schema.CorePerson.FullName, schema.CorePerson.Slug,
		schema.CorePerson.BirthYear, schema.CorePerson.DeathYear,
		schema.CorePerson.Bio, schema.CorePerson.PhotoURL,
		schema.CorePerson.CreatedAt, schema.CorePerson.UpdatedAt,
		schema.CorePerson.Table,
		schema.CorePerson.DeletedAt,
	))

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s ILIKE '%%' || $%d || '%%'", schema.CorePerson.FullName, argID))
		args = append(args, search)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC", schema.CorePerson.FullName))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_people")
	}
	defer rows.Close()

	people := make([]*Person, 0)
	var totalCount int

	for rows.Next() {
		person := &Person{}
		err := rows.Scan(
			&person.ID, &person.FullName, &person.Slug,
			&person.BirthYear, &person.DeathYear,
			&person.Bio, &person.PhotoURL,
			&person.CreatedAt, &person.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_person")
		}
		people = append(people, person)
	}

	return people, totalCount, rows.Err()
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Person, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, COALESCE(%s, ''), COALESCE(%s, ''), %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CorePerson.ID, schema.CorePerson.FullName, schema.CorePerson.Slug,
		schema.CorePerson.BirthYear, schema.CorePerson.DeathYear,
		schema.CorePerson.Bio, schema.CorePerson.PhotoURL,
		schema.CorePerson.CreatedAt, schema.CorePerson.UpdatedAt,
		schema.CorePerson.Table,
		schema.CorePerson.ID, schema.CorePerson.DeletedAt,
	)

	person := &Person{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&person.ID, &person.FullName, &person.Slug,
		&person.BirthYear, &person.DeathYear,
		&person.Bio, &person.PhotoURL,
		&person.CreatedAt, &person.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_person")
	}

	return person, nil
}

func (repository *PostgresRepository) Create(context context.Context, person *Person) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))
		RETURNING %s, %s
	`,
		schema.CorePerson.Table,
		schema.CorePerson.ID, schema.CorePerson.FullName, schema.CorePerson.Slug,
		schema.CorePerson.BirthYear, schema.CorePerson.DeathYear,
		schema.CorePerson.Bio, schema.CorePerson.PhotoURL,
		schema.CorePerson.CreatedAt, schema.CorePerson.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		person.ID, person.FullName, person.Slug,
		person.BirthYear, person.DeathYear,
		person.Bio, person.PhotoURL,
	).Scan(&person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_person")
	}

	return nil
}

// ListContributions joins through core.contribution so callers get the work
// title without a second round-trip.
func (repository *PostgresRepository) ListContributions(context context.Context, personID string) ([]*Contribution, error) {
	query := fmt.Sprintf(`
		SELECT ct.%s, ct.%s, ct.%s, COALESCE(ct.%s, ''), ct.%s, COALESCE(ct.%s, ''), p.%s
		FROM %s ct
		JOIN %s p ON p.%s = ct.%s
		JOIN %s w ON w.%s = ct.%s
		WHERE ct.%s = $1 AND w.%s IS NULL
		ORDER BY w.%s DESC
	`,
		schema.Contribution.WorkID, schema.Contribution.PersonID, schema.Contribution.Role,
		schema.Contribution.CharacterName, schema.Contribution.IsPrincipal, schema.Contribution.Note,
		schema.CorePerson.FullName,
		schema.Contribution.Table,
		schema.CorePerson.Table, schema.CorePerson.ID, schema.Contribution.PersonID,
		schema.CoreWork.Table, schema.CoreWork.ID, schema.Contribution.WorkID,
		schema.Contribution.PersonID, schema.CoreWork.DeletedAt,
		schema.CoreWork.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, personID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contributions")
	}
	defer rows.Close()

	contributions := make([]*Contribution, 0)
	for rows.Next() {
		contribution := &Contribution{}
		err := rows.Scan(
			&contribution.WorkID, &contribution.PersonID, &contribution.Role,
			&contribution.CharacterName, &contribution.IsPrincipal, &contribution.Note,
			&contribution.PersonName,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_contribution")
		}
		contributions = append(contributions, contribution)
	}

	return contributions, rows.Err()
}
