// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

/*
Package work provides the PostgreSQL implementation for the catalogue's
data access.

It leans on a few Postgres features to keep reads to one round-trip:
  - JSON Aggregation: categories, tags, publishers and contributors come
    back as json_agg sub-selects on the root row.
  - Window Functions: COUNT(*) OVER() returns list totals without a second
    COUNT query.
  - ACID Transactions: a work, its specialization variant and all its
    classification edges are written atomically.

The repository follows an aggregate pattern: the specialization variant and
the junction edges are only reachable through the work that owns them.
*/
package work

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/turathdz/turath/internal/platform/apperr"
	"github.com/turathdz/turath/internal/platform/database/schema"
	"github.com/turathdz/turath/internal/platform/dberr"
	"github.com/turathdz/turath/pkg/slug"
)

// workRepository implements the [Repository] interface using pgx.
type workRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed work store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &workRepository{pool: pool}
}

/*
List returns a filtered, paginated slice of works and the total count.

Description: Builds the WHERE clause dynamically with positional arguments;
every value crosses the wire as a bind parameter, identifiers come from the
schema package. When a free-text query is present the ordering is two-tier:
rows whose title contains the query (case-insensitive) rank before rows that
only match on description, and each tier is newest-first. The tier CASE is
parameterized — the user's text is never interpolated into the SQL.

Parameters:
  - context: context.Context
  - filter: Filter (Facets, free-text query, status)
  - limit: int
  - offset: int

Returns:
  - []*Work: Matching works with categories and tags hydrated
  - int: Total count matching the filter
  - error: Database execution errors
*/
func (repository *workRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Work, int, error) {

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, COALESCE(w.%s, ''),
			w.%s, w.%s, w.%s, w.%s, w.%s,
			w.%s, w.%s,
			COUNT(*) OVER() AS total_count,
			COALESCE((
				SELECT json_agg(json_build_object('id', c.%s, 'name', c.%s, 'slug', c.%s))
				FROM %s c
				JOIN %s wc ON c.%s = wc.%s
				WHERE wc.%s = w.%s
			), '[]') AS categories,
			COALESCE((
				SELECT json_agg(json_build_object('id', t.%s, 'name', t.%s, 'slug', t.%s))
				FROM %s t
				JOIN %s wt ON t.%s = wt.%s
				WHERE wt.%s = w.%s
			), '[]') AS tags
		FROM %s w
		WHERE w.%s IS NULL
	`,
		schema.CoreWork.ID, schema.CoreWork.Title, schema.CoreWork.Slug,
		schema.CoreWork.Kind, schema.CoreWork.LanguageCode, schema.CoreWork.Year, schema.CoreWork.Description,
		schema.CoreWork.CreatedBy, schema.CoreWork.Status,
		schema.CoreWork.ValidatedBy, schema.CoreWork.ValidatedAt, schema.CoreWork.RejectionReason,
		schema.CoreWork.CreatedAt, schema.CoreWork.UpdatedAt,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Slug,
		schema.RefCategory.Table,
		schema.WorkCategory.Table, schema.RefCategory.ID, schema.WorkCategory.CategoryID,
		schema.WorkCategory.WorkID, schema.CoreWork.ID,
		schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug,
		schema.RefTag.Table,
		schema.WorkTag.Table, schema.RefTag.ID, schema.WorkTag.TagID,
		schema.WorkTag.WorkID, schema.CoreWork.ID,
		schema.CoreWork.Table,
		schema.CoreWork.DeletedAt,
	))

	// Kind
	if filter.Kind != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = $%d", schema.CoreWork.Kind, argID))
		args = append(args, filter.Kind)
		argID++
	}

	// Moderation status
	if len(filter.Status) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d)", schema.CoreWork.Status, argID))
		args = append(args, filter.Status)
		argID++
	}

	// Language
	if filter.Language != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = $%d", schema.CoreWork.LanguageCode, argID))
		args = append(args, filter.Language)
		argID++
	}

	// Year range, inclusive on both ends
	if filter.YearFrom != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s >= $%d", schema.CoreWork.Year, argID))
		args = append(args, *filter.YearFrom)
		argID++
	}
	if filter.YearTo != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s <= $%d", schema.CoreWork.Year, argID))
		args = append(args, *filter.YearTo)
		argID++
	}

	// Category edge
	if filter.CategoryID != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s wc WHERE wc.%s = w.%s AND wc.%s = $%d)",
			schema.WorkCategory.Table, schema.WorkCategory.WorkID, schema.CoreWork.ID,
			schema.WorkCategory.CategoryID, argID))
		args = append(args, filter.CategoryID)
		argID++
	}

	// Tag edge
	if filter.TagID != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s wt WHERE wt.%s = w.%s AND wt.%s = $%d)",
			schema.WorkTag.Table, schema.WorkTag.WorkID, schema.CoreWork.ID,
			schema.WorkTag.TagID, argID))
		args = append(args, filter.TagID)
		argID++
	}

	// Contributor edge
	if filter.PersonID != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s ct WHERE ct.%s = w.%s AND ct.%s = $%d)",
			schema.Contribution.Table, schema.Contribution.WorkID, schema.CoreWork.ID,
			schema.Contribution.PersonID, argID))
		args = append(args, filter.PersonID)
		argID++
	}

	// Free-text containment over title and description, plus the two-tier
	// relevance ordering on the same bind parameter.
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (w.%s ILIKE '%%' || $%d || '%%' OR w.%s ILIKE '%%' || $%d || '%%')",
			schema.CoreWork.Title, argID, schema.CoreWork.Description, argID))
		queryBuilder.WriteString(fmt.Sprintf(
			" ORDER BY CASE WHEN w.%s ILIKE '%%' || $%d || '%%' THEN 0 ELSE 1 END, w.%s DESC",
			schema.CoreWork.Title, argID, schema.CoreWork.CreatedAt))
		args = append(args, filter.Query)
		argID++
	} else {
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY w.%s DESC", schema.CoreWork.CreatedAt))
	}

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list works: %w", err)
	}
	defer rows.Close()

	works := make([]*Work, 0)
	var totalCount int

	for rows.Next() {
		work := &Work{}
		var categoriesJSON, tagsJSON []byte
		err := rows.Scan(
			&work.ID, &work.Title, &work.Slug,
			&work.Kind, &work.LanguageCode, &work.Year, &work.Description,
			&work.CreatedBy, &work.Status,
			&work.ValidatedBy, &work.ValidatedAt, &work.RejectionReason,
			&work.CreatedAt, &work.UpdatedAt,
			&totalCount,
			&categoriesJSON, &tagsJSON,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan work: %w", err)
		}

		if err := json.Unmarshal(categoriesJSON, &work.Categories); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to unmarshal categories: %w", err)
		}
		if err := json.Unmarshal(tagsJSON, &work.Tags); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to unmarshal tags: %w", err)
		}

		works = append(works, work)
	}

	return works, totalCount, rows.Err()
}

/*
FindByID retrieves the fully hydrated work aggregate.

Description: One root query brings back the core row plus four json_agg
sub-selects (categories, tags, publishers with their names, contributors
with their names). The specialization variant is then loaded with a single
keyed lookup against the table the work's kind selects; a missing variant
row leaves Specialization nil.

Parameters:
  - context: context.Context
  - id: string (UUID primary key)

Returns:
  - *Work: The hydrated aggregate, or nil with apperr.NotFound
  - error: apperr.NotFound or internal failures
*/
func (repository *workRepository) FindByID(context context.Context, id string) (*Work, error) {

	query := fmt.Sprintf(`
		SELECT
			w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, COALESCE(w.%s, ''),
			w.%s, w.%s, w.%s, w.%s, w.%s,
			w.%s, w.%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', c.%s, 'name', c.%s, 'slug', c.%s))
				FROM %s c
				JOIN %s wc ON c.%s = wc.%s
				WHERE wc.%s = w.%s
			), '[]') AS categories,
			COALESCE((
				SELECT json_agg(json_build_object('id', t.%s, 'name', t.%s, 'slug', t.%s))
				FROM %s t
				JOIN %s wt ON t.%s = wt.%s
				WHERE wt.%s = w.%s
			), '[]') AS tags,
			COALESCE((
				SELECT json_agg(json_build_object('publisher_id', p.%s, 'role', wp.%s, 'name', p.%s))
				FROM %s p
				JOIN %s wp ON p.%s = wp.%s
				WHERE wp.%s = w.%s
			), '[]') AS publishers,
			COALESCE((
				SELECT json_agg(json_build_object(
					'person_id', ct.%s, 'role', ct.%s,
					'character_name', COALESCE(ct.%s, ''), 'is_principal', ct.%s,
					'note', COALESCE(ct.%s, ''), 'person_name', pe.%s))
				FROM %s ct
				JOIN %s pe ON pe.%s = ct.%s
				WHERE ct.%s = w.%s
			), '[]') AS contributors
		FROM %s w
		WHERE w.%s = $1 AND w.%s IS NULL
	`,
		schema.CoreWork.ID, schema.CoreWork.Title, schema.CoreWork.Slug,
		schema.CoreWork.Kind, schema.CoreWork.LanguageCode, schema.CoreWork.Year, schema.CoreWork.Description,
		schema.CoreWork.CreatedBy, schema.CoreWork.Status,
		schema.CoreWork.ValidatedBy, schema.CoreWork.ValidatedAt, schema.CoreWork.RejectionReason,
		schema.CoreWork.CreatedAt, schema.CoreWork.UpdatedAt,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Slug,
		schema.RefCategory.Table,
		schema.WorkCategory.Table, schema.RefCategory.ID, schema.WorkCategory.CategoryID,
		schema.WorkCategory.WorkID, schema.CoreWork.ID,
		schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug,
		schema.RefTag.Table,
		schema.WorkTag.Table, schema.RefTag.ID, schema.WorkTag.TagID,
		schema.WorkTag.WorkID, schema.CoreWork.ID,
		schema.RefPublisher.ID, schema.WorkPublisher.Role, schema.RefPublisher.Name,
		schema.RefPublisher.Table,
		schema.WorkPublisher.Table, schema.RefPublisher.ID, schema.WorkPublisher.PublisherID,
		schema.WorkPublisher.WorkID, schema.CoreWork.ID,
		schema.Contribution.PersonID, schema.Contribution.Role,
		schema.Contribution.CharacterName, schema.Contribution.IsPrincipal,
		schema.Contribution.Note, schema.CorePerson.FullName,
		schema.Contribution.Table,
		schema.CorePerson.Table, schema.CorePerson.ID, schema.Contribution.PersonID,
		schema.Contribution.WorkID, schema.CoreWork.ID,
		schema.CoreWork.Table,
		schema.CoreWork.ID, schema.CoreWork.DeletedAt,
	)

	work := &Work{}
	var categoriesJSON, tagsJSON, publishersJSON, contributorsJSON []byte

	err := repository.pool.QueryRow(context, query, id).Scan(
		&work.ID, &work.Title, &work.Slug,
		&work.Kind, &work.LanguageCode, &work.Year, &work.Description,
		&work.CreatedBy, &work.Status,
		&work.ValidatedBy, &work.ValidatedAt, &work.RejectionReason,
		&work.CreatedAt, &work.UpdatedAt,
		&categoriesJSON, &tagsJSON, &publishersJSON, &contributorsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("work")
		}
		return nil, fmt.Errorf("postgres: failed to find work by id: %w", err)
	}

	if err := json.Unmarshal(categoriesJSON, &work.Categories); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal categories: %w", err)
	}
	if err := json.Unmarshal(tagsJSON, &work.Tags); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal tags: %w", err)
	}
	if err := json.Unmarshal(publishersJSON, &work.Publishers); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal publishers: %w", err)
	}
	if err := json.Unmarshal(contributorsJSON, &work.Contributors); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal contributors: %w", err)
	}

	spec, err := repository.loadSpecialization(context, work.ID, work.Kind)
	if err != nil {
		return nil, err
	}
	work.Specialization = spec

	return work, nil
}

/*
Create persists a new work, its specialization variant and all its
classification edges atomically.

Description: Runs inside a single transaction. Tag names are resolved to
ids inside the same transaction with the slug upsert, so the whole write —
core row, variant row, category/tag/publisher/contributor edges — either
commits together or rolls back together.

Parameters:
  - context: context.Context
  - work: *Work

Returns:
  - error: nil on commit, or the wrapped SQL failure
*/
func (repository *workRepository) Create(context context.Context, work *Work) error {

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)
		RETURNING %s, %s
	`,
		schema.CoreWork.Table,
		schema.CoreWork.ID, schema.CoreWork.Title, schema.CoreWork.Slug,
		schema.CoreWork.Kind, schema.CoreWork.LanguageCode, schema.CoreWork.Year,
		schema.CoreWork.Description, schema.CoreWork.CreatedBy, schema.CoreWork.Status,
		schema.CoreWork.CreatedAt, schema.CoreWork.UpdatedAt,
	)

	err = transaction.QueryRow(context, query,
		work.ID, work.Title, work.Slug,
		work.Kind, work.LanguageCode, work.Year,
		work.Description, work.CreatedBy, work.Status,
	).Scan(&work.CreatedAt, &work.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_work")
	}

	if work.Specialization != nil {
		if err := repository.insertSpecialization(context, transaction, work.ID, work.Specialization); err != nil {
			return err
		}
	}

	if err := repository.writeEdges(context, transaction, work, false); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}
	return nil
}

/*
Update patches the work's mutable columns and replaces its classification
edges wholesale.

Description: The SET block is built dynamically from the non-zero fields.
Junction sets the caller supplied (non-nil slices) are replaced with a
delete-then-batch-insert inside the same transaction; contributor inserts on
this path carry ON CONFLICT DO NOTHING so re-sending an existing
{work, person, role} edge is an idempotent no-op. A supplied specialization
replaces the variant row.

Parameters:
  - context: context.Context
  - work: *Work (Target id plus modified attributes)

Returns:
  - error: apperr.NotFound if the row is missing, or execution failures
*/
func (repository *workRepository) Update(context context.Context, work *Work) error {

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", schema.CoreWork.Table, schema.CoreWork.UpdatedAt))

	var args []any
	argID := 1

	if work.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreWork.Title, argID))
		args = append(args, work.Title)
		argID++
	}
	if work.Slug != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreWork.Slug, argID))
		args = append(args, work.Slug)
		argID++
	}
	if work.LanguageCode != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreWork.LanguageCode, argID))
		args = append(args, work.LanguageCode)
		argID++
	}
	if work.Year != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreWork.Year, argID))
		args = append(args, *work.Year)
		argID++
	}
	if work.Description != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreWork.Description, argID))
		args = append(args, work.Description)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d AND %s IS NULL", schema.CoreWork.ID, argID, schema.CoreWork.DeletedAt))
	args = append(args, work.ID)

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: update transaction begin failed: %w", err)
	}
	defer transaction.Rollback(context)

	response, err := transaction.Exec(context, queryBuilder.String(), args...)
	if err != nil {
		return dberr.Wrap(err, "update_work")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound("work")
	}

	if work.Specialization != nil {
		if err := repository.deleteSpecialization(context, transaction, work.ID, work.Kind); err != nil {
			return err
		}
		if err := repository.insertSpecialization(context, transaction, work.ID, work.Specialization); err != nil {
			return err
		}
	}

	if err := repository.writeEdges(context, transaction, work, true); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: update transaction commit failed: %w", err)
	}
	return nil
}

// SoftDelete stamps deleted_at. The moderation status column is untouched:
// a deleted work keeps whatever lifecycle state it died in.
func (repository *workRepository) SoftDelete(context context.Context, id string) error {
	query := fmt.Sprintf("UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL",
		schema.CoreWork.Table, schema.CoreWork.DeletedAt, schema.CoreWork.ID, schema.CoreWork.DeletedAt)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete work: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("work")
	}
	return nil
}

// UpdateStatus overwrites the moderation status without touching the
// validation trail.
func (repository *workRepository) UpdateStatus(context context.Context, id string, status Status) error {
	query := fmt.Sprintf("UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2 AND %s IS NULL",
		schema.CoreWork.Table, schema.CoreWork.Status, schema.CoreWork.UpdatedAt,
		schema.CoreWork.ID, schema.CoreWork.DeletedAt)

	result, err := repository.pool.Exec(context, query, status, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to update work status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("work")
	}
	return nil
}

/*
Moderate applies a review decision.

Description: Always stamps the validator identity and timestamp. The
rejection reason is written through COALESCE($n, rejectionreason): a nil
reason leaves the previously stored reason exactly as it was.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - status: Status (publie or rejete; the service enforces this)
  - validatorID: string
  - reason: *string

Returns:
  - error: apperr.NotFound if the row is missing
*/
func (repository *workRepository) Moderate(context context.Context, id string, status Status, validatorID string, reason *string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $1,
			%s = $2,
			%s = NOW(),
			%s = COALESCE($3, %s),
			%s = NOW()
		WHERE %s = $4 AND %s IS NULL
	`,
		schema.CoreWork.Table,
		schema.CoreWork.Status,
		schema.CoreWork.ValidatedBy,
		schema.CoreWork.ValidatedAt,
		schema.CoreWork.RejectionReason, schema.CoreWork.RejectionReason,
		schema.CoreWork.UpdatedAt,
		schema.CoreWork.ID, schema.CoreWork.DeletedAt,
	)

	result, err := repository.pool.Exec(context, query, status, validatorID, reason, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to moderate work: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("work")
	}
	return nil
}

// # Specialization Variants

// loadSpecialization fetches the variant row the kind selects. A missing
// row is not an error; drafts legitimately have no variant.
func (repository *workRepository) loadSpecialization(context context.Context, workID string, kind Kind) (*Specialization, error) {
	spec := &Specialization{Kind: kind}
	var err error

	switch kind {
	case KindBook:
		detail := &BookDetail{}
		query := fmt.Sprintf("SELECT COALESCE(%s, ''), %s FROM %s WHERE %s = $1",
			schema.CoreBook.ISBN, schema.CoreBook.PageCount, schema.CoreBook.Table, schema.CoreBook.WorkID)
		err = repository.pool.QueryRow(context, query, workID).Scan(&detail.ISBN, &detail.PageCount)
		spec.Book = detail
	case KindFilm:
		detail := &FilmDetail{}
		query := fmt.Sprintf("SELECT %s, COALESCE(%s, '') FROM %s WHERE %s = $1",
			schema.CoreFilm.DurationMin, schema.CoreFilm.Director, schema.CoreFilm.Table, schema.CoreFilm.WorkID)
		err = repository.pool.QueryRow(context, query, workID).Scan(&detail.DurationMin, &detail.Director)
		spec.Film = detail
	case KindAlbum:
		detail := &AlbumDetail{}
		query := fmt.Sprintf("SELECT %s, COALESCE(%s, ''), COALESCE(%s, '') FROM %s WHERE %s = $1",
			schema.CoreAlbum.DurationMin, schema.CoreAlbum.Genre, schema.CoreAlbum.Label,
			schema.CoreAlbum.Table, schema.CoreAlbum.WorkID)
		err = repository.pool.QueryRow(context, query, workID).Scan(&detail.DurationMin, &detail.Genre, &detail.Label)
		spec.Album = detail
	case KindArticle:
		detail := &ArticleDetail{}
		query := fmt.Sprintf("SELECT COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), %s, COALESCE(%s, ''), COALESCE(%s, '') FROM %s WHERE %s = $1",
			schema.CoreArticle.AuthorName, schema.CoreArticle.Source, schema.CoreArticle.ArticleKind,
			schema.CoreArticle.PublishedAt, schema.CoreArticle.Credibility, schema.CoreArticle.Body,
			schema.CoreArticle.Table, schema.CoreArticle.WorkID)
		err = repository.pool.QueryRow(context, query, workID).Scan(
			&detail.AuthorName, &detail.Source, &detail.ArticleKind,
			&detail.PublishedAt, &detail.Credibility, &detail.Body)
		spec.Article = detail
	case KindScientificArticle:
		detail := &ScientificArticleDetail{}
		query := fmt.Sprintf("SELECT COALESCE(%s, ''), COALESCE(%s, ''), %s, %s FROM %s WHERE %s = $1",
			schema.CoreSciArticle.Journal, schema.CoreSciArticle.DOI,
			schema.CoreSciArticle.PeerReviewed, schema.CoreSciArticle.OpenAccess,
			schema.CoreSciArticle.Table, schema.CoreSciArticle.WorkID)
		err = repository.pool.QueryRow(context, query, workID).Scan(
			&detail.Journal, &detail.DOI, &detail.PeerReviewed, &detail.OpenAccess)
		spec.SciArticle = detail
	case KindCraft:
		detail := &CraftDetail{}
		query := fmt.Sprintf("SELECT %s, %s, COALESCE(%s, ''), %s, %s FROM %s WHERE %s = $1",
			schema.CoreCraft.MaterialID, schema.CoreCraft.TechniqueID, schema.CoreCraft.Dimensions,
			schema.CoreCraft.WeightG, schema.CoreCraft.Price,
			schema.CoreCraft.Table, schema.CoreCraft.WorkID)
		err = repository.pool.QueryRow(context, query, workID).Scan(
			&detail.MaterialID, &detail.TechniqueID, &detail.Dimensions,
			&detail.WeightG, &detail.Price)
		spec.Craft = detail
	case KindArtPiece:
		detail := &ArtPieceDetail{}
		query := fmt.Sprintf("SELECT COALESCE(%s, ''), COALESCE(%s, '') FROM %s WHERE %s = $1",
			schema.CoreArtPiece.Technique, schema.CoreArtPiece.Support,
			schema.CoreArtPiece.Table, schema.CoreArtPiece.WorkID)
		err = repository.pool.QueryRow(context, query, workID).Scan(&detail.Technique, &detail.Support)
		spec.ArtPiece = detail
	default:
		return nil, nil
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres: failed to load specialization: %w", err)
	}
	return spec, nil
}

// insertSpecialization writes the variant row the union carries. The UNIQUE
// constraint on workid enforces the at-most-one invariant at the database.
func (repository *workRepository) insertSpecialization(context context.Context, transaction pgx.Tx, workID string, spec *Specialization) error {
	var query string
	var args []any

	switch {
	case spec.Book != nil:
		query = fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, NULLIF($2, ''), $3)",
			schema.CoreBook.Table, schema.CoreBook.WorkID, schema.CoreBook.ISBN, schema.CoreBook.PageCount)
		args = []any{workID, spec.Book.ISBN, spec.Book.PageCount}
	case spec.Film != nil:
		query = fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, NULLIF($3, ''))",
			schema.CoreFilm.Table, schema.CoreFilm.WorkID, schema.CoreFilm.DurationMin, schema.CoreFilm.Director)
		args = []any{workID, spec.Film.DurationMin, spec.Film.Director}
	case spec.Album != nil:
		query = fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))",
			schema.CoreAlbum.Table, schema.CoreAlbum.WorkID, schema.CoreAlbum.DurationMin,
			schema.CoreAlbum.Genre, schema.CoreAlbum.Label)
		args = []any{workID, spec.Album.DurationMin, spec.Album.Genre, spec.Album.Label}
	case spec.Article != nil:
		query = fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s) VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''))",
			schema.CoreArticle.Table, schema.CoreArticle.WorkID,
			schema.CoreArticle.AuthorName, schema.CoreArticle.Source, schema.CoreArticle.ArticleKind,
			schema.CoreArticle.PublishedAt, schema.CoreArticle.Credibility, schema.CoreArticle.Body)
		args = []any{workID, spec.Article.AuthorName, spec.Article.Source, spec.Article.ArticleKind,
			spec.Article.PublishedAt, spec.Article.Credibility, spec.Article.Body}
	case spec.SciArticle != nil:
		query = fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5)",
			schema.CoreSciArticle.Table, schema.CoreSciArticle.WorkID,
			schema.CoreSciArticle.Journal, schema.CoreSciArticle.DOI,
			schema.CoreSciArticle.PeerReviewed, schema.CoreSciArticle.OpenAccess)
		args = []any{workID, spec.SciArticle.Journal, spec.SciArticle.DOI,
			spec.SciArticle.PeerReviewed, spec.SciArticle.OpenAccess}
	case spec.Craft != nil:
		query = fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)",
			schema.CoreCraft.Table, schema.CoreCraft.WorkID,
			schema.CoreCraft.MaterialID, schema.CoreCraft.TechniqueID,
			schema.CoreCraft.Dimensions, schema.CoreCraft.WeightG, schema.CoreCraft.Price)
		args = []any{workID, spec.Craft.MaterialID, spec.Craft.TechniqueID,
			spec.Craft.Dimensions, spec.Craft.WeightG, spec.Craft.Price}
	case spec.ArtPiece != nil:
		query = fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))",
			schema.CoreArtPiece.Table, schema.CoreArtPiece.WorkID,
			schema.CoreArtPiece.Technique, schema.CoreArtPiece.Support)
		args = []any{workID, spec.ArtPiece.Technique, spec.ArtPiece.Support}
	default:
		return nil
	}

	if _, err := transaction.Exec(context, query, args...); err != nil {
		return dberr.Wrap(err, "insert_specialization")
	}
	return nil
}

// deleteSpecialization clears the variant row for the kind before a replace.
func (repository *workRepository) deleteSpecialization(context context.Context, transaction pgx.Tx, workID string, kind Kind) error {
	var table, column string

	switch kind {
	case KindBook:
		table, column = schema.CoreBook.Table, schema.CoreBook.WorkID
	case KindFilm:
		table, column = schema.CoreFilm.Table, schema.CoreFilm.WorkID
	case KindAlbum:
		table, column = schema.CoreAlbum.Table, schema.CoreAlbum.WorkID
	case KindArticle:
		table, column = schema.CoreArticle.Table, schema.CoreArticle.WorkID
	case KindScientificArticle:
		table, column = schema.CoreSciArticle.Table, schema.CoreSciArticle.WorkID
	case KindCraft:
		table, column = schema.CoreCraft.Table, schema.CoreCraft.WorkID
	case KindArtPiece:
		table, column = schema.CoreArtPiece.Table, schema.CoreArtPiece.WorkID
	default:
		return nil
	}

	if _, err := transaction.Exec(context,
		fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, column), workID); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", table, err)
	}
	return nil
}

// # Classification Edges

// writeEdges synchronizes the classification junctions. On the update path
// (isUpdate) supplied sets replace stored sets wholesale and contributor
// conflicts degrade to no-ops; on the create path every insert must succeed.
func (repository *workRepository) writeEdges(context context.Context, transaction pgx.Tx, work *Work, isUpdate bool) error {

	// Categories: plain id junction
	if work.CategoryIDs != nil {
		if err := repository.replaceJunction(context, transaction,
			schema.WorkCategory.Table, schema.WorkCategory.WorkID, schema.WorkCategory.CategoryID,
			work.ID, work.CategoryIDs); err != nil {
			return err
		}
	}

	// Tags: resolve names in-transaction via the slug upsert, then junction
	if work.TagNames != nil {
		tagIDs := make([]string, 0, len(work.TagNames))
		for _, name := range work.TagNames {
			id, err := repository.resolveTag(context, transaction, name)
			if err != nil {
				return err
			}
			tagIDs = append(tagIDs, id)
		}
		if err := repository.replaceJunction(context, transaction,
			schema.WorkTag.Table, schema.WorkTag.WorkID, schema.WorkTag.TagID,
			work.ID, tagIDs); err != nil {
			return err
		}
	}

	// Publishers: {work, publisher, role} edges
	if work.Publishers != nil {
		delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
			schema.WorkPublisher.Table, schema.WorkPublisher.WorkID)
		if _, err := transaction.Exec(context, delQuery, work.ID); err != nil {
			return fmt.Errorf("postgres: failed to clear %s: %w", schema.WorkPublisher.Table, err)
		}

		if len(work.Publishers) > 0 {
			insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)",
				schema.WorkPublisher.Table,
				schema.WorkPublisher.WorkID, schema.WorkPublisher.PublisherID, schema.WorkPublisher.Role)
			batch := &pgx.Batch{}
			for _, link := range work.Publishers {
				batch.Queue(insQuery, work.ID, link.PublisherID, link.Role)
			}
			if err := transaction.SendBatch(context, batch).Close(); err != nil {
				return dberr.Wrap(err, "attach_publishers")
			}
		}
	}

	// Contributors: update path tolerates resent edges
	if work.Contributors != nil {
		delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
			schema.Contribution.Table, schema.Contribution.WorkID)
		if isUpdate {
			if _, err := transaction.Exec(context, delQuery, work.ID); err != nil {
				return fmt.Errorf("postgres: failed to clear %s: %w", schema.Contribution.Table, err)
			}
		}

		if len(work.Contributors) > 0 {
			insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''))",
				schema.Contribution.Table,
				schema.Contribution.WorkID, schema.Contribution.PersonID, schema.Contribution.Role,
				schema.Contribution.CharacterName, schema.Contribution.IsPrincipal, schema.Contribution.Note)
			if isUpdate {
				insQuery += " ON CONFLICT DO NOTHING"
			}
			batch := &pgx.Batch{}
			for _, contribution := range work.Contributors {
				batch.Queue(insQuery, work.ID, contribution.PersonID, contribution.Role,
					contribution.CharacterName, contribution.IsPrincipal, contribution.Note)
			}
			if err := transaction.SendBatch(context, batch).Close(); err != nil {
				return dberr.Wrap(err, "attach_contributors")
			}
		}
	}

	return nil
}

// replaceJunction is the clear-and-insert strategy for simple two-column
// junction tables, batched to bound network round-trips.
func (repository *workRepository) replaceJunction(context context.Context, transaction pgx.Tx, table, idCol, valCol, id string, vals []string) error {

	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, idCol)
	if _, err := transaction.Exec(context, delQuery, id); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", table, err)
	}

	if len(vals) == 0 {
		return nil
	}

	insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", table, idCol, valCol)
	batch := &pgx.Batch{}
	for _, value := range vals {
		batch.Queue(insQuery, id, value)
	}
	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "update_"+table)
	}
	return nil
}

// resolveTag is the in-transaction form of the tag upsert: the slug is the
// idempotence key, so concurrent resolution of the same name is race-safe.
func (repository *workRepository) resolveTag(context context.Context, transaction pgx.Tx, name string) (string, error) {
	canonical := slug.From(name)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES (gen_random_uuid(), $1, $2)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s
	`,
		schema.RefTag.Table, schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug,
		schema.RefTag.Slug, schema.RefTag.Name, schema.RefTag.Name,
		schema.RefTag.ID)

	var id string
	if err := transaction.QueryRow(context, query, name, canonical).Scan(&id); err != nil {
		return "", dberr.Wrap(err, "resolve_tag")
	}
	return id, nil
}
