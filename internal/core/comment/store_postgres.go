// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/turathdz/turath/internal/platform/apperr"
	"github.com/turathdz/turath/internal/platform/database/schema"
	"github.com/turathdz/turath/internal/platform/dberr"
)

// commentRepository implements [Repository] using pgx.
type commentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the PostgreSQL-backed comment repository.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &commentRepository{pool: pool}
}

// commentColumns is the shared scan list for thread reads.
func commentColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.SocialComment.ID, schema.SocialComment.TargetKind, schema.SocialComment.TargetID,
		schema.SocialComment.ParentID, schema.SocialComment.AuthorID, schema.SocialComment.Body,
		schema.SocialComment.Rating, schema.SocialComment.Status,
		schema.SocialComment.CreatedAt, schema.SocialComment.UpdatedAt,
	)
}

func scanComment(row pgx.Row) (*Comment, error) {
	comment := &Comment{}
	err := row.Scan(
		&comment.ID, &comment.TargetKind, &comment.TargetID,
		&comment.ParentID, &comment.AuthorID, &comment.Body,
		&comment.Rating, &comment.Status,
		&comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByTarget pages through published top-level comments, newest first,
// then attaches the published replies of the page in one extra query. A
// pending or rejected parent never surfaces, and neither do its replies:
// visibility of a thread follows its root.
func (repository *commentRepository) ListByTarget(context context.Context, kind TargetKind, targetID string, limit, offset int) ([]*Comment, int, error) {

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE %s = $1 AND %s = $2
		  AND %s IS NULL
		  AND %s = $3
		  AND %s IS NULL
		ORDER BY %s DESC
		LIMIT $4 OFFSET $5
	`,
		commentColumns(),
		schema.SocialComment.Table,
		schema.SocialComment.TargetKind, schema.SocialComment.TargetID,
		schema.SocialComment.ParentID,
		schema.SocialComment.Status,
		schema.SocialComment.DeletedAt,
		schema.SocialComment.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, kind, targetID, StatusPublished, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := []*Comment{}
	parentIDs := []string{}
	total := 0
	for rows.Next() {
		comment := &Comment{}
		err := rows.Scan(
			&comment.ID, &comment.TargetKind, &comment.TargetID,
			&comment.ParentID, &comment.AuthorID, &comment.Body,
			&comment.Rating, &comment.Status,
			&comment.CreatedAt, &comment.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan comment row: %w", err)
		}
		comment.Replies = []*Comment{}
		comments = append(comments, comment)
		parentIDs = append(parentIDs, comment.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}

	if len(parentIDs) > 0 {
		if err := repository.attachReplies(context, comments, parentIDs); err != nil {
			return nil, 0, err
		}
	}

	return comments, total, nil
}

// attachReplies loads the published replies for one page of parents,
// oldest first, and distributes them onto their parent nodes.
func (repository *commentRepository) attachReplies(context context.Context, parents []*Comment, parentIDs []string) error {

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = ANY($1)
		  AND %s = $2
		  AND %s IS NULL
		ORDER BY %s ASC
	`,
		commentColumns(),
		schema.SocialComment.Table,
		schema.SocialComment.ParentID,
		schema.SocialComment.Status,
		schema.SocialComment.DeletedAt,
		schema.SocialComment.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, parentIDs, StatusPublished)
	if err != nil {
		return dberr.Wrap(err, "list_comment_replies")
	}
	defer rows.Close()

	byID := make(map[string]*Comment, len(parents))
	for _, parent := range parents {
		byID[parent.ID] = parent
	}

	for rows.Next() {
		reply, err := scanComment(rows)
		if err != nil {
			return fmt.Errorf("postgres: failed to scan reply row: %w", err)
		}
		if parent, ok := byID[*reply.ParentID]; ok {
			parent.Replies = append(parent.Replies, reply)
		}
	}
	return rows.Err()
}

// FindByID loads one live comment regardless of moderation status.
func (repository *commentRepository) FindByID(context context.Context, id string) (*Comment, error) {

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		commentColumns(),
		schema.SocialComment.Table,
		schema.SocialComment.ID, schema.SocialComment.DeletedAt,
	)

	comment, err := scanComment(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("comment")
		}
		return nil, dberr.Wrap(err, "find_comment")
	}
	return comment, nil
}

// Create inserts the comment and backfills its timestamps.
func (repository *commentRepository) Create(context context.Context, comment *Comment) error {

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s
	`,
		schema.SocialComment.Table,
		schema.SocialComment.ID, schema.SocialComment.TargetKind, schema.SocialComment.TargetID,
		schema.SocialComment.ParentID, schema.SocialComment.AuthorID, schema.SocialComment.Body,
		schema.SocialComment.Rating, schema.SocialComment.Status,
		schema.SocialComment.CreatedAt, schema.SocialComment.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		comment.ID, comment.TargetKind, comment.TargetID,
		comment.ParentID, comment.AuthorID, comment.Body,
		comment.Rating, comment.Status,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_comment")
	}
	return nil
}

// UpdateBody replaces the text of a live comment.
func (repository *commentRepository) UpdateBody(context context.Context, id, body string) error {

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.SocialComment.Table,
		schema.SocialComment.Body, schema.SocialComment.UpdatedAt,
		schema.SocialComment.ID, schema.SocialComment.DeletedAt,
	)

	tag, err := repository.pool.Exec(context, query, id, body)
	if err != nil {
		return dberr.Wrap(err, "update_comment")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("comment")
	}
	return nil
}

// SoftDelete stamps deleted_at and nothing else.
func (repository *commentRepository) SoftDelete(context context.Context, id string) error {

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = NOW()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.SocialComment.Table,
		schema.SocialComment.DeletedAt,
		schema.SocialComment.ID, schema.SocialComment.DeletedAt,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("comment")
	}
	return nil
}

// UpdateStatus overwrites the moderation status of a live comment.
func (repository *commentRepository) UpdateStatus(context context.Context, id string, status Status) error {

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.SocialComment.Table,
		schema.SocialComment.Status, schema.SocialComment.UpdatedAt,
		schema.SocialComment.ID, schema.SocialComment.DeletedAt,
	)

	tag, err := repository.pool.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "moderate_comment")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("comment")
	}
	return nil
}
