// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package taxonomy

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, COALESCE(%s, ''), %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Slug, schema.RefCategory.Description,
		schema.RefCategory.CreatedAt, schema.RefCategory.UpdatedAt,
		schema.RefCategory.Table, schema.RefCategory.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.Description, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (repository *PostgresRepository) GetCategory(context context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, COALESCE(%s, ''), %s, %s FROM %s WHERE %s = $1`,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Slug, schema.RefCategory.Description,
		schema.RefCategory.CreatedAt, schema.RefCategory.UpdatedAt,
		schema.RefCategory.Table, schema.RefCategory.ID)

	category := &Category{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category")
	}

	return category, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, category *Category) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, NULLIF($4, '')) RETURNING %s, %s`,
		schema.RefCategory.Table,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Slug, schema.RefCategory.Description,
		schema.RefCategory.CreatedAt, schema.RefCategory.UpdatedAt)

	err := repository.db.QueryRow(context, query, category.ID, category.Name, category.Slug, category.Description).
		Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_category")
	}

	return nil
}

func (repository *PostgresRepository) ListTags(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug,
		schema.RefTag.Table, schema.RefTag.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

func (repository *PostgresRepository) GetTag(context context.Context, id string) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug,
		schema.RefTag.Table, schema.RefTag.ID)

	tag := &Tag{}
	err := repository.db.QueryRow(context, query, id).Scan(&tag.ID, &tag.Name, &tag.Slug)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag")
	}

	return tag, nil
}

// ResolveTag upserts on the slug's UNIQUE constraint. The DO UPDATE arm is
// what makes RETURNING yield the existing row's id on conflict.
func (repository *PostgresRepository) ResolveTag(context context.Context, name, slug string) (string, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES (gen_random_uuid(), $1, $2)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s
	`,
		schema.RefTag.Table, schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug,
		schema.RefTag.Slug, schema.RefTag.Name, schema.RefTag.Name,
		schema.RefTag.ID)

	var id string
	if err := repository.db.QueryRow(context, query, name, slug).Scan(&id); err != nil {
		return "", dberr.Wrap(err, "resolve_tag")
	}

	return id, nil
}

func (repository *PostgresRepository) ListLanguages(context context.Context) ([]*Language, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefLanguage.Code, schema.RefLanguage.Name,
		schema.RefLanguage.Table, schema.RefLanguage.Code)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_languages")
	}
	defer rows.Close()

	languages := make([]*Language, 0)
	for rows.Next() {
		language := &Language{}
		if err := rows.Scan(&language.Code, &language.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_language")
		}
		languages = append(languages, language)
	}

	return languages, rows.Err()
}

func (repository *PostgresRepository) CreateLanguage(context context.Context, language *Language) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.RefLanguage.Table, schema.RefLanguage.Code, schema.RefLanguage.Name)

	if _, err := repository.db.Exec(context, query, language.Code, language.Name); err != nil {
		return dberr.Wrap(err, "create_language")
	}

	return nil
}

func (repository *PostgresRepository) ListMaterials(context context.Context) ([]*Material, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefMaterial.ID, schema.RefMaterial.Name, schema.RefMaterial.Slug,
		schema.RefMaterial.Table, schema.RefMaterial.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_materials")
	}
	defer rows.Close()

	materials := make([]*Material, 0)
	for rows.Next() {
		material := &Material{}
		if err := rows.Scan(&material.ID, &material.Name, &material.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_material")
		}
		materials = append(materials, material)
	}

	return materials, rows.Err()
}

func (repository *PostgresRepository) CreateMaterial(context context.Context, material *Material) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.RefMaterial.Table, schema.RefMaterial.ID, schema.RefMaterial.Name, schema.RefMaterial.Slug)

	if _, err := repository.db.Exec(context, query, material.ID, material.Name, material.Slug); err != nil {
		return dberr.Wrap(err, "create_material")
	}

	return nil
}

func (repository *PostgresRepository) ListTechniques(context context.Context) ([]*Technique, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefTechnique.ID, schema.RefTechnique.Name, schema.RefTechnique.Slug,
		schema.RefTechnique.Table, schema.RefTechnique.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_techniques")
	}
	defer rows.Close()

	techniques := make([]*Technique, 0)
	for rows.Next() {
		technique := &Technique{}
		if err := rows.Scan(&technique.ID, &technique.Name, &technique.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_technique")
		}
		techniques = append(techniques, technique)
	}

	return techniques, rows.Err()
}

func (repository *PostgresRepository) CreateTechnique(context context.Context, technique *Technique) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.RefTechnique.Table, schema.RefTechnique.ID, schema.RefTechnique.Name, schema.RefTechnique.Slug)

	if _, err := repository.db.Exec(context, query, technique.ID, technique.Name, technique.Slug); err != nil {
		return dberr.Wrap(err, "create_technique")
	}

	return nil
}

func (repository *PostgresRepository) ListPublishers(context context.Context) ([]*Publisher, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, COALESCE(%s, '') FROM %s ORDER BY %s ASC`,
		schema.RefPublisher.ID, schema.RefPublisher.Name, schema.RefPublisher.Slug, schema.RefPublisher.Country,
		schema.RefPublisher.Table, schema.RefPublisher.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_publishers")
	}
	defer rows.Close()

	publishers := make([]*Publisher, 0)
	for rows.Next() {
		publisher := &Publisher{}
		if err := rows.Scan(&publisher.ID, &publisher.Name, &publisher.Slug, &publisher.Country); err != nil {
			return nil, dberr.Wrap(err, "scan_publisher")
		}
		publishers = append(publishers, publisher)
	}

	return publishers, rows.Err()
}

func (repository *PostgresRepository) GetPublisher(context context.Context, id string) (*Publisher, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, COALESCE(%s, '') FROM %s WHERE %s = $1`,
		schema.RefPublisher.ID, schema.RefPublisher.Name, schema.RefPublisher.Slug, schema.RefPublisher.Country,
		schema.RefPublisher.Table, schema.RefPublisher.ID)

	publisher := &Publisher{}
	err := repository.db.QueryRow(context, query, id).Scan(&publisher.ID, &publisher.Name, &publisher.Slug, &publisher.Country)
	if err != nil {
		return nil, dberr.Wrap(err, "get_publisher")
	}

	return publisher, nil
}

func (repository *PostgresRepository) CreatePublisher(context context.Context, publisher *Publisher) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, NULLIF($4, ''))`,
		schema.RefPublisher.Table,
		schema.RefPublisher.ID, schema.RefPublisher.Name, schema.RefPublisher.Slug, schema.RefPublisher.Country)

	if _, err := repository.db.Exec(context, query, publisher.ID, publisher.Name, publisher.Slug, publisher.Country); err != nil {
		return dberr.Wrap(err, "create_publisher")
	}

	return nil
}
