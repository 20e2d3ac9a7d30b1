// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package taxonomy

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory [Repository] keyed the same way the real
// store is: tags by slug, everything else by id.
type fakeRepository struct {
	categories map[string]*Category
	tagsBySlug map[string]*Tag
	nextTagID  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		categories: make(map[string]*Category),
		tagsBySlug: make(map[string]*Tag),
	}
}

func (f *fakeRepository) ListCategories(context.Context) ([]*Category, error) {
	out := make([]*Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepository) GetCategory(_ context.Context, id string) (*Category, error) {
	return f.categories[id], nil
}

func (f *fakeRepository) CreateCategory(_ context.Context, category *Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeRepository) ListTags(context.Context) ([]*Tag, error) {
	out := make([]*Tag, 0, len(f.tagsBySlug))
	for _, t := range f.tagsBySlug {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepository) GetTag(_ context.Context, id string) (*Tag, error) {
	for _, t := range f.tagsBySlug {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) ResolveTag(_ context.Context, name, slug string) (string, error) {
	if existing, ok := f.tagsBySlug[slug]; ok {
		existing.Name = name
		return existing.ID, nil
	}
	f.nextTagID++
	tag := &Tag{ID: string(rune('a' + f.nextTagID)), Name: name, Slug: slug}
	f.tagsBySlug[slug] = tag
	return tag.ID, nil
}

func (f *fakeRepository) ListLanguages(context.Context) ([]*Language, error)         { return nil, nil }
func (f *fakeRepository) CreateLanguage(context.Context, *Language) error            { return nil }
func (f *fakeRepository) ListMaterials(context.Context) ([]*Material, error)         { return nil, nil }
func (f *fakeRepository) CreateMaterial(context.Context, *Material) error            { return nil }
func (f *fakeRepository) ListTechniques(context.Context) ([]*Technique, error)       { return nil, nil }
func (f *fakeRepository) CreateTechnique(context.Context, *Technique) error          { return nil }
func (f *fakeRepository) ListPublishers(context.Context) ([]*Publisher, error)       { return nil, nil }
func (f *fakeRepository) GetPublisher(context.Context, string) (*Publisher, error)   { return nil, nil }
func (f *fakeRepository) CreatePublisher(context.Context, *Publisher) error          { return nil }

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	return NewService(repo, logger), repo
}

/*
TestResolveTag_Idempotent verifies that resolving the same tag name twice
returns the same id, and that names differing only in case or accents
collapse to the same tag.
*/
func TestResolveTag_Idempotent(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	first, err := service.ResolveTag(ctx, "Musique Chaâbi")
	require.NoError(t, err)

	second, err := service.ResolveTag(ctx, "musique chaabi")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.tagsBySlug, 1)
}

/*
TestResolveTag_EmptyName verifies that tag resolution rejects blank names.
*/
func TestResolveTag_EmptyName(t *testing.T) {
	service, _ := newTestService()

	_, err := service.ResolveTag(context.Background(), "  ")
	assert.Error(t, err)
}

/*
TestCreateCategory_GeneratesIdentity verifies id and slug defaulting.
*/
func TestCreateCategory_GeneratesIdentity(t *testing.T) {
	service, _ := newTestService()

	category := &Category{Name: "Patrimoine Bâti"}
	require.NoError(t, service.CreateCategory(context.Background(), category))

	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "patrimoine-bati", category.Slug)
}

/*
TestCreateCategory_RequiresName verifies validation on missing names.
*/
func TestCreateCategory_RequiresName(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateCategory(context.Background(), &Category{})
	assert.Error(t, err)
}
