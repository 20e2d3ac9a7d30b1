// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package taxonomy

import "context"

// Repository defines the data access contract for reference vocabularies.
type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetCategory(context context.Context, id string) (*Category, error)
	CreateCategory(context context.Context, category *Category) error

	ListTags(context context.Context) ([]*Tag, error)
	GetTag(context context.Context, id string) (*Tag, error)

	// ResolveTag looks the tag up by its canonical slug, creating it when
	// missing. The upsert form makes concurrent resolution of the same
	// name race-safe. Returns the tag id.
	ResolveTag(context context.Context, name, slug string) (string, error)

	ListLanguages(context context.Context) ([]*Language, error)
	CreateLanguage(context context.Context, language *Language) error

	ListMaterials(context context.Context) ([]*Material, error)
	CreateMaterial(context context.Context, material *Material) error

	ListTechniques(context context.Context) ([]*Technique, error)
	CreateTechnique(context context.Context, technique *Technique) error

	ListPublishers(context context.Context) ([]*Publisher, error)
	GetPublisher(context context.Context, id string) (*Publisher, error)
	CreatePublisher(context context.Context, publisher *Publisher) error
}
