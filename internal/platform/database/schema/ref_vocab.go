// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package schema

// Reference vocabularies. These tables share a flat shape on purpose: a
// stable identifier, a display name and (where user input feeds them) a
// slug used as the idempotence key.

// RefCategoryTable represents the 'ref.category' table
type RefCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// RefCategory is the schema definition for ref.category
var RefCategory = RefCategoryTable{
	Table:       "ref.category",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// RefTagTable represents the 'ref.tag' table. Slug carries a UNIQUE
// constraint; tag resolution upserts on it.
type RefTagTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// RefTag is the schema definition for ref.tag
var RefTag = RefTagTable{
	Table:     "ref.tag",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

// RefLanguageTable represents the 'ref.language' table
type RefLanguageTable struct {
	Table string
	Code  string
	Name  string
}

// RefLanguage is the schema definition for ref.language
var RefLanguage = RefLanguageTable{
	Table: "ref.language",
	Code:  "code",
	Name:  "name",
}

// RefMaterialTable represents the 'ref.material' table
type RefMaterialTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
}

// RefMaterial is the schema definition for ref.material
var RefMaterial = RefMaterialTable{
	Table: "ref.material",
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
}

// RefTechniqueTable represents the 'ref.technique' table
type RefTechniqueTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
}

// RefTechnique is the schema definition for ref.technique
var RefTechnique = RefTechniqueTable{
	Table: "ref.technique",
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
}

// RefPublisherTable represents the 'ref.publisher' table
type RefPublisherTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	Country   string
	CreatedAt string
}

// RefPublisher is the schema definition for ref.publisher
var RefPublisher = RefPublisherTable{
	Table:     "ref.publisher",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	Country:   "country",
	CreatedAt: "createdat",
}
