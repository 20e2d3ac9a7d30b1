// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package schema

// CorePersonTable represents the 'core.person' table
type CorePersonTable struct {
	Table     string
	ID        string
	FullName  string
	Slug      string
	BirthYear string
	DeathYear string
	Bio       string
	PhotoURL  string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// CorePerson is the schema definition for core.person
var CorePerson = CorePersonTable{
	Table:     "core.person",
	ID:        "id",
	FullName:  "fullname",
	Slug:      "slug",
	BirthYear: "birthyear",
	DeathYear: "deathyear",
	Bio:       "bio",
	PhotoURL:  "photourl",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

func (t CorePersonTable) Columns() []string {
	return []string{
		t.ID, t.FullName, t.Slug, t.BirthYear, t.DeathYear, t.Bio, t.PhotoURL,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
