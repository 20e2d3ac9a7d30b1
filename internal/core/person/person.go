// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

/*
Package person defines the contributor graph of the catalogue.

A Person is any individual credited on a work: writers, film directors,
musicians, artisans. The link between a person and a work is a Contribution
edge carrying a closed role enum; one person can hold several distinct roles
on the same work (composer and performer on one album), but never the same
role twice.
*/
package person

import "time"

// # Roles

// Role is the capacity in which a person contributed to a work.
type Role string

const (
	RoleAuthor      Role = "author"
	RoleDirector    Role = "director"
	RoleActor       Role = "actor"
	RoleComposer    Role = "composer"
	RolePerformer   Role = "performer"
	RoleEditor      Role = "editor"
	RoleArtisan     Role = "artisan"
	RoleIllustrator Role = "illustrator"
)

// IsValid reports whether r is a recognised [Role] value.
func (r Role) IsValid() bool {
	switch r {
	case
		RoleAuthor,
		RoleDirector,
		RoleActor,
		RoleComposer,
		RolePerformer,
		RoleEditor,
		RoleArtisan,
		RoleIllustrator:
		return true
	}
	return false
}

// Roles lists every valid role, for validation messages.
func Roles() []string {
	return []string{
		string(RoleAuthor), string(RoleDirector), string(RoleActor),
		string(RoleComposer), string(RolePerformer), string(RoleEditor),
		string(RoleArtisan), string(RoleIllustrator),
	}
}

// # Entities

// Person is a credited individual.
type Person struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Slug      string     `json:"slug"`
	BirthYear *int       `json:"birth_year,omitempty"`
	DeathYear *int       `json:"death_year,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Contribution is the edge linking a person to a work. Uniqueness spans
// {work, person, role}.
type Contribution struct {
	WorkID        string `json:"work_id,omitempty"`
	PersonID      string `json:"person_id"`
	Role          Role   `json:"role"`
	CharacterName string `json:"character_name,omitempty"`
	IsPrincipal   bool   `json:"is_principal"`
	Note          string `json:"note,omitempty"`

	// Denormalized for display; populated on reads only.
	PersonName string `json:"person_name,omitempty"`
}
