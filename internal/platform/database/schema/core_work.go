// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

// Package schema centralizes physical table and column names.
//
// # Why not raw strings?
//
// Every repository builds its SQL by interpolating these identifiers with
// fmt.Sprintf while binding all VALUES through $n placeholders. Column names
// therefore exist in exactly one place, and a rename is a one-line change
// instead of a grep across every query in the codebase.
package schema

// CoreWorkTable represents the 'core.work' table
type CoreWorkTable struct {
	Table           string
	ID              string
	Title           string
	Slug            string
	Kind            string
	LanguageCode    string
	Year            string
	Description     string
	CreatedBy       string
	Status          string
	ValidatedBy     string
	ValidatedAt     string
	RejectionReason string
	CreatedAt       string
	UpdatedAt       string
	DeletedAt       string
}

// CoreWork is the schema definition for core.work
var CoreWork = CoreWorkTable{
	Table:           "core.work",
	ID:              "id",
	Title:           "title",
	Slug:            "slug",
	Kind:            "kind",
	LanguageCode:    "languagecode",
	Year:            "year",
	Description:     "description",
	CreatedBy:       "createdby",
	Status:          "status",
	ValidatedBy:     "validatedby",
	ValidatedAt:     "validatedat",
	RejectionReason: "rejectionreason",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	DeletedAt:       "deletedat",
}

func (t CoreWorkTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Kind, t.LanguageCode, t.Year, t.Description,
		t.CreatedBy, t.Status, t.ValidatedBy, t.ValidatedAt, t.RejectionReason,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
