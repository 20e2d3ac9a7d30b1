// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package schema

// CoreEventTable represents the 'core.event' table
type CoreEventTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Description string
	StartsAt    string
	EndsAt      string
	PlaceID     string
	Location    string
	CreatedBy   string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// CoreEvent is the schema definition for core.event
var CoreEvent = CoreEventTable{
	Table:       "core.event",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	StartsAt:    "startsat",
	EndsAt:      "endsat",
	PlaceID:     "placeid",
	Location:    "location",
	CreatedBy:   "createdby",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

func (t CoreEventTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.StartsAt, t.EndsAt, t.PlaceID,
		t.Location, t.CreatedBy, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
