// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

// Package taxonomy manages the reusable reference vocabularies of the
// catalogue: categories, tags, languages, materials, techniques and
// publishers. Works are classified against these vocabularies.
package taxonomy

import "time"

// Category is a curated classification node.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Tag is a free-form label. Its slug is the canonical identity: two names
// that collapse to the same slug are the same tag.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Language is an ISO-639-1 entry.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Material is a craft material (copper, leather, clay...).
type Material struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Technique is a craft or artistic technique.
type Technique struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Publisher is an editorial entity attached to works with a role.
type Publisher struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Country string `json:"country,omitempty"`
}
