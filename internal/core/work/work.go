// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

/*
Package work defines the core catalogue domain of Turath.

A Work is any submitted cultural production: books, films, albums, press and
scientific articles, traditional crafts and art pieces. Each work carries at
most one specialization record whose shape is selected by the work's kind,
a moderation lifecycle driven by community submission and moderator review,
and a classification footprint over the shared taxonomy vocabularies.

Core Responsibility:

  - Specialization: One closed kind enum, one optional variant row per work.
  - Moderation: brouillon → en_attente → {publie, rejete}, with resubmission
    and a terminal archive state. Deletion is a separate soft-delete stamp.
  - Classification: category, tag, publisher and contributor edges.

This package acts as the source of truth for all catalogue data models.
*/
package work

import (
	"strings"
	"time"

	"github.com/turathdz/turath/internal/core/person"
	"github.com/turathdz/turath/internal/core/taxonomy"
)

// # Kinds

// Kind selects which specialization variant a work may carry.
type Kind string

const (
	KindBook              Kind = "book"
	KindFilm              Kind = "film"
	KindAlbum             Kind = "album"
	KindArticle           Kind = "article"
	KindScientificArticle Kind = "scientific_article"
	KindCraft             Kind = "craft"
	KindArtPiece          Kind = "art_piece"
)

// ParseKind resolves a human-supplied kind name case-insensitively.
// The second return value is false for unrecognised names.
func ParseKind(s string) (Kind, bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if kind.IsValid() {
		return kind, true
	}
	return "", false
}

// IsValid reports whether k is a recognised [Kind] value.
func (k Kind) IsValid() bool {
	switch k {
	case
		KindBook,
		KindFilm,
		KindAlbum,
		KindArticle,
		KindScientificArticle,
		KindCraft,
		KindArtPiece:
		return true
	}
	return false
}

// Kinds lists every valid kind, for validation messages.
func Kinds() []string {
	return []string{
		string(KindBook), string(KindFilm), string(KindAlbum),
		string(KindArticle), string(KindScientificArticle),
		string(KindCraft), string(KindArtPiece),
	}
}

// # Moderation States

// Status is the moderation state of a work. Wire values are the French
// labels the public API has always exposed.
type Status string

const (
	// StatusDraft is the state every work is created in.
	StatusDraft Status = "brouillon"

	// StatusPending means the work awaits moderator review.
	StatusPending Status = "en_attente"

	// StatusPublished means a moderator validated the work.
	StatusPublished Status = "publie"

	// StatusRejected means a moderator refused the work.
	StatusRejected Status = "rejete"

	// StatusArchived is terminal; archived works never re-enter review.
	StatusArchived Status = "archive"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusRejected, StatusArchived:
		return true
	}
	return false
}

// Submittable reports whether a work in state s may be (re)submitted for
// review. Pending works are already in the queue and archived works are
// frozen for good.
func (s Status) Submittable() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// # Core Entities

// Work is the central aggregate of the Turath catalogue.
type Work struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Kind         Kind    `json:"kind"`
	LanguageCode string  `json:"language_code"`
	Year         *int    `json:"year,omitempty"`
	Description  string  `json:"description,omitempty"`
	CreatedBy    string  `json:"created_by"`

	// Moderation trail. ValidatedBy/ValidatedAt are stamped on every
	// moderation decision; RejectionReason survives later transitions
	// unless a new reason is supplied.
	Status          Status     `json:"status"`
	ValidatedBy     *string    `json:"validated_by,omitempty"`
	ValidatedAt     *time.Time `json:"validated_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	Specialization *Specialization `json:"specialization"`

	Categories   []taxonomy.Category   `json:"categories,omitempty"`
	Tags         []taxonomy.Tag        `json:"tags,omitempty"`
	Publishers   []PublisherLink       `json:"publishers,omitempty"`
	Contributors []person.Contribution `json:"contributors,omitempty"`

	// # Classification Inputs (write paths only)
	CategoryIDs []string `json:"category_ids,omitempty"`
	TagNames    []string `json:"tag_names,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // nil = active; non-nil = soft-deleted
}

// PublisherLink attaches a publisher to a work in a given editorial role.
// Uniqueness spans {work, publisher, role}.
type PublisherLink struct {
	PublisherID string `json:"publisher_id"`
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"` // Denormalized for display
}

// # Search & Filtering

// Filter holds the parameters for a filtered work list query.
// Facets combine conjunctively; zero values mean "no constraint".
type Filter struct {
	Query      string   `json:"q,omitempty"` // Substring search over title/description
	Kind       Kind     `json:"kind,omitempty"`
	Status     []Status `json:"status,omitempty"`
	Language   string   `json:"language,omitempty"`
	YearFrom   *int     `json:"year_from,omitempty"`
	YearTo     *int     `json:"year_to,omitempty"`
	CategoryID string   `json:"category_id,omitempty"`
	TagID      string   `json:"tag_id,omitempty"`
	PersonID   string   `json:"person_id,omitempty"`
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID              = "id"
	FieldTitle           = "title"
	FieldSlug            = "slug"
	FieldKind            = "kind"
	FieldLanguageCode    = "language_code"
	FieldYear            = "year"
	FieldDescription     = "description"
	FieldStatus          = "status"
	FieldRejectionReason = "rejection_reason"
	FieldCategoryIDs     = "category_ids"
	FieldTagNames        = "tag_names"
	FieldPublishers      = "publishers"
	FieldContributors    = "contributors"
)
