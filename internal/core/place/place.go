// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

/*
Package place manages the geographic side of the catalogue: heritage sites
anchored to the Algerian administrative hierarchy, their descriptive detail
and media galleries, proximity search, and the aggregated statistics served
to the discovery pages.

# Anchoring

The administrative containment chain is Wilaya > Daira > Commune > Locality.
A place anchors to exactly one node of that chain (AnchorKind + AnchorID)
and additionally stores the resolved wilaya id, so faceted filtering and the
per-wilaya statistics never have to walk the hierarchy upward.

# Heritage Detail

A place owns at most one HeritageDetail, which in turn owns the heritage
feature rows (monuments and vestiges) that drive the subtype facet. Media
rows hang directly off the place and feed the gallery endpoint.
*/
package place

import (
	"time"

	"github.com/turathdz/turath/internal/core/event"
)

// AnchorKind identifies the administrative level a place is attached to.
type AnchorKind string

const (
	AnchorWilaya   AnchorKind = "wilaya"
	AnchorDaira    AnchorKind = "daira"
	AnchorCommune  AnchorKind = "commune"
	AnchorLocality AnchorKind = "locality"
)

// IsValid checks if the anchor kind names a level of the hierarchy.
func (kind AnchorKind) IsValid() bool {
	switch kind {
	case AnchorWilaya, AnchorDaira, AnchorCommune, AnchorLocality:
		return true
	}
	return false
}

// FeatureKind classifies a heritage feature row.
type FeatureKind string

const (
	FeatureMonument FeatureKind = "monument"
	FeatureVestige  FeatureKind = "vestige"
)

// IsValid checks if the feature kind is a known classification.
func (kind FeatureKind) IsValid() bool {
	return kind == FeatureMonument || kind == FeatureVestige
}

// MediaKind classifies a gallery entry.
type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// IsValid checks if the media kind is a known gallery classification.
func (kind MediaKind) IsValid() bool {
	switch kind {
	case MediaPhoto, MediaVideo, MediaAudio:
		return true
	}
	return false
}

// Place is the aggregate root for a heritage site.
//
// Detail, Media and UpcomingEvents are populated on the detail view only;
// list queries return the bare row.
type Place struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	AnchorKind AnchorKind `json:"anchor_kind"`
	AnchorID   string     `json:"anchor_id"`
	WilayaID   string     `json:"wilaya_id"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`

	Detail         *HeritageDetail `json:"detail,omitempty"`
	Media          []Media         `json:"media,omitempty"`
	UpcomingEvents []*event.Event  `json:"upcoming_events,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// HeritageDetail carries the long-form description of a heritage site.
type HeritageDetail struct {
	Description string            `json:"description"`
	History     string            `json:"history"`
	AvgRating   *float64          `json:"avg_rating,omitempty"`
	Features    []HeritageFeature `json:"features"`
}

// HeritageFeature is a single monument or vestige belonging to a site.
// Subtype is a descriptive label (mosque, casbah, roman_ruin, ...) that the
// statistics endpoint groups by; it is validated as non-empty but kept open
// because the inventory vocabulary is still growing.
type HeritageFeature struct {
	Kind    FeatureKind `json:"kind"`
	Subtype string      `json:"subtype"`
	Name    string      `json:"name"`
}

// Media is one gallery entry attached to a place.
type Media struct {
	ID        string    `json:"id"`
	Kind      MediaKind `json:"kind"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Filter narrows the place listing.
type Filter struct {
	// WilayaID restricts to one wilaya (denormalized column, no joins).
	WilayaID string

	// Subtype restricts to places owning at least one feature of that subtype.
	Subtype string

	// Query is a free-text match on the place name.
	Query string

	// WithEvents keeps only places that have at least one upcoming event.
	WithEvents bool
}

// NearbyPlace pairs a candidate with its computed distance from the query
// point. Distances are kilometres along the great circle.
type NearbyPlace struct {
	Place      *Place  `json:"place"`
	DistanceKm float64 `json:"distance_km"`
}

// Stats is the aggregation served by the statistics endpoint.
type Stats struct {
	ByWilaya  []WilayaCount  `json:"by_wilaya"`
	BySubtype []SubtypeCount `json:"by_subtype"`
}

// WilayaCount is the number of registered places in one wilaya.
type WilayaCount struct {
	WilayaID string `json:"wilaya_id"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

// SubtypeCount is the number of heritage features of one subtype.
type SubtypeCount struct {
	Subtype string `json:"subtype"`
	Count   int    `json:"count"`
}
