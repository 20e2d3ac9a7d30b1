// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package schema

// GeoPlaceTable represents the 'geo.place' table. A place anchors to exactly
// one administrative node (anchorkind + anchorid) and also stores the
// denormalized wilayaid so faceted filtering never walks the hierarchy.
type GeoPlaceTable struct {
	Table      string
	ID         string
	Name       string
	Slug       string
	AnchorKind string
	AnchorID   string
	WilayaID   string
	Latitude   string
	Longitude  string
	CreatedAt  string
	UpdatedAt  string
	DeletedAt  string
}

// GeoPlace is the schema definition for geo.place
var GeoPlace = GeoPlaceTable{
	Table:      "geo.place",
	ID:         "id",
	Name:       "name",
	Slug:       "slug",
	AnchorKind: "anchorkind",
	AnchorID:   "anchorid",
	WilayaID:   "wilayaid",
	Latitude:   "latitude",
	Longitude:  "longitude",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
	DeletedAt:  "deletedat",
}

func (t GeoPlaceTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.AnchorKind, t.AnchorID, t.WilayaID,
		t.Latitude, t.Longitude, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}

// GeoPlaceDetailTable represents the 'geo.placedetail' table. PlaceID is
// UNIQUE: a place owns at most one detail record.
type GeoPlaceDetailTable struct {
	Table       string
	ID          string
	PlaceID     string
	Description string
	History     string
	AvgRating   string
	CreatedAt   string
	UpdatedAt   string
}

// GeoPlaceDetail is the schema definition for geo.placedetail
var GeoPlaceDetail = GeoPlaceDetailTable{
	Table:       "geo.placedetail",
	ID:          "id",
	PlaceID:     "placeid",
	Description: "description",
	History:     "history",
	AvgRating:   "avgrating",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// GeoHeritageFeatureTable represents the 'geo.heritagefeature' table
type GeoHeritageFeatureTable struct {
	Table    string
	ID       string
	DetailID string
	Kind     string
	Subtype  string
	Name     string
}

// GeoHeritageFeature is the schema definition for geo.heritagefeature
var GeoHeritageFeature = GeoHeritageFeatureTable{
	Table:    "geo.heritagefeature",
	ID:       "id",
	DetailID: "detailid",
	Kind:     "kind",
	Subtype:  "subtype",
	Name:     "name",
}

// GeoPlaceMediaTable represents the 'geo.placemedia' table
type GeoPlaceMediaTable struct {
	Table     string
	ID        string
	PlaceID   string
	Kind      string
	URL       string
	Caption   string
	CreatedAt string
}

// GeoPlaceMedia is the schema definition for geo.placemedia
var GeoPlaceMedia = GeoPlaceMediaTable{
	Table:     "geo.placemedia",
	ID:        "id",
	PlaceID:   "placeid",
	Kind:      "kind",
	URL:       "url",
	Caption:   "caption",
	CreatedAt: "createdat",
}
