// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package schema

// Administrative hierarchy: wilaya > daira > commune > locality.

// GeoWilayaTable represents the 'geo.wilaya' table
type GeoWilayaTable struct {
	Table string
	ID    string
	Code  string
	Name  string
	Slug  string
}

// GeoWilaya is the schema definition for geo.wilaya
var GeoWilaya = GeoWilayaTable{
	Table: "geo.wilaya",
	ID:    "id",
	Code:  "code",
	Name:  "name",
	Slug:  "slug",
}

// GeoDairaTable represents the 'geo.daira' table
type GeoDairaTable struct {
	Table    string
	ID       string
	WilayaID string
	Name     string
	Slug     string
}

// GeoDaira is the schema definition for geo.daira
var GeoDaira = GeoDairaTable{
	Table:    "geo.daira",
	ID:       "id",
	WilayaID: "wilayaid",
	Name:     "name",
	Slug:     "slug",
}

// GeoCommuneTable represents the 'geo.commune' table
type GeoCommuneTable struct {
	Table   string
	ID      string
	DairaID string
	Name    string
	Slug    string
}

// GeoCommune is the schema definition for geo.commune
var GeoCommune = GeoCommuneTable{
	Table:   "geo.commune",
	ID:      "id",
	DairaID: "dairaid",
	Name:    "name",
	Slug:    "slug",
}

// GeoLocalityTable represents the 'geo.locality' table
type GeoLocalityTable struct {
	Table     string
	ID        string
	CommuneID string
	Name      string
	Slug      string
}

// GeoLocality is the schema definition for geo.locality
var GeoLocality = GeoLocalityTable{
	Table:     "geo.locality",
	ID:        "id",
	CommuneID: "communeid",
	Name:      "name",
	Slug:      "slug",
}
