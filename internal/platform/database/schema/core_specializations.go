// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package schema

// Specialization tables. Each variant holds exactly one row per work,
// enforced by a UNIQUE constraint on its workid column.

// CoreBookTable represents the 'core.book' table
type CoreBookTable struct {
	Table     string
	WorkID    string
	ISBN      string
	PageCount string
}

// CoreBook is the schema definition for core.book
var CoreBook = CoreBookTable{
	Table:     "core.book",
	WorkID:    "workid",
	ISBN:      "isbn",
	PageCount: "pagecount",
}

// CoreFilmTable represents the 'core.film' table
type CoreFilmTable struct {
	Table       string
	WorkID      string
	DurationMin string
	Director    string
}

// CoreFilm is the schema definition for core.film
var CoreFilm = CoreFilmTable{
	Table:       "core.film",
	WorkID:      "workid",
	DurationMin: "durationmin",
	Director:    "director",
}

// CoreAlbumTable represents the 'core.album' table
type CoreAlbumTable struct {
	Table       string
	WorkID      string
	DurationMin string
	Genre       string
	Label       string
}

// CoreAlbum is the schema definition for core.album
var CoreAlbum = CoreAlbumTable{
	Table:       "core.album",
	WorkID:      "workid",
	DurationMin: "durationmin",
	Genre:       "genre",
	Label:       "label",
}

// CoreArticleTable represents the 'core.article' table
type CoreArticleTable struct {
	Table       string
	WorkID      string
	AuthorName  string
	Source      string
	ArticleKind string
	PublishedAt string
	Credibility string
	Body        string
}

// CoreArticle is the schema definition for core.article
var CoreArticle = CoreArticleTable{
	Table:       "core.article",
	WorkID:      "workid",
	AuthorName:  "authorname",
	Source:      "source",
	ArticleKind: "articlekind",
	PublishedAt: "publishedat",
	Credibility: "credibility",
	Body:        "body",
}

// CoreSciArticleTable represents the 'core.scientificarticle' table
type CoreSciArticleTable struct {
	Table        string
	WorkID       string
	Journal      string
	DOI          string
	PeerReviewed string
	OpenAccess   string
}

// CoreSciArticle is the schema definition for core.scientificarticle
var CoreSciArticle = CoreSciArticleTable{
	Table:        "core.scientificarticle",
	WorkID:       "workid",
	Journal:      "journal",
	DOI:          "doi",
	PeerReviewed: "peerreviewed",
	OpenAccess:   "openaccess",
}

// CoreCraftTable represents the 'core.craft' table
type CoreCraftTable struct {
	Table       string
	WorkID      string
	MaterialID  string
	TechniqueID string
	Dimensions  string
	WeightG     string
	Price       string
}

// CoreCraft is the schema definition for core.craft
var CoreCraft = CoreCraftTable{
	Table:       "core.craft",
	WorkID:      "workid",
	MaterialID:  "materialid",
	TechniqueID: "techniqueid",
	Dimensions:  "dimensions",
	WeightG:     "weightg",
	Price:       "price",
}

// CoreArtPieceTable represents the 'core.artpiece' table
type CoreArtPieceTable struct {
	Table     string
	WorkID    string
	Technique string
	Support   string
}

// CoreArtPiece is the schema definition for core.artpiece
var CoreArtPiece = CoreArtPieceTable{
	Table:     "core.artpiece",
	WorkID:    "workid",
	Technique: "technique",
	Support:   "support",
}
