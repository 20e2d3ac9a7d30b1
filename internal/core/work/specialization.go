// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package work

import (
	"encoding/json"
	"time"
)

// # Specialization Variants

// Specialization is the tagged union attached to a work. Exactly one variant
// pointer is non-nil and it always matches Kind; a work with no variant row
// has a nil *Specialization instead.
type Specialization struct {
	Kind Kind `json:"kind"`

	Book       *BookDetail              `json:"book,omitempty"`
	Film       *FilmDetail              `json:"film,omitempty"`
	Album      *AlbumDetail             `json:"album,omitempty"`
	Article    *ArticleDetail           `json:"article,omitempty"`
	SciArticle *ScientificArticleDetail `json:"scientific_article,omitempty"`
	Craft      *CraftDetail             `json:"craft,omitempty"`
	ArtPiece   *ArtPieceDetail          `json:"art_piece,omitempty"`
}

// BookDetail is the specialization row for printed works.
type BookDetail struct {
	ISBN      string `json:"isbn,omitempty"`
	PageCount *int   `json:"page_count,omitempty"`
}

// FilmDetail is the specialization row for cinema.
type FilmDetail struct {
	DurationMin *int   `json:"duration_min,omitempty"`
	Director    string `json:"director,omitempty"`
}

// AlbumDetail is the specialization row for recorded music.
type AlbumDetail struct {
	DurationMin *int   `json:"duration_min,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Label       string `json:"label,omitempty"`
}

// ArticleDetail is the specialization row for press articles.
type ArticleDetail struct {
	AuthorName  string     `json:"author_name,omitempty"`
	Source      string     `json:"source,omitempty"`
	ArticleKind string     `json:"article_kind,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Credibility string     `json:"credibility,omitempty"`
	Body        string     `json:"body,omitempty"`
}

// ScientificArticleDetail is the specialization row for academic output.
// DOI is globally unique across the catalogue.
type ScientificArticleDetail struct {
	Journal      string `json:"journal,omitempty"`
	DOI          string `json:"doi,omitempty"`
	PeerReviewed bool   `json:"peer_reviewed"`
	OpenAccess   bool   `json:"open_access"`
}

// CraftDetail is the specialization row for traditional crafts. Material
// and technique reference the taxonomy vocabularies.
type CraftDetail struct {
	MaterialID  *string  `json:"material_id,omitempty"`
	TechniqueID *string  `json:"technique_id,omitempty"`
	Dimensions  string   `json:"dimensions,omitempty"`
	WeightG     *int     `json:"weight_g,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ArtPieceDetail is the specialization row for visual art.
type ArtPieceDetail struct {
	Technique string `json:"technique,omitempty"`
	Support   string `json:"support,omitempty"`
}

// DecodeSpecialization decodes a raw specialization payload against the
// given kind. It returns nil (never an error) when the payload is absent or
// does not decode as the variant the kind selects: a draft work without
// details is a legitimate submission, so a bad or missing payload degrades
// to "no variant row".
func DecodeSpecialization(kind Kind, raw json.RawMessage) *Specialization {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	spec := &Specialization{Kind: kind}
	var err error

	switch kind {
	case KindBook:
		detail := &BookDetail{}
		err = json.Unmarshal(raw, detail)
		spec.Book = detail
	case KindFilm:
		detail := &FilmDetail{}
		err = json.Unmarshal(raw, detail)
		spec.Film = detail
	case KindAlbum:
		detail := &AlbumDetail{}
		err = json.Unmarshal(raw, detail)
		spec.Album = detail
	case KindArticle:
		detail := &ArticleDetail{}
		err = json.Unmarshal(raw, detail)
		spec.Article = detail
	case KindScientificArticle:
		detail := &ScientificArticleDetail{}
		err = json.Unmarshal(raw, detail)
		spec.SciArticle = detail
	case KindCraft:
		detail := &CraftDetail{}
		err = json.Unmarshal(raw, detail)
		spec.Craft = detail
	case KindArtPiece:
		detail := &ArtPieceDetail{}
		err = json.Unmarshal(raw, detail)
		spec.ArtPiece = detail
	default:
		return nil
	}

	if err != nil {
		return nil
	}
	return spec
}
