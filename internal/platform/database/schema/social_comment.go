// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package schema

// SocialCommentTable represents the 'social.comment' table. Comments form a
// flat id-arena: replies reference parentid and threads are reassembled by
// query, never by recursive storage.
type SocialCommentTable struct {
	Table      string
	ID         string
	TargetKind string
	TargetID   string
	ParentID   string
	AuthorID   string
	Body       string
	Rating     string
	Status     string
	CreatedAt  string
	UpdatedAt  string
	DeletedAt  string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:      "social.comment",
	ID:         "id",
	TargetKind: "targetkind",
	TargetID:   "targetid",
	ParentID:   "parentid",
	AuthorID:   "authorid",
	Body:       "body",
	Rating:     "rating",
	Status:     "status",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
	DeletedAt:  "deletedat",
}

func (t SocialCommentTable) Columns() []string {
	return []string{
		t.ID, t.TargetKind, t.TargetID, t.ParentID, t.AuthorID, t.Body,
		t.Rating, t.Status, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
