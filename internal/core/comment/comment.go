// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

/*
Package comment provides the community layer: threaded comments and ratings
on works and places' events.

Threads are one level deep. A top-level comment may carry replies; a reply
may not. Moderation status (publie, en_attente, rejete) and deletion
(deleted_at) are orthogonal: a comment can be rejected without being
deleted, and deleting a comment never touches its moderation status.
*/
package comment

import "time"

// TargetKind names the resource a comment is attached to.
type TargetKind string

const (
	TargetWork  TargetKind = "work"
	TargetEvent TargetKind = "event"
)

// IsValid checks if the target kind names a commentable resource.
func (kind TargetKind) IsValid() bool {
	return kind == TargetWork || kind == TargetEvent
}

// Status is the moderation state of a comment. Values are stored and
// served in French.
type Status string

const (
	StatusPublished Status = "publie"
	StatusPending   Status = "en_attente"
	StatusRejected  Status = "rejete"
)

// IsValid checks if the status is a known moderation state.
func (status Status) IsValid() bool {
	switch status {
	case StatusPublished, StatusPending, StatusRejected:
		return true
	}
	return false
}

// Comment is a single thread node. Replies are populated on list reads for
// top-level comments only.
type Comment struct {
	ID         string     `json:"id"`
	TargetKind TargetKind `json:"target_kind"`
	TargetID   string     `json:"target_id"`
	ParentID   *string    `json:"parent_id,omitempty"`
	AuthorID   string     `json:"author_id"`
	Body       string     `json:"body"`
	Rating     *int       `json:"rating,omitempty"`
	Status     Status     `json:"status"`

	Replies []*Comment `json:"replies,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
