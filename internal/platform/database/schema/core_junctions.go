// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package schema

// Classification and contribution junction tables.

// WorkCategoryTable represents the 'core.workcategory' table
type WorkCategoryTable struct {
	Table      string
	WorkID     string
	CategoryID string
}

// WorkCategory is the schema definition for core.workcategory
var WorkCategory = WorkCategoryTable{
	Table:      "core.workcategory",
	WorkID:     "workid",
	CategoryID: "categoryid",
}

// WorkTagTable represents the 'core.worktag' table
type WorkTagTable struct {
	Table  string
	WorkID string
	TagID  string
}

// WorkTag is the schema definition for core.worktag
var WorkTag = WorkTagTable{
	Table:  "core.worktag",
	WorkID: "workid",
	TagID:  "tagid",
}

// WorkPublisherTable represents the 'core.workpublisher' table.
// Uniqueness spans {workid, publisherid, role}.
type WorkPublisherTable struct {
	Table       string
	WorkID      string
	PublisherID string
	Role        string
}

// WorkPublisher is the schema definition for core.workpublisher
var WorkPublisher = WorkPublisherTable{
	Table:       "core.workpublisher",
	WorkID:      "workid",
	PublisherID: "publisherid",
	Role:        "role",
}

// ContributionTable represents the 'core.contribution' table.
// Uniqueness spans {workid, personid, role}.
type ContributionTable struct {
	Table         string
	WorkID        string
	PersonID      string
	Role          string
	CharacterName string
	IsPrincipal   string
	Note          string
}

// Contribution is the schema definition for core.contribution
var Contribution = ContributionTable{
	Table:         "core.contribution",
	WorkID:        "workid",
	PersonID:      "personid",
	Role:          "role",
	CharacterName: "charactername",
	IsPrincipal:   "isprincipal",
	Note:          "note",
}
