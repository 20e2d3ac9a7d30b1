// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Can moderate submitted works and community comments
	RoleModerator UserRole = "moderator"

	// Can submit works and heritage content for moderation
	RoleContributor UserRole = "contributor"

	// Default role for standard registered users
	RoleMember UserRole = "member"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleModerator:
		return 30
	case RoleContributor:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}

// # Actor

// Actor is the identity a service-layer operation runs as. It is derived
// from verified JWT claims by the HTTP layer and passed explicitly into
// services — no operation reads identity from global state.
type Actor struct {
	UserID string
	Role   UserRole
}

// IsAdmin reports whether the actor has unrestricted access.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanModerate reports whether the actor may run moderation transitions.
func (a Actor) CanModerate() bool {
	return a.Role.AtLeast(RoleModerator)
}

// Owns reports whether the actor created the resource with the given owner id.
func (a Actor) Owns(ownerID string) bool {
	return a.UserID != "" && a.UserID == ownerID
}
