// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

package sec

// # Admin Roles

// Role represents the authorization level granted to an admin account.
type Role string

const (
	// Unrestricted access, including destructive deletes and account management
	RoleAdmin Role = "admin"

	// Can create and edit all site content
	RoleEditor Role = "editor"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleEditor:
		return 20
	default:
		return 0
	}
}
