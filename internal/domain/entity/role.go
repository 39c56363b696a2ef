// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the access role a user can have in the system.
type Role string

const (
	// RoleAdministrator grants full administrative access.
	RoleAdministrator Role = "administrator"
	// RoleOfficer is the default role for sworn officers.
	RoleOfficer Role = "officer"
	// RoleAnalyst grants analytical access without field authority.
	RoleAnalyst Role = "analyst"
	// RoleReadOnly grants read-only access.
	RoleReadOnly Role = "readonly"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleOfficer, RoleAnalyst, RoleReadOnly:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
