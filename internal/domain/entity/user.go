// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the system. Email and BadgeNumber are globally unique
// across the whole store. PasswordHash is always a one-way hash artifact and
// never the submitted plaintext.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Name         string     // The user's display name or real name. Required.
	Email        string     // The user's primary contact email, used as a login identifier. Unique.
	PasswordHash string     // Salted one-way hash artifact. Plaintext is never persisted.
	BadgeNumber  string     // The officer's badge number. Unique.
	Agency       string     // The agency this user belongs to. Required.
	Role         Role       // Access role. Defaults to Officer.
	Department   string     // Optional organizational unit.
	Phone        string     // Optional contact number.
	IsActive     bool       // Soft-delete flag; false means the account is deactivated.
	LastLogin    *time.Time // Set by the login flow. Nil until the first login.
	CreatedAt    time.Time  // Timestamp of when this user account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this user's data.
}
