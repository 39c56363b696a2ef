// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"casefile/internal/domain/entity"
	"casefile/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a write would violate the unique email index.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateBadgeNumber is returned when a write would violate the unique badge number index.
	ErrDuplicateBadgeNumber = errors.New("badge number already exists")
)

// UserRepository defines the standard operations for user persistence.
//
// Uniqueness of email and badge number is enforced by the store itself with
// check-and-insert atomicity: of two concurrent writes claiming the same value
// exactly one succeeds, and a rejected write leaves prior state unchanged.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity. Returns ErrDuplicateEmail or
	// ErrDuplicateBadgeNumber when a unique index is violated.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the user's fields as one whole-record write, re-checking
	// both unique indexes.
	Update(ctx context.Context, user *entity.User) error
}
