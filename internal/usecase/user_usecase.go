// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"casefile/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to register a new account.
// Password is the plaintext the caller submitted; it is hashed exactly once
// before persisting and never stored.
type CreateUserInput struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Password    string `validate:"required"`
	BadgeNumber string `validate:"required"`
	Agency      string `validate:"required"`
	Role        string
	Department  string
	Phone       string
}

// UpdateUserInput is a patch: nil fields are left untouched. A non-nil
// Password is a NEW plaintext and re-enters the hashing transform; a nil
// Password leaves the stored hash byte-for-byte unchanged.
type UpdateUserInput struct {
	Name        *string
	Email       *string `validate:"omitempty,email"`
	Password    *string
	BadgeNumber *string
	Agency      *string
	Role        *string
	Department  *string
	Phone       *string
	IsActive    *bool
}

// UserUsecase defines the interface for user-store business operations.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// VerifyCredential reports whether plaintext matches the stored hash.
	// A wrong password is a normal false result, never an error.
	VerifyCredential(ctx context.Context, id uuid.UUID, plaintext string) (bool, error)

	// DeactivateUser flips the soft-delete flag; hard deletion does not exist.
	DeactivateUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// RecordLogin stamps LastLogin. The login flow itself is an external
	// collaborator; this is the field's single writer.
	RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
