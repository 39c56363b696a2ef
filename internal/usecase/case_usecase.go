// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"iter"
	"time"

	"casefile/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LocationInput carries a GeoJSON-style location: coordinates are longitude
// first, and may be omitted entirely for cases without a geospatial position.
type LocationInput struct {
	Coordinates []float64
	Address     string
}

// CreateCaseInput defines the data required to register a new case.
type CreateCaseInput struct {
	Title           string `validate:"required"`
	Description     string
	Type            string `validate:"required"`
	Status          string
	Agency          string `validate:"required"`
	AssignedOfficer *uuid.UUID
	Location        *LocationInput
}

// UpdateCaseInput is a patch: nil fields are left untouched. A non-nil
// Location replaces the whole location; empty coordinates clear the point and
// remove the case from proximity results.
type UpdateCaseInput struct {
	Title           *string
	Description     *string
	Type            *string
	Status          *string
	Agency          *string
	AssignedOfficer *uuid.UUID
	Location        *LocationInput
}

// AppendEntityInput defines an involved entity to append to a case.
type AppendEntityInput struct {
	Type     string `validate:"required"`
	Value    string `validate:"required"`
	Metadata map[string]any
}

// AppendEvidenceInput defines an evidence reference to append to a case.
// FileURL is an opaque locator; the bytes live with an external collaborator.
type AppendEvidenceInput struct {
	FileURL  string `validate:"required"`
	FileType string
}

// AppendTimelineEventInput defines a timeline event to append to a case.
// A zero Timestamp defaults to the current time.
type AppendTimelineEventInput struct {
	Action    string `validate:"required"`
	Timestamp time.Time
	User      string
}

// CaseUsecase defines the interface for case-store business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CaseUsecase interface {
	CreateCase(ctx context.Context, input *CreateCaseInput) (*entity.Case, error)
	GetCase(ctx context.Context, id uuid.UUID) (*entity.Case, error)
	UpdateCase(ctx context.Context, id uuid.UUID, input *UpdateCaseInput) (*entity.Case, error)
	DeleteCase(ctx context.Context, id uuid.UUID) error

	AppendEntity(ctx context.Context, id uuid.UUID, input *AppendEntityInput) (*entity.Case, error)
	AppendEvidence(ctx context.Context, id uuid.UUID, input *AppendEvidenceInput) (*entity.Case, error)
	AppendTimelineEvent(ctx context.Context, id uuid.UUID, input *AppendTimelineEventInput) (*entity.Case, error)

	// FindNear yields cases within radiusMeters of the query point, nearest
	// first. The sequence is finite and restartable: each range over it
	// replays the same snapshot.
	FindNear(ctx context.Context, longitude, latitude, radiusMeters float64) (iter.Seq[*entity.Case], error)

	FindByType(ctx context.Context, caseType string) ([]*entity.Case, error)
	FindByAgency(ctx context.Context, agency string) ([]*entity.Case, error)
}
