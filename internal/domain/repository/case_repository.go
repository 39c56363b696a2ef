// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"casefile/internal/domain/entity"
	"casefile/internal/errors"

	"github.com/google/uuid"
)

// ErrCaseNotFound is a domain-specific error returned when a case is not found.
var ErrCaseNotFound = errors.New("case not found")

// CaseRepository defines the standard operations for case persistence.
// The application layer will depend on this interface, not the concrete implementation.
//
// Every mutation is atomic at single-record granularity: two concurrent writes
// to the same case never interleave field-by-field (last writer wins for the
// whole record). The geospatial index entry is derived from the record's own
// coordinates inside the same atomic unit, so readers of the same store never
// observe an index entry the primary record does not hold.
type CaseRepository interface {
	// Create persists a new case aggregate, including its sub-records.
	Create(ctx context.Context, c *entity.Case) error

	// FindByID retrieves a single case with its entities, evidence and
	// timeline in insertion order. Returns ErrCaseNotFound if absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Case, error)

	// Update writes the case's scalar fields as one whole-record write.
	// Sub-record collections are append-only and are not touched here.
	Update(ctx context.Context, c *entity.Case) error

	// Delete removes the case and all sub-records it owns.
	Delete(ctx context.Context, id uuid.UUID) error

	// AppendEntity atomically appends an involved entity, preserving order.
	AppendEntity(ctx context.Context, caseID uuid.UUID, item entity.CaseEntity) error

	// AppendEvidence atomically appends an evidence reference, preserving order.
	AppendEvidence(ctx context.Context, caseID uuid.UUID, item entity.EvidenceItem) error

	// AppendTimelineEvent atomically appends a timeline event, preserving order.
	AppendTimelineEvent(ctx context.Context, caseID uuid.UUID, item entity.TimelineEvent) error

	// FindByType performs an exact-match lookup over the indexed type column,
	// newest first.
	FindByType(ctx context.Context, caseType string) ([]*entity.Case, error)

	// FindByAgency performs an exact-match lookup over the indexed agency
	// column, newest first.
	FindByAgency(ctx context.Context, agency string) ([]*entity.Case, error)

	// FindNear returns every case whose coordinates lie within radiusMeters of
	// the query point (great-circle distance), ordered nearest first. Cases
	// without coordinates are never returned.
	FindNear(ctx context.Context, longitude, latitude, radiusMeters float64) ([]*entity.Case, error)
}
