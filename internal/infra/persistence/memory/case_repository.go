// Package memory contains in-process implementations of the persistence
// contracts. They enforce the same atomicity and uniqueness semantics as the
// PostgreSQL backend and back the test suites and embedded deployments where
// no database is available.
package memory

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"casefile/internal/domain/entity"
	"casefile/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// caseRepository implements the domain.CaseRepository interface with an
// RWMutex-guarded map. Every mutation runs under the write lock, so writes are
// atomic per record (last writer wins for the whole record) and the in-memory
// geospatial lookup always reads the coordinates the record itself holds.
type caseRepository struct {
	mu    sync.RWMutex
	cases map[uuid.UUID]*entity.Case
}

// NewCaseRepository is the constructor for the in-memory case repository.
func NewCaseRepository() repository.CaseRepository {
	return &caseRepository{cases: make(map[uuid.UUID]*entity.Case)}
}

// Create persists a new case aggregate.
func (repo *caseRepository) Create(_ context.Context, c *entity.Case) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	repo.cases[c.ID] = cloneCase(c)

	return nil
}

// FindByID retrieves a single case. Returned values are deep copies, so a
// caller can never alias store state.
func (repo *caseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Case, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.cases[id]
	if !ok {
		return nil, repository.ErrCaseNotFound
	}

	return cloneCase(stored), nil
}

// Update replaces the case's scalar fields as one whole-record write.
// Sub-record collections are append-only and not touched here.
func (repo *caseRepository) Update(_ context.Context, c *entity.Case) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.cases[c.ID]
	if !ok {
		return repository.ErrCaseNotFound
	}

	updated := cloneCase(c)
	updated.Entities = stored.Entities
	updated.Evidence = stored.Evidence
	updated.Timeline = stored.Timeline
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()

	repo.cases[c.ID] = updated
	c.UpdatedAt = updated.UpdatedAt

	return nil
}

// Delete removes the case together with every sub-record it owns.
func (repo *caseRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.cases[id]; !ok {
		return repository.ErrCaseNotFound
	}
	delete(repo.cases, id)

	return nil
}

// AppendEntity atomically appends an involved entity, preserving order.
func (repo *caseRepository) AppendEntity(_ context.Context, caseID uuid.UUID, item entity.CaseEntity) error {
	return repo.appendSubRecord(caseID, func(stored *entity.Case) {
		stored.Entities = append(stored.Entities, cloneCaseEntity(item))
	})
}

// AppendEvidence atomically appends an evidence reference, preserving order.
func (repo *caseRepository) AppendEvidence(_ context.Context, caseID uuid.UUID, item entity.EvidenceItem) error {
	return repo.appendSubRecord(caseID, func(stored *entity.Case) {
		stored.Evidence = append(stored.Evidence, item)
	})
}

// AppendTimelineEvent atomically appends a timeline event, preserving order.
func (repo *caseRepository) AppendTimelineEvent(_ context.Context, caseID uuid.UUID, item entity.TimelineEvent) error {
	return repo.appendSubRecord(caseID, func(stored *entity.Case) {
		stored.Timeline = append(stored.Timeline, item)
	})
}

func (repo *caseRepository) appendSubRecord(caseID uuid.UUID, appendFn func(stored *entity.Case)) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.cases[caseID]
	if !ok {
		return repository.ErrCaseNotFound
	}

	appendFn(stored)
	stored.UpdatedAt = time.Now()

	return nil
}

// FindByType performs an exact-match lookup over the case type, newest first.
func (repo *caseRepository) FindByType(_ context.Context, caseType string) ([]*entity.Case, error) {
	return repo.findAll(func(c *entity.Case) bool { return c.Type == caseType }), nil
}

// FindByAgency performs an exact-match lookup over the agency, newest first.
func (repo *caseRepository) FindByAgency(_ context.Context, agency string) ([]*entity.Case, error) {
	return repo.findAll(func(c *entity.Case) bool { return c.Agency == agency }), nil
}

func (repo *caseRepository) findAll(match func(*entity.Case) bool) []*entity.Case {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]*entity.Case, 0)
	for _, stored := range repo.cases {
		if match(stored) {
			result = append(result, cloneCase(stored))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result
}

// FindNear returns every case whose coordinates lie within radiusMeters of
// the query point, ordered nearest first by great-circle distance. Cases
// without coordinates are never returned.
func (repo *caseRepository) FindNear(_ context.Context, longitude, latitude, radiusMeters float64) ([]*entity.Case, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	origin := orb.Point{longitude, latitude}

	type hit struct {
		c        *entity.Case
		distance float64
	}

	hits := make([]hit, 0)
	for _, stored := range repo.cases {
		point := stored.Location.Point
		if point == nil {
			continue
		}

		distance := geo.DistanceHaversine(origin, orb.Point{point.Longitude, point.Latitude})
		if distance <= radiusMeters {
			hits = append(hits, hit{c: cloneCase(stored), distance: distance})
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].distance < hits[j].distance })

	result := make([]*entity.Case, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.c)
	}

	return result, nil
}

// --- Clone helpers ---
// The store hands out deep copies in both directions so no caller can mutate
// stored state without going through a repository operation.

func cloneCase(src *entity.Case) *entity.Case {
	if src == nil {
		return nil
	}

	dst := *src

	if src.AssignedOfficer != nil {
		officer := *src.AssignedOfficer
		dst.AssignedOfficer = &officer
	}
	if src.Location.Point != nil {
		point := *src.Location.Point
		dst.Location.Point = &point
	}

	dst.Entities = make([]entity.CaseEntity, 0, len(src.Entities))
	for _, item := range src.Entities {
		dst.Entities = append(dst.Entities, cloneCaseEntity(item))
	}
	dst.Evidence = append([]entity.EvidenceItem(nil), src.Evidence...)
	dst.Timeline = append([]entity.TimelineEvent(nil), src.Timeline...)

	return &dst
}

func cloneCaseEntity(src entity.CaseEntity) entity.CaseEntity {
	dst := src
	if src.Metadata != nil {
		dst.Metadata = maps.Clone(src.Metadata)
	}

	return dst
}
