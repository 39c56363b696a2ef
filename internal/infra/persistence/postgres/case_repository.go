// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"casefile/internal/domain/entity"
	domainerrors "casefile/internal/domain/errors"
	"casefile/internal/domain/repository"
	"casefile/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// caseRepository implements the domain.CaseRepository interface using GORM.
type caseRepository struct {
	db *gorm.DB
	// lockOnRead is set for transaction-bound instances: FindByID then takes a
	// row lock so a read-modify-write cannot interleave with another writer.
	lockOnRead bool
}

// NewCaseRepository is the constructor for caseRepository.
// It returns the repository as a domain.CaseRepository interface, adhering to dependency inversion.
func NewCaseRepository(db *gorm.DB) repository.CaseRepository {
	return &caseRepository{db: db}
}

func newCaseRepositoryLocked(tx *gorm.DB) repository.CaseRepository {
	return &caseRepository{db: tx, lockOnRead: true}
}

// Create persists a new case aggregate, including its sub-records, in one transaction.
func (repo *caseRepository) Create(ctx context.Context, c *entity.Case) error {
	caseM := fromCaseDomain(c)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(caseM).Error
	})
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required case information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create case")
	}

	c.ID = caseM.ID
	c.CreatedAt = caseM.CreatedAt
	c.UpdatedAt = caseM.UpdatedAt

	return nil
}

// FindByID retrieves a single case with its sub-records in insertion order.
func (repo *caseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Case, error) {
	query := repo.preloaded(repo.db.WithContext(ctx))
	if repo.lockOnRead {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var caseM model.CaseModel
	if err := query.Where("id = ?", id).First(&caseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find case by id")
	}

	return toCaseDomain(&caseM), nil
}

// Update writes the case's scalar fields as one whole-record UPDATE statement.
// Sub-record collections are append-only and never touched here, and the
// geospatial columns travel in the same statement as everything else.
func (repo *caseRepository) Update(ctx context.Context, c *entity.Case) error {
	caseM := fromCaseDomain(c)
	caseM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CaseModel{}).
		Where("id = ?", c.ID).
		Select("title", "description", "type", "status", "agency",
			"assigned_officer", "address", "longitude", "latitude", "updated_at").
		Updates(caseM)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required case information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update case")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCaseNotFound
	}

	c.UpdatedAt = caseM.UpdatedAt

	return nil
}

// Delete removes the case; the CASCADE constraints remove every sub-record it owns.
func (repo *caseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CaseModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete case")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCaseNotFound
	}

	return nil
}

// AppendEntity atomically appends an involved entity to the case.
func (repo *caseRepository) AppendEntity(ctx context.Context, caseID uuid.UUID, item entity.CaseEntity) error {
	return repo.appendSubRecord(ctx, caseID, model.CaseEntityModel{}.TableName(), func(tx *gorm.DB, position int) error {
		return tx.Create(&model.CaseEntityModel{
			CaseID:   caseID,
			Position: position,
			Type:     item.Type.String(),
			Value:    item.Value,
			Metadata: model.JSONB(item.Metadata),
		}).Error
	})
}

// AppendEvidence atomically appends an evidence reference to the case.
func (repo *caseRepository) AppendEvidence(ctx context.Context, caseID uuid.UUID, item entity.EvidenceItem) error {
	return repo.appendSubRecord(ctx, caseID, model.EvidenceItemModel{}.TableName(), func(tx *gorm.DB, position int) error {
		return tx.Create(&model.EvidenceItemModel{
			CaseID:     caseID,
			Position:   position,
			FileURL:    item.FileURL,
			FileType:   item.FileType,
			UploadedAt: item.UploadedAt,
		}).Error
	})
}

// AppendTimelineEvent atomically appends a timeline event to the case.
func (repo *caseRepository) AppendTimelineEvent(ctx context.Context, caseID uuid.UUID, item entity.TimelineEvent) error {
	return repo.appendSubRecord(ctx, caseID, model.TimelineEventModel{}.TableName(), func(tx *gorm.DB, position int) error {
		return tx.Create(&model.TimelineEventModel{
			CaseID:    caseID,
			Position:  position,
			Action:    item.Action,
			Timestamp: item.Timestamp,
			User:      item.User,
		}).Error
	})
}

// appendSubRecord runs the shared append protocol: lock the parent row,
// allocate the next position, insert the child and bump the parent's
// updated_at — all in one transaction.
func (repo *caseRepository) appendSubRecord(ctx context.Context, caseID uuid.UUID, table string, insert func(tx *gorm.DB, position int) error) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent model.CaseModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", caseID).
			First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrCaseNotFound
			}

			return errors.Wrap(err, "failed to lock case for append")
		}

		var count int64
		if err := tx.Table(table).Where("case_id = ?", caseID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to count sub-records")
		}

		if err := insert(tx, int(count)); err != nil {
			return errors.Wrap(err, "failed to insert sub-record")
		}

		return tx.Model(&model.CaseModel{}).
			Where("id = ?", caseID).
			Update("updated_at", time.Now()).Error
	})
	if err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			return repository.ErrCaseNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append sub-record")
	}

	return nil
}

// FindByType performs an exact-match lookup over the indexed type column.
func (repo *caseRepository) FindByType(ctx context.Context, caseType string) ([]*entity.Case, error) {
	return repo.findAllWhere(ctx, "type = ?", caseType)
}

// FindByAgency performs an exact-match lookup over the indexed agency column.
func (repo *caseRepository) FindByAgency(ctx context.Context, agency string) ([]*entity.Case, error) {
	return repo.findAllWhere(ctx, "agency = ?", agency)
}

func (repo *caseRepository) findAllWhere(ctx context.Context, cond string, arg any) ([]*entity.Case, error) {
	var caseModels []*model.CaseModel
	if err := repo.preloaded(repo.db.WithContext(ctx)).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&caseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cases")
	}

	cases := make([]*entity.Case, 0, len(caseModels))
	for _, caseM := range caseModels {
		cases = append(cases, toCaseDomain(caseM))
	}

	return cases, nil
}

// FindNear performs a PostGIS geographic query: every case whose coordinates
// lie within radiusMeters of the query point, ordered nearest first. Rows
// without coordinates never match. The geography expression is computed from
// the row's own longitude/latitude columns, so the index can never disagree
// with the record.
func (repo *caseRepository) FindNear(ctx context.Context, longitude, latitude, radiusMeters float64) ([]*entity.Case, error) {
	query := `
		SELECT id
		FROM cases
		WHERE longitude IS NOT NULL
		  AND latitude IS NOT NULL
		  AND ST_DWithin(
		    geography(ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)),
		    geography(ST_SetSRID(ST_MakePoint(?, ?), 4326)),
		    ?
		  )
		ORDER BY ST_Distance(
		  geography(ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)),
		  geography(ST_SetSRID(ST_MakePoint(?, ?), 4326))
		) ASC
	`

	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Raw(query, longitude, latitude, radiusMeters, longitude, latitude).
		Scan(&ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cases within radius")
	}

	if len(ids) == 0 {
		return []*entity.Case{}, nil
	}

	var caseModels []*model.CaseModel
	if err := repo.preloaded(repo.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Find(&caseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cases within radius")
	}

	// Restore nearest-first order; the IN query returns rows in storage order.
	byID := make(map[uuid.UUID]*model.CaseModel, len(caseModels))
	for _, caseM := range caseModels {
		byID[caseM.ID] = caseM
	}

	cases := make([]*entity.Case, 0, len(ids))
	for _, id := range ids {
		if caseM, ok := byID[id]; ok {
			cases = append(cases, toCaseDomain(caseM))
		}
	}

	return cases, nil
}

// preloaded attaches the sub-record associations in insertion order.
func (repo *caseRepository) preloaded(db *gorm.DB) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }

	return db.
		Preload("Entities", byPosition).
		Preload("Evidence", byPosition).
		Preload("Timeline", byPosition)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toCaseDomain converts a GORM CaseModel to a domain Case entity.
func toCaseDomain(data *model.CaseModel) *entity.Case {
	if data == nil {
		return nil
	}

	c := &entity.Case{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		Type:            data.Type,
		Status:          entity.CaseStatus(data.Status),
		Agency:          data.Agency,
		AssignedOfficer: data.AssignedOfficer,
		Location:        entity.Location{Address: data.Address},
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.Longitude != nil && data.Latitude != nil {
		c.Location.Point = &entity.GeoPoint{
			Longitude: *data.Longitude,
			Latitude:  *data.Latitude,
		}
	}

	c.Entities = make([]entity.CaseEntity, 0, len(data.Entities))
	for _, item := range data.Entities {
		c.Entities = append(c.Entities, entity.CaseEntity{
			Type:     entity.EntityType(item.Type),
			Value:    item.Value,
			Metadata: map[string]any(item.Metadata),
		})
	}

	c.Evidence = make([]entity.EvidenceItem, 0, len(data.Evidence))
	for _, item := range data.Evidence {
		c.Evidence = append(c.Evidence, entity.EvidenceItem{
			FileURL:    item.FileURL,
			FileType:   item.FileType,
			UploadedAt: item.UploadedAt,
		})
	}

	c.Timeline = make([]entity.TimelineEvent, 0, len(data.Timeline))
	for _, item := range data.Timeline {
		c.Timeline = append(c.Timeline, entity.TimelineEvent{
			Action:    item.Action,
			Timestamp: item.Timestamp,
			User:      item.User,
		})
	}

	return c
}

// fromCaseDomain converts a domain Case entity to a GORM CaseModel for persistence.
func fromCaseDomain(data *entity.Case) *model.CaseModel {
	if data == nil {
		return nil
	}

	caseM := &model.CaseModel{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		Type:            data.Type,
		Status:          data.Status.String(),
		Agency:          data.Agency,
		AssignedOfficer: data.AssignedOfficer,
		Address:         data.Location.Address,
	}

	if point := data.Location.Point; point != nil {
		longitude, latitude := point.Longitude, point.Latitude
		caseM.Longitude = &longitude
		caseM.Latitude = &latitude
	}

	caseM.Entities = make([]model.CaseEntityModel, 0, len(data.Entities))
	for i, item := range data.Entities {
		caseM.Entities = append(caseM.Entities, model.CaseEntityModel{
			CaseID:   data.ID,
			Position: i,
			Type:     item.Type.String(),
			Value:    item.Value,
			Metadata: model.JSONB(item.Metadata),
		})
	}

	caseM.Evidence = make([]model.EvidenceItemModel, 0, len(data.Evidence))
	for i, item := range data.Evidence {
		caseM.Evidence = append(caseM.Evidence, model.EvidenceItemModel{
			CaseID:     data.ID,
			Position:   i,
			FileURL:    item.FileURL,
			FileType:   item.FileType,
			UploadedAt: item.UploadedAt,
		})
	}

	caseM.Timeline = make([]model.TimelineEventModel, 0, len(data.Timeline))
	for i, item := range data.Timeline {
		caseM.Timeline = append(caseM.Timeline, model.TimelineEventModel{
			CaseID:    data.ID,
			Position:  i,
			Action:    item.Action,
			Timestamp: item.Timestamp,
			User:      item.User,
		})
	}

	return caseM
}
