// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"casefile/config"
	"casefile/internal/domain/entity"
	domainerrors "casefile/internal/domain/errors"
	"casefile/internal/domain/repository"
	"casefile/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// caseService implements the CaseUsecase interface.
type caseService struct {
	txManager     repository.TransactionManager
	caseRepo      repository.CaseRepository
	validate      *validator.Validate
	defaultRadius float64
	maxRadius     float64
	logger        *slog.Logger
}

// CaseServiceParams holds dependencies for CaseService, injected by Fx.
type CaseServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CaseRepo  repository.CaseRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCaseService is the constructor for caseService. It receives all dependencies as interfaces.
func NewCaseService(params CaseServiceParams) usecase.CaseUsecase {
	defaultRadius := float64(config.DefaultProximityRadius)
	maxRadius := float64(config.DefaultMaxProximityRadius)
	if params.Config != nil && params.Config.Geo != nil {
		if params.Config.Geo.DefaultRadius > 0 {
			defaultRadius = params.Config.Geo.DefaultRadius
		}
		if params.Config.Geo.MaxRadius > 0 {
			maxRadius = params.Config.Geo.MaxRadius
		}
	}

	return &caseService{
		txManager:     params.TxManager,
		caseRepo:      params.CaseRepo,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		defaultRadius: defaultRadius,
		maxRadius:     maxRadius,
		logger:        params.Logger,
	}
}

// CreateCase registers a new case. Title, type and agency are required;
// coordinates, when present, must be a valid WGS 84 pair.
func (srv *caseService) CreateCase(ctx context.Context, input *usecase.CreateCaseInput) (*entity.Case, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	status := entity.StatusRegistered
	if input.Status != "" {
		status = entity.CaseStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrInvalidStatus.WithDetails(input.Status)
		}
	}

	location, err := buildLocation(input.Location)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := &entity.Case{
		ID:              uuid.New(),
		Title:           input.Title,
		Description:     input.Description,
		Type:            input.Type,
		Status:          status,
		Agency:          input.Agency,
		AssignedOfficer: input.AssignedOfficer,
		Location:        location,
		Entities:        []entity.CaseEntity{},
		Evidence:        []entity.EvidenceItem{},
		Timeline:        []entity.TimelineEvent{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.caseRepo.Create(ctx, c); err != nil {
		return nil, mapCaseRepoError(err)
	}

	srv.logger.Info("Case created",
		slog.String("caseID", c.ID.String()),
		slog.String("type", c.Type),
		slog.String("agency", c.Agency),
	)

	return c, nil
}

// GetCase retrieves a single case by ID.
func (srv *caseService) GetCase(ctx context.Context, id uuid.UUID) (*entity.Case, error) {
	c, err := srv.caseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCaseRepoError(err)
	}

	return c, nil
}

// UpdateCase merges the patch into the existing case inside one transaction,
// re-validating every constraint including the geospatial bounds.
func (srv *caseService) UpdateCase(ctx context.Context, id uuid.UUID, input *usecase.UpdateCaseInput) (*entity.Case, error) {
	var updated *entity.Case
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		caseRepo := repoFactory.CaseRepo()

		c, err := caseRepo.FindByID(ctx, id)
		if err != nil {
			return mapCaseRepoError(err)
		}

		if err := applyCaseUpdates(c, input); err != nil {
			return err
		}

		if err := caseRepo.Update(ctx, c); err != nil {
			return mapCaseRepoError(err)
		}
		updated = c

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Case updated", slog.String("caseID", id.String()))

	return updated, nil
}

// applyCaseUpdates applies the patch to a case, validating enum and
// coordinate constraints on the fields it touches.
func applyCaseUpdates(c *entity.Case, input *usecase.UpdateCaseInput) error {
	if input.Title != nil {
		c.Title = *input.Title
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.Type != nil {
		c.Type = *input.Type
	}
	if input.Status != nil {
		status := entity.CaseStatus(*input.Status)
		if !status.IsValid() {
			return domainerrors.ErrInvalidStatus.WithDetails(*input.Status)
		}
		c.Status = status
	}
	if input.Agency != nil {
		c.Agency = *input.Agency
	}
	if input.AssignedOfficer != nil {
		officer := *input.AssignedOfficer
		c.AssignedOfficer = &officer
	}
	if input.Location != nil {
		location, err := buildLocation(input.Location)
		if err != nil {
			return err
		}
		c.Location = location
	}

	if c.Title == "" || c.Type == "" || c.Agency == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title, type and agency must not be empty")
	}

	return nil
}

// DeleteCase removes the case and every sub-record it owns.
func (srv *caseService) DeleteCase(ctx context.Context, id uuid.UUID) error {
	if err := srv.caseRepo.Delete(ctx, id); err != nil {
		return mapCaseRepoError(err)
	}

	srv.logger.Info("Case deleted", slog.String("caseID", id.String()))

	return nil
}

// AppendEntity appends an involved entity to the case, preserving order.
func (srv *caseService) AppendEntity(ctx context.Context, id uuid.UUID, input *usecase.AppendEntityInput) (*entity.Case, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	entityType := entity.EntityType(input.Type)
	if !entityType.IsValid() {
		return nil, domainerrors.ErrInvalidEntityType.WithDetails(input.Type)
	}

	item := entity.CaseEntity{
		Type:     entityType,
		Value:    input.Value,
		Metadata: input.Metadata,
	}
	if err := srv.caseRepo.AppendEntity(ctx, id, item); err != nil {
		return nil, mapCaseRepoError(err)
	}

	srv.logger.Info("Entity appended",
		slog.String("caseID", id.String()),
		slog.Any("entityType", entityType),
	)

	return srv.GetCase(ctx, id)
}

// AppendEvidence appends an evidence reference to the case, preserving order.
func (srv *caseService) AppendEvidence(ctx context.Context, id uuid.UUID, input *usecase.AppendEvidenceInput) (*entity.Case, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	item := entity.EvidenceItem{
		FileURL:    input.FileURL,
		FileType:   input.FileType,
		UploadedAt: time.Now(),
	}
	if err := srv.caseRepo.AppendEvidence(ctx, id, item); err != nil {
		return nil, mapCaseRepoError(err)
	}

	srv.logger.Info("Evidence appended", slog.String("caseID", id.String()))

	return srv.GetCase(ctx, id)
}

// AppendTimelineEvent appends a timeline event to the case, preserving order.
func (srv *caseService) AppendTimelineEvent(ctx context.Context, id uuid.UUID, input *usecase.AppendTimelineEventInput) (*entity.Case, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	item := entity.TimelineEvent{
		Action:    input.Action,
		Timestamp: timestamp,
		User:      input.User,
	}
	if err := srv.caseRepo.AppendTimelineEvent(ctx, id, item); err != nil {
		return nil, mapCaseRepoError(err)
	}

	srv.logger.Info("Timeline event appended",
		slog.String("caseID", id.String()),
		slog.String("action", item.Action),
	)

	return srv.GetCase(ctx, id)
}

// FindNear yields cases within radiusMeters of the query point, nearest
// first. Each range over the returned sequence replays the same snapshot.
func (srv *caseService) FindNear(ctx context.Context, longitude, latitude, radiusMeters float64) (iter.Seq[*entity.Case], error) {
	if _, err := entity.NewGeoPoint([]float64{longitude, latitude}); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}

	if radiusMeters == 0 {
		radiusMeters = srv.defaultRadius
	}
	if radiusMeters < 0 || radiusMeters > srv.maxRadius {
		return nil, domainerrors.ErrRadiusOutOfRange
	}

	cases, err := srv.caseRepo.FindNear(ctx, longitude, latitude, radiusMeters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cases near point")
	}

	return func(yield func(*entity.Case) bool) {
		for _, c := range cases {
			if !yield(c) {
				return
			}
		}
	}, nil
}

// FindByType performs an exact-match lookup over the indexed type column.
func (srv *caseService) FindByType(ctx context.Context, caseType string) ([]*entity.Case, error) {
	cases, err := srv.caseRepo.FindByType(ctx, caseType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cases by type")
	}

	return cases, nil
}

// FindByAgency performs an exact-match lookup over the indexed agency column.
func (srv *caseService) FindByAgency(ctx context.Context, agency string) ([]*entity.Case, error) {
	cases, err := srv.caseRepo.FindByAgency(ctx, agency)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cases by agency")
	}

	return cases, nil
}

// buildLocation converts a location input into the domain representation,
// validating arity, finiteness and range of any coordinates.
func buildLocation(input *usecase.LocationInput) (entity.Location, error) {
	if input == nil {
		return entity.Location{}, nil
	}

	location := entity.Location{Address: input.Address}
	if len(input.Coordinates) == 0 {
		return location, nil
	}

	point, err := entity.NewGeoPoint(input.Coordinates)
	if err != nil {
		return entity.Location{}, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}
	location.Point = point

	return location, nil
}

// mapCaseRepoError translates persistence sentinels onto the error taxonomy.
func mapCaseRepoError(err error) error {
	if errors.Is(err, repository.ErrCaseNotFound) {
		return domainerrors.ErrCaseNotFound
	}

	return err
}
