package impl

import (
	"context"
	"testing"
	"time"

	"casefile/internal/domain/entity"
	domainerrors "casefile/internal/domain/errors"
	"casefile/internal/domain/repository"
	mockRepo "casefile/internal/mocks/repository"
	"casefile/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// caseServiceFixtures holds all test dependencies for case service tests.
type caseServiceFixtures struct {
	service   usecase.CaseUsecase
	caseRepo  *mockRepo.MockCaseRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestCaseService(t *testing.T) caseServiceFixtures {
	caseRepo := mockRepo.NewMockCaseRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewCaseService(CaseServiceParams{
		TxManager: txManager,
		CaseRepo:  caseRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return caseServiceFixtures{
		service:   service,
		caseRepo:  caseRepo,
		txManager: txManager,
	}
}

func TestCaseService_CreateCase_Success(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	input := &usecase.CreateCaseInput{
		Title:  "Armed robbery on 5th Ave",
		Type:   "Theft",
		Agency: "NYPD",
		Location: &usecase.LocationInput{
			Coordinates: []float64{-73.99, 40.73},
			Address:     "350 5th Ave, New York",
		},
	}

	fx.caseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Case")).
		Return(nil)

	created, err := fx.service.CreateCase(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, input.Title, created.Title)
	assert.Equal(t, entity.StatusRegistered, created.Status)
	require.NotNil(t, created.Location.Point)
	assert.InDelta(t, -73.99, created.Location.Point.Longitude, 1e-9)
	assert.InDelta(t, 40.73, created.Location.Point.Latitude, 1e-9)
	assert.Empty(t, created.Entities)
	assert.Empty(t, created.Timeline)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCaseService_CreateCase_MissingTitle(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	input := &usecase.CreateCaseInput{
		Type:   "Theft",
		Agency: "NYPD",
	}

	created, err := fx.service.CreateCase(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCaseService_CreateCase_SingleCoordinate(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	input := &usecase.CreateCaseInput{
		Title:  "Incomplete position",
		Type:   "Theft",
		Agency: "NYPD",
		Location: &usecase.LocationInput{
			Coordinates: []float64{-73.99},
		},
	}

	created, err := fx.service.CreateCase(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCaseService_CreateCase_CoordinatesOutOfRange(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	input := &usecase.CreateCaseInput{
		Title:  "Impossible position",
		Type:   "Theft",
		Agency: "NYPD",
		Location: &usecase.LocationInput{
			Coordinates: []float64{200.0, 40.73},
		},
	}

	created, err := fx.service.CreateCase(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCaseService_CreateCase_InvalidStatus(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	input := &usecase.CreateCaseInput{
		Title:  "Bad status",
		Type:   "Theft",
		Agency: "NYPD",
		Status: "Reopened",
	}

	created, err := fx.service.CreateCase(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCaseService_GetCase_NotFound(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	caseID := uuid.New()

	fx.caseRepo.EXPECT().
		FindByID(ctx, caseID).
		Return(nil, repository.ErrCaseNotFound)

	found, err := fx.service.GetCase(ctx, caseID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestCaseService_UpdateCase_Status(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	caseID := uuid.New()
	existing := &entity.Case{
		ID:        caseID,
		Title:     "Armed robbery on 5th Ave",
		Type:      "Theft",
		Status:    entity.StatusRegistered,
		Agency:    "NYPD",
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}

	newStatus := entity.StatusClosed.String()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCaseRepo := mockRepo.NewMockCaseRepository(t)

			mockFactory.EXPECT().CaseRepo().Return(mockCaseRepo)

			mockCaseRepo.EXPECT().
				FindByID(ctx, caseID).
				Return(existing, nil)

			mockCaseRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Case")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateCase(ctx, caseID, &usecase.UpdateCaseInput{Status: &newStatus})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.StatusClosed, updated.Status)
	assert.Equal(t, "Armed robbery on 5th Ave", updated.Title)
}

func TestCaseService_UpdateCase_InvalidStatus(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	caseID := uuid.New()
	existing := &entity.Case{
		ID:     caseID,
		Title:  "Armed robbery on 5th Ave",
		Type:   "Theft",
		Status: entity.StatusRegistered,
		Agency: "NYPD",
	}

	badStatus := "Reopened"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCaseRepo := mockRepo.NewMockCaseRepository(t)

			mockFactory.EXPECT().CaseRepo().Return(mockCaseRepo)

			mockCaseRepo.EXPECT().
				FindByID(ctx, caseID).
				Return(existing, nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateCase(ctx, caseID, &usecase.UpdateCaseInput{Status: &badStatus})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCaseService_UpdateCase_ClearLocation(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	caseID := uuid.New()
	existing := &entity.Case{
		ID:     caseID,
		Title:  "Armed robbery on 5th Ave",
		Type:   "Theft",
		Status: entity.StatusRegistered,
		Agency: "NYPD",
		Location: entity.Location{
			Point:   &entity.GeoPoint{Longitude: -73.99, Latitude: 40.73},
			Address: "350 5th Ave, New York",
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCaseRepo := mockRepo.NewMockCaseRepository(t)

			mockFactory.EXPECT().CaseRepo().Return(mockCaseRepo)

			mockCaseRepo.EXPECT().
				FindByID(ctx, caseID).
				Return(existing, nil)

			mockCaseRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Case")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateCase(ctx, caseID, &usecase.UpdateCaseInput{
		Location: &usecase.LocationInput{Address: "unknown"},
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.Location.Point)
	assert.Equal(t, "unknown", updated.Location.Address)
}

func TestCaseService_UpdateCase_NotFound(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	caseID := uuid.New()
	title := "renamed"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCaseRepo := mockRepo.NewMockCaseRepository(t)

			mockFactory.EXPECT().CaseRepo().Return(mockCaseRepo)

			mockCaseRepo.EXPECT().
				FindByID(ctx, caseID).
				Return(nil, repository.ErrCaseNotFound)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateCase(ctx, caseID, &usecase.UpdateCaseInput{Title: &title})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestCaseService_AppendEntity_Success(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	caseID := uuid.New()
	input := &usecase.AppendEntityInput{
		Type:     "Vehicle",
		Value:    "ABC-1234",
		Metadata: map[string]any{"color": "black"},
	}

	stored := &entity.Case{
		ID:     caseID,
		Title:  "Armed robbery on 5th Ave",
		Type:   "Theft",
		Status: entity.StatusRegistered,
		Agency: "NYPD",
		Entities: []entity.CaseEntity{
			{Type: entity.EntityVehicle, Value: "ABC-1234", Metadata: map[string]any{"color": "black"}},
		},
	}

	fx.caseRepo.EXPECT().
		AppendEntity(ctx, caseID, mock.AnythingOfType("entity.CaseEntity")).
		Run(func(ctx context.Context, caseID uuid.UUID, item entity.CaseEntity) {
			assert.Equal(t, entity.EntityVehicle, item.Type)
			assert.Equal(t, "ABC-1234", item.Value)
		}).
		Return(nil)

	fx.caseRepo.EXPECT().
		FindByID(ctx, caseID).
		Return(stored, nil)

	updated, err := fx.service.AppendEntity(ctx, caseID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Len(t, updated.Entities, 1)
	assert.Equal(t, entity.EntityVehicle, updated.Entities[0].Type)
}

func TestCaseService_AppendEntity_InvalidType(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	input := &usecase.AppendEntityInput{
		Type:  "Spacecraft",
		Value: "ABC-1234",
	}

	updated, err := fx.service.AppendEntity(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCaseService_AppendEvidence_MissingFileURL(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	input := &usecase.AppendEvidenceInput{FileType: "image/jpeg"}

	updated, err := fx.service.AppendEvidence(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCaseService_AppendEvidence_NotFound(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	caseID := uuid.New()
	input := &usecase.AppendEvidenceInput{
		FileURL:  "s3://evidence/cam-1234.mp4",
		FileType: "video/mp4",
	}

	fx.caseRepo.EXPECT().
		AppendEvidence(ctx, caseID, mock.AnythingOfType("entity.EvidenceItem")).
		Return(repository.ErrCaseNotFound)

	updated, err := fx.service.AppendEvidence(ctx, caseID, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestCaseService_AppendTimelineEvent_DefaultsTimestamp(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	caseID := uuid.New()
	input := &usecase.AppendTimelineEventInput{
		Action: "Suspect questioned",
		User:   "det.miller",
	}

	stored := &entity.Case{
		ID:     caseID,
		Title:  "Armed robbery on 5th Ave",
		Type:   "Theft",
		Status: entity.StatusRegistered,
		Agency: "NYPD",
	}

	fx.caseRepo.EXPECT().
		AppendTimelineEvent(ctx, caseID, mock.AnythingOfType("entity.TimelineEvent")).
		Run(func(ctx context.Context, caseID uuid.UUID, item entity.TimelineEvent) {
			assert.False(t, item.Timestamp.IsZero())
			assert.Equal(t, "Suspect questioned", item.Action)
		}).
		Return(nil)

	fx.caseRepo.EXPECT().
		FindByID(ctx, caseID).
		Return(stored, nil)

	_, err := fx.service.AppendTimelineEvent(ctx, caseID, input)

	require.NoError(t, err)
}

func TestCaseService_DeleteCase_NotFound(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	caseID := uuid.New()

	fx.caseRepo.EXPECT().
		Delete(ctx, caseID).
		Return(repository.ErrCaseNotFound)

	err := fx.service.DeleteCase(ctx, caseID)

	assert.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestCaseService_FindNear_SequenceIsRestartable(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()
	near := &entity.Case{ID: uuid.New(), Title: "near"}
	far := &entity.Case{ID: uuid.New(), Title: "far"}

	fx.caseRepo.EXPECT().
		FindNear(ctx, -73.98, 40.73, 2000.0).
		Return([]*entity.Case{near, far}, nil)

	seq, err := fx.service.FindNear(ctx, -73.98, 40.73, 2000)
	require.NoError(t, err)

	var firstPass []string
	for c := range seq {
		firstPass = append(firstPass, c.Title)
	}
	assert.Equal(t, []string{"near", "far"}, firstPass)

	// Ranging again replays the same snapshot from the start.
	var secondPass []string
	for c := range seq {
		secondPass = append(secondPass, c.Title)
	}
	assert.Equal(t, firstPass, secondPass)

	// Breaking early stops the sequence without exhausting it.
	var partial []string
	for c := range seq {
		partial = append(partial, c.Title)

		break
	}
	assert.Equal(t, []string{"near"}, partial)
}

func TestCaseService_FindNear_ZeroRadiusUsesDefault(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()

	fx.caseRepo.EXPECT().
		FindNear(ctx, -73.98, 40.73, 1000.0).
		Return([]*entity.Case{}, nil)

	seq, err := fx.service.FindNear(ctx, -73.98, 40.73, 0)

	require.NoError(t, err)
	require.NotNil(t, seq)

	count := 0
	for range seq {
		count++
	}
	assert.Zero(t, count)
}

func TestCaseService_FindNear_RadiusOverMax(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()

	seq, err := fx.service.FindNear(ctx, -73.98, 40.73, 100000)

	assert.Error(t, err)
	assert.Nil(t, seq)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCaseService_FindNear_NegativeRadius(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()

	seq, err := fx.service.FindNear(ctx, -73.98, 40.73, -5)

	assert.Error(t, err)
	assert.Nil(t, seq)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCaseService_FindNear_InvalidQueryPoint(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()

	seq, err := fx.service.FindNear(ctx, -73.98, 91.0, 1000)

	assert.Error(t, err)
	assert.Nil(t, seq)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCaseService_FindByType_RepoError(t *testing.T) {
	fx := createTestCaseService(t)

	ctx := context.Background()

	fx.caseRepo.EXPECT().
		FindByType(ctx, "Theft").
		Return(nil, assert.AnError)

	cases, err := fx.service.FindByType(ctx, "Theft")

	assert.Error(t, err)
	assert.Nil(t, cases)
	assert.Contains(t, err.Error(), "failed to find cases by type")
}
