package impl

import (
	"context"
	"testing"
	"time"

	"casefile/internal/domain/entity"
	domainerrors "casefile/internal/domain/errors"
	"casefile/internal/domain/repository"
	mockRepo "casefile/internal/mocks/repository"
	mockService "casefile/internal/mocks/service"
	"casefile/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	userRepo  *mockRepo.MockUserRepository
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		txManager: txManager,
		hasher:    hasher,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:        "Jane Miller",
		Email:       "jane.miller@nypd.gov",
		Password:    "secret",
		BadgeNumber: "NY-4415",
		Agency:      "NYPD",
	}

	fx.hasher.EXPECT().
		Hash("secret").
		Return("$2a$10$hashedsecret", nil).
		Once()

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	created, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "$2a$10$hashedsecret", created.PasswordHash)
	assert.Equal(t, entity.RoleOfficer, created.Role)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.LastLogin)
}

func TestUserService_CreateUser_InvalidEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:        "Jane Miller",
		Email:       "not-an-email",
		Password:    "secret",
		BadgeNumber: "NY-4415",
		Agency:      "NYPD",
	}

	created, err := fx.service.CreateUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:        "Jane Miller",
		Email:       "jane.miller@nypd.gov",
		Password:    "secret",
		BadgeNumber: "NY-4415",
		Agency:      "NYPD",
		Role:        "superuser",
	}

	created, err := fx.service.CreateUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:        "Jane Miller",
		Email:       "jane.miller@nypd.gov",
		Password:    "secret",
		BadgeNumber: "NY-4415",
		Agency:      "NYPD",
	}

	fx.hasher.EXPECT().
		Hash("secret").
		Return("$2a$10$hashedsecret", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	created, err := fx.service.CreateUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, domainerrors.IsConflict(err))
	assert.Equal(t, domainerrors.ErrEmailAlreadyRegistered, err)
}

func TestUserService_CreateUser_DuplicateBadgeNumber(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:        "Jane Miller",
		Email:       "jane.miller@nypd.gov",
		Password:    "secret",
		BadgeNumber: "NY-4415",
		Agency:      "NYPD",
	}

	fx.hasher.EXPECT().
		Hash("secret").
		Return("$2a$10$hashedsecret", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateBadgeNumber)

	created, err := fx.service.CreateUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, domainerrors.IsConflict(err))
	assert.Equal(t, domainerrors.ErrBadgeNumberInUse, err)
}

func TestUserService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:        "Jane Miller",
		Email:       "jane.miller@nypd.gov",
		Password:    "secret",
		BadgeNumber: "NY-4415",
		Agency:      "NYPD",
	}

	fx.hasher.EXPECT().
		Hash("secret").
		Return("", assert.AnError)

	created, err := fx.service.CreateUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, created)
}

func TestUserService_UpdateUser_WithoutPassword_KeepsStoredHash(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedHash := "$2a$10$storedhash"
	existing := &entity.User{
		ID:           userID,
		Name:         "Jane Miller",
		Email:        "jane.miller@nypd.gov",
		PasswordHash: storedHash,
		BadgeNumber:  "NY-4415",
		Agency:       "NYPD",
		Role:         entity.RoleOfficer,
		IsActive:     true,
	}

	newDepartment := "Homicide"

	// No expectations are set on the hasher: a patch without a new plaintext
	// must never reach it.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(existing, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Department: &newDepartment})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, storedHash, updated.PasswordHash)
	assert.Equal(t, "Homicide", updated.Department)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_UpdateUser_WithPassword_HashesOnce(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:           userID,
		Name:         "Jane Miller",
		Email:        "jane.miller@nypd.gov",
		PasswordHash: "$2a$10$oldhash",
		BadgeNumber:  "NY-4415",
		Agency:       "NYPD",
		Role:         entity.RoleOfficer,
		IsActive:     true,
	}

	newPassword := "rotated-secret"

	fx.hasher.EXPECT().
		Hash("rotated-secret").
		Return("$2a$10$newhash", nil).
		Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(existing, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Password: &newPassword})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "$2a$10$newhash", updated.PasswordHash)
}

func TestUserService_UpdateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:          userID,
		Name:        "Jane Miller",
		Email:       "jane.miller@nypd.gov",
		BadgeNumber: "NY-4415",
		Agency:      "NYPD",
		Role:        entity.RoleOfficer,
		IsActive:    true,
	}

	takenEmail := "taken@nypd.gov"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(existing, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Email: &takenEmail})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, domainerrors.IsConflict(err))
}

func TestUserService_VerifyCredential_Match(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		PasswordHash: "$2a$10$storedhash",
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("secret", "$2a$10$storedhash").
		Return(true)

	ok, err := fx.service.VerifyCredential(ctx, userID, "secret")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserService_VerifyCredential_Mismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		PasswordHash: "$2a$10$storedhash",
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("wrong", "$2a$10$storedhash").
		Return(false)

	ok, err := fx.service.VerifyCredential(ctx, userID, "wrong")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserService_VerifyCredential_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	ok, err := fx.service.VerifyCredential(ctx, userID, "secret")

	assert.Error(t, err)
	assert.False(t, ok)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestUserService_DeactivateUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:          userID,
		Name:        "Jane Miller",
		Email:       "jane.miller@nypd.gov",
		BadgeNumber: "NY-4415",
		Agency:      "NYPD",
		Role:        entity.RoleOfficer,
		IsActive:    true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(existing, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.DeactivateUser(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive)
}

func TestUserService_RecordLogin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	existing := &entity.User{
		ID:          userID,
		Name:        "Jane Miller",
		Email:       "jane.miller@nypd.gov",
		BadgeNumber: "NY-4415",
		Agency:      "NYPD",
		Role:        entity.RoleOfficer,
		IsActive:    true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(existing, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					require.NotNil(t, user.LastLogin)
					assert.True(t, user.LastLogin.Equal(at))
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RecordLogin(ctx, userID, at)

	require.NoError(t, err)
}
