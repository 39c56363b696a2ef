// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"casefile/internal/domain/entity"
	domainerrors "casefile/internal/domain/errors"
	"casefile/internal/domain/repository"
	"casefile/internal/domain/service"
	"casefile/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	validate  *validator.Validate
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    params.Logger,
	}
}

// CreateUser registers a new account. The password is hashed exactly once
// before persisting; the store's unique indexes decide email/badge conflicts.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	role := entity.RoleOfficer
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrInvalidRole.WithDetails(input.Role)
		}
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		BadgeNumber:  input.BadgeNumber,
		Agency:       input.Agency,
		Role:         role,
		Department:   input.Department,
		Phone:        input.Phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, mapUserRepoError(err)
	}

	srv.logger.Info("User created",
		slog.String("userID", user.ID.String()),
		slog.String("agency", user.Agency),
		slog.Any("role", user.Role),
	)

	return user, nil
}

// GetUser retrieves a single account by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserRepoError(err)
	}

	return user, nil
}

// UpdateUser merges the patch into the existing account inside one transaction.
// The hashing transform runs only when the patch carries a new plaintext: a
// nil Password leaves the stored hash byte-for-byte unchanged. Re-hashing the
// stored artifact must never happen; hash outputs are not self-describing.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return mapUserRepoError(err)
		}

		if err := srv.applyUserUpdates(user, input); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return mapUserRepoError(err)
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("User updated", slog.String("userID", id.String()))

	return updated, nil
}

// applyUserUpdates applies the patch to a user. Presence of a plaintext is
// the only trigger for the hashing transform.
func (srv *userService) applyUserUpdates(user *entity.User, input *usecase.UpdateUserInput) error {
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		passwordHash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
		}
		user.PasswordHash = passwordHash
	}
	if input.BadgeNumber != nil {
		user.BadgeNumber = *input.BadgeNumber
	}
	if input.Agency != nil {
		user.Agency = *input.Agency
	}
	if input.Role != nil {
		role := entity.Role(*input.Role)
		if !role.IsValid() {
			return domainerrors.ErrInvalidRole.WithDetails(*input.Role)
		}
		user.Role = role
	}
	if input.Department != nil {
		user.Department = *input.Department
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if user.Name == "" || user.Email == "" || user.BadgeNumber == "" || user.Agency == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name, email, badge number and agency must not be empty")
	}

	return nil
}

// VerifyCredential reports whether plaintext matches the stored hash.
// A wrong password is a normal false result, never an error.
func (srv *userService) VerifyCredential(ctx context.Context, id uuid.UUID, plaintext string) (bool, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return false, mapUserRepoError(err)
	}

	return srv.hasher.Check(plaintext, user.PasswordHash), nil
}

// DeactivateUser flips the soft-delete flag. Hard deletion does not exist.
func (srv *userService) DeactivateUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	inactive := false

	return srv.UpdateUser(ctx, id, &usecase.UpdateUserInput{IsActive: &inactive})
}

// RecordLogin stamps LastLogin inside one transaction.
func (srv *userService) RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return mapUserRepoError(err)
		}

		user.LastLogin = &at

		if err := userRepo.Update(ctx, user); err != nil {
			return mapUserRepoError(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Login recorded", slog.String("userID", id.String()))

	return nil
}

// mapUserRepoError translates persistence sentinels onto the error taxonomy.
func mapUserRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrEmailAlreadyRegistered
	case errors.Is(err, repository.ErrDuplicateBadgeNumber):
		return domainerrors.ErrBadgeNumberInUse
	default:
		return err
	}
}
