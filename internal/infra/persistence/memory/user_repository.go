package memory

import (
	"context"
	"sync"
	"time"

	"casefile/internal/domain/entity"
	"casefile/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements the domain.UserRepository interface with an
// RWMutex-guarded map. The email and badge number indexes live under the same
// lock as the records, so uniqueness check-and-insert is one atomic step: of
// two concurrent creates claiming the same email exactly one succeeds.
type userRepository struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
	byBadge map[string]uuid.UUID
}

// NewUserRepository is the constructor for the in-memory user repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users:   make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
		byBadge: make(map[string]uuid.UUID),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(stored), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(repo.users[id]), nil
}

// Create persists a new user entity. A uniqueness violation rejects the write
// and leaves prior state unchanged.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	if _, exists := repo.byBadge[user.BadgeNumber]; exists {
		return repository.ErrDuplicateBadgeNumber
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	repo.users[user.ID] = cloneUser(user)
	repo.byEmail[user.Email] = user.ID
	repo.byBadge[user.BadgeNumber] = user.ID

	return nil
}

// Update replaces the user's fields as one whole-record write, re-checking
// both unique indexes. A rejected write leaves prior state unchanged.
func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}

	if user.Email != stored.Email {
		if _, exists := repo.byEmail[user.Email]; exists {
			return repository.ErrDuplicateEmail
		}
	}
	if user.BadgeNumber != stored.BadgeNumber {
		if _, exists := repo.byBadge[user.BadgeNumber]; exists {
			return repository.ErrDuplicateBadgeNumber
		}
	}

	updated := cloneUser(user)
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()

	delete(repo.byEmail, stored.Email)
	delete(repo.byBadge, stored.BadgeNumber)

	repo.users[user.ID] = updated
	repo.byEmail[updated.Email] = user.ID
	repo.byBadge[updated.BadgeNumber] = user.ID

	user.UpdatedAt = updated.UpdatedAt

	return nil
}

func cloneUser(src *entity.User) *entity.User {
	if src == nil {
		return nil
	}

	dst := *src
	if src.LastLogin != nil {
		lastLogin := *src.LastLogin
		dst.LastLogin = &lastLogin
	}

	return &dst
}
