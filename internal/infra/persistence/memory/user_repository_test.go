package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"casefile/internal/domain/entity"
	"casefile/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredUser(t *testing.T, repo repository.UserRepository, email, badge string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Jane Miller",
		Email:        email,
		PasswordHash: "$2a$10$storedhash",
		BadgeNumber:  badge,
		Agency:       "NYPD",
		Role:         entity.RoleOfficer,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created := newStoredUser(t, repo, "jane.miller@nypd.gov", "NY-4415")

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "jane.miller@nypd.gov")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestUserRepository_Find_NotFound(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@nypd.gov")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	newStoredUser(t, repo, "jane.miller@nypd.gov", "NY-4415")

	duplicate := &entity.User{
		ID:          uuid.New(),
		Name:        "Other Person",
		Email:       "jane.miller@nypd.gov",
		BadgeNumber: "NY-9999",
		Agency:      "NYPD",
		Role:        entity.RoleOfficer,
	}
	err := repo.Create(ctx, duplicate)

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	// The rejected write left no trace.
	_, err = repo.FindByID(ctx, duplicate.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateBadgeNumber(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	newStoredUser(t, repo, "jane.miller@nypd.gov", "NY-4415")

	duplicate := &entity.User{
		ID:          uuid.New(),
		Name:        "Other Person",
		Email:       "other@nypd.gov",
		BadgeNumber: "NY-4415",
		Agency:      "NYPD",
		Role:        entity.RoleOfficer,
	}
	err := repo.Create(ctx, duplicate)

	assert.ErrorIs(t, err, repository.ErrDuplicateBadgeNumber)
}

func TestUserRepository_ConcurrentCreateSameEmail_ExactlyOneWins(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	const contenders = 16

	var successes atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(ctx, &entity.User{
				ID:          uuid.New(),
				Name:        "Contender",
				Email:       "contested@nypd.gov",
				BadgeNumber: fmt.Sprintf("NY-%04d", i),
				Agency:      "NYPD",
				Role:        entity.RoleOfficer,
			})
			if err == nil {
				successes.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())

	_, err := repo.FindByEmail(ctx, "contested@nypd.gov")
	assert.NoError(t, err)
}

func TestUserRepository_Update_ReindexesUniqueFields(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created := newStoredUser(t, repo, "jane.miller@nypd.gov", "NY-4415")

	patched := *created
	patched.Email = "j.miller@nypd.gov"
	require.NoError(t, repo.Update(ctx, &patched))

	// The old email is free again, the new one resolves.
	_, err := repo.FindByEmail(ctx, "jane.miller@nypd.gov")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	found, err := repo.FindByEmail(ctx, "j.miller@nypd.gov")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestUserRepository_Update_ConflictLeavesPriorState(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	newStoredUser(t, repo, "taken@nypd.gov", "NY-0001")
	victim := newStoredUser(t, repo, "jane.miller@nypd.gov", "NY-4415")

	patched := *victim
	patched.Email = "taken@nypd.gov"
	patched.Department = "Homicide"
	err := repo.Update(ctx, &patched)

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	// The failed write changed nothing.
	found, err := repo.FindByID(ctx, victim.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane.miller@nypd.gov", found.Email)
	assert.Empty(t, found.Department)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	repo := NewUserRepository()

	err := repo.Update(context.Background(), &entity.User{
		ID:          uuid.New(),
		Name:        "Ghost",
		Email:       "ghost@nypd.gov",
		BadgeNumber: "NY-0000",
		Agency:      "NYPD",
	})

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
