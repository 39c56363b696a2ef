package memory

import (
	"context"
	"sync"

	"casefile/internal/domain/repository"
)

// memoryTransactionManager implements the domain's TransactionManager with a
// store-wide mutex: Execute calls are serialized against each other, so a
// read-modify-write sequence inside Execute can never interleave with another
// transaction. Individual repository operations stay atomic on their own
// locks; this layer only adds the multi-step guarantee.
type memoryTransactionManager struct {
	mu       sync.Mutex
	caseRepo repository.CaseRepository
	userRepo repository.UserRepository
}

// memoryRepositoryFactory hands back the shared repositories; in-process
// there is no connection to bind, the serialization comes from the manager.
type memoryRepositoryFactory struct {
	caseRepo repository.CaseRepository
	userRepo repository.UserRepository
}

// CaseRepo returns the case repository for the current transaction.
func (f *memoryRepositoryFactory) CaseRepo() repository.CaseRepository {
	return f.caseRepo
}

// UserRepo returns the user repository for the current transaction.
func (f *memoryRepositoryFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

// NewTransactionManager is the constructor for memoryTransactionManager.
func NewTransactionManager(caseRepo repository.CaseRepository, userRepo repository.UserRepository) repository.TransactionManager {
	return &memoryTransactionManager{caseRepo: caseRepo, userRepo: userRepo}
}

// Execute runs fn while holding the store-wide lock. There is no rollback:
// callers keep operations inside fn single-record, which matches the
// whole-record last-writer-wins policy of this backend.
func (tm *memoryTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return fn(&memoryRepositoryFactory{caseRepo: tm.caseRepo, userRepo: tm.userRepo})
}
