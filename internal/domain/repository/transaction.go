package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to run read-modify-write sequences atomically
// without depending on a specific backend.
//
// Concurrency policy: whole-record last-writer-wins. Execute serializes the
// read-modify-write of a record against other transactions on the same store,
// so two concurrent updates to the same record never interleave field-by-field.
type TransactionManager interface {
	// Execute runs a function within a store transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
// This ensures all repository operations within a transaction share one connection
// and that reads taken through it hold the record until commit.
type RepositoryFactory interface {
	// CaseRepo returns a CaseRepository bound to the current transaction.
	CaseRepo() CaseRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository
}
