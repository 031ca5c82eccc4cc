package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Only the repositories used inside multi-step atomic
// operations are exposed here.
type RepositoryFactory interface {
	NewResidentRepository() ResidentRepository
	NewMessageRepository() MessageRepository
}

// TransactionManager runs a function within one database transaction.
type TransactionManager interface {
	// Execute begins a transaction, hands the callback a factory bound to
	// it, and commits on success or rolls back on error.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
