package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per request.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a single database transaction. Repositories returned after
// Begin read and write through it, so a rollback discards all of their writes.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit and Rollback fail when no transaction is active.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	WorkOrderRepository() WorkOrderRepository
	CancellationRepository() CancellationRepository
	TechnicianRepository() TechnicianRepository
}
