// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fieldroutes/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	CancellationRepoFactory interface {
		CancellationRepository() ports.CancellationRepository
	}

	TechnicianRepoFactory interface {
		TechnicianRepository() ports.TechnicianRepository
	}

	// TransitionUoW spans the work order update and its cancellation record.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   workOrders := uow.WorkOrderRepository()
	//   cancellations := uow.CancellationRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TransitionUoW interface {
		TxManager
		WorkOrderRepoFactory
		CancellationRepoFactory
	}

	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// TechnicianUoW manages transactions for technician-only operations.
	TechnicianUoW interface {
		TxManager
		TechnicianRepoFactory
	}

	TechnicianUoWFactory interface {
		Create() TechnicianUoW
	}
)
