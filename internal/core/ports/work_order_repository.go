// Package ports defines the persistence contracts the field routing core depends on.
// Adapters under internal/adapters/out implement them; command handlers receive
// them through a unit of work so every call shares one transaction.
package ports

import (
	"context"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work orders.
type WorkOrderRepository interface {
	// Get loads a work order by report id without locking it.
	Get(ctx context.Context, reportID kernel.ID) (*workorder.WorkOrder, error)

	// GetForUpdate loads a work order and locks its row until the surrounding
	// transaction ends, so concurrent transitions on the same report serialize.
	GetForUpdate(ctx context.Context, reportID kernel.ID) (*workorder.WorkOrder, error)

	// ApplyPatch writes patch to the work order row and returns the affected row count.
	ApplyPatch(ctx context.Context, reportID kernel.ID, patch workorder.Patch) (int64, error)
}

// CancellationRepository appends cancellation audit records.
type CancellationRepository interface {
	// Add inserts record and returns the affected row count.
	// A production id with no matching work order fails with a consistency error.
	Add(ctx context.Context, record workorder.CancellationRecord) (int64, error)
}
