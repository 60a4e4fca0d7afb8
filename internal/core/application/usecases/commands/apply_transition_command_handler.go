package commands

import (
	"context"
	"errors"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/workorder"
	"fieldroutes/internal/pkg/errs"
)

// TransitionResult reports what a transition wrote.
type TransitionResult struct {
	Success      bool
	RowsUpdated  int64
	Skipped      workorder.SkipReason
	Cancellation *CancellationResult
}

// CancellationResult describes the audit insert of a cancellation.
type CancellationResult struct {
	Attempted bool
	Inserted  bool
	Rows      int64
	ProdID    kernel.ID
}

// ApplyTransitionCommandHandler runs a status transition inside one transaction:
// lock the work order row, let the aggregate compute the patch, write it and the
// cancellation record, then commit. Any failure rolls back everything.
//
// Errors:
//   - errs.ErrObjectNotFound when the report does not exist
//   - errs.ErrValueIsRequired / errs.ErrValueIsInvalid for malformed commands
//   - errs.ErrConsistency when a cancellation cannot be tied to a production id
//   - errs.ErrPersistence for storage failures
type ApplyTransitionCommandHandler struct {
	uowFactory TransitionUoWFactory
	clock      kernel.Clock
}

func NewApplyTransitionCommandHandler(uowFactory TransitionUoWFactory, clock kernel.Clock) ApplyTransitionCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return ApplyTransitionCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ApplyTransitionCommandHandler) Handle(ctx context.Context, command ApplyTransitionCommand) (TransitionResult, error) {
	if err := command.Validate(); err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, errs.NewPersistenceError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workOrders := uow.WorkOrderRepository()
	cancellations := uow.CancellationRepository()

	wo, err := workOrders.GetForUpdate(ctx, command.ReportID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return TransitionResult{}, err
	}
	if err != nil {
		return TransitionResult{}, errs.NewPersistenceError("read work order", err)
	}

	outcome, err := wo.Transition(command.Request(), h.clock.Now())
	if err != nil {
		return TransitionResult{}, err
	}

	if outcome.IsSkipped() {
		return TransitionResult{Success: true, Skipped: outcome.Skipped}, nil
	}

	rows, err := workOrders.ApplyPatch(ctx, wo.ReportID(), outcome.Patch)
	if err != nil {
		return TransitionResult{}, errs.NewPersistenceError("update work order", err)
	}

	result := TransitionResult{Success: true, RowsUpdated: rows}

	if record := outcome.Cancellation; record != nil {
		inserted, err := cancellations.Add(ctx, *record)
		if errors.Is(err, errs.ErrConsistency) {
			return TransitionResult{}, err
		}
		if err != nil {
			return TransitionResult{}, errs.NewPersistenceError("insert cancellation", err)
		}
		if inserted != 1 {
			return TransitionResult{}, errs.NewConsistencyError("cancellation record was not inserted")
		}

		result.Cancellation = &CancellationResult{
			Attempted: true,
			Inserted:  true,
			Rows:      inserted,
			ProdID:    record.ProdID(),
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return TransitionResult{}, errs.NewPersistenceError("commit", err)
	}

	return result, nil
}
