package commands_test

import (
	"errors"
	"testing"
	"time"

	"fieldroutes/internal/core/application/usecases/commands"
	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/workorder"
	"fieldroutes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var transitionNow = time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC)

type transitionFixture struct {
	workOrders    *MockWorkOrderRepository
	cancellations *MockCancellationRepository
	uow           *MockUoW
	factory       *MockTransitionUoWFactory
	handler       commands.ApplyTransitionCommandHandler
}

func newTransitionFixture() *transitionFixture {
	f := &transitionFixture{
		workOrders:    new(MockWorkOrderRepository),
		cancellations: new(MockCancellationRepository),
		uow:           new(MockUoW),
		factory:       new(MockTransitionUoWFactory),
	}
	f.handler = commands.NewApplyTransitionCommandHandler(f.factory, kernel.FixedClock(transitionNow))
	return f
}

func (f *transitionFixture) assertExpectations(t *testing.T) {
	f.workOrders.AssertExpectations(t)
	f.cancellations.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func workOrder(t *testing.T, status string, prodID *int64, startedAt *time.Time) *workorder.WorkOrder {
	t.Helper()
	var prod *kernel.ID
	if prodID != nil {
		id := kernel.MustNewID(*prodID)
		prod = &id
	}
	wo, err := workorder.RestoreWorkOrder(workorder.Snapshot{
		ReportID:  kernel.MustNewID(7),
		ProdID:    prod,
		Status:    workorder.RestoreStatus(status),
		StartedAt: startedAt,
	})
	require.NoError(t, err)
	return wo
}

func command(t *testing.T, status, comment string) commands.ApplyTransitionCommand {
	t.Helper()
	cmd, err := commands.NewApplyTransitionCommand(7, status, nil, nil, comment, nil)
	require.NoError(t, err)
	return cmd
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestApplyTransitionCommandHandler_EnRoute(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture()
	reportID := kernel.MustNewID(7)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("WorkOrderRepository").Return(f.workOrders).Once(),
		f.uow.On("CancellationRepository").Return(f.cancellations).Once(),
		f.workOrders.On("GetForUpdate", ctx, reportID).
			Return(workOrder(t, "pendiente", int64Ptr(70), nil), nil).Once(),
		f.workOrders.On("ApplyPatch", ctx, reportID, mock.MatchedBy(func(p workorder.Patch) bool {
			return p.Status.String() == "En camino" &&
				p.StartedAt != nil && p.StartedAt.Equal(transitionNow) &&
				p.EndedAt == nil && p.Comment == nil && p.Rating == nil
		})).Return(int64(1), nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	result, err := f.handler.Handle(ctx, command(t, "en camino", ""))

	require.NoError(t, err)
	assert.Equal(t, commands.TransitionResult{Success: true, RowsUpdated: 1}, result)
	f.assertExpectations(t)
	f.cancellations.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestApplyTransitionCommandHandler_SecondEnRouteKeepsStart(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture()
	started := transitionNow.Add(-time.Hour)

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("WorkOrderRepository").Return(f.workOrders).Once()
	f.uow.On("CancellationRepository").Return(f.cancellations).Once()
	f.workOrders.On("GetForUpdate", ctx, kernel.MustNewID(7)).
		Return(workOrder(t, "En camino", int64Ptr(70), &started), nil).Once()
	f.workOrders.On("ApplyPatch", ctx, kernel.MustNewID(7), mock.MatchedBy(func(p workorder.Patch) bool {
		return p.StartedAt == nil
	})).Return(int64(1), nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, command(t, "en camino", ""))

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestApplyTransitionCommandHandler_Cancel(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture()
	reportID := kernel.MustNewID(7)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("WorkOrderRepository").Return(f.workOrders).Once(),
		f.uow.On("CancellationRepository").Return(f.cancellations).Once(),
		f.workOrders.On("GetForUpdate", ctx, reportID).
			Return(workOrder(t, "En camino", int64Ptr(70), nil), nil).Once(),
		f.workOrders.On("ApplyPatch", ctx, reportID, mock.MatchedBy(func(p workorder.Patch) bool {
			return p.Status.String() == "Cancelado" &&
				p.EndedAt != nil && p.EndedAt.Equal(transitionNow) &&
				p.Comment != nil && *p.Comment == "cliente no disponible"
		})).Return(int64(1), nil).Once(),
		f.cancellations.On("Add", ctx, mock.MatchedBy(func(r workorder.CancellationRecord) bool {
			return r.ProdID().Int64() == 70 && r.Reason() == "cliente no disponible"
		})).Return(int64(1), nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	result, err := f.handler.Handle(ctx, command(t, "cancelado", "cliente no disponible"))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(1), result.RowsUpdated)
	require.NotNil(t, result.Cancellation)
	assert.Equal(t, commands.CancellationResult{
		Attempted: true,
		Inserted:  true,
		Rows:      1,
		ProdID:    kernel.MustNewID(70),
	}, *result.Cancellation)
	f.assertExpectations(t)
}

func TestApplyTransitionCommandHandler_CancelDefaultReason(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("WorkOrderRepository").Return(f.workOrders).Once()
	f.uow.On("CancellationRepository").Return(f.cancellations).Once()
	f.workOrders.On("GetForUpdate", ctx, kernel.MustNewID(7)).
		Return(workOrder(t, "Pendiente", int64Ptr(70), nil), nil).Once()
	f.workOrders.On("ApplyPatch", ctx, kernel.MustNewID(7), mock.Anything).Return(int64(1), nil).Once()
	f.cancellations.On("Add", ctx, mock.MatchedBy(func(r workorder.CancellationRecord) bool {
		return r.Reason() == workorder.DefaultCancellationReason
	})).Return(int64(1), nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, command(t, "Cancelado", ""))

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestApplyTransitionCommandHandler_AlreadyCompletedWritesNothing(t *testing.T) {
	for _, status := range []string{"en camino", "cancelado", "completado", "Pendiente"} {
		t.Run(status, func(t *testing.T) {
			ctx := t.Context()
			f := newTransitionFixture()

			mock.InOrder(
				f.factory.On("Create").Return(f.uow).Once(),
				f.uow.On("Begin", ctx).Return(nil).Once(),
				f.uow.On("WorkOrderRepository").Return(f.workOrders).Once(),
				f.uow.On("CancellationRepository").Return(f.cancellations).Once(),
				f.workOrders.On("GetForUpdate", ctx, kernel.MustNewID(7)).
					Return(workOrder(t, "Completado", int64Ptr(70), nil), nil).Once(),
				f.uow.On("Rollback", ctx).Return(nil).Once(),
			)

			result, err := f.handler.Handle(ctx, command(t, status, "x"))

			require.NoError(t, err)
			assert.Equal(t, commands.TransitionResult{Success: true, Skipped: workorder.SkipAlreadyCompleted}, result)
			f.assertExpectations(t)
			f.workOrders.AssertNotCalled(t, "ApplyPatch", mock.Anything, mock.Anything, mock.Anything)
			f.cancellations.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestApplyTransitionCommandHandler_NotFound(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture()
	notFound := errs.NewObjectNotFoundError("work order", int64(999))

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("WorkOrderRepository").Return(f.workOrders).Once()
	f.uow.On("CancellationRepository").Return(f.cancellations).Once()
	f.workOrders.On("GetForUpdate", ctx, kernel.MustNewID(999)).Return(nil, notFound).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewApplyTransitionCommand(999, "en camino", nil, nil, "", nil)
	require.NoError(t, err)

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestApplyTransitionCommandHandler_MissingProdID(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("WorkOrderRepository").Return(f.workOrders).Once()
	f.uow.On("CancellationRepository").Return(f.cancellations).Once()
	f.workOrders.On("GetForUpdate", ctx, kernel.MustNewID(7)).
		Return(workOrder(t, "En camino", nil, nil), nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, command(t, "cancelado", ""))

	require.ErrorIs(t, err, errs.ErrConsistency)
	f.assertExpectations(t)
	f.workOrders.AssertNotCalled(t, "ApplyPatch", mock.Anything, mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApplyTransitionCommandHandler_CancellationInsertFailsRollsBack(t *testing.T) {
	tests := []struct {
		name    string
		addErr  error
		rows    int64
		wantErr error
	}{
		{name: "storage failure", addErr: errors.New("connection reset"), wantErr: errs.ErrPersistence},
		{name: "foreign key", addErr: errs.NewConsistencyError("unknown prod id"), wantErr: errs.ErrConsistency},
		{name: "nothing inserted", rows: 0, wantErr: errs.ErrConsistency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newTransitionFixture()

			f.factory.On("Create").Return(f.uow).Once()
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.uow.On("WorkOrderRepository").Return(f.workOrders).Once()
			f.uow.On("CancellationRepository").Return(f.cancellations).Once()
			f.workOrders.On("GetForUpdate", ctx, kernel.MustNewID(7)).
				Return(workOrder(t, "En camino", int64Ptr(70), nil), nil).Once()
			f.workOrders.On("ApplyPatch", ctx, kernel.MustNewID(7), mock.Anything).Return(int64(1), nil).Once()
			f.cancellations.On("Add", ctx, mock.Anything).Return(tt.rows, tt.addErr).Once()
			f.uow.On("Rollback", ctx).Return(nil).Once()

			_, err := f.handler.Handle(ctx, command(t, "cancelado", ""))

			require.ErrorIs(t, err, tt.wantErr)
			f.assertExpectations(t)
			f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestApplyTransitionCommandHandler_PersistenceErrors(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		ctx := t.Context()
		f := newTransitionFixture()

		mock.InOrder(
			f.factory.On("Create").Return(f.uow).Once(),
			f.uow.On("Begin", ctx).Return(errors.New("pool exhausted")).Once(),
		)

		_, err := f.handler.Handle(ctx, command(t, "en camino", ""))

		require.ErrorIs(t, err, errs.ErrPersistence)
		assert.Contains(t, err.Error(), "pool exhausted")
	})

	t.Run("read", func(t *testing.T) {
		ctx := t.Context()
		f := newTransitionFixture()

		f.factory.On("Create").Return(f.uow).Once()
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("WorkOrderRepository").Return(f.workOrders).Once()
		f.uow.On("CancellationRepository").Return(f.cancellations).Once()
		f.workOrders.On("GetForUpdate", ctx, kernel.MustNewID(7)).Return(nil, errors.New("timeout")).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		_, err := f.handler.Handle(ctx, command(t, "en camino", ""))

		require.ErrorIs(t, err, errs.ErrPersistence)
		f.assertExpectations(t)
	})

	t.Run("update", func(t *testing.T) {
		ctx := t.Context()
		f := newTransitionFixture()

		f.factory.On("Create").Return(f.uow).Once()
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("WorkOrderRepository").Return(f.workOrders).Once()
		f.uow.On("CancellationRepository").Return(f.cancellations).Once()
		f.workOrders.On("GetForUpdate", ctx, kernel.MustNewID(7)).
			Return(workOrder(t, "Pendiente", int64Ptr(70), nil), nil).Once()
		f.workOrders.On("ApplyPatch", ctx, kernel.MustNewID(7), mock.Anything).
			Return(int64(0), errors.New("deadlock detected")).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		_, err := f.handler.Handle(ctx, command(t, "cancelado", ""))

		require.ErrorIs(t, err, errs.ErrPersistence)
		f.assertExpectations(t)
		f.cancellations.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("commit", func(t *testing.T) {
		ctx := t.Context()
		f := newTransitionFixture()

		f.factory.On("Create").Return(f.uow).Once()
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("WorkOrderRepository").Return(f.workOrders).Once()
		f.uow.On("CancellationRepository").Return(f.cancellations).Once()
		f.workOrders.On("GetForUpdate", ctx, kernel.MustNewID(7)).
			Return(workOrder(t, "Pendiente", int64Ptr(70), nil), nil).Once()
		f.workOrders.On("ApplyPatch", ctx, kernel.MustNewID(7), mock.Anything).Return(int64(1), nil).Once()
		f.uow.On("Commit", ctx).Return(errors.New("serialization failure")).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		_, err := f.handler.Handle(ctx, command(t, "completado", ""))

		require.ErrorIs(t, err, errs.ErrPersistence)
		f.assertExpectations(t)
	})
}

func TestApplyTransitionCommandHandler_NotConstructed(t *testing.T) {
	f := newTransitionFixture()

	_, err := f.handler.Handle(t.Context(), commands.ApplyTransitionCommand{})

	require.ErrorIs(t, err, commands.ErrApplyTransitionCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}
