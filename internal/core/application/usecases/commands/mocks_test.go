package commands_test

import (
	"context"

	"fieldroutes/internal/core/application/usecases/commands"
	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/technician"
	"fieldroutes/internal/core/domain/model/workorder"
	"fieldroutes/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.ID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) ApplyPatch(ctx context.Context, id kernel.ID, patch workorder.Patch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

type MockCancellationRepository struct{ mock.Mock }

func (m *MockCancellationRepository) Add(ctx context.Context, record workorder.CancellationRecord) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

type MockTechnicianRepository struct{ mock.Mock }

func (m *MockTechnicianRepository) Get(ctx context.Context, id kernel.ID) (*technician.Technician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*technician.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// MockUoW satisfies both TransitionUoW and TechnicianUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockUoW) CancellationRepository() ports.CancellationRepository {
	args := m.Called()
	return args.Get(0).(ports.CancellationRepository)
}

func (m *MockUoW) TechnicianRepository() ports.TechnicianRepository {
	args := m.Called()
	return args.Get(0).(ports.TechnicianRepository)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockTechnicianUoWFactory struct{ mock.Mock }

func (m *MockTechnicianUoWFactory) Create() commands.TechnicianUoW {
	args := m.Called()
	return args.Get(0).(commands.TechnicianUoW)
}
