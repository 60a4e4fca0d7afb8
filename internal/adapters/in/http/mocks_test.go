package http_test

import (
	"context"

	"fieldroutes/internal/core/application/usecases/commands"
	"fieldroutes/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockTransitionHandler struct{ mock.Mock }

func (m *MockTransitionHandler) Handle(ctx context.Context, command commands.ApplyTransitionCommand) (commands.TransitionResult, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(commands.TransitionResult), args.Error(1)
}

type MockLoginHandler struct{ mock.Mock }

func (m *MockLoginHandler) Handle(ctx context.Context, command commands.LoginTechnicianCommand) (commands.LoginTechnicianResult, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(commands.LoginTechnicianResult), args.Error(1)
}

type MockRoutesHandler struct{ mock.Mock }

func (m *MockRoutesHandler) Handle(ctx context.Context, query queries.GetRoutesQuery) ([]queries.GetRoutesQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetRoutesQueryResponse), args.Error(1)
}

type MockTechnicianHandler struct{ mock.Mock }

func (m *MockTechnicianHandler) Handle(ctx context.Context, query queries.GetTechnicianQuery) (queries.GetTechnicianQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetTechnicianQueryResponse), args.Error(1)
}
