package commands

import (
	"context"
	"errors"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/pkg/errs"
)

// LoginTechnicianResult is the profile returned to a signed-in technician.
type LoginTechnicianResult struct {
	ID     kernel.ID
	Name   string
	Number string
	Plant  string
}

// LoginTechnicianCommandHandler verifies credentials and stores the device token.
//
// Errors:
//   - errs.ErrObjectNotFound for an unknown technician
//   - technician.ErrInvalidCredentials for a wrong password
//   - errs.ErrPersistence for storage failures
type LoginTechnicianCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

func NewLoginTechnicianCommandHandler(uowFactory TechnicianUoWFactory) LoginTechnicianCommandHandler {
	return LoginTechnicianCommandHandler{uowFactory: uowFactory}
}

func (h LoginTechnicianCommandHandler) Handle(ctx context.Context, command LoginTechnicianCommand) (LoginTechnicianResult, error) {
	if err := command.Validate(); err != nil {
		return LoginTechnicianResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginTechnicianResult{}, errs.NewPersistenceError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	technicians := uow.TechnicianRepository()

	tech, err := technicians.Get(ctx, command.TechnicianID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginTechnicianResult{}, err
	}
	if err != nil {
		return LoginTechnicianResult{}, errs.NewPersistenceError("read technician", err)
	}

	if err := tech.VerifyPassword(command.Password()); err != nil {
		return LoginTechnicianResult{}, err
	}

	if token := command.DeviceToken(); token != "" {
		if err := tech.RegisterDeviceToken(token); err != nil {
			return LoginTechnicianResult{}, err
		}
		if err := technicians.Update(ctx, tech); err != nil {
			return LoginTechnicianResult{}, errs.NewPersistenceError("store device token", err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return LoginTechnicianResult{}, errs.NewPersistenceError("commit", err)
	}

	return LoginTechnicianResult{
		ID:     tech.ID(),
		Name:   tech.Name(),
		Number: tech.Number(),
		Plant:  tech.Plant(),
	}, nil
}
