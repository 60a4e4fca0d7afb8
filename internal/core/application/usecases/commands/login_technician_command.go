package commands

import (
	"errors"
	"strings"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/pkg/errs"
	"fieldroutes/internal/pkg/guard"
)

var ErrLoginTechnicianCommandIsNotConstructed = errors.New(
	"LoginTechnicianCommand must be created via NewLoginTechnicianCommand constructor",
)

// LoginTechnicianCommand checks technician credentials and registers the device
// the technician signed in from.
type LoginTechnicianCommand struct {
	technicianID kernel.ID
	password     string
	deviceToken  string

	guard guard.ConstructorGuard
}

// NewLoginTechnicianCommand requires a positive technician id and a password.
// deviceToken is optional.
func NewLoginTechnicianCommand(technicianID int64, password, deviceToken string) (LoginTechnicianCommand, error) {
	var idErr, passwordErr error

	id, err := kernel.NewID(technicianID)
	if err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("idTec", err)
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(idErr, passwordErr); err != nil {
		return LoginTechnicianCommand{}, err
	}

	return LoginTechnicianCommand{
		technicianID: id,
		password:     password,
		deviceToken:  strings.TrimSpace(deviceToken),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c LoginTechnicianCommand) TechnicianID() kernel.ID {
	return c.technicianID
}

func (c LoginTechnicianCommand) Password() string {
	return c.password
}

func (c LoginTechnicianCommand) DeviceToken() string {
	return c.deviceToken
}

func (c LoginTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrLoginTechnicianCommandIsNotConstructed)
}
