package commands

import (
	"errors"
	"time"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/workorder"
	"fieldroutes/internal/pkg/errs"
	"fieldroutes/internal/pkg/guard"
)

var ErrApplyTransitionCommandIsNotConstructed = errors.New(
	"ApplyTransitionCommand must be created via NewApplyTransitionCommand constructor",
)

// ApplyTransitionCommand requests a status change on a work order, as sent by
// the technician's device.
//
// Example:
//
//	cmd, err := NewApplyTransitionCommand(7, "cancelado", nil, nil, "cliente no disponible", nil)
//	if err != nil {
//	    return err // ValueIsRequired / ValueIsInvalid
//	}
//	result, err := handler.Handle(ctx, cmd)
type ApplyTransitionCommand struct {
	reportID  kernel.ID
	status    workorder.Status
	startedAt *time.Time
	endedAt   *time.Time
	comment   string
	rating    *int

	guard guard.ConstructorGuard
}

// NewApplyTransitionCommand validates the request. reportID must be positive and
// status non-blank; every other argument is optional.
func NewApplyTransitionCommand(
	reportID int64,
	status string,
	startedAt, endedAt *time.Time,
	comment string,
	rating *int,
) (ApplyTransitionCommand, error) {
	var idErr error
	id, err := kernel.NewID(reportID)
	if err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("idReporte", err)
	}

	parsed, statusErr := workorder.ParseStatus(status)

	if err := errors.Join(idErr, statusErr); err != nil {
		return ApplyTransitionCommand{}, err
	}

	return ApplyTransitionCommand{
		reportID:  id,
		status:    parsed,
		startedAt: startedAt,
		endedAt:   endedAt,
		comment:   comment,
		rating:    rating,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyTransitionCommand) ReportID() kernel.ID {
	return c.reportID
}

func (c ApplyTransitionCommand) Status() workorder.Status {
	return c.status
}

// Request converts the command into the domain transition request.
func (c ApplyTransitionCommand) Request() workorder.TransitionRequest {
	return workorder.TransitionRequest{
		Status:    c.status,
		StartedAt: c.startedAt,
		EndedAt:   c.endedAt,
		Comment:   c.comment,
		Rating:    c.rating,
	}
}

func (c ApplyTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyTransitionCommandIsNotConstructed)
}
