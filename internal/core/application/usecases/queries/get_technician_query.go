package queries

import (
	"errors"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/pkg/errs"
	"fieldroutes/internal/pkg/guard"
)

var ErrGetTechnicianQueryIsNotConstructed = errors.New(
	"GetTechnicianQuery must be created via NewGetTechnicianQuery constructor",
)

// GetTechnicianQuery fetches the public profile of a technician.
type GetTechnicianQuery struct {
	id    kernel.ID
	guard guard.ConstructorGuard
}

func NewGetTechnicianQuery(id int64) (GetTechnicianQuery, error) {
	techID, err := kernel.NewID(id)
	if err != nil {
		return GetTechnicianQuery{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return GetTechnicianQuery{id: techID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTechnicianQuery) ID() kernel.ID {
	return q.id
}

func (q GetTechnicianQuery) Validate() error {
	return q.guard.Validate(ErrGetTechnicianQueryIsNotConstructed)
}

// GetTechnicianQueryResponse never carries credentials.
type GetTechnicianQueryResponse struct {
	ID     int64
	Name   string
	Number string
	Plant  string
}
