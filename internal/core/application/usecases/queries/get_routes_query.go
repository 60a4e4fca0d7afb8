// Package queries holds the read side: plain SQL through GORM, no aggregates
// and no transactions.
package queries

import (
	"errors"
	"strings"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/pkg/errs"
	"fieldroutes/internal/pkg/guard"
)

var ErrGetRoutesQueryIsNotConstructed = errors.New(
	"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
)

// GetRoutesQuery lists the work orders of one technician or of one customer contract.
// A contract filter takes precedence when both are given.
//
// Example:
//
//	techID := int64(12)
//	query, err := NewGetRoutesQuery(&techID, "")
//	routes, err := handler.Handle(ctx, query)
type GetRoutesQuery struct {
	technicianID *kernel.ID
	contractID   string

	guard guard.ConstructorGuard
}

func NewGetRoutesQuery(technicianID *int64, contractID string) (GetRoutesQuery, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID != "" {
		return GetRoutesQuery{contractID: contractID, guard: guard.NewConstructorGuard()}, nil
	}

	if technicianID == nil {
		return GetRoutesQuery{}, errs.NewValueIsRequiredError("idTec or idContrato")
	}

	id, err := kernel.NewID(*technicianID)
	if err != nil {
		return GetRoutesQuery{}, errs.NewValueIsInvalidErrorWithCause("idTec", err)
	}

	return GetRoutesQuery{technicianID: &id, guard: guard.NewConstructorGuard()}, nil
}

// TechnicianID is set when the query filters by technician.
func (q GetRoutesQuery) TechnicianID() *kernel.ID {
	return q.technicianID
}

// ContractID is non-empty when the query filters by contract.
func (q GetRoutesQuery) ContractID() string {
	return q.contractID
}

func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}
