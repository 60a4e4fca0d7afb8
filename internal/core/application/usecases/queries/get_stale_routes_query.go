package queries

import (
	"errors"
	"fmt"
	"time"

	"fieldroutes/internal/pkg/errs"
	"fieldroutes/internal/pkg/guard"
)

var ErrGetStaleRoutesQueryIsNotConstructed = errors.New(
	"GetStaleRoutesQuery must be created via NewGetStaleRoutesQuery constructor",
)

// GetStaleRoutesQuery finds work orders that have been en route for longer than olderThan.
type GetStaleRoutesQuery struct {
	olderThan time.Duration
	guard     guard.ConstructorGuard
}

func NewGetStaleRoutesQuery(olderThan time.Duration) (GetStaleRoutesQuery, error) {
	if olderThan <= 0 {
		return GetStaleRoutesQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan", fmt.Errorf("%s is not a positive duration", olderThan))
	}
	return GetStaleRoutesQuery{olderThan: olderThan, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStaleRoutesQuery) OlderThan() time.Duration {
	return q.olderThan
}

func (q GetStaleRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleRoutesQueryIsNotConstructed)
}

type GetStaleRoutesQueryResponse struct {
	ReportID     int64
	TechnicianID *int64
	StartedAt    time.Time
}
