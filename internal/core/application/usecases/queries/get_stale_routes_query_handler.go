package queries

import (
	"context"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/workorder"

	"gorm.io/gorm"
)

type GetStaleRoutesQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetStaleRoutesQueryHandler(db *gorm.DB, clock kernel.Clock) GetStaleRoutesQueryHandler {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return GetStaleRoutesQueryHandler{db: db, clock: clock}
}

// Handle lists en-route work orders started before now minus the query threshold, oldest first.
func (h GetStaleRoutesQueryHandler) Handle(ctx context.Context, query GetStaleRoutesQuery) ([]GetStaleRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := h.clock.Now().Add(-query.OlderThan())

	stale := make([]GetStaleRoutesQueryResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			report_id,
			technician_id,
			started_at
		FROM work_orders
		WHERE status = ?
		  AND started_at IS NOT NULL
		  AND started_at < ?
		ORDER BY started_at, report_id
	`, workorder.EnRouteText, cutoff).Scan(&stale).Error
	if err != nil {
		return nil, err
	}

	return stale, nil
}
