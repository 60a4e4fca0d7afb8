package queries

import (
	"context"

	"fieldroutes/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetTechnicianQueryHandler struct {
	db *gorm.DB
}

func NewGetTechnicianQueryHandler(db *gorm.DB) GetTechnicianQueryHandler {
	return GetTechnicianQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when no technician has the requested id.
func (h GetTechnicianQueryHandler) Handle(ctx context.Context, query GetTechnicianQuery) (GetTechnicianQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTechnicianQueryResponse{}, err
	}

	var found []GetTechnicianQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			number,
			plant
		FROM technicians
		WHERE id = ?
		LIMIT 1
	`, query.ID().Int64()).Scan(&found).Error
	if err != nil {
		return GetTechnicianQueryResponse{}, err
	}

	if len(found) == 0 {
		return GetTechnicianQueryResponse{}, errs.NewObjectNotFoundError("technician", query.ID().Int64())
	}

	return found[0], nil
}
