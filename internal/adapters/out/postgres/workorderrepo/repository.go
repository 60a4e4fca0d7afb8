package workorderrepo

import (
	"context"
	"errors"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/workorder"
	"fieldroutes/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applyPatchSQL writes status unconditionally; NULL parameters keep the stored value.
const applyPatchSQL = `
UPDATE work_orders
SET status     = ?,
    started_at = COALESCE(?, started_at),
    ended_at   = COALESCE(?, ended_at),
    comment    = COALESCE(?, comment),
    rating     = COALESCE(?, rating)
WHERE report_id = ?`

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db *gorm.DB
}

func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

// Get retrieves a work order by report id.
func (r *GormWorkOrderRepository) Get(ctx context.Context, reportID kernel.ID) (*workorder.WorkOrder, error) {
	return r.find(r.db.WithContext(ctx), reportID)
}

// GetForUpdate retrieves a work order with SELECT ... FOR UPDATE.
// Outside a transaction the lock is released as soon as the statement ends.
func (r *GormWorkOrderRepository) GetForUpdate(ctx context.Context, reportID kernel.ID) (*workorder.WorkOrder, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), reportID)
}

func (r *GormWorkOrderRepository) find(db *gorm.DB, reportID kernel.ID) (*workorder.WorkOrder, error) {
	if err := reportID.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := db.First(&dto, "report_id = ?", reportID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order", reportID.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ApplyPatch runs one parameterized UPDATE and returns the affected row count.
func (r *GormWorkOrderRepository) ApplyPatch(ctx context.Context, reportID kernel.ID, patch workorder.Patch) (int64, error) {
	if err := reportID.Validate(); err != nil {
		return 0, err
	}
	if patch.Status.IsEmpty() {
		return 0, errs.NewValueIsRequiredError("status")
	}

	result := r.db.WithContext(ctx).Exec(applyPatchSQL,
		patch.Status.String(),
		patch.StartedAt,
		patch.EndedAt,
		patch.Comment,
		patch.Rating,
		reportID.Int64(),
	)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
