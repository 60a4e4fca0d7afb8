// Package workorderrepo maps the work order aggregate to the work_orders table.
package workorderrepo

import (
	"time"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/workorder"
)

// WorkOrderDTO is the work_orders row. prod_id is unique so cancellations can reference it.
type WorkOrderDTO struct {
	ReportID     int64      `gorm:"column:report_id;primaryKey;autoIncrement:false"`
	ProdID       *int64     `gorm:"column:prod_id;uniqueIndex"`
	ContractID   string     `gorm:"column:contract_id;not null;default:'';index"`
	TechnicianID *int64     `gorm:"column:technician_id;index"`
	Status       string     `gorm:"column:status;not null;default:''"`
	StartedAt    *time.Time `gorm:"column:started_at"`
	EndedAt      *time.Time `gorm:"column:ended_at"`
	Comment      *string    `gorm:"column:comment"`
	Rating       *int       `gorm:"column:rating"`
}

func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	reportID, err := kernel.NewID(dto.ReportID)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(workorder.Snapshot{
		ReportID:     reportID,
		ProdID:       optionalID(dto.ProdID),
		ContractID:   dto.ContractID,
		TechnicianID: optionalID(dto.TechnicianID),
		Status:       workorder.RestoreStatus(dto.Status),
		StartedAt:    dto.StartedAt,
		EndedAt:      dto.EndedAt,
		Comment:      dto.Comment,
		Rating:       dto.Rating,
	})
}

// optionalID treats legacy zero or negative ids as missing. A work order without
// a production id can still move between statuses; only cancelling it fails.
func optionalID(raw *int64) *kernel.ID {
	if raw == nil {
		return nil
	}
	id, err := kernel.NewID(*raw)
	if err != nil {
		return nil
	}
	return &id
}
