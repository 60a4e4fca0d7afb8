// Package cancellationrepo persists cancellation audit records.
package cancellationrepo

import (
	"time"

	"fieldroutes/internal/adapters/out/postgres/workorderrepo"
	"fieldroutes/internal/core/domain/model/workorder"
)

// CancellationDTO is the cancellations row. It references work_orders by prod_id, not report_id.
type CancellationDTO struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ProdID    int64     `gorm:"column:prod_id;not null;index"`
	Reason    string    `gorm:"column:reason;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	WorkOrder *workorderrepo.WorkOrderDTO `gorm:"foreignKey:ProdID;references:ProdID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (CancellationDTO) TableName() string {
	return "cancellations"
}

func fromDomain(record workorder.CancellationRecord) CancellationDTO {
	return CancellationDTO{
		ProdID: record.ProdID().Int64(),
		Reason: record.Reason(),
	}
}
