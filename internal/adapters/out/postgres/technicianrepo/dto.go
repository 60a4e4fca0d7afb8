// Package technicianrepo maps technician accounts to the technicians table.
package technicianrepo

import (
	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/technician"
)

type TechnicianDTO struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name         string  `gorm:"column:name;not null;default:''"`
	Number       string  `gorm:"column:number;not null;default:''"`
	Plant        string  `gorm:"column:plant;not null;default:''"`
	PasswordHash string  `gorm:"column:password_hash;not null;default:''"`
	DeviceToken  *string `gorm:"column:device_token"`
}

func (TechnicianDTO) TableName() string {
	return "technicians"
}

func toDomain(dto TechnicianDTO) (*technician.Technician, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return technician.RestoreTechnician(id, dto.Name, dto.Number, dto.Plant, dto.PasswordHash, dto.DeviceToken)
}
