package technicianrepo

import (
	"context"
	"errors"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/technician"
	"fieldroutes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTechnicianRepository implements TechnicianRepository using GORM.
type GormTechnicianRepository struct {
	db *gorm.DB
}

func NewGormTechnicianRepository(db *gorm.DB) *GormTechnicianRepository {
	return &GormTechnicianRepository{db: db}
}

// Get retrieves a technician by ID.
func (r *GormTechnicianRepository) Get(ctx context.Context, id kernel.ID) (*technician.Technician, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TechnicianDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("technician", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update stores the technician's device token. Credentials and profile fields
// belong to the back office and are never written here.
func (r *GormTechnicianRepository) Update(ctx context.Context, aggregate *technician.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TechnicianDTO{}).
		Where("id = ?", aggregate.ID().Int64()).
		Update("device_token", aggregate.DeviceToken())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("technician", aggregate.ID().Int64())
	}

	return nil
}
