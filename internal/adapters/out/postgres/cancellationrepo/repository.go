package cancellationrepo

import (
	"context"
	"errors"

	"fieldroutes/internal/core/domain/model/workorder"
	"fieldroutes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCancellationRepository implements CancellationRepository using GORM.
type GormCancellationRepository struct {
	db *gorm.DB
}

func NewGormCancellationRepository(db *gorm.DB) *GormCancellationRepository {
	return &GormCancellationRepository{db: db}
}

// Add inserts a cancellation record. The connection must be opened with
// TranslateError so foreign key violations are recognized.
func (r *GormCancellationRepository) Add(ctx context.Context, record workorder.CancellationRecord) (int64, error) {
	if err := record.ProdID().Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Omit("WorkOrder").Create(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return 0, errs.NewConsistencyErrorWithCause(
				"cancellation references unknown prod id "+record.ProdID().String(), result.Error)
		}
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
