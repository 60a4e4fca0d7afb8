package postgres

import (
	"context"
	"fmt"

	"fieldroutes/internal/adapters/out/postgres/cancellationrepo"
	"fieldroutes/internal/adapters/out/postgres/technicianrepo"
	"fieldroutes/internal/adapters/out/postgres/workorderrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CustomerDTO is the customers row, keyed by contract. Maintained by the billing system.
type CustomerDTO struct {
	ContractID string `gorm:"column:contract_id;primaryKey"`
	Name       string `gorm:"column:name;not null;default:''"`
	Address    string `gorm:"column:address;not null;default:''"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// ProblemReportDTO holds the problem a customer reported for a work order.
type ProblemReportDTO struct {
	ReportID int64  `gorm:"column:report_id;primaryKey;autoIncrement:false"`
	Problem  string `gorm:"column:problem;not null;default:''"`
}

func (ProblemReportDTO) TableName() string {
	return "problem_reports"
}

// Open connects to PostgreSQL. Driver errors are translated so callers can
// match gorm.ErrForeignKeyViolated and gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or extends every table the service reads or writes.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&workorderrepo.WorkOrderDTO{},
		&cancellationrepo.CancellationDTO{},
		&technicianrepo.TechnicianDTO{},
		&CustomerDTO{},
		&ProblemReportDTO{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
