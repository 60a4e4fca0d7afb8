package cancellationrepo_test

import (
	"context"
	"testing"

	"fieldroutes/internal/adapters/out/postgres/cancellationrepo"
	"fieldroutes/internal/adapters/out/postgres/postgrestest"
	"fieldroutes/internal/adapters/out/postgres/workorderrepo"
	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/workorder"
	"fieldroutes/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type CancellationRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *postgrestest.Database
	repository *cancellationrepo.GormCancellationRepository
}

func (suite *CancellationRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CancellationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = cancellationrepo.NewGormCancellationRepository(suite.database.DB)

	prodID := int64(70)
	suite.Require().NoError(suite.database.DB.Create(&workorderrepo.WorkOrderDTO{
		ReportID: 7,
		ProdID:   &prodID,
		Status:   "En camino",
	}).Error)
}

func (suite *CancellationRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *CancellationRepositoryIntegrationTestSuite) TestAdd_Success() {
	record, err := workorder.NewCancellationRecord(kernel.MustNewID(70), "cliente no disponible")
	suite.Require().NoError(err)

	rows, err := suite.repository.Add(context.Background(), record)

	suite.Require().NoError(err)
	suite.Equal(int64(1), rows)

	var stored []cancellationrepo.CancellationDTO
	suite.Require().NoError(suite.database.DB.Find(&stored, "prod_id = ?", 70).Error)
	suite.Require().Len(stored, 1)
	suite.Equal("cliente no disponible", stored[0].Reason)
	suite.False(stored[0].CreatedAt.IsZero())
}

func (suite *CancellationRepositoryIntegrationTestSuite) TestAdd_EachCancellationIsKept() {
	for range 2 {
		record, err := workorder.NewCancellationRecord(kernel.MustNewID(70), "")
		suite.Require().NoError(err)
		_, err = suite.repository.Add(context.Background(), record)
		suite.Require().NoError(err)
	}

	var count int64
	suite.Require().NoError(suite.database.DB.Model(&cancellationrepo.CancellationDTO{}).
		Where("prod_id = ? AND reason = ?", 70, workorder.DefaultCancellationReason).
		Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *CancellationRepositoryIntegrationTestSuite) TestAdd_UnknownProdID() {
	record, err := workorder.NewCancellationRecord(kernel.MustNewID(71), "")
	suite.Require().NoError(err)

	rows, err := suite.repository.Add(context.Background(), record)

	suite.Require().ErrorIs(err, errs.ErrConsistency)
	suite.Zero(rows)
}

func (suite *CancellationRepositoryIntegrationTestSuite) TestAdd_ZeroRecord() {
	_, err := suite.repository.Add(context.Background(), workorder.CancellationRecord{})

	suite.Require().ErrorIs(err, kernel.ErrIDIsNotConstructed)
}

func TestCancellationRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CancellationRepositoryIntegrationTestSuite))
}
