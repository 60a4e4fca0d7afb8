package cmd

import (
	"log/slog"

	api "fieldroutes/internal/adapters/in/http"
	"fieldroutes/internal/adapters/out/postgres"
	"fieldroutes/internal/core/application/usecases/commands"
	"fieldroutes/internal/core/application/usecases/queries"
	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/ports"
	"fieldroutes/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      kernel.SystemClock{},
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateApplyTransitionCommandHandler() commands.ApplyTransitionCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyTransitionCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateLoginTechnicianCommandHandler() commands.LoginTechnicianCommandHandler {
	var f commands.TechnicianUoWFactory = FuncTechnicianUoWFactory(func() commands.TechnicianUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginTechnicianCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTechnicianQueryHandler() queries.GetTechnicianQueryHandler {
	return queries.NewGetTechnicianQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleRoutesQueryHandler() queries.GetStaleRoutesQueryHandler {
	return queries.NewGetStaleRoutesQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateHTTPServer() *api.Server {
	return api.NewServer(
		c.CreateApplyTransitionCommandHandler(),
		c.CreateLoginTechnicianCommandHandler(),
		c.CreateGetRoutesQueryHandler(),
		c.CreateGetTechnicianQueryHandler(),
		c.configs.Location(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateGetStaleRoutesQueryHandler(),
		c.configs.StaleRouteSchedule,
		c.configs.StaleRouteAfter,
		c.logger,
	)
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncTechnicianUoWFactory func() commands.TechnicianUoW

func (f FuncTechnicianUoWFactory) Create() commands.TechnicianUoW {
	return f()
}
