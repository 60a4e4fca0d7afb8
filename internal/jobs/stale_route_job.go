package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fieldroutes/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type StaleRoutesHandler interface {
	Handle(ctx context.Context, query queries.GetStaleRoutesQuery) ([]queries.GetStaleRoutesQueryResponse, error)
}

// scheduleParser accepts both five-field expressions and the six-field form with seconds.
var scheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// StaleRouteJob periodically reports work orders stuck en route. It only reads.
type StaleRouteJob struct {
	handler  StaleRoutesHandler
	query    queries.GetStaleRoutesQuery
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStaleRouteJob(handler StaleRoutesHandler, schedule string, olderThan time.Duration, logger *slog.Logger) (*StaleRouteJob, error) {
	if _, err := scheduleParser.Parse(schedule); err != nil {
		return nil, fmt.Errorf("invalid stale route schedule %q: %w", schedule, err)
	}
	query, err := queries.NewGetStaleRoutesQuery(olderThan)
	if err != nil {
		return nil, err
	}

	return &StaleRouteJob{
		handler:  handler,
		query:    query,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithParser(scheduleParser)),
		logger:   logger.With("component", "stale_route_job"),
	}, nil
}

func (j *StaleRouteJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stale route job started", "schedule", j.schedule, "older_than", j.query.OlderThan())
	return nil
}

// Run performs a single check and returns how many stale routes were found.
func (j *StaleRouteJob) Run(ctx context.Context) int {
	stale, err := j.handler.Handle(ctx, j.query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale route check failed", "error", err)
		return 0
	}

	for _, route := range stale {
		attrs := []any{"report_id", route.ReportID, "started_at", route.StartedAt}
		if route.TechnicianID != nil {
			attrs = append(attrs, "technician_id", *route.TechnicianID)
		}
		j.logger.WarnContext(ctx, "Work order en route for too long", attrs...)
	}
	return len(stale)
}

// Stop waits for a running check to finish.
func (j *StaleRouteJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stale route job stopped")
}
