package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

type job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the background jobs enabled by configuration.
type JobManager struct {
	jobs    []job
	started []job
	logger  *slog.Logger
}

// NewJobManager wires the stale route job. An empty schedule disables it.
func NewJobManager(
	staleRoutesHandler StaleRoutesHandler,
	staleRouteSchedule string,
	staleRouteAfter time.Duration,
	logger *slog.Logger,
) (*JobManager, error) {
	jm := &JobManager{logger: logger.With("component", "job_manager")}

	if staleRouteSchedule == "" {
		jm.logger.Info("Stale route job disabled")
		return jm, nil
	}

	staleRouteJob, err := NewStaleRouteJob(staleRoutesHandler, staleRouteSchedule, staleRouteAfter, logger)
	if err != nil {
		return nil, err
	}
	jm.jobs = append(jm.jobs, staleRouteJob)

	return jm, nil
}

// Len reports how many jobs are configured.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}

// StartAll starts every job; on failure the jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job: %w", err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
