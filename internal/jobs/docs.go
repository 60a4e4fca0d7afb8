// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3. The only job today is StaleRouteJob,
// which logs work orders that have been "En camino" for longer than a
// configured duration. It never writes, so it cannot interfere with status
// transitions.
//
//	jobManager, err := jobs.NewJobManager(staleRoutesHandler, "@every 15m", 8*time.Hour, logger)
//	if err != nil {
//		return err
//	}
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the job.
package jobs
