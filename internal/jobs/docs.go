// Package jobs provides scheduled background tasks for the order back-office.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// CacheWarmupJob reloads every status tab into the order cache on a schedule
// (CACHE_WARMUP_SCHEDULE, every five minutes by default). Writes clear the
// cached lists; the job refills them so the next page view is a cache hit.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(orderService, cfg.CacheWarmupSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Prefetch failures are logged per tab and never stop the schedule. A
// warm-up still running when the next tick fires is skipped.
package jobs
