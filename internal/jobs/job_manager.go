package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	cacheWarmupJob *CacheWarmupJob
}

// NewJobManager creates a job manager. warmupSchedule follows
// NewCacheWarmupJob.
func NewJobManager(prefetcher Prefetcher, warmupSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		cacheWarmupJob: NewCacheWarmupJob(prefetcher, warmupSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cacheWarmupJob.Start(); err != nil {
		return fmt.Errorf("failed to start cache warm-up job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cacheWarmupJob.Stop()
}
