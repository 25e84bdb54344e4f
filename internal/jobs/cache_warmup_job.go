package jobs

import (
	"context"
	"log/slog"
	"time"

	"nailorders/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultWarmupSchedule refreshes the tab lists every five minutes.
const DefaultWarmupSchedule = "0 */5 * * * *"

// Prefetcher loads order lists into the cache.
type Prefetcher interface {
	Prefetch(ctx context.Context, current order.Status)
}

// CacheWarmupJob keeps every tab list in the cache after writes have
// cleared it, so the next page view is served without a database round trip.
type CacheWarmupJob struct {
	prefetcher Prefetcher
	schedule   string
	timeout    time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewCacheWarmupJob creates the job. schedule is a six-field cron expression
// (seconds first) or a descriptor such as "@every 1m"; empty means
// DefaultWarmupSchedule.
func NewCacheWarmupJob(prefetcher Prefetcher, schedule string, logger *slog.Logger) *CacheWarmupJob {
	if schedule == "" {
		schedule = DefaultWarmupSchedule
	}
	return &CacheWarmupJob{
		prefetcher: prefetcher,
		schedule:   schedule,
		timeout:    30 * time.Second,
		cron:       cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.With("component", "cache_warmup_job"),
	}
}

// Start schedules the job. It fails on an invalid schedule.
func (j *CacheWarmupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cache warm-up job started", "schedule", j.schedule)
	return nil
}

// Run warms every tab once.
func (j *CacheWarmupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	started := time.Now()
	j.prefetcher.Prefetch(ctx, order.Unknown)
	j.logger.DebugContext(ctx, "Cache warmed", "took", time.Since(started))
}

// Stop stops scheduling and waits for a running warm-up to finish.
func (j *CacheWarmupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cache warm-up job stopped")
}
