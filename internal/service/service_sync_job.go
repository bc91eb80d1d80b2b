package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/sheetmark/internal/logger"
)

type syncJob struct {
	syncService SyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls syncService.BulkSync on a ticker.
// The job is idle until Start is called. The job is the only unattended
// caller of BulkSync, so it is responsible for surfacing pass failures in
// the log.
func NewSyncJob(syncService SyncService, log *logger.Logger) SyncJob {
	return &syncJob{syncService: syncService, logger: log}
}

// Start implements SyncJob. It stops any previously running job, then launches
// a background goroutine that calls BulkSync every interval. If interval is
// zero or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// runOnce executes one pass and reports its outcome. An aborted pass (remote
// unreachable, snapshot not stored) and per-item failures both end up in the
// log; there is no other surface for unattended syncs.
func (j *syncJob) runOnce(ctx context.Context) {
	report, err := j.syncService.BulkSync(ctx)
	if err != nil {
		j.logger.Err(err).Msg("periodic bulk sync failed")
		return
	}

	if len(report.Failures) > 0 {
		j.logger.Warn().
			Int("failures", len(report.Failures)).
			Int("created", len(report.Created)).
			Msg("periodic bulk sync completed with failures")
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
