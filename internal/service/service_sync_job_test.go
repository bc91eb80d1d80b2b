package service

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/sheetmark/internal/logger"
	"github.com/MKhiriev/sheetmark/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncService counts BulkSync calls without any real work.
type spySyncService struct {
	calls  atomic.Int64
	report models.SyncReport
	err    error
}

func (s *spySyncService) BulkSync(_ context.Context) (models.SyncReport, error) {
	s.calls.Add(1)
	return s.report, s.err
}

func (s *spySyncService) Export(_ context.Context) (int, error) {
	return 0, nil
}

// bufferLogger writes JSON log lines into buf; safe to read after Stop.
func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

// ── NewSyncJob ───────────────────────────────────────────────────────────────

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	require.NotNil(t, job)

	var _ SyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_CallsBulkSync(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	// 10ms interval: expect several ticks within 55ms
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "BulkSync should have run several times, ran: %d", got)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "no new calls after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 falls back to 5 minutes, so no calls within 20ms
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestSyncJob_Start_NegativeInterval(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, -1*time.Second)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// A second Start stops the previous goroutine internally
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	totalCalls := spy.calls.Load()
	assert.Greater(t, totalCalls, callsBefore, "the second Start keeps generating calls")
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
		// ok
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestSyncJob_BulkSyncError_DoesNotStopJob(t *testing.T) {
	spy := &spySyncService{err: assert.AnError}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "BulkSync keeps running despite errors: %d", got)
}

// ── Failure surfacing ────────────────────────────────────────────────────────

func TestSyncJob_BulkSyncError_IsLogged(t *testing.T) {
	var buf bytes.Buffer

	spy := &spySyncService{err: errors.New("remote table unreachable")}
	job := NewSyncJob(spy, bufferLogger(&buf))
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	out := buf.String()
	assert.Contains(t, out, "periodic bulk sync failed")
	assert.Contains(t, out, "remote table unreachable")
}

func TestSyncJob_PerItemFailures_AreLogged(t *testing.T) {
	var buf bytes.Buffer

	spy := &spySyncService{report: models.SyncReport{
		Failures: []models.SyncFailure{
			{URL: "https://broken.com", Op: "find", Err: errors.New("db locked")},
		},
	}}
	job := NewSyncJob(spy, bufferLogger(&buf))
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	out := buf.String()
	assert.Contains(t, out, "periodic bulk sync completed with failures")
	assert.Contains(t, out, `"failures":1`)
}

func TestSyncJob_CleanPass_LogsNothing(t *testing.T) {
	var buf bytes.Buffer

	spy := &spySyncService{}
	job := NewSyncJob(spy, bufferLogger(&buf))
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	require.Greater(t, spy.calls.Load(), int64(0))
	assert.Empty(t, buf.String(), "a clean pass produces no job-level log noise")
}
