package service

import (
	"context"
	"sync"
	"time"

	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/models"
)

type replicationJob struct {
	svc      ReplicationService
	endpoint models.RemoteEndpoint
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReplicationJob creates a replicationJob that calls svc.SyncOnce on a
// ticker. The job is idle until Run is called. If interval is zero or
// negative it defaults to 5 minutes.
func NewReplicationJob(svc ReplicationService, endpoint models.RemoteEndpoint, interval time.Duration, log *logger.Logger) ReplicationJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &replicationJob{
		svc:      svc,
		endpoint: endpoint,
		interval: interval,
		logger:   log,
	}
}

// Run implements ReplicationJob. It stops any previously running job, then
// launches a background goroutine that runs one sync round immediately and
// another on every tick. The goroutine exits when Stop is called.
func (j *replicationJob) Run() {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.syncRound(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.syncRound(jobCtx)
			}
		}
	}()
}

// Stop implements ReplicationJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *replicationJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *replicationJob) syncRound(ctx context.Context) {
	if err := j.svc.SyncOnce(ctx, j.endpoint); err != nil && ctx.Err() == nil {
		j.logger.Err(err).
			Str("func", "replicationJob.syncRound").
			Str("endpoint_hash", j.endpoint.Hash()).
			Msg("sync round failed")
	}
}
