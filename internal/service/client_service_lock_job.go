package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-lockr/internal/logger"
)

const defaultLockCheckInterval = 5 * time.Second

// IdleLocker is the part of the session the lock job drives.
type IdleLocker interface {
	LockIfIdle(now time.Time) bool
}

type lockJob struct {
	session IdleLocker
	now     func() time.Time
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLockJob creates a job that asks session to lock itself on every tick.
// The job is idle until Start is called.
func NewLockJob(session IdleLocker, logger *logger.Logger) LockJob {
	return &lockJob{session: session, now: time.Now, logger: logger}
}

// Start implements LockJob. A non-positive interval falls back to five
// seconds. The goroutine exits when ctx is cancelled or Stop is called.
func (j *lockJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultLockCheckInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Go(func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.session.LockIfIdle(j.now()) {
					j.logger.Info().Msg("vault auto-locked after inactivity")
				}
			}
		}
	})
}

// Stop implements LockJob. It is a no-op when the job is not running.
func (j *lockJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
