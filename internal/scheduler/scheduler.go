package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is the work run on every tick.
type Job interface {
	DispatchDue(ctx context.Context) (int, error)
}

// Scheduler runs a Job on a fixed interval. It is owned by the app and both
// Start and Stop may be called any number of times.
type Scheduler struct {
	job      Job
	interval time.Duration
	timeout  time.Duration

	mu   sync.Mutex
	cron *cron.Cron
}

func New(job Job, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	timeout := interval
	if timeout > 30*time.Second {
		timeout = 30 * time.Second
	}
	return &Scheduler{
		job:      job,
		interval: interval,
		timeout:  timeout,
	}
}

// Start clears any running schedule and starts a fresh one.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.interval), func() { s.Tick() }); err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	c.Start()
	s.cron = c

	logrus.WithField("interval", s.interval.String()).Info("notification scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil
}

func (s *Scheduler) stopLocked() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
	logrus.Info("notification scheduler stopped")
}

// Tick runs the job once.
func (s *Scheduler) Tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	sent, err := s.job.DispatchDue(ctx)
	if err != nil {
		logrus.WithError(err).Error("error checking scheduled notifications")
		return
	}
	if sent > 0 {
		logrus.WithField("sent", sent).Info("scheduled notifications dispatched")
	}
}
