package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a function run on a fixed interval until the scheduler stops.
type Job struct {
	Name     string
	Interval time.Duration
	// Timeout bounds a single run. Zero means the run shares the scheduler lifetime.
	Timeout time.Duration
	Fn      func(ctx context.Context) error
}

// JobStatus reports the outcome of a job's most recent run.
type JobStatus struct {
	Name    string
	Runs    int
	LastRun time.Time
	LastErr error
}

type Scheduler struct {
	jobs    []Job
	status  map[string]*JobStatus
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		status: make(map[string]*JobStatus),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job. Jobs added after Start are not run.
func (s *Scheduler) AddJob(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.Interval <= 0 {
		slog.Warn("Cron job skipped, interval must be positive", "name", job.Name, "interval", job.Interval)
		return
	}

	s.jobs = append(s.jobs, job)
	s.status[job.Name] = &JobStatus{Name: job.Name}
	slog.Info("Cron job registered", "name", job.Name, "interval", job.Interval)
}

// Start runs every registered job once immediately and then on its interval.
// Calling Start twice is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.executeJob(s.ctx, job)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(s.ctx, job)
		}
	}
}

func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	if job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	start := time.Now()
	slog.Debug("Cron job starting", "name", job.Name)

	err := job.Fn(ctx)
	if err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}

	s.mu.Lock()
	if st, ok := s.status[job.Name]; ok {
		st.Runs++
		st.LastRun = start
		st.LastErr = err
	}
	s.mu.Unlock()
}

// RunOnce runs every job synchronously, outside the ticker loop.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	for _, job := range jobs {
		s.executeJob(ctx, job)
	}
}

// Status returns a copy of the named job's last outcome.
func (s *Scheduler) Status(name string) (JobStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.status[name]
	if !ok {
		return JobStatus{}, false
	}
	return *st, true
}
