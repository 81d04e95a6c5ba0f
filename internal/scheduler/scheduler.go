// Package scheduler runs a job on a fixed interval with support for manual
// triggering. Overlap protection belongs to the job itself.
package scheduler

import (
	"context"
	"log"
	"time"
)

// Job is the unit of work the scheduler runs.
type Job func(ctx context.Context) error

// Scheduler ticks a job at a fixed interval until stopped.
type Scheduler struct {
	name     string
	interval time.Duration
	job      Job
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates a scheduler for the given job. Nothing runs until Start.
func New(name string, interval time.Duration, job Job) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		job:      job,
		done:     make(chan struct{}),
	}
}

// Start launches the ticker goroutine. The job runs once immediately so a
// restart doesn't wait a full interval to converge.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		defer close(s.done)

		s.run(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.run(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Printf("scheduler %s started (interval %s)", s.name, s.interval)
}

// TriggerNow runs the job synchronously, outside the tick cycle.
func (s *Scheduler) TriggerNow(ctx context.Context) error {
	return s.job(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	if err := s.job(ctx); err != nil {
		log.Printf("scheduler %s run failed: %v", s.name, err)
	}
}

// Stop cancels the ticker goroutine and waits for it to exit.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}
