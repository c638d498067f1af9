package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/amaiya/pqdict"
)

var (
	// ErrJobNotFound is returned by Cancel and Reschedule when the job ID
	// is unknown or the job already ran.
	ErrJobNotFound = errors.New("scheduler: job not found")
	// ErrNilJob is returned by Schedule when the callback is nil.
	ErrNilJob = errors.New("scheduler: job must not be nil")
)

// Job is a scheduled callback. A non-nil error is logged, not propagated.
type Job func(ctx context.Context) error

// Scheduler dispatches jobs at their due times. The schedule is an indexed
// priority queue of job IDs ordered by due time; one mutex guards the queue
// and the job table together, since neither is safe to observe mid-update.
type Scheduler struct {
	mu    sync.Mutex
	queue *pqdict.Queue[string, time.Time]
	jobs  map[string]Job
	wake  chan struct{}
	opts  options
}

// New creates a scheduler. It holds no goroutines until Run is called.
func New(opts ...Option) *Scheduler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	queue, _ := pqdict.NewFunc[string, time.Time](func(a, b time.Time) bool { return a.Before(b) })
	return &Scheduler{
		queue: queue,
		jobs:  make(map[string]Job),
		wake:  make(chan struct{}, 1),
		opts:  o,
	}
}

// Schedule registers job to run at the given time and returns its ID. Times
// in the past dispatch on the next Run iteration.
func (s *Scheduler) Schedule(at time.Time, job Job) (string, error) {
	if job == nil {
		return "", ErrNilJob
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.queue.Set(id, at)
	s.jobs[id] = job
	s.mu.Unlock()

	s.signal()
	return id, nil
}

// Cancel removes a pending job. Returns ErrJobNotFound if the ID is unknown
// or the job already ran.
func (s *Scheduler) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.queue.Delete(id); err != nil {
		return ErrJobNotFound
	}
	delete(s.jobs, id)
	return nil
}

// Reschedule moves a pending job to a new due time. Returns ErrJobNotFound
// if the ID is unknown or the job already ran.
func (s *Scheduler) Reschedule(id string, at time.Time) error {
	s.mu.Lock()
	err := s.queue.Update(id, at)
	s.mu.Unlock()

	if err != nil {
		return ErrJobNotFound
	}
	s.signal()
	return nil
}

// Len returns the number of pending jobs.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Run dispatches jobs as they come due until ctx is cancelled, then waits
// for in-flight jobs to finish and returns ctx.Err(). Jobs run concurrently
// up to the configured limit; dispatch order follows due-time order.
func (s *Scheduler) Run(ctx context.Context) error {
	var g errgroup.Group
	g.SetLimit(s.opts.maxConcurrency)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = g.Wait()
			return ctx.Err()
		case <-s.wake:
		case <-timer.C:
		}

		for {
			id, job, ok := s.nextDue(time.Now())
			if !ok {
				break
			}
			g.Go(func() error {
				if err := job(ctx); err != nil {
					s.opts.logger.WithError(err).WithField("job_id", id).Warn("scheduled job failed")
				}
				return nil
			})
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		if wait, ok := s.nextWait(); ok {
			timer.Reset(wait)
		}
	}
}

// nextDue pops the top job if it is due at or before now.
func (s *Scheduler) nextDue(now time.Time) (string, Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, at, err := s.queue.Peek()
	if err != nil || at.After(now) {
		return "", nil, false
	}
	_, _, _ = s.queue.Pop()
	job := s.jobs[id]
	delete(s.jobs, id)
	return id, job, true
}

// nextWait returns the time until the top pending job, or false when the
// schedule is empty.
func (s *Scheduler) nextWait() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, at, err := s.queue.Peek()
	if err != nil {
		return 0, false
	}
	wait := time.Until(at)
	if wait < 0 {
		wait = 0
	}
	return wait, true
}

// signal nudges Run to re-read the top of the schedule.
func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
