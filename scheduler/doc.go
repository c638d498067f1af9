// Package scheduler runs callbacks at scheduled times, backed by an indexed
// priority queue ordered by due time. Because the queue supports in-place
// updates of arbitrary keys, pending jobs can be rescheduled or cancelled in
// O(log n) without rebuilding the schedule.
//
// Basic usage:
//
//	s := scheduler.New()
//
//	id, _ := s.Schedule(time.Now().Add(time.Minute), func(ctx context.Context) error {
//	    fmt.Println("tick")
//	    return nil
//	})
//
//	// Push the job back by an hour, or drop it entirely.
//	_ = s.Reschedule(id, time.Now().Add(time.Hour))
//	_ = s.Cancel(id)
//
//	// Run dispatches due jobs until the context is cancelled.
//	ctx, cancel := context.WithCancel(context.Background())
//	go func() {
//	    if err := s.Run(ctx); err != nil {
//	        log.Printf("scheduler stopped: %v", err)
//	    }
//	}()
//
// Jobs run concurrently up to a configurable limit; errors returned by jobs
// are logged and never stop the scheduler.
package scheduler
