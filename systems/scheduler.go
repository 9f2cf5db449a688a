package systems

import (
	"time"
)

// Scheduler holds at most one pending round transition. Tasks run from Poll,
// on the ticking goroutine, once the clock passes their deadline.
type Scheduler struct {
	clock   TimeProvider
	pending *scheduledTask
}

type scheduledTask struct {
	name string
	due  time.Time
	fn   func()
}

func NewScheduler(clock TimeProvider) *Scheduler {
	if clock == nil {
		clock = RealTimeProvider{}
	}
	return &Scheduler{clock: clock}
}

// Schedule runs fn after delay, replacing any task still pending.
func (s *Scheduler) Schedule(name string, delay time.Duration, fn func()) {
	s.pending = &scheduledTask{
		name: name,
		due:  s.clock.Now().Add(delay),
		fn:   fn,
	}
}

// Cancel drops the pending task, if any.
func (s *Scheduler) Cancel() {
	s.pending = nil
}

// Pending returns the name of the pending task.
func (s *Scheduler) Pending() (string, bool) {
	if s.pending == nil {
		return "", false
	}
	return s.pending.name, true
}

// Poll runs the pending task if it is due and reports whether it ran. The
// slot is cleared first so the task may schedule its successor.
func (s *Scheduler) Poll() bool {
	task := s.pending
	if task == nil || s.clock.Now().Before(task.due) {
		return false
	}
	s.pending = nil
	task.fn()
	return true
}
