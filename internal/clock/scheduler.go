// Package clock provides a simulated-time scheduler for the game loop.
//
// Time only moves when the owner calls Advance, so repeating spawn timers and
// one-shot delays run on the same logical thread as the frame update and are
// fully reproducible. The scheduler is not safe for concurrent use.
package clock

import (
	"fmt"
	"time"
)

// TaskID identifies a scheduled callback.
type TaskID uint64

type task struct {
	id     TaskID
	due    time.Duration
	period time.Duration // zero for one-shot tasks
	fn     func()
}

// Scheduler fires callbacks at simulated instants.
type Scheduler struct {
	now    time.Duration
	tasks  []*task
	nextID TaskID
}

// New creates a scheduler at simulated time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every registers fn to run every period of simulated time. The first call
// happens one period from now.
func (s *Scheduler) Every(period time.Duration, fn func()) TaskID {
	if period <= 0 {
		panic(fmt.Sprintf("clock: non-positive period %v", period))
	}
	return s.add(period, period, fn)
}

// After registers fn to run once after delay of simulated time.
func (s *Scheduler) After(delay time.Duration, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, fn)
}

func (s *Scheduler) add(delay, period time.Duration, fn func()) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, &task{
		id:     s.nextID,
		due:    s.now + delay,
		period: period,
		fn:     fn,
	})
	return s.nextID
}

// Cancel removes a task. It reports whether the task was still pending.
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of registered tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Reset drops every task and rewinds time to zero.
func (s *Scheduler) Reset() {
	s.tasks = nil
	s.now = 0
}

// Advance moves simulated time forward by dt, firing every callback that
// falls due in order of due time (registration order breaks ties). A
// repeating task whose period is shorter than dt fires once per elapsed
// period. Callbacks may register or cancel tasks. Returns the number of
// callbacks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	target := s.now + dt
	fired := 0

	for {
		idx := s.nextDue(target)
		if idx < 0 {
			break
		}
		t := s.tasks[idx]
		s.now = t.due

		if t.period > 0 {
			t.due += t.period
		} else {
			s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		}

		t.fn()
		fired++
	}

	s.now = target
	return fired
}

// nextDue returns the index of the earliest task due at or before target,
// or -1 when none is.
func (s *Scheduler) nextDue(target time.Duration) int {
	best := -1
	for i, t := range s.tasks {
		if t.due > target {
			continue
		}
		if best < 0 || t.due < s.tasks[best].due ||
			(t.due == s.tasks[best].due && t.id < s.tasks[best].id) {
			best = i
		}
	}
	return best
}
