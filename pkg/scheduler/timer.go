package scheduler

import (
	"sync"
	"time"
)

// TimerScheduler runs each task on its own time.AfterFunc timer.
type TimerScheduler struct {
	mu      sync.Mutex
	pending map[*timerTask]struct{}
}

// NewTimerScheduler creates a timer-backed scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		pending: make(map[*timerTask]struct{}),
	}
}

// After implements Scheduler. Like Loop, a delay below one tick waits one
// tick.
func (s *TimerScheduler) After(ticks int64, fn func()) Task {
	ticks = max(ticks, 1)
	t := &timerTask{sched: s}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[t] = struct{}{}
	t.timer = time.AfterFunc(FromTicks(ticks), func() {
		if !t.claim() {
			return
		}
		fn()
	})
	return t
}

// Pending returns the number of tasks that have neither run nor been canceled.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// CancelAll cancels every pending task.
func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	tasks := make([]*timerTask, 0, len(s.pending))
	for t := range s.pending {
		tasks = append(tasks, t)
	}
	s.mu.Unlock()

	for _, t := range tasks {
		t.Cancel()
	}
}

// timerTask is a task backed by a time.Timer.
type timerTask struct {
	sched *TimerScheduler
	timer *time.Timer
	done  bool
}

// claim marks the task finished. It returns false if it already was.
func (t *timerTask) claim() bool {
	s := t.sched
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	delete(s.pending, t)
	return true
}

// Cancel implements Task.
func (t *timerTask) Cancel() {
	if t.claim() {
		t.timer.Stop()
	}
}

var _ Scheduler = (*TimerScheduler)(nil)
