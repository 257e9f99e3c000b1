package scheduler

import "time"

// Tick constants.
const (
	// TicksPerSecond is the scheduler resolution.
	TicksPerSecond = 20

	// TickDuration is the wall-clock length of one tick.
	TickDuration = time.Second / TicksPerSecond
)

// Task is a pending callback.
type Task interface {
	// Cancel prevents the callback from running if it has not started.
	// Safe to call more than once.
	Cancel()
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	// After schedules fn to run after ticks ticks. A delay below one tick
	// waits one tick.
	After(ticks int64, fn func()) Task
}

// ToTicks converts a duration to whole ticks, truncating.
func ToTicks(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	seconds := float64(d/time.Second) + float64(d%time.Second)/float64(time.Second)
	return int64(seconds * TicksPerSecond)
}

// FromTicks converts ticks to a duration.
func FromTicks(ticks int64) time.Duration {
	return time.Duration(ticks) * TickDuration
}
