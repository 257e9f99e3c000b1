// Package scheduler provides delayed, cancelable callbacks measured in ticks.
//
// A tick is 1/20th of a second. Delays are computed from durations with
// ToTicks, which truncates toward zero.
//
// # Implementations
//
// Loop runs every callback on a single goroutine, one tick at a time. It
// models a host main thread: callbacks never overlap, and a callback
// scheduled with a delay of zero runs on the next tick. Tests drive a Loop
// directly with Advance instead of calling Run.
//
// TimerScheduler backs each task with time.AfterFunc. Callbacks may run on
// any goroutine, so callers must synchronise the state they touch.
//
// # Cancellation
//
// Task.Cancel is idempotent. Canceling a task that already ran, or was
// already canceled, does nothing. A canceled Loop task never runs.
package scheduler
