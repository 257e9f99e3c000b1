// Package playback plays title sequences to targets.
//
// An Engine owns a Registry of active sessions, a Scheduler and a Sink. A
// session is one target playing one sequence. Each step shows a title and
// schedules the next step after the title's visible duration.
//
// # Sessions
//
// A target has at most one session. Starting a sequence on a target that is
// already playing stops the old session first, without clearing the display.
// Starting an empty sequence does nothing.
//
// # Looping
//
// When playback passes the last title and the sequence loops with budget
// left, the loop counter is incremented and playback resumes at the loop
// point, clamped to the last title. Otherwise the session finishes and the
// target's display is cleared.
//
// # Disconnects
//
// Hosts must call Stop when a target goes away. A looping sequence playing to
// a departed target otherwise keeps rescheduling itself. Shutdown stops every
// session.
//
// # Concurrency
//
// All Engine methods and scheduled steps run under one mutex, so the engine
// works with schedulers that fire callbacks on any goroutine. Sink methods
// are called with that mutex held and must not call back into the Engine.
package playback
